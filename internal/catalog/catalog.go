package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Entry is one deployable model configuration from the catalog.
type Entry struct {
	ID          string
	DisplayName string
	ConfigURL   string
	Tier        Tier
	UseCases    []string
	MinRAMGB    int
}

// Resolver fetches the model catalog from the node-configs listing.
type Resolver struct {
	ListingURL     string
	ConfigTemplate string // %s is the model identifier
	Client         *http.Client
	Offline        bool
	Logf           func(format string, args ...any) // nil = silent
}

// listingItem is one record of the remote contents listing.
type listingItem struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewResolver returns a resolver for the given listing endpoint.
func NewResolver(listingURL, configTemplate string) *Resolver {
	return &Resolver{
		ListingURL:     listingURL,
		ConfigTemplate: configTemplate,
		Client:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve returns the decorated model catalog. The remote listing is best
// effort: on any failure or an empty result the hardcoded fallback list is
// returned instead, so the catalog is never empty.
func (r *Resolver) Resolve() []Entry {
	if r.Offline {
		return r.fallback()
	}

	entries, err := r.fetch()
	if err != nil {
		r.logf("catalog listing unavailable (%v), using built-in list", err)
		return r.fallback()
	}
	if len(entries) == 0 {
		r.logf("catalog listing empty, using built-in list")
		return r.fallback()
	}
	return entries
}

// Find returns the catalog entry with the given identifier, or nil.
func Find(entries []Entry, id string) *Entry {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}

func (r *Resolver) fetch() ([]Entry, error) {
	client := r.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Get(r.ListingURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing returned %d", resp.StatusCode)
	}

	var items []listingItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	var entries []Entry
	for _, item := range items {
		if item.Type != "dir" || strings.HasPrefix(item.Name, ".") {
			continue
		}
		entries = append(entries, r.decorate(item.Name))
	}
	return entries, nil
}

// decorate builds a full catalog entry from a raw identifier.
func (r *Resolver) decorate(id string) Entry {
	return Entry{
		ID:          id,
		DisplayName: displayName(id),
		ConfigURL:   fmt.Sprintf(r.ConfigTemplate, id),
		Tier:        Classify(id),
		UseCases:    UseCases(id),
		MinRAMGB:    Classify(id).MinRAMGB(),
	}
}

// fallback is the built-in catalog used when the listing is unreachable.
// It always spans at least a small and a larger tier.
func (r *Resolver) fallback() []Entry {
	ids := []string{
		"phi-3-mini-instruct-4k",
		"llama-3-8b-instruct",
		"llama-3-70b-instruct",
	}
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, r.decorate(id))
	}
	return entries
}

// displayName turns "llama-3-8b-instruct" into "Llama 3 8b Instruct".
func displayName(id string) string {
	parts := strings.Split(id, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

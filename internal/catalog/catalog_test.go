package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func testResolver(listingURL string) *Resolver {
	return NewResolver(listingURL, "https://configs.test/%s/config.json")
}

func TestResolveFromListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name": "llama-3-8b-instruct", "type": "dir"},
			{"name": ".github", "type": "dir"},
			{"name": "README.md", "type": "file"},
			{"name": "phi-3-mini-instruct-4k", "type": "dir"}
		]`))
	}))
	defer srv.Close()

	entries := testResolver(srv.URL).Resolve()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}

	e := entries[0]
	if e.ID != "llama-3-8b-instruct" {
		t.Errorf("unexpected first entry %q", e.ID)
	}
	if e.DisplayName != "Llama 3 8b Instruct" {
		t.Errorf("display name = %q", e.DisplayName)
	}
	if e.ConfigURL != "https://configs.test/llama-3-8b-instruct/config.json" {
		t.Errorf("config URL = %q", e.ConfigURL)
	}
	if e.Tier != TierStandard || e.MinRAMGB != 16 {
		t.Errorf("decoration wrong: tier=%s ram=%d", e.Tier, e.MinRAMGB)
	}
	if len(e.UseCases) == 0 {
		t.Error("entry has no use cases")
	}
}

func TestResolveFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	assertFallback(t, testResolver(srv.URL).Resolve())
}

func TestResolveFallbackOnUnreachable(t *testing.T) {
	assertFallback(t, testResolver("http://127.0.0.1:1/unreachable").Resolve())
}

func TestResolveFallbackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "not a list"}`))
	}))
	defer srv.Close()

	assertFallback(t, testResolver(srv.URL).Resolve())
}

func TestResolveFallbackOnEmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "README.md", "type": "file"}]`))
	}))
	defer srv.Close()

	assertFallback(t, testResolver(srv.URL).Resolve())
}

func TestResolveOffline(t *testing.T) {
	r := testResolver("http://should-not-be-contacted.test")
	r.Offline = true
	assertFallback(t, r.Resolve())
}

// assertFallback checks the guaranteed properties of the built-in list:
// never empty and spanning at least two tiers.
func assertFallback(t *testing.T, entries []Entry) {
	t.Helper()
	if len(entries) < 2 {
		t.Fatalf("fallback must have at least 2 entries, got %d", len(entries))
	}
	tiers := make(map[Tier]bool)
	for _, e := range entries {
		tiers[e.Tier] = true
		if e.MinRAMGB == 0 {
			t.Errorf("fallback entry %s has no RAM floor", e.ID)
		}
	}
	if !tiers[TierSmall] {
		t.Error("fallback must include a small-tier entry")
	}
	if len(tiers) < 2 {
		t.Errorf("fallback must span at least 2 tiers, got %v", tiers)
	}
}

func TestFind(t *testing.T) {
	entries := testResolver("").fallback()

	if e := Find(entries, "llama-3-8b-instruct"); e == nil {
		t.Fatal("expected to find llama-3-8b-instruct in fallback")
	}
	if e := Find(entries, "no-such-model"); e != nil {
		t.Errorf("expected nil for unknown model, got %v", e)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"llama-3-8b-instruct", "Llama 3 8b Instruct"},
		{"phi-3-mini-instruct-4k", "Phi 3 Mini Instruct 4k"},
		{"codestral-0.1-22b", "Codestral 0.1 22b"},
	}
	for _, tt := range tests {
		if got := displayName(tt.id); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

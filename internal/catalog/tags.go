package catalog

import "strings"

// tagRule maps identifier substrings to a use-case label set. Rules are
// mutually exclusive and checked in order; only the first hit applies.
type tagRule struct {
	tokens []string
	labels []string
}

var tagRules = []tagRule{
	{[]string{"code", "coder", "starcoder", "codestral"}, []string{"coding", "code-generation"}},
	{[]string{"instruct", "-it-", "-it"}, []string{"instruction-following", "assistant"}},
	{[]string{"chat", "hermes", "vicuna"}, []string{"chat", "conversation"}},
	{[]string{"mini", "tiny", "nano", "small", "phi"}, []string{"lightweight", "edge-device"}},
	{[]string{"math", "reason", "r1", "wizard"}, []string{"math", "reasoning"}},
	{[]string{"llama", "mistral", "mixtral", "qwen", "gemma", "yi"}, []string{"general-purpose"}},
}

const defaultTag = "general"

// UseCases maps a model identifier to its use-case labels. Exactly one rule
// applies (first match), so a coding model never also carries chat labels.
func UseCases(id string) []string {
	id = strings.ToLower(id)
	for _, r := range tagRules {
		for _, tok := range r.tokens {
			if strings.Contains(id, tok) {
				out := make([]string, len(r.labels))
				copy(out, r.labels)
				return out
			}
		}
	}
	return []string{defaultTag}
}

// KnownUseCases lists every label the tagger can emit, for filter validation.
func KnownUseCases() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range tagRules {
		for _, l := range r.labels {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	out = append(out, defaultTag)
	return out
}

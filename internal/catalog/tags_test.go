package catalog

import (
	"slices"
	"testing"
)

func TestUseCasesNeverEmpty(t *testing.T) {
	ids := []string{
		"llama-3-8b-instruct",
		"codestral-0.1-22b",
		"mystery-model",
		"",
	}
	for _, id := range ids {
		if got := UseCases(id); len(got) == 0 {
			t.Errorf("UseCases(%q) returned empty set", id)
		}
	}
}

func TestUseCasesFirstMatchExclusive(t *testing.T) {
	// Coding tokens outrank everything else, so a coding chat model carries
	// coding labels only.
	got := UseCases("deepseek-coder-chat-7b")
	if !slices.Contains(got, "coding") {
		t.Errorf("expected coding label, got %v", got)
	}
	if slices.Contains(got, "chat") || slices.Contains(got, "conversation") {
		t.Errorf("chat labels must not leak into a coding match, got %v", got)
	}
}

func TestUseCasesPriority(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"starcoder2-15b", "coding"},
		{"llama-3-8b-instruct", "instruction-following"},
		{"vicuna-13b", "chat"},
		{"tinyllama-1b", "lightweight"},
		{"wizardmath-7b", "math"},
		{"gemma-2b", "general-purpose"},
		{"mystery-model", "general"},
	}

	for _, tt := range tests {
		got := UseCases(tt.id)
		if !slices.Contains(got, tt.want) {
			t.Errorf("UseCases(%q) = %v, want it to contain %q", tt.id, got, tt.want)
		}
	}
}

func TestUseCasesDefaultIsSingle(t *testing.T) {
	got := UseCases("zzz")
	if len(got) != 1 || got[0] != "general" {
		t.Errorf("expected single default label, got %v", got)
	}
}

func TestKnownUseCasesCoversDefault(t *testing.T) {
	if !slices.Contains(KnownUseCases(), "general") {
		t.Error("KnownUseCases should include the default label")
	}
}

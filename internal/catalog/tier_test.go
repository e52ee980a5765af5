package catalog

import (
	"fmt"
	"testing"
)

func TestClassifyNumericBoundaries(t *testing.T) {
	tests := []struct {
		params int
		want   Tier
	}{
		{1, TierSmall},
		{5, TierSmall},
		{6, TierStandard},
		{9, TierStandard},
		{10, TierMedium},
		{16, TierMedium},
		{17, TierHeavy},
		{24, TierHeavy},
		{25, TierBig},
		{70, TierBig},
		{71, TierMax},
		{180, TierMax},
	}

	for _, tt := range tests {
		id := fmt.Sprintf("model-%db-instruct", tt.params)
		if got := Classify(id); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", id, got, tt.want)
		}
	}
}

func TestClassifyKnownModels(t *testing.T) {
	tests := []struct {
		id   string
		want Tier
	}{
		{"phi-3-mini-instruct-4k", TierSmall},
		{"llama-3-8b-instruct", TierStandard},
		{"codestral-0.1-22b", TierHeavy},
		{"llama-3-70b-instruct", TierBig},
		{"mixtral-8x7b-instruct", TierStandard}, // first numeric token wins
		{"qwen-1.5b-chat", TierSmall},
		{"command-r-plus", TierBig},
		{"mystery-model", TierUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.id); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestClassifyFirstNumericTokenWins(t *testing.T) {
	// A quantization-style suffix after the parameter count must not win.
	if got := Classify("llama-3-8b-q4b"); got != TierStandard {
		t.Errorf("expected first token 8b to win, got %s", got)
	}
}

func TestClassifyIgnoresContextMarkers(t *testing.T) {
	// "4k" is a context length, not a parameter count.
	if got := Classify("phi-3-small-128k"); got != TierSmall {
		t.Errorf("Classify(phi-3-small-128k) = %s, want small", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("Llama-3-8B-Instruct"); got != TierStandard {
		t.Errorf("Classify uppercase = %s, want standard", got)
	}
}

func TestTierMinRAM(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierSmall, 8},
		{TierStandard, 16},
		{TierMedium, 24},
		{TierHeavy, 32},
		{TierBig, 64},
		{TierMax, 128},
		{TierUnknown, 16},
	}

	for _, tt := range tests {
		if got := tt.tier.MinRAMGB(); got != tt.want {
			t.Errorf("%s.MinRAMGB() = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestTierOrdering(t *testing.T) {
	order := []Tier{TierSmall, TierStandard, TierMedium, TierHeavy, TierBig, TierMax, TierUnknown}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("tier %s should sort before %s", order[i-1], order[i])
		}
	}
}

func TestParseTier(t *testing.T) {
	if tier, ok := ParseTier("heavy"); !ok || tier != TierHeavy {
		t.Errorf("ParseTier(heavy) = %s, %v", tier, ok)
	}
	if _, ok := ParseTier("colossal"); ok {
		t.Error("ParseTier should reject unknown names")
	}
}

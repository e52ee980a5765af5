package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Tier buckets a model by parameter count.
type Tier int

// Tiers are ordered from smallest to largest; TierUnknown sorts last.
const (
	TierSmall Tier = iota
	TierStandard
	TierMedium
	TierHeavy
	TierBig
	TierMax
	TierUnknown
)

// tierInfo fixes the parameter range (billions) and RAM floor for a tier.
type tierInfo struct {
	name    string
	loB     float64 // inclusive
	hiB     float64 // inclusive, 0 = unbounded
	minRAM  int
}

var tiers = map[Tier]tierInfo{
	TierSmall:    {"small", 1, 5, 8},
	TierStandard: {"standard", 6, 9, 16},
	TierMedium:   {"medium", 10, 16, 24},
	TierHeavy:    {"heavy", 17, 24, 32},
	TierBig:      {"big", 25, 70, 64},
	TierMax:      {"max", 71, 0, 128},
	TierUnknown:  {"unknown", 0, 0, 16},
}

func (t Tier) String() string {
	if info, ok := tiers[t]; ok {
		return info.name
	}
	return "unknown"
}

// MinRAMGB returns the RAM floor for running a model of this tier.
func (t Tier) MinRAMGB() int {
	if info, ok := tiers[t]; ok {
		return info.minRAM
	}
	return tiers[TierUnknown].minRAM
}

// ParamRange describes the tier's parameter range, e.g. "10-16B" or ">70B".
func (t Tier) ParamRange() string {
	info, ok := tiers[t]
	if !ok || t == TierUnknown {
		return "?"
	}
	if info.hiB == 0 {
		return ">" + strconv.FormatFloat(info.loB-1, 'f', -1, 64) + "B"
	}
	return strconv.FormatFloat(info.loB, 'f', -1, 64) + "-" + strconv.FormatFloat(info.hiB, 'f', -1, 64) + "B"
}

// ParseTier resolves a tier name used in list filters.
func ParseTier(s string) (Tier, bool) {
	for t, info := range tiers {
		if info.name == strings.ToLower(s) {
			return t, true
		}
	}
	return TierUnknown, false
}

// paramToken matches a parameter count like "8b", "1.5B" or "22b" when the
// token ends at a word boundary, so quantization suffixes like "q4_k" or
// context markers like "4k" do not qualify.
var paramToken = regexp.MustCompile(`(\d+(?:\.\d+)?)[bB]\b`)

// tierForParams maps a parameter count in billions to its tier.
func tierForParams(b float64) Tier {
	switch {
	case b <= 5:
		return TierSmall
	case b <= 9:
		return TierStandard
	case b <= 16:
		return TierMedium
	case b <= 24:
		return TierHeavy
	case b <= 70:
		return TierBig
	default:
		return TierMax
	}
}

// tokenRule maps a literal identifier substring to a tier. Rules are checked
// in order; the first hit wins, so specific tokens come before generic ones.
type tokenRule struct {
	token string
	tier  Tier
}

var sizeTokens = []tokenRule{
	{"70b", TierBig},
	{"13b", TierMedium},
	{"14b", TierMedium},
	{"22b", TierHeavy},
	{"7b", TierStandard},
	{"8b", TierStandard},
	{"9b", TierStandard},
	{"mini", TierSmall},
	{"tiny", TierSmall},
	{"nano", TierSmall},
	{"small", TierSmall},
	{"medium", TierMedium},
	{"large", TierMax},
	{"huge", TierMax},
}

// Special-cased families whose identifiers carry no usable size token.
var tierOverrides = []tokenRule{
	{"phi-2", TierSmall},
	{"codestral", TierHeavy},
	{"mixtral", TierBig},
	{"command-r", TierBig},
	{"grok", TierMax},
}

// Classify maps a model identifier to its capability tier. The identifier is
// free text with no canonical metadata, so this is a best-effort cascade: the
// first parameter-count token wins, then literal size tokens, then family
// overrides, then TierUnknown.
func Classify(id string) Tier {
	id = strings.ToLower(id)

	if m := paramToken.FindStringSubmatch(id); m != nil {
		if b, err := strconv.ParseFloat(m[1], 64); err == nil {
			return tierForParams(b)
		}
	}

	for _, r := range sizeTokens {
		if strings.Contains(id, r.token) {
			return r.tier
		}
	}

	for _, r := range tierOverrides {
		if strings.Contains(id, r.token) {
			return r.tier
		}
	}

	return TierUnknown
}

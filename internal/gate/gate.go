// Package gate decides whether a model may be deployed on this host.
package gate

import (
	"github.com/meowyx/gaia-toolkit/internal/catalog"
	"github.com/meowyx/gaia-toolkit/internal/sysinfo"
)

// Verdict is the result of a compatibility check.
type Verdict int

const (
	// Compatible means the host meets the model's RAM floor.
	Compatible Verdict = iota
	// Marginal means close to the floor: warn, but proceed.
	Marginal
	// Incompatible means blocked; only the override ritual can bypass.
	Incompatible
)

func (v Verdict) String() string {
	switch v {
	case Compatible:
		return "compatible"
	case Marginal:
		return "marginal"
	default:
		return "incompatible"
	}
}

// marginalBandGB is how far below the RAM floor the guided setup still lets
// the user proceed with a warning instead of a hard block.
const marginalBandGB = 8

// Check is the binary gate used by direct `run`: at or above the model's RAM
// floor is compatible, anything below is blocked.
func Check(entry catalog.Entry, profile sysinfo.Profile) Verdict {
	if profile.TotalRAMGB >= float64(entry.MinRAMGB) {
		return Compatible
	}
	return Incompatible
}

// Advise is the softer check used by the guided setup path. Unlike Check it
// has a marginal band just below the floor that warns without blocking. The
// two entry points deliberately disagree; keep them separate.
func Advise(entry catalog.Entry, profile sysinfo.Profile) Verdict {
	if profile.TotalRAMGB >= float64(entry.MinRAMGB) {
		return Compatible
	}
	if profile.TotalRAMGB >= float64(entry.MinRAMGB-marginalBandGB) {
		return Marginal
	}
	return Incompatible
}

// Shortfall returns how many GB the host is below the model's floor.
// Zero or negative means the host qualifies.
func Shortfall(entry catalog.Entry, profile sysinfo.Profile) float64 {
	return float64(entry.MinRAMGB) - profile.TotalRAMGB
}

package domain

import (
	"math"
	"time"
)

// SynodicMonthDays is the mean length of a lunation in days.
const SynodicMonthDays = 29.53058867

// referenceNewMoon is a known new moon used as the lunation epoch.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// Phase names, in lunation order.
const (
	PhaseNewMoon        = "New Moon"
	PhaseWaxingCrescent = "Waxing Crescent"
	PhaseFirstQuarter   = "First Quarter"
	PhaseWaxingGibbous  = "Waxing Gibbous"
	PhaseFullMoon       = "Full Moon"
	PhaseWaningGibbous  = "Waning Gibbous"
	PhaseLastQuarter    = "Last Quarter"
	PhaseWaningCrescent = "Waning Crescent"
)

// MoonInfo describes the lunar phase at an instant.
type MoonInfo struct {
	// Phase is the fraction of the current lunation, in [0,1).
	Phase float64 `json:"phase"`

	// PhaseName is one of the eight Phase* labels.
	PhaseName string `json:"phaseName"`

	// Illumination is round(Phase*100), always in [0,100].
	Illumination int `json:"illumination"`
}

// MoonAt approximates the moon phase at t.
func MoonAt(t time.Time) MoonInfo {
	days := t.UTC().Sub(referenceNewMoon).Hours() / 24
	phase := math.Mod(days/SynodicMonthDays, 1)
	if phase < 0 {
		phase++
	}
	// -tiny + 1 can round to exactly 1.
	if phase >= 1 {
		phase = 0
	}

	return MoonInfo{
		Phase:        phase,
		PhaseName:    PhaseName(phase),
		Illumination: roundHalfUp(phase * 100),
	}
}

// PhaseName maps a lunation fraction in [0,1) to its phase label.
func PhaseName(phase float64) string {
	switch {
	case phase < 0.03 || phase > 0.97:
		return PhaseNewMoon
	case phase < 0.22:
		return PhaseWaxingCrescent
	case phase < 0.28:
		return PhaseFirstQuarter
	case phase < 0.47:
		return PhaseWaxingGibbous
	case phase < 0.53:
		return PhaseFullMoon
	case phase < 0.72:
		return PhaseWaningGibbous
	case phase < 0.78:
		return PhaseLastQuarter
	default:
		return PhaseWaningCrescent
	}
}

// roundHalfUp rounds to the nearest integer with .5 going toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

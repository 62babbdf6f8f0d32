package astro

import "math"

// Phase is one of the eight named lunar phases.
type Phase int

// The eight phases in order of increasing elongation. Each phase owns a
// 45°-wide window centered on its exact angle, so New covers 337.5°–22.5°.
const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// MoonPhase returns the named phase for a day number: a single elongation
// evaluation bucketed into 45° windows.
func MoonPhase(n int64) Phase {
	e := Elongation(float64(n))
	return Phase(int(math.Floor((e+22.5)/45)) % 8)
}

// Illumination returns the illuminated fraction of the moon's disk as a
// percentage for a day number, from the phase angle approximation.
func Illumination(n int64) float64 {
	return (1 - cosDeg(Elongation(float64(n)))) / 2 * 100
}

// phaseJD locates the Julian date near seed at which the elongation reaches
// target. The fallback step is a quarter synodic month, taken when the local
// numeric derivative degenerates.
func phaseJD(target, seed float64) float64 {
	return solveLongitude(Elongation, target, seed, SynodicMonth/4)
}

// NewMoonNear returns the Julian date of the new moon closest to seed.
func NewMoonNear(seed float64) float64 { return phaseJD(0, seed) }

// FirstQuarterNear returns the first-quarter moment closest to seed.
func FirstQuarterNear(seed float64) float64 { return phaseJD(90, seed) }

// FullMoonNear returns the full-moon moment closest to seed.
func FullMoonNear(seed float64) float64 { return phaseJD(180, seed) }

// LastQuarterNear returns the last-quarter moment closest to seed.
func LastQuarterNear(seed float64) float64 { return phaseJD(270, seed) }

// NextNewMoon returns the first new moon strictly after the given Julian
// date. The solver converges to the new moon nearest the reference; if that
// lands at or before the reference it is advanced by one synodic month and
// re-solved.
func NextNewMoon(jd float64) float64 {
	c := NewMoonNear(jd)
	for i := 0; i < 3 && c <= jd; i++ {
		c = NewMoonNear(c + SynodicMonth)
	}
	return c
}

// PrevNewMoon returns the last new moon strictly before the given Julian
// date, stepping back by one synodic month until it clears the reference.
func PrevNewMoon(jd float64) float64 {
	c := NewMoonNear(jd)
	for i := 0; i < 3 && c >= jd; i++ {
		c = NewMoonNear(c - SynodicMonth)
	}
	return c
}

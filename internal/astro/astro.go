// Package astro provides the limited-precision solar and lunar position
// models and the iterative solvers the astronomically-derived calendars are
// built on. Longitudes come from truncated trigonometric series good to a
// fraction of a degree, which is day-level calendar accuracy — this is a
// deliberate precision/complexity trade-off, not full ephemeris accuracy.
//
// Functions ending in JD take and return fractional Julian dates. The
// whole-day wrappers round to the nearest day number in UTC; callers that
// observe events in another meridian (the Chinese calendar uses UTC+8)
// apply their own offset before rounding.
package astro

import (
	"math"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

const (
	// SynodicMonth is the mean interval between successive new moons, in days.
	SynodicMonth = 29.53058867

	// TropicalYear is the mean interval between vernal equinoxes, in days.
	TropicalYear = 365.242189

	// j2000 is the Julian date of the J2000.0 reference epoch.
	j2000 = 2451545.0
)

// centuries returns Julian centuries since J2000 for a Julian date.
func centuries(jd float64) float64 {
	return (jd - j2000) / 36525.0
}

// normDeg normalizes an angle to [0, 360).
func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// norm180 normalizes an angle to (-180, 180]. Used for angular error terms
// so the solvers never chase the long way around the circle.
func norm180(a float64) float64 {
	a = normDeg(a)
	if a > 180 {
		a -= 360
	}
	return a
}

func sinDeg(a float64) float64 { return math.Sin(a * math.Pi / 180) }
func cosDeg(a float64) float64 { return math.Cos(a * math.Pi / 180) }

// SolarLongitude returns the true ecliptic longitude of the sun in degrees
// [0, 360) for a Julian date: mean longitude plus the equation-of-center
// correction from a truncated series in the mean anomaly.
func SolarLongitude(jd float64) float64 {
	t := centuries(jd)

	meanLong := 280.46646 + 36000.76983*t + 0.0003032*t*t
	meanAnom := 357.52911 + 35999.05029*t - 0.0001537*t*t

	center := (1.914602-0.004817*t-0.000014*t*t)*sinDeg(meanAnom) +
		(0.019993-0.000101*t)*sinDeg(2*meanAnom) +
		0.000289*sinDeg(3*meanAnom)

	return normDeg(meanLong + center)
}

// LunarLongitude returns the ecliptic longitude of the moon in degrees
// [0, 360) for a Julian date. Truncated ELP-style series: the principal
// elliptic, evection, variation, and annual-equation terms, enough for the
// few-arcminute accuracy the lunisolar calendars need.
func LunarLongitude(jd float64) float64 {
	t := centuries(jd)

	meanLong := 218.3164477 + 481267.88123421*t // L'
	elong := 297.8501921 + 445267.1114034*t     // D, mean elongation
	sunAnom := 357.5291092 + 35999.0502909*t    // M
	moonAnom := 134.9633964 + 477198.8675055*t  // M'
	latArg := 93.2720950 + 483202.0175233*t     // F

	lon := meanLong +
		6.288774*sinDeg(moonAnom) +
		1.274027*sinDeg(2*elong-moonAnom) +
		0.658314*sinDeg(2*elong) +
		0.213618*sinDeg(2*moonAnom) -
		0.185116*sinDeg(sunAnom) -
		0.114332*sinDeg(2*latArg) +
		0.058793*sinDeg(2*elong-2*moonAnom) +
		0.057066*sinDeg(2*elong-sunAnom-moonAnom) +
		0.053322*sinDeg(2*elong+moonAnom) +
		0.045758*sinDeg(2*elong-sunAnom) -
		0.040923*sinDeg(sunAnom-moonAnom) -
		0.034720*sinDeg(elong) -
		0.030383*sinDeg(sunAnom+moonAnom) +
		0.015327*sinDeg(2*elong-2*latArg) -
		0.012528*sinDeg(moonAnom+2*latArg) -
		0.010980*sinDeg(moonAnom-2*latArg)

	return normDeg(lon)
}

// Elongation returns the moon-sun longitude difference in degrees [0, 360).
// Zero at new moon, 180 at full moon.
func Elongation(jd float64) float64 {
	return normDeg(LunarLongitude(jd) - SolarLongitude(jd))
}

// Solver parameters. Iterations are hard-capped so no call can hang; a
// solver that fails to converge returns its last estimate, which is within
// the engine's day-level tolerance anyway.
const (
	maxIterations = 10
	tolDegrees    = 0.01
	minStepDays   = 1e-4
	minDerivative = 1e-5
)

// solveLongitude locates the Julian date near seed at which f crosses the
// target longitude. Newton-style iteration with a one-day forward difference
// as the numeric derivative; when the derivative is degenerate it falls back
// to a fixed step (a fraction of the relevant period) to avoid stalling on a
// divide-by-near-zero.
func solveLongitude(f func(float64) float64, target, seed, fallbackStep float64) float64 {
	jd := seed
	for i := 0; i < maxIterations; i++ {
		diff := norm180(f(jd) - target)
		if math.Abs(diff) < tolDegrees {
			break
		}

		deriv := norm180(f(jd+1) - f(jd))
		var step float64
		if math.Abs(deriv) < minDerivative {
			step = fallbackStep
			if diff > 0 {
				step = -step
			}
		} else {
			step = -diff / deriv
		}

		jd += step
		if math.Abs(step) < minStepDays {
			break
		}
	}
	return jd
}

// DayOf rounds a Julian date to the nearest whole day number (UTC).
func DayOf(jd float64) int64 {
	return int64(math.Floor(jd + 0.5))
}

// SolarLongitudeJD locates the Julian date near seed where the sun reaches
// the target longitude.
func SolarLongitudeJD(target, seed float64) float64 {
	return solveLongitude(SolarLongitude, target, seed, TropicalYear/360)
}

// VernalEquinoxJD returns the Julian date of the March equinox of a
// Gregorian year (solar longitude 0°).
func VernalEquinoxJD(year int) float64 {
	return SolarLongitudeJD(0, float64(daycount.FromGregorian(year, 3, 20)))
}

// SummerSolsticeJD returns the June solstice (90°).
func SummerSolsticeJD(year int) float64 {
	return SolarLongitudeJD(90, float64(daycount.FromGregorian(year, 6, 21)))
}

// AutumnalEquinoxJD returns the September equinox (180°).
func AutumnalEquinoxJD(year int) float64 {
	return SolarLongitudeJD(180, float64(daycount.FromGregorian(year, 9, 22)))
}

// WinterSolsticeJD returns the December solstice (270°).
func WinterSolsticeJD(year int) float64 {
	return SolarLongitudeJD(270, float64(daycount.FromGregorian(year, 12, 21)))
}

// VernalEquinox returns the day number of the March equinox.
func VernalEquinox(year int) int64 { return DayOf(VernalEquinoxJD(year)) }

// SummerSolstice returns the day number of the June solstice.
func SummerSolstice(year int) int64 { return DayOf(SummerSolsticeJD(year)) }

// AutumnalEquinox returns the day number of the September equinox.
func AutumnalEquinox(year int) int64 { return DayOf(AutumnalEquinoxJD(year)) }

// WinterSolstice returns the day number of the December solstice.
func WinterSolstice(year int) int64 { return DayOf(WinterSolsticeJD(year)) }

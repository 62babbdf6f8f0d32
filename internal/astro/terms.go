package astro

import (
	"math"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

// The 24 solar terms divide the ecliptic into 15° segments starting at 315°
// (Lichun, "start of spring"). Odd-indexed terms are the major terms
// (zhongqi) at multiples of 30°; a Chinese lunar month containing no major
// term is the leap-month candidate.

// TermNames holds the Chinese name of each solar term, indexed 0..23.
var TermNames = [24]string{
	"立春", "雨水", "惊蛰", "春分", "清明", "谷雨",
	"立夏", "小满", "芒种", "夏至", "小暑", "大暑",
	"立秋", "处暑", "白露", "秋分", "寒露", "霜降",
	"立冬", "小雪", "大雪", "冬至", "小寒", "大寒",
}

// TermNamesEnglish holds the conventional English rendering of each term.
var TermNamesEnglish = [24]string{
	"Start of Spring", "Rain Water", "Awakening of Insects", "Vernal Equinox",
	"Clear and Bright", "Grain Rain", "Start of Summer", "Grain Full",
	"Grain in Ear", "Summer Solstice", "Minor Heat", "Major Heat",
	"Start of Autumn", "End of Heat", "White Dew", "Autumnal Equinox",
	"Cold Dew", "Frost Descent", "Start of Winter", "Minor Snow",
	"Major Snow", "Winter Solstice", "Minor Cold", "Major Cold",
}

// termLongitude returns the ecliptic longitude of a term boundary.
func termLongitude(term int) float64 {
	return math.Mod(315+15*float64(term), 360)
}

// SolarTerm returns the index 0..23 of the solar term period a day number
// falls in.
func SolarTerm(n int64) int {
	lon := SolarLongitude(float64(n))
	return int(daycount.FloorMod(int64(math.Floor(lon/15))-21, 24))
}

// IsMajorTerm reports whether a term index is a major term (zhongqi).
func IsMajorTerm(term int) bool {
	return term%2 == 1
}

// SolarTermJD returns the Julian date at which the sun reaches the boundary
// longitude of the given term in the term-year anchored at the given
// Gregorian year. Term 0 (315°) falls near February 4 of that year; later
// terms follow at roughly 15.2-day intervals, so terms 22 and 23 land in
// January of the following Gregorian year.
func SolarTermJD(year, term int) float64 {
	seed := float64(daycount.FromGregorian(year, 2, 4)) + 15.2184*float64(term)
	return SolarLongitudeJD(termLongitude(term), seed)
}

// SolarTermDay returns the day number of a term boundary (UTC rounding).
func SolarTermDay(year, term int) int64 {
	return DayOf(SolarTermJD(year, term))
}

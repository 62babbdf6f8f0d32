package calendars

import (
	"sync"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

// The Hebrew converter is fixed arithmetic on the 19-year Metonic cycle:
// leap years at cycle positions 3, 6, 8, 11, 14, 17, and 19 insert a
// thirteenth month. Year length is not closed-form — Rosh Hashanah is
// postponed by molad-position rules, which makes two month lengths
// (Marcheshvan and Kislev) depend on the total year length. The classic
// chicken-and-egg is broken by computing each year's new-year day once from
// the molad count alone and deriving every month length from the resulting
// year-length category, so no month query ever re-enters the year
// computation. New-year day numbers are memoized per year on the converter
// instance.

// hebrewEpoch is the day number of 1 Tishrei AM 1 (7 October 3761 BCE
// proleptic Julian).
const hebrewEpoch int64 = 347998

// Civil month order, Tishrei first. In leap years Adar I is inserted as the
// sixth month and Adar becomes Adar II.
var hebrewMonthNames = []string{
	"Tishrei", "Marcheshvan", "Kislev", "Tevet", "Shevat", "Adar",
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

var hebrewLeapMonthNames = []string{
	"Tishrei", "Marcheshvan", "Kislev", "Tevet", "Shevat", "Adar I",
	"Adar II", "Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul",
}

type hebrewSystem struct {
	mu       sync.Mutex
	newYears map[int]int64
}

// NewHebrew returns the Hebrew calendar converter.
func NewHebrew() System {
	return &hebrewSystem{newYears: make(map[int]int64)}
}

func (h *hebrewSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          Hebrew,
		Name:        "Hebrew",
		NativeName:  "הלוח העברי",
		Kind:        KindLunisolar,
		Months:      13,
		MinYearDays: 353,
		MaxYearDays: 385,
		Epoch:       hebrewEpoch,
		LeapRule:    "7 leap years per 19-year Metonic cycle",
		MonthNames:  hebrewLeapMonthNames,
		Eras:        [2]string{"AM", ""},
	}
}

// hebrewLeapYear reports whether a year holds 13 months: true at Metonic
// cycle positions 3, 6, 8, 11, 14, 17, 19.
func hebrewLeapYear(year int) bool {
	return daycount.FloorMod(7*int64(year)+1, 19) < 7
}

func hebrewMonthsInYear(year int) int {
	if hebrewLeapYear(year) {
		return 13
	}
	return 12
}

// hebrewElapsedDays returns days from the epoch molad to the unpostponed
// new year of a year, including the Monday/molad-zaken adjustment folded
// into the 3*(d+1) mod 7 test.
func hebrewElapsedDays(year int) int64 {
	months := daycount.FloorDiv(235*int64(year)-234, 19)
	parts := 12084 + 13753*months
	days := 29*months + daycount.FloorDiv(parts, 25920)
	if daycount.FloorMod(3*(days+1), 7) < 3 {
		days++
	}
	return days
}

// newYear returns the day number of 1 Tishrei of a year, applying the
// year-length postponements that keep every year inside the six legal
// length categories. Memoized: the value is pure in the year number.
func (h *hebrewSystem) newYear(year int) int64 {
	h.mu.Lock()
	if n, ok := h.newYears[year]; ok {
		h.mu.Unlock()
		return n
	}
	h.mu.Unlock()

	ny0 := hebrewElapsedDays(year - 1)
	ny1 := hebrewElapsedDays(year)
	ny2 := hebrewElapsedDays(year + 1)

	var delay int64
	switch {
	case ny2-ny1 == 356: // next year would be too long
		delay = 2
	case ny1-ny0 == 382: // previous year would be too short
		delay = 1
	}
	n := hebrewEpoch + ny1 + delay

	h.mu.Lock()
	h.newYears[year] = n
	h.mu.Unlock()
	return n
}

// yearLength returns the number of days in a year: 353, 354, 355 for
// common years; 383, 384, 385 for leap years.
func (h *hebrewSystem) yearLength(year int) int {
	return int(h.newYear(year+1) - h.newYear(year))
}

// monthLength returns the days in a civil month given the year's length
// category, which decides the two variable months.
func (h *hebrewSystem) monthLength(year, month int) int {
	leap := hebrewLeapYear(year)
	length := h.yearLength(year)

	switch month {
	case 1: // Tishrei
		return 30
	case 2: // Marcheshvan: long only in "complete" years
		if length == 355 || length == 385 {
			return 30
		}
		return 29
	case 3: // Kislev: short only in "deficient" years
		if length == 353 || length == 383 {
			return 29
		}
		return 30
	case 4: // Tevet
		return 29
	case 5: // Shevat
		return 30
	}

	if leap {
		// 6=Adar I(30), 7=Adar II(29), then Nisan 30 alternating down.
		switch month {
		case 6:
			return 30
		case 7, 9, 11, 13:
			return 29
		default: // 8, 10, 12
			return 30
		}
	}
	// 6=Adar(29), 7=Nisan(30), alternating to Elul.
	if month%2 == 0 {
		return 29
	}
	return 30
}

func (h *hebrewSystem) ToDayCount(d Date) (int64, error) {
	months := hebrewMonthsInYear(d.Year)
	err := validateMonthDay(d, months, func(m int) int {
		return h.monthLength(d.Year, m)
	})
	if err != nil {
		return 0, err
	}

	n := h.newYear(d.Year)
	for m := 1; m < d.Month; m++ {
		n += int64(h.monthLength(d.Year, m))
	}
	return n + int64(d.Day-1), nil
}

func (h *hebrewSystem) FromDayCount(n int64) Date {
	// Seed from the mean year length (35975351/98496 days), then walk to
	// the year whose new-year bracket contains n.
	year := int(daycount.FloorDiv(98496*(n-hebrewEpoch), 35975351)) + 1
	for n < h.newYear(year) {
		year--
	}
	for n >= h.newYear(year+1) {
		year++
	}

	offset := int(n - h.newYear(year))
	month, day := monthOf(offset, hebrewMonthsInYear(year), func(m int) int {
		return h.monthLength(year, m)
	})
	return Date{Year: year, Month: month, Day: day}
}

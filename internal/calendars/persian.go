package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// The Persian (Solar Hijri) converter uses the arithmetic 33-year cycle:
// 8 leap years at fixed cycle positions, 12053 days per cycle. The cycle
// tracks the true March-equinox new year to within a day across the years
// the engine targets.

// persianEpoch is the day number of 1 Farvardin AP 1 (Nowruz 622 CE).
const persianEpoch int64 = 1948320

// persianLeapPositions marks the leap positions within the 33-year cycle,
// indexed by floorMod(year, 33).
var persianLeapPositions = [33]bool{
	1: true, 5: true, 9: true, 13: true, 17: true, 22: true, 26: true, 30: true,
}

// persianLeapsUpTo[r] counts leap positions in 1..r of a cycle.
var persianLeapsUpTo = func() [33]int {
	var cum [33]int
	count := 0
	for r := 0; r < 33; r++ {
		if persianLeapPositions[r] {
			count++
		}
		cum[r] = count
	}
	return cum
}()

var persianMonthNames = []string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

type persianSystem struct{}

// NewPersian returns the arithmetic Persian calendar converter.
func NewPersian() System { return persianSystem{} }

func (persianSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          Persian,
		Name:        "Persian",
		NativeName:  "گاه‌شماری هجری خورشیدی",
		Kind:        KindSolar,
		Months:      12,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       persianEpoch,
		LeapRule:    "8 leap years per 33-year cycle",
		MonthNames:  persianMonthNames,
		Eras:        [2]string{"AP", ""},
	}
}

func persianLeap(year int) bool {
	return persianLeapPositions[daycount.FloorMod(int64(year), 33)]
}

func persianMonthDays(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case persianLeap(year):
		return 30
	default:
		return 29
	}
}

// persianLeapsBefore counts leap years in 1..n, extended periodically to
// negative n so year accumulation stays consistent across the epoch.
func persianLeapsBefore(n int64) int64 {
	return 8*daycount.FloorDiv(n, 33) + int64(persianLeapsUpTo[daycount.FloorMod(n, 33)])
}

func persianYearStart(year int) int64 {
	y := int64(year)
	return persianEpoch + 365*(y-1) + persianLeapsBefore(y-1)
}

func (persianSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 12, func(m int) int {
		return persianMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	offset := 31 * (d.Month - 1)
	if d.Month > 6 {
		offset = 186 + 30*(d.Month-7)
	}
	return persianYearStart(d.Year) + int64(offset+d.Day-1), nil
}

func (persianSystem) FromDayCount(n int64) Date {
	// Estimate from the mean year, then correct by at most one step.
	year := int(daycount.FloorDiv(33*(n-persianEpoch), 12053)) + 1
	for n < persianYearStart(year) {
		year--
	}
	for n >= persianYearStart(year+1) {
		year++
	}

	offset := int(n - persianYearStart(year))
	if offset < 186 {
		return Date{Year: year, Month: offset/31 + 1, Day: offset%31 + 1}
	}
	offset -= 186
	return Date{Year: year, Month: offset/30 + 7, Day: offset%30 + 1}
}

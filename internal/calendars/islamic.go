package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// The Islamic converter is the tabular (arithmetic) calendar: months
// alternate 30/29 days and eleven leap years fall in each 30-year cycle.
// Observation-based calendars used regionally can differ from it by a day
// or two; the tabular form is the standard proleptic interchange variant.

// islamicEpoch is the day number of 1 Muharram AH 1 (16 July 622 CE Julian,
// the civil epoch).
const islamicEpoch int64 = 1948440

var islamicMonthNames = []string{
	"Muharram", "Safar", "Rabi' al-awwal", "Rabi' al-thani",
	"Jumada al-awwal", "Jumada al-thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

type islamicSystem struct{}

// NewIslamic returns the tabular Islamic calendar converter.
func NewIslamic() System { return islamicSystem{} }

func (islamicSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          Islamic,
		Name:        "Islamic",
		NativeName:  "التقويم الهجري",
		Kind:        KindLunar,
		Months:      12,
		MinYearDays: 354,
		MaxYearDays: 355,
		Epoch:       islamicEpoch,
		LeapRule:    "11 leap years per 30-year cycle",
		MonthNames:  islamicMonthNames,
		Eras:        [2]string{"AH", ""},
	}
}

func islamicLeap(year int) bool {
	return daycount.FloorMod(14+11*int64(year), 30) < 11
}

func islamicMonthDays(year, month int) int {
	if month%2 == 1 {
		return 30
	}
	if month == 12 && islamicLeap(year) {
		return 30
	}
	return 29
}

func islamicToDay(year, month, day int) int64 {
	y := int64(year)
	return islamicEpoch - 1 + 354*(y-1) + daycount.FloorDiv(3+11*y, 30) +
		int64(29*(month-1)+month/2+day)
}

func (islamicSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 12, func(m int) int {
		return islamicMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	return islamicToDay(d.Year, d.Month, d.Day), nil
}

func (islamicSystem) FromDayCount(n int64) Date {
	// 10631/30 is the mean tabular year length in days.
	year := int(daycount.FloorDiv(30*(n-islamicEpoch)+10646, 10631))
	offset := int(n - islamicToDay(year, 1, 1))
	month, day := monthOf(offset, 12, func(m int) int {
		return islamicMonthDays(year, m)
	})
	return Date{Year: year, Month: month, Day: day}
}

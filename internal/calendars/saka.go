package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// The Indian national calendar (Saka era): Chaitra 1 falls on 22 March (21
// March in Gregorian leap years, when Chaitra has 31 days), so the calendar
// is a fixed reshaping of the Gregorian year with the era offset 78.

const sakaYearOffset = 78

var sakaMonthNames = []string{
	"Chaitra", "Vaishakha", "Jyeshtha", "Ashadha", "Shravana", "Bhadrapada",
	"Ashvina", "Kartika", "Agrahayana", "Pausha", "Magha", "Phalguna",
}

type sakaSystem struct{}

// NewIndianSaka returns the Indian national calendar converter.
func NewIndianSaka() System { return sakaSystem{} }

func (sakaSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          IndianSaka,
		Name:        "Indian National",
		NativeName:  "भारतीय राष्ट्रीय पंचांग",
		Kind:        KindSolar,
		Months:      12,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       sakaYearStart(1),
		LeapRule:    "Gregorian 4/100/400 rule on the Saka year plus 78",
		MonthNames:  sakaMonthNames,
		Eras:        [2]string{"Saka", ""},
	}
}

// sakaYearStart returns the day number of Chaitra 1 of a Saka year.
func sakaYearStart(year int) int64 {
	gy := year + sakaYearOffset
	if daycount.IsGregorianLeap(gy) {
		return daycount.FromGregorian(gy, 3, 21)
	}
	return daycount.FromGregorian(gy, 3, 22)
}

func sakaMonthDays(year, month int) int {
	switch {
	case month == 1:
		if daycount.IsGregorianLeap(year + sakaYearOffset) {
			return 31
		}
		return 30
	case month <= 6:
		return 31
	default:
		return 30
	}
}

func (sakaSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 12, func(m int) int {
		return sakaMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	n := sakaYearStart(d.Year)
	for m := 1; m < d.Month; m++ {
		n += int64(sakaMonthDays(d.Year, m))
	}
	return n + int64(d.Day-1), nil
}

func (sakaSystem) FromDayCount(n int64) Date {
	gy, _, _ := daycount.ToGregorian(n)
	year := gy - sakaYearOffset
	if n < sakaYearStart(year) {
		year--
	}
	offset := int(n - sakaYearStart(year))
	month, day := monthOf(offset, 12, func(m int) int {
		return sakaMonthDays(year, m)
	})
	return Date{Year: year, Month: month, Day: day}
}

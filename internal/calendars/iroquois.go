package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// Thirteen moons of the Haudenosaunee year, in order from midwinter.
var iroquoisMonthNames = []string{
	"Midwinter Moon", "Sugar Moon", "Fishing Moon", "Planting Moon",
	"Strawberry Moon", "Blooming Moon", "Green Bean Moon", "Green Corn Moon",
	"Freshness Moon", "Harvest Moon", "Hunting Moon", "Cold Moon",
	"Long Night Moon",
}

type iroquoisSystem struct{}

// NewIroquois returns the Iroquois thirteen-moon converter: twelve 28-day
// moons plus a final moon that absorbs the remainder of the solar year
// (29 days, 30 in Gregorian leap years), keeping the year aligned with the
// civil year so conversions stay exact.
func NewIroquois() System { return iroquoisSystem{} }

func (iroquoisSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          Iroquois,
		Name:        "Iroquois",
		NativeName:  "Haudenosaunee",
		Kind:        KindLunar,
		Months:      13,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       daycount.GregorianEpoch,
		LeapRule:    "final moon gains a day in Gregorian leap years",
		MonthNames:  iroquoisMonthNames,
	}
}

func iroquoisMonthDays(year, month int) int {
	if month < 13 {
		return 28
	}
	return daycount.GregorianYearDays(year) - 12*28
}

func (s iroquoisSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 13, func(m int) int {
		return iroquoisMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	start := daycount.FromGregorian(d.Year, 1, 1)
	return start + int64((d.Month-1)*28+d.Day-1), nil
}

func (s iroquoisSystem) FromDayCount(n int64) Date {
	y, _, _ := daycount.ToGregorian(n)
	offset := int(n - daycount.FromGregorian(y, 1, 1))
	month := offset/28 + 1
	if month > 13 {
		month = 13
	}
	return Date{Year: y, Month: month, Day: offset - (month-1)*28 + 1}
}

package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

var gregorianMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type gregorianSystem struct{}

// NewGregorian returns the proleptic Gregorian converter. Year 0 is 1 BCE
// (astronomical numbering); the 4/100/400 leap rule extends to all years.
func NewGregorian() System { return gregorianSystem{} }

func (gregorianSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:           Gregorian,
		Name:         "Gregorian",
		Kind:         KindSolar,
		Months:       12,
		MinYearDays:  365,
		MaxYearDays:  366,
		Epoch:        daycount.GregorianEpoch,
		LeapRule:     "every 4 years, except centuries not divisible by 400",
		MonthNames:   gregorianMonthNames,
		WeekdayNames: weekdayNames,
		Eras:         [2]string{"CE", "BCE"},
	}
}

func (gregorianSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 12, func(m int) int {
		return daycount.GregorianMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	return daycount.FromGregorian(d.Year, d.Month, d.Day), nil
}

func (gregorianSystem) FromDayCount(n int64) Date {
	y, m, day := daycount.ToGregorian(n)
	return Date{Year: y, Month: m, Day: day}
}

type julianSystem struct{}

// NewJulian returns the proleptic Julian converter: plain every-4-years
// leap rule, epoch-aligned with the Gregorian calendar at 1 CE January 1.
func NewJulian() System { return julianSystem{} }

func (julianSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:           Julian,
		Name:         "Julian",
		Kind:         KindSolar,
		Months:       12,
		MinYearDays:  365,
		MaxYearDays:  366,
		Epoch:        daycount.GregorianEpoch,
		LeapRule:     "every 4 years",
		MonthNames:   gregorianMonthNames,
		WeekdayNames: weekdayNames,
		Eras:         [2]string{"CE", "BCE"},
	}
}

func julianMonthDays(year, month int) int {
	if month == 2 {
		if daycount.IsJulianLeap(year) {
			return 29
		}
		return 28
	}
	return daycount.GregorianMonthDays(year, month)
}

func (julianSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 12, func(m int) int {
		return julianMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	return daycount.FromJulian(d.Year, d.Month, d.Day), nil
}

func (julianSystem) FromDayCount(n int64) Date {
	y, m, day := daycount.ToJulian(n)
	return Date{Year: y, Month: m, Day: day}
}

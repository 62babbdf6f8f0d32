package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// Cherokee month names with their traditional moon meanings, January first.
var cherokeeMonthNames = []string{
	"Unolvtani", // Cold Moon
	"Kagali",    // Bony Moon
	"Anvyi",     // Windy Moon
	"Kawoni",    // Flower Moon
	"Anisguti",  // Planting Moon
	"Dehaluyi",  // Green Corn Moon
	"Guyegwoni", // Ripe Corn Moon
	"Galoni",    // Fruit Moon
	"Duliidsdi", // Nut Moon
	"Duninudi",  // Harvest Moon
	"Nudadaequa", // Trading Moon
	"Vsgiyi",    // Snow Moon
}

type cherokeeSystem struct{}

// NewCherokee returns the Cherokee calendar converter: twelve named moons
// laid over the Gregorian solar year structure.
func NewCherokee() System { return cherokeeSystem{} }

func (cherokeeSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          Cherokee,
		Name:        "Cherokee",
		NativeName:  "ᏣᎳᎩ",
		Kind:        KindSolar,
		Months:      12,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       daycount.GregorianEpoch,
		LeapRule:    "Gregorian 4/100/400 rule",
		MonthNames:  cherokeeMonthNames,
	}
}

func (cherokeeSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 12, func(m int) int {
		return daycount.GregorianMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	return daycount.FromGregorian(d.Year, d.Month, d.Day), nil
}

func (cherokeeSystem) FromDayCount(n int64) Date {
	y, m, day := daycount.ToGregorian(n)
	return Date{Year: y, Month: m, Day: day}
}

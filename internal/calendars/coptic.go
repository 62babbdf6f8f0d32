package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// The Coptic and Ethiopian calendars share one structure: twelve 30-day
// months plus a short epagomenal thirteenth month of 5 days (6 in leap
// years), with a leap year every 4 years at cycle position 3. They differ
// only in epoch and month names, so one family implementation serves both.

// copticEpoch is the day number of Coptic 1-01-01 (29 August 284 CE Julian,
// the accession of Diocletian).
const copticEpoch int64 = 1825030

// ethiopianEpoch is the day number of Ethiopian 1-01-01 (29 August 8 CE
// Julian).
const ethiopianEpoch int64 = 1724221

var copticMonthNames = []string{
	"Thout", "Paopi", "Hathor", "Koiak", "Tobi", "Meshir",
	"Paremhat", "Parmouti", "Pashons", "Paoni", "Epip", "Mesori",
	"Pi Kogi Enavot",
}

var ethiopianMonthNames = []string{
	"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit",
	"Megabit", "Miyazya", "Ginbot", "Sene", "Hamle", "Nehase",
	"Pagume",
}

type copticFamily struct {
	desc Descriptor
}

// NewCoptic returns the Coptic calendar converter (Anno Martyrum era).
func NewCoptic() System {
	return &copticFamily{desc: Descriptor{
		ID:          Coptic,
		Name:        "Coptic",
		NativeName:  "Ⲡⲓⲕⲗⲁⲧⲟⲥ",
		Kind:        KindSolar,
		Months:      13,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       copticEpoch,
		LeapRule:    "every 4 years at cycle position 3",
		MonthNames:  copticMonthNames,
		Eras:        [2]string{"AM", ""},
	}}
}

// NewEthiopian returns the Ethiopian calendar converter (Incarnation era).
func NewEthiopian() System {
	return &copticFamily{desc: Descriptor{
		ID:          Ethiopian,
		Name:        "Ethiopian",
		NativeName:  "የኢትዮጵያ ዘመን አቆጣጠር",
		Kind:        KindSolar,
		Months:      13,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       ethiopianEpoch,
		LeapRule:    "every 4 years at cycle position 3",
		MonthNames:  ethiopianMonthNames,
		Eras:        [2]string{"EE", ""},
	}}
}

func (c *copticFamily) Descriptor() Descriptor { return c.desc }

func copticLeap(year int) bool {
	return daycount.FloorMod(int64(year), 4) == 3
}

func copticMonthDays(year, month int) int {
	if month < 13 {
		return 30
	}
	if copticLeap(year) {
		return 6
	}
	return 5
}

// copticYearStart is closed-form: every 4-year cycle is exactly 1461 days.
func (c *copticFamily) yearStart(year int) int64 {
	y := int64(year)
	return c.desc.Epoch + 365*(y-1) + daycount.FloorDiv(y, 4)
}

func (c *copticFamily) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 13, func(m int) int {
		return copticMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	return c.yearStart(d.Year) + int64(30*(d.Month-1)+d.Day-1), nil
}

func (c *copticFamily) FromDayCount(n int64) Date {
	year := int(daycount.FloorDiv(4*(n-c.desc.Epoch)+1463, 1461))
	offset := int(n - c.yearStart(year))
	month := offset/30 + 1
	return Date{Year: year, Month: month, Day: offset - 30*(month-1) + 1}
}

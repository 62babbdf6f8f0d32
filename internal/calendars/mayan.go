package calendars

import (
	"fmt"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

// MayanEpoch is the day number of the Long Count zero date 0.0.0.0.0
// (the GMT correlation constant, 11 August 3114 BCE proleptic Gregorian).
// The Tzolk'in, Haab', and Aztec converters count their cycles from the
// same historical epoch.
const MayanEpoch int64 = 584283

// The 20 Tzolk'in day names. In this engine's positional encoding they act
// as the month table: a Tzolk'in date is (cycle, name, number) mapped onto
// (year, month, day), with 20 "months" of 13 days covering each 260-day
// cycle. The year counts whole cycles since the epoch and may be negative.
var tzolkinNames = []string{
	"Imix", "Ik'", "Ak'b'al", "K'an", "Chikchan", "Kimi", "Manik'",
	"Lamat", "Muluk", "Ok", "Chuwen", "Eb'", "B'en", "Ix", "Men",
	"K'ib'", "Kab'an", "Etz'nab'", "Kawak", "Ajaw",
}

// The 18 Haab' months of 20 days plus the five unlucky days of Wayeb'.
var haabMonthNames = []string{
	"Pop", "Wo'", "Sip", "Sotz'", "Sek", "Xul", "Yaxk'in", "Mol",
	"Ch'en", "Yax", "Sak'", "Keh", "Mak", "K'ank'in", "Muwan", "Pax",
	"K'ayab", "Kumk'u", "Wayeb'",
}

// cyclicalSystem is the shared implementation of the pure cycle-count
// calendars: a fixed-length cycle with no leap adjustment, converted by
// modular arithmetic against the shared epoch. Cycle position splits into
// monthLen-day months.
type cyclicalSystem struct {
	desc      Descriptor
	cycleDays int
	monthLen  int
	lastLen   int // length of the final month (Wayeb'/Nemontemi)
}

func (c *cyclicalSystem) Descriptor() Descriptor { return c.desc }

func (c *cyclicalSystem) monthDays(m int) int {
	if m == c.desc.Months {
		return c.lastLen
	}
	return c.monthLen
}

func (c *cyclicalSystem) ToDayCount(d Date) (int64, error) {
	if err := validateMonthDay(d, c.desc.Months, c.monthDays); err != nil {
		return 0, err
	}
	pos := (d.Month-1)*c.monthLen + d.Day - 1
	return MayanEpoch + int64(d.Year)*int64(c.cycleDays) + int64(pos), nil
}

func (c *cyclicalSystem) FromDayCount(n int64) Date {
	rel := n - MayanEpoch
	cycle := daycount.FloorDiv(rel, int64(c.cycleDays))
	pos := int(daycount.FloorMod(rel, int64(c.cycleDays)))
	return Date{
		Year:  int(cycle),
		Month: pos/c.monthLen + 1,
		Day:   pos%c.monthLen + 1,
	}
}

// NewMayanTzolkin returns the 260-day Tzolk'in cycle converter.
func NewMayanTzolkin() System {
	return &cyclicalSystem{
		desc: Descriptor{
			ID:          MayanTzolkin,
			Name:        "Mayan Tzolk'in",
			Kind:        KindCyclical,
			Months:      20,
			MinYearDays: 260,
			MaxYearDays: 260,
			Epoch:       MayanEpoch,
			MonthNames:  tzolkinNames,
		},
		cycleDays: 260,
		monthLen:  13,
		lastLen:   13,
	}
}

// NewMayanHaab returns the 365-day Haab' cycle converter.
func NewMayanHaab() System {
	return &cyclicalSystem{
		desc: Descriptor{
			ID:          MayanHaab,
			Name:        "Mayan Haab'",
			Kind:        KindCyclical,
			Months:      19,
			MinYearDays: 365,
			MaxYearDays: 365,
			Epoch:       MayanEpoch,
			MonthNames:  haabMonthNames,
		},
		cycleDays: 365,
		monthLen:  20,
		lastLen:   5,
	}
}

// longCountSystem is the linear positional calendar: a base-20/base-18
// mixed-radix count of days since the Mayan epoch. The five components
// baktun.katun.tun.uinal.kin fold into the shared 3-field tuple as
// (total tun count, uinal+1, kin+1).
type longCountSystem struct{}

// NewMayanLongCount returns the Long Count converter.
func NewMayanLongCount() System { return longCountSystem{} }

func (longCountSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          MayanLongCount,
		Name:        "Mayan Long Count",
		Kind:        KindPositional,
		Months:      18,
		MinYearDays: 360,
		MaxYearDays: 360,
		Epoch:       MayanEpoch,
	}
}

func (longCountSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 18, func(int) int { return 20 })
	if err != nil {
		return 0, err
	}
	return MayanEpoch + int64(d.Year)*360 + int64((d.Month-1)*20+d.Day-1), nil
}

func (longCountSystem) FromDayCount(n int64) Date {
	rel := n - MayanEpoch
	tun := daycount.FloorDiv(rel, 360)
	pos := int(daycount.FloorMod(rel, 360))
	return Date{Year: int(tun), Month: pos/20 + 1, Day: pos%20 + 1}
}

// LongCountString renders a day number in dotted baktun.katun.tun.uinal.kin
// notation.
func LongCountString(n int64) string {
	rel := n - MayanEpoch
	kin := daycount.FloorMod(rel, 20)
	rel = daycount.FloorDiv(rel, 20)
	uinal := daycount.FloorMod(rel, 18)
	rel = daycount.FloorDiv(rel, 18)
	tun := daycount.FloorMod(rel, 20)
	rel = daycount.FloorDiv(rel, 20)
	katun := daycount.FloorMod(rel, 20)
	baktun := daycount.FloorDiv(rel, 20)
	return fmt.Sprintf("%d.%d.%d.%d.%d", baktun, katun, tun, uinal, kin)
}

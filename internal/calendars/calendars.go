// Package calendars implements the seventeen calendar converters of the
// conversion engine, the shared converter contract they satisfy, the
// registry that dispatches between them, and the token-based formatter.
//
// Every converter maps its own (year, month, day) tuples to and from the
// continuous day number of internal/daycount. The day number is the only
// value that crosses a calendar boundary; no calendar-specific state
// survives a conversion.
package calendars

import (
	"errors"
	"fmt"
)

// ID identifies a calendar system. The set is a fixed enumeration; adding a
// calendar means adding a tag here and a System implementation, nothing else.
type ID string

const (
	Gregorian         ID = "gregorian"
	Julian            ID = "julian"
	Islamic           ID = "islamic"
	Hebrew            ID = "hebrew"
	Persian           ID = "persian"
	Chinese           ID = "chinese"
	Ethiopian         ID = "ethiopian"
	Coptic            ID = "coptic"
	IndianSaka        ID = "indian-saka"
	Bahai             ID = "bahai"
	ThaiBuddhist      ID = "thai-buddhist"
	MayanTzolkin      ID = "mayan-tzolkin"
	MayanHaab         ID = "mayan-haab"
	MayanLongCount    ID = "mayan-longcount"
	Cherokee          ID = "cherokee"
	Iroquois          ID = "iroquois"
	AztecXiuhpohualli ID = "aztec-xiuhpohualli"
)

// Kind classifies a calendar by how it tracks the year.
type Kind string

const (
	KindSolar      Kind = "solar"
	KindLunar      Kind = "lunar"
	KindLunisolar  Kind = "lunisolar"
	KindCyclical   Kind = "cyclical"
	KindPositional Kind = "positional"
)

// Sentinel errors. Converters wrap ErrInvalidDate with the offending
// component; the registry wraps ErrUnknownCalendar with the unknown tag.
var (
	ErrInvalidDate     = errors.New("invalid date component")
	ErrUnknownCalendar = errors.New("unknown calendar")
)

// invalidDatef builds a validation error that matches errors.Is(err,
// ErrInvalidDate).
func invalidDatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDate, fmt.Sprintf(format, args...))
}

// Date is a calendar date tuple. Year conventions differ deliberately per
// calendar (several count year zero, the cyclical calendars count cycles)
// and are preserved exactly as each converter defines them. LeapMonth marks
// an intercalary month and is meaningful only for the Chinese calendar.
type Date struct {
	Calendar  ID     `json:"calendar"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Era       string `json:"era,omitempty"`
	LeapMonth bool   `json:"leap_month,omitempty"`
}

func (d Date) String() string {
	leap := ""
	if d.LeapMonth {
		leap = "L"
	}
	return fmt.Sprintf("%s %d-%02d%s-%02d", d.Calendar, d.Year, d.Month, leap, d.Day)
}

// Descriptor is the static, read-only metadata of one calendar system.
// One instance per ID, never mutated.
type Descriptor struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	NativeName string `json:"native_name,omitempty"`
	Kind       Kind   `json:"kind"`

	// Months is the maximum month count of a year (13 for lunisolar leap
	// years, 19 terms-of-art aside).
	Months int `json:"months"`

	// MinYearDays and MaxYearDays bound the length of a year.
	MinYearDays int `json:"min_year_days"`
	MaxYearDays int `json:"max_year_days"`

	// Epoch is the day number of year 1, month 1, day 1 (or of cycle
	// position zero for the cyclical calendars).
	Epoch int64 `json:"epoch"`

	// LeapRule is a human-readable description of the leap rule.
	LeapRule string `json:"leap_rule,omitempty"`

	// MonthNames lists month display names; empty for calendars whose
	// months are purely numeric (the formatter falls back to numbers).
	MonthNames []string `json:"month_names,omitempty"`

	// WeekdayNames lists weekday names for calendars that observe the
	// seven-day week; empty otherwise.
	WeekdayNames []string `json:"weekday_names,omitempty"`

	// Eras holds the era labels for year >= 1 and year <= 0. Calendars
	// with a single open-ended era leave the second entry empty.
	Eras [2]string `json:"eras,omitempty"`

	// LeapMonthPrefix is prepended to the month name of an intercalary
	// month ("闰" for the Chinese calendar).
	LeapMonthPrefix string `json:"-"`
}

// era returns the era label for a year under this descriptor.
func (desc Descriptor) era(year int) string {
	if year <= 0 && desc.Eras[1] != "" {
		return desc.Eras[1]
	}
	return desc.Eras[0]
}

// System is the per-calendar converter contract. ToDayCount validates its
// input and fails on out-of-range components; FromDayCount is a total
// function over all day numbers in the calendar's supported range.
type System interface {
	Descriptor() Descriptor
	ToDayCount(d Date) (int64, error)
	FromDayCount(n int64) Date
}

// Calendar wraps a System with the formatting and parsing operations shared
// by all converters. Instances are stateless (beyond converter-owned
// caches) and safe for concurrent use.
type Calendar struct {
	sys  System
	desc Descriptor
}

func newCalendar(sys System) *Calendar {
	return &Calendar{sys: sys, desc: sys.Descriptor()}
}

// ID returns the calendar's identifier tag.
func (c *Calendar) ID() ID { return c.desc.ID }

// Descriptor returns the calendar's static metadata.
func (c *Calendar) Descriptor() Descriptor { return c.desc }

// ToDayCount converts a date in this calendar to its day number. Returns an
// error wrapping ErrInvalidDate when a component is out of range.
func (c *Calendar) ToDayCount(d Date) (int64, error) {
	return c.sys.ToDayCount(d)
}

// FromDayCount converts a day number to a date in this calendar.
func (c *Calendar) FromDayCount(n int64) Date {
	d := c.sys.FromDayCount(n)
	d.Calendar = c.desc.ID
	if d.Era == "" {
		d.Era = c.desc.era(d.Year)
	}
	return d
}

// Format renders a date against a token layout using this calendar's month
// name table. See FormatDate for the token set.
func (c *Calendar) Format(d Date, layout string) string {
	return FormatDate(c.desc, d, layout)
}

// Parse reads a canonical (-)YYYY-MM-DD string (an optional L after the
// month marks a leap month) and validates it through this converter.
// Returns nil on shape mismatch or invalid components — parsing is used
// speculatively by callers probing several calendars, so malformed input is
// not an error.
func (c *Calendar) Parse(s string) *Date {
	d, ok := parseISO(s)
	if !ok {
		return nil
	}
	d.Calendar = c.desc.ID
	if _, err := c.sys.ToDayCount(d); err != nil {
		return nil
	}
	d.Era = c.desc.era(d.Year)
	return &d
}

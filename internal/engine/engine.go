// Package engine is the top-level conversion facade. It owns the calendar
// registry, bridges between calendar dates and Go time, and exposes the
// astronomical almanac queries (solar events, solar terms, moon phases)
// behind one API. Handlers depend on this package, never on the individual
// converters.
package engine

import (
	"fmt"
	"time"

	"github.com/keyxmakerx/almanac/internal/astro"
	"github.com/keyxmakerx/almanac/internal/calendars"
	"github.com/keyxmakerx/almanac/internal/daycount"
)

// Engine wraps the calendar registry with time bridging and almanac
// queries. Safe for concurrent use.
type Engine struct {
	registry *calendars.Registry
	cache    calendars.YearCache
	clock    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithChineseCache backs the Chinese converter's derived year tables with
// the given cache (a Redis-backed cache in multi-instance deployments).
func WithChineseCache(cache calendars.YearCache) Option {
	return func(e *Engine) { e.cache = cache }
}

// WithClock overrides the wall clock. Tests use this to pin "today".
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// New creates an Engine with all built-in calendar systems registered.
func New(opts ...Option) *Engine {
	e := &Engine{clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = calendars.NewMemoryYearCache()
	}
	e.registry = calendars.NewRegistry(calendars.DefaultSystems(e.cache)...)
	return e
}

// Calendar looks up one calendar by tag. Fails with ErrUnknownCalendar for
// an unregistered tag.
func (e *Engine) Calendar(id calendars.ID) (*calendars.Calendar, error) {
	cal := e.registry.Get(id)
	if cal == nil {
		return nil, fmt.Errorf("%w: %q", calendars.ErrUnknownCalendar, id)
	}
	return cal, nil
}

// IDs returns the registered calendar tags in registration order.
func (e *Engine) IDs() []calendars.ID {
	return e.registry.IDs()
}

// Descriptors returns the static metadata of every registered calendar.
func (e *Engine) Descriptors() []calendars.Descriptor {
	return e.registry.Descriptors()
}

// Convert re-expresses a date in another calendar. The source date is
// validated by its own converter first.
func (e *Engine) Convert(d calendars.Date, to calendars.ID) (calendars.Date, error) {
	return e.registry.Convert(d, to)
}

// ToDayCount converts a date to its continuous day number.
func (e *Engine) ToDayCount(d calendars.Date) (int64, error) {
	cal, err := e.Calendar(d.Calendar)
	if err != nil {
		return 0, err
	}
	return cal.ToDayCount(d)
}

// FromDayCount expresses a day number as a date in the given calendar.
func (e *Engine) FromDayCount(n int64, id calendars.ID) (calendars.Date, error) {
	cal, err := e.Calendar(id)
	if err != nil {
		return calendars.Date{}, err
	}
	return cal.FromDayCount(n), nil
}

// dayOf maps a wall-clock instant to its UTC civil day number.
func dayOf(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return daycount.FromGregorian(y, int(m), d)
}

// FromTime expresses a wall-clock instant (taken as a UTC civil day) as a
// date in the given calendar.
func (e *Engine) FromTime(t time.Time, id calendars.ID) (calendars.Date, error) {
	return e.FromDayCount(dayOf(t), id)
}

// ToTime converts a date to midnight UTC of its civil day.
func (e *Engine) ToTime(d calendars.Date) (time.Time, error) {
	n, err := e.ToDayCount(d)
	if err != nil {
		return time.Time{}, err
	}
	y, m, day := daycount.ToGregorian(n)
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC), nil
}

// Today returns the current date in the given calendar.
func (e *Engine) Today(id calendars.ID) (calendars.Date, error) {
	return e.FromTime(e.clock(), id)
}

// Format renders a date against a token layout using its calendar's name
// tables.
func (e *Engine) Format(d calendars.Date, layout string) (string, error) {
	cal, err := e.Calendar(d.Calendar)
	if err != nil {
		return "", err
	}
	return cal.Format(d, layout), nil
}

// Parse reads a canonical date string as a date in the given calendar.
// Returns nil when the string does not parse or does not validate.
func (e *Engine) Parse(s string, id calendars.ID) (*calendars.Date, error) {
	cal, err := e.Calendar(id)
	if err != nil {
		return nil, err
	}
	return cal.Parse(s), nil
}

// Weekday returns the weekday index (0 = Sunday) of a date's civil day.
func (e *Engine) Weekday(d calendars.Date) (int, error) {
	n, err := e.ToDayCount(d)
	if err != nil {
		return 0, err
	}
	return daycount.Weekday(n), nil
}

// SolarEvents returns the equinoxes and solstices of a Gregorian year.
func (e *Engine) SolarEvents(year int) []astro.Event {
	return astro.SolarEvents(year)
}

// SolarTerms returns the 24 solar-term boundaries of a Gregorian year.
func (e *Engine) SolarTerms(year int) []astro.Event {
	return astro.SolarTermEvents(year)
}

// MoonPhases returns the principal moon phases of a Gregorian year.
func (e *Engine) MoonPhases(year int) []astro.Event {
	return astro.MoonPhaseEvents(year)
}

// MoonStatus describes the moon at one instant.
type MoonStatus struct {
	Phase        astro.Phase `json:"-"`
	PhaseName    string      `json:"phase"`
	Illumination float64     `json:"illumination"`

	// Age is days since the preceding new moon.
	Age float64 `json:"age"`
}

// Moon reports the moon's phase, illuminated fraction, and age on the
// civil day of an instant.
func (e *Engine) Moon(t time.Time) MoonStatus {
	day := dayOf(t)
	phase := astro.MoonPhase(day)
	return MoonStatus{
		Phase:        phase,
		PhaseName:    phase.String(),
		Illumination: astro.Illumination(day),
		Age:          float64(day) - astro.PrevNewMoon(float64(day)),
	}
}

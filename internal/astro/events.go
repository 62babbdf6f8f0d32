package astro

import (
	"sort"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

// EventType classifies an astronomical event.
type EventType string

const (
	EventSolsticeEquinox EventType = "solstice-equinox"
	EventMoonPhase       EventType = "moon-phase"
	EventSolarTerm       EventType = "solar-term"
)

// Event is an astronomical occurrence located on a whole day. Events are
// produced on demand by the range queries below and never persisted.
type Event struct {
	Type EventType `json:"type"`
	Name string    `json:"name"`
	Day  int64     `json:"day"`

	// Gregorian date of Day, for display.
	Year  int `json:"year"`
	Month int `json:"month"`
	Date  int `json:"date"`
}

func newEvent(t EventType, name string, day int64) Event {
	y, m, d := daycount.ToGregorian(day)
	return Event{Type: t, Name: name, Day: day, Year: y, Month: m, Date: d}
}

// SolarEvents returns the two equinoxes and two solstices of a Gregorian
// year in chronological order.
func SolarEvents(year int) []Event {
	return []Event{
		newEvent(EventSolsticeEquinox, "Vernal Equinox", VernalEquinox(year)),
		newEvent(EventSolsticeEquinox, "Summer Solstice", SummerSolstice(year)),
		newEvent(EventSolsticeEquinox, "Autumnal Equinox", AutumnalEquinox(year)),
		newEvent(EventSolsticeEquinox, "Winter Solstice", WinterSolstice(year)),
	}
}

// SolarTermEvents returns the 24 solar-term boundaries of the term-year
// anchored at a Gregorian year (terms 22 and 23 fall in the following
// January).
func SolarTermEvents(year int) []Event {
	events := make([]Event, 0, 24)
	for term := 0; term < 24; term++ {
		events = append(events, newEvent(EventSolarTerm, TermNames[term], SolarTermDay(year, term)))
	}
	return events
}

// MoonPhaseEvents returns the four principal phases of every lunation that
// touches a Gregorian year, in chronological order. Quarter and full moments
// are solved per lunation from seeds a quarter synodic month apart.
func MoonPhaseEvents(year int) []Event {
	start := daycount.FromGregorian(year, 1, 1)
	end := daycount.FromGregorian(year+1, 1, 1)

	events := make([]Event, 0, 52)
	add := func(name string, jd float64) {
		day := DayOf(jd)
		if day >= start && day < end {
			events = append(events, newEvent(EventMoonPhase, name, day))
		}
	}

	// Walk new moons from just before the year until past its end.
	nm := NewMoonNear(float64(start) - SynodicMonth/2)
	for i := 0; i < 16 && DayOf(nm) < end; i++ {
		add("New Moon", nm)
		add("First Quarter", FirstQuarterNear(nm+SynodicMonth/4))
		add("Full Moon", FullMoonNear(nm+SynodicMonth/2))
		add("Last Quarter", LastQuarterNear(nm+3*SynodicMonth/4))
		nm = NextNewMoon(nm + 2)
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Day < events[j].Day })
	return events
}

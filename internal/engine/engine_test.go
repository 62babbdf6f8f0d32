package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/keyxmakerx/almanac/internal/calendars"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
}

func TestEngine_CalendarLookup(t *testing.T) {
	e := New()
	if _, err := e.Calendar(calendars.Gregorian); err != nil {
		t.Fatalf("gregorian lookup failed: %v", err)
	}
	_, err := e.Calendar("klingon")
	if !errors.Is(err, calendars.ErrUnknownCalendar) {
		t.Errorf("got %v, want ErrUnknownCalendar", err)
	}
	if len(e.IDs()) != 17 {
		t.Errorf("engine registers %d calendars, want 17", len(e.IDs()))
	}
}

func TestEngine_ConvertMatchesRegistry(t *testing.T) {
	e := New()
	got, err := e.Convert(calendars.Date{
		Calendar: calendars.Gregorian, Year: 2024, Month: 3, Day: 20,
	}, calendars.Persian)
	if err != nil {
		t.Fatal(err)
	}
	if got.Year != 1403 || got.Month != 1 || got.Day != 1 {
		t.Errorf("got %+v, want Persian 1403-1-1", got)
	}
}

func TestEngine_TimeBridge(t *testing.T) {
	e := New()

	// An afternoon instant maps to its UTC civil day.
	at := time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC)
	d, err := e.FromTime(at, calendars.Gregorian)
	if err != nil {
		t.Fatal(err)
	}
	if d.Year != 2024 || d.Month != 2 || d.Day != 10 {
		t.Errorf("FromTime gave %+v", d)
	}

	back, err := e.ToTime(d)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	if !back.Equal(want) {
		t.Errorf("ToTime gave %v, want %v", back, want)
	}
}

func TestEngine_TimeBridge_NonUTCZone(t *testing.T) {
	e := New()

	// 23:00 in UTC+10 is 13:00 UTC the same day; the civil day is taken
	// in UTC.
	zone := time.FixedZone("UTC+10", 10*3600)
	at := time.Date(2024, 2, 11, 23, 0, 0, 0, zone)
	d, err := e.FromTime(at, calendars.Gregorian)
	if err != nil {
		t.Fatal(err)
	}
	if d.Day != 11 {
		t.Errorf("FromTime gave day %d, want 11", d.Day)
	}
}

func TestEngine_Today(t *testing.T) {
	e := New(WithClock(fixedClock(2024, time.February, 10)))

	d, err := e.Today(calendars.Chinese)
	if err != nil {
		t.Fatal(err)
	}
	if d.Year != 2024 || d.Month != 1 || d.Day != 1 {
		t.Errorf("today = %+v, want Chinese new year", d)
	}
}

func TestEngine_FormatAndParse(t *testing.T) {
	e := New()
	d := calendars.Date{Calendar: calendars.Gregorian, Year: 2024, Month: 2, Day: 10}

	s, err := e.Format(d, "D MMMM YYYY")
	if err != nil {
		t.Fatal(err)
	}
	if s != "10 February 2024" {
		t.Errorf("formatted %q", s)
	}

	parsed, err := e.Parse("2024-02-10", calendars.Gregorian)
	if err != nil {
		t.Fatal(err)
	}
	if parsed == nil || parsed.Day != 10 {
		t.Errorf("parsed %+v", parsed)
	}

	parsed, err = e.Parse("not a date", calendars.Gregorian)
	if err != nil {
		t.Fatal(err)
	}
	if parsed != nil {
		t.Errorf("malformed input parsed to %+v", parsed)
	}
}

func TestEngine_Weekday(t *testing.T) {
	e := New()
	wd, err := e.Weekday(calendars.Date{
		Calendar: calendars.Gregorian, Year: 2024, Month: 2, Day: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if wd != 6 { // Saturday
		t.Errorf("weekday = %d, want 6", wd)
	}
}

func TestEngine_Moon(t *testing.T) {
	e := New()

	status := e.Moon(time.Date(2024, 2, 24, 12, 0, 0, 0, time.UTC))
	if status.PhaseName != "Full Moon" {
		t.Errorf("phase = %q, want Full Moon", status.PhaseName)
	}
	if status.Illumination < 90 {
		t.Errorf("illumination = %f, want near 100", status.Illumination)
	}
	if status.Age < 13 || status.Age > 17 {
		t.Errorf("age = %f, want mid-lunation", status.Age)
	}
}

func TestEngine_AlmanacPassthrough(t *testing.T) {
	e := New()
	if got := len(e.SolarEvents(2024)); got != 4 {
		t.Errorf("solar events: %d, want 4", got)
	}
	if got := len(e.SolarTerms(2024)); got != 24 {
		t.Errorf("solar terms: %d, want 24", got)
	}
	if got := len(e.MoonPhases(2024)); got < 45 {
		t.Errorf("moon phases: %d, want ~49", got)
	}
}

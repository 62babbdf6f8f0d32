package calendars

import (
	"errors"
	"testing"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(DefaultSystems(NewMemoryYearCache())...)
}

func TestRegistry_AllCalendarsRegistered(t *testing.T) {
	r := testRegistry(t)
	ids := r.IDs()
	if len(ids) != 17 {
		t.Fatalf("registry holds %d calendars, want 17", len(ids))
	}
	for _, id := range ids {
		if r.Get(id) == nil {
			t.Errorf("Get(%q) returned nil", id)
		}
		desc := r.Get(id).Descriptor()
		if desc.ID != id {
			t.Errorf("descriptor ID %q does not match registration %q", desc.ID, id)
		}
		if desc.Name == "" || desc.Kind == "" {
			t.Errorf("calendar %q has incomplete descriptor", id)
		}
	}
}

func TestRegistry_UnknownCalendar(t *testing.T) {
	r := testRegistry(t)
	_, err := r.Convert(Date{Calendar: "klingon", Year: 1, Month: 1, Day: 1}, Gregorian)
	if !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("got %v, want ErrUnknownCalendar", err)
	}
	_, err = r.Convert(Date{Calendar: Gregorian, Year: 2024, Month: 1, Day: 1}, "klingon")
	if !errors.Is(err, ErrUnknownCalendar) {
		t.Errorf("got %v, want ErrUnknownCalendar", err)
	}
}

// Every converter must round-trip day numbers exactly: FromDayCount then
// ToDayCount is the identity over the supported range.
func TestAllCalendars_DayCountRoundTrip(t *testing.T) {
	r := testRegistry(t)

	// A spread of day numbers from late antiquity to the far future. The
	// astronomical Chinese converter is exercised separately over a
	// narrower modern window.
	samples := []int64{
		1948440, // 622 CE
		2299161, // 1582 CE, Gregorian reform date
		2440588, // 1970 CE
		2451545, // 2000 CE
		2460311, // 2024 CE
		2470000, // 2050 CE
	}

	for _, id := range r.IDs() {
		if id == Chinese {
			continue
		}
		cal := r.Get(id)
		for _, n := range samples {
			d := cal.FromDayCount(n)
			back, err := cal.ToDayCount(d)
			if err != nil {
				t.Errorf("%s: ToDayCount(%+v) failed: %v", id, d, err)
				continue
			}
			if back != n {
				t.Errorf("%s: day %d -> %+v -> %d", id, n, d, back)
			}
		}
	}
}

// The round trip must also hold deep in the proleptic range, including
// year zero and negative Gregorian years.
func TestAllCalendars_ProlepticRoundTrip(t *testing.T) {
	r := testRegistry(t)

	years := []int{-100, 0, 1, 100, 1000, 2024}

	for _, id := range r.IDs() {
		if id == Chinese {
			continue
		}
		cal := r.Get(id)
		for _, year := range years {
			n := daycount.FromGregorian(year, 6, 15)
			d := cal.FromDayCount(n)
			back, err := cal.ToDayCount(d)
			if err != nil {
				t.Errorf("%s: ToDayCount(%+v) for Gregorian year %d failed: %v", id, d, year, err)
				continue
			}
			if back != n {
				t.Errorf("%s: Gregorian year %d, day %d -> %+v -> %d", id, year, n, d, back)
			}
		}
	}
}

func TestAllCalendars_Monotonic(t *testing.T) {
	r := testRegistry(t)
	start := daycount.FromGregorian(2023, 1, 1)

	for _, id := range r.IDs() {
		cal := r.Get(id)
		prev := int64(0)
		for n := start; n < start+800; n++ {
			d := cal.FromDayCount(n)
			back, err := cal.ToDayCount(d)
			if err != nil {
				t.Fatalf("%s: day %d invalid: %v", id, n, err)
			}
			if back != n {
				t.Fatalf("%s: day %d round-tripped to %d (%+v)", id, n, back, d)
			}
			if n > start && back != prev+1 {
				t.Fatalf("%s: day sequence broken at %d", id, n)
			}
			prev = back
		}
	}
}

func TestConvert_EpochAlignment(t *testing.T) {
	r := testRegistry(t)

	// Gregorian and Julian are epoch-aligned: both place 1 CE January 1 on
	// the same day number.
	got, err := r.Convert(Date{Calendar: Gregorian, Year: 1, Month: 1, Day: 1}, Julian)
	if err != nil {
		t.Fatal(err)
	}
	if got.Year != 1 || got.Month != 1 || got.Day != 1 {
		t.Errorf("Gregorian 1-1-1 -> Julian %+v, want 1-1-1", got)
	}
}

func TestConvert_ReferenceDates(t *testing.T) {
	r := testRegistry(t)

	cases := []struct {
		name string
		from Date
		to   ID
		want Date
	}{
		{
			name: "islamic tabular new year 1400",
			from: Date{Calendar: Gregorian, Year: 1979, Month: 11, Day: 21},
			to:   Islamic,
			want: Date{Year: 1400, Month: 1, Day: 1},
		},
		{
			name: "persian nowruz 1403",
			from: Date{Calendar: Gregorian, Year: 2024, Month: 3, Day: 20},
			to:   Persian,
			want: Date{Year: 1403, Month: 1, Day: 1},
		},
		{
			name: "hebrew rosh hashanah 5784",
			from: Date{Calendar: Gregorian, Year: 2023, Month: 9, Day: 16},
			to:   Hebrew,
			want: Date{Year: 5784, Month: 1, Day: 1},
		},
		{
			name: "hebrew pesach 5784",
			from: Date{Calendar: Gregorian, Year: 2024, Month: 4, Day: 23},
			to:   Hebrew,
			want: Date{Year: 5784, Month: 8, Day: 15}, // 15 Nisan, leap-year numbering
		},
		{
			name: "ethiopian new year 2016",
			from: Date{Calendar: Gregorian, Year: 2023, Month: 9, Day: 12},
			to:   Ethiopian,
			want: Date{Year: 2016, Month: 1, Day: 1},
		},
		{
			name: "coptic new year 1740",
			from: Date{Calendar: Gregorian, Year: 2023, Month: 9, Day: 12},
			to:   Coptic,
			want: Date{Year: 1740, Month: 1, Day: 1},
		},
		{
			name: "thai buddhist era offset",
			from: Date{Calendar: Gregorian, Year: 2024, Month: 1, Day: 1},
			to:   ThaiBuddhist,
			want: Date{Year: 2567, Month: 1, Day: 1},
		},
		{
			name: "saka new year in a leap year",
			from: Date{Calendar: Gregorian, Year: 2024, Month: 3, Day: 21},
			to:   IndianSaka,
			want: Date{Year: 1946, Month: 1, Day: 1},
		},
		{
			name: "bahai naw-ruz 181",
			from: Date{Calendar: Gregorian, Year: 2024, Month: 3, Day: 21},
			to:   Bahai,
			want: Date{Year: 181, Month: 1, Day: 1},
		},
		{
			name: "long count baktun 13",
			from: Date{Calendar: Gregorian, Year: 2012, Month: 12, Day: 21},
			to:   MayanLongCount,
			want: Date{Year: 5200, Month: 1, Day: 1},
		},
	}

	for _, c := range cases {
		got, err := r.Convert(c.from, c.to)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if got.Year != c.want.Year || got.Month != c.want.Month || got.Day != c.want.Day {
			t.Errorf("%s: got %d-%d-%d, want %d-%d-%d", c.name,
				got.Year, got.Month, got.Day, c.want.Year, c.want.Month, c.want.Day)
		}
	}
}

func TestValidation_RejectsOutOfRange(t *testing.T) {
	r := testRegistry(t)

	cases := []Date{
		{Calendar: Gregorian, Year: 2023, Month: 2, Day: 29},
		{Calendar: Gregorian, Year: 2024, Month: 13, Day: 1},
		{Calendar: Gregorian, Year: 2024, Month: 0, Day: 1},
		{Calendar: Gregorian, Year: 2024, Month: 1, Day: 0},
		{Calendar: Islamic, Year: 1445, Month: 2, Day: 30},
		{Calendar: Hebrew, Year: 5783, Month: 13, Day: 1}, // common year has 12 months
		{Calendar: MayanTzolkin, Year: 0, Month: 1, Day: 14},
		{Calendar: MayanHaab, Year: 0, Month: 19, Day: 6}, // Wayeb' has 5 days
		{Calendar: MayanLongCount, Year: 0, Month: 19, Day: 1},
		{Calendar: AztecXiuhpohualli, Year: 0, Month: 19, Day: 6},
	}

	for _, d := range cases {
		cal := r.Get(d.Calendar)
		if _, err := cal.ToDayCount(d); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%s %d-%d-%d: got %v, want ErrInvalidDate",
				d.Calendar, d.Year, d.Month, d.Day, err)
		}
	}
}

func TestCyclical_NegativeCycles(t *testing.T) {
	r := testRegistry(t)
	cal := r.Get(MayanTzolkin)

	// One day before the epoch is the last day of cycle -1.
	d := cal.FromDayCount(MayanEpoch - 1)
	if d.Year != -1 || d.Month != 20 || d.Day != 13 {
		t.Errorf("day before epoch = %+v, want cycle -1, month 20, day 13", d)
	}
	n, err := cal.ToDayCount(d)
	if err != nil || n != MayanEpoch-1 {
		t.Errorf("round trip gave %d (%v), want %d", n, err, MayanEpoch-1)
	}
}

func TestLongCountString_Anchors(t *testing.T) {
	if got := LongCountString(MayanEpoch); got != "0.0.0.0.0" {
		t.Errorf("LongCountString(epoch) = %q", got)
	}
	if got := LongCountString(daycount.FromGregorian(2012, 12, 21)); got != "13.0.0.0.0" {
		t.Errorf("LongCountString(2012-12-21) = %q", got)
	}
}

func TestHebrew_YearLengths(t *testing.T) {
	h := NewHebrew().(*hebrewSystem)

	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 5700; year < 5800; year++ {
		length := h.yearLength(year)
		if !valid[length] {
			t.Errorf("year %d has illegal length %d", year, length)
		}
		if hebrewLeapYear(year) != (length > 360) {
			t.Errorf("year %d: leap flag disagrees with length %d", year, length)
		}
	}
}

func TestHebrew_MetonicCycle(t *testing.T) {
	// Cycle positions 3, 6, 8, 11, 14, 17, 19 are leap. 5784 mod 19 = 8.
	if !hebrewLeapYear(5784) {
		t.Error("5784 must be leap")
	}
	if hebrewLeapYear(5783) {
		t.Error("5783 must be common")
	}
	count := 0
	for y := 5777; y < 5777+19; y++ {
		if hebrewLeapYear(y) {
			count++
		}
	}
	if count != 7 {
		t.Errorf("19-year cycle holds %d leap years, want 7", count)
	}
}

func TestEra_Labels(t *testing.T) {
	r := testRegistry(t)

	d := r.Get(Gregorian).FromDayCount(daycount.FromGregorian(2024, 1, 1))
	if d.Era != "CE" {
		t.Errorf("era for 2024 = %q, want CE", d.Era)
	}
	d = r.Get(Gregorian).FromDayCount(daycount.FromGregorian(0, 1, 1))
	if d.Era != "BCE" {
		t.Errorf("era for year 0 = %q, want BCE", d.Era)
	}
	d = r.Get(Hebrew).FromDayCount(daycount.FromGregorian(2024, 1, 1))
	if d.Era != "AM" {
		t.Errorf("hebrew era = %q, want AM", d.Era)
	}
}

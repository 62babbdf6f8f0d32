package calendars

import (
	"errors"
	"testing"

	"github.com/keyxmakerx/almanac/internal/daycount"
)

func newTestChinese() *chineseSystem {
	return NewChinese(NewMemoryYearCache()).(*chineseSystem)
}

func TestChinese_NewYear2024(t *testing.T) {
	c := newTestChinese()

	// Chinese New Year 2024 fell on February 10.
	d := c.FromDayCount(daycount.FromGregorian(2024, 2, 10))
	if d.Year != 2024 || d.Month != 1 || d.Day != 1 || d.LeapMonth {
		t.Errorf("2024-02-10 = %+v, want year 2024 month 1 day 1", d)
	}
	if d.Era != "甲辰" {
		t.Errorf("era = %q, want 甲辰", d.Era)
	}

	// The day before belongs to the previous year.
	d = c.FromDayCount(daycount.FromGregorian(2024, 2, 9))
	if d.Year != 2023 {
		t.Errorf("2024-02-09 falls in year %d, want 2023", d.Year)
	}
}

func TestChinese_LeapSecondMonth2023(t *testing.T) {
	c := newTestChinese()

	// 2023 intercalated a leap second month beginning March 22.
	d := c.FromDayCount(daycount.FromGregorian(2023, 3, 22))
	if d.Year != 2023 || d.Month != 2 || !d.LeapMonth || d.Day != 1 {
		t.Errorf("2023-03-22 = %+v, want leap month 2 day 1", d)
	}

	rec := c.yearRecord(2023)
	if !rec.LeapYear {
		t.Fatal("2023 must be a leap year")
	}
	if len(rec.Months) != 13 {
		t.Fatalf("2023 has %d months, want 13", len(rec.Months))
	}

	leaps := 0
	for _, m := range rec.Months {
		if m.Leap {
			leaps++
			if m.Ordinal != 2 {
				t.Errorf("leap month has ordinal %d, want 2", m.Ordinal)
			}
		}
	}
	if leaps != 1 {
		t.Errorf("2023 holds %d leap months, want 1", leaps)
	}
}

func TestChinese_CommonYear2024(t *testing.T) {
	c := newTestChinese()
	rec := c.yearRecord(2024)
	if rec.LeapYear {
		t.Error("2024 must be a common year")
	}
	if len(rec.Months) != 12 {
		t.Errorf("2024 has %d months, want 12", len(rec.Months))
	}
	if rec.NewYear != daycount.FromGregorian(2024, 2, 10) {
		gy, gm, gd := daycount.ToGregorian(rec.NewYear)
		t.Errorf("new year on %d-%02d-%02d, want 2024-02-10", gy, gm, gd)
	}
}

func TestChinese_MonthInvariants(t *testing.T) {
	c := newTestChinese()
	for year := 2022; year <= 2026; year++ {
		rec := c.yearRecord(year)
		for i, m := range rec.Months {
			if m.Length != 29 && m.Length != 30 {
				t.Errorf("%d month %d spans %d days", year, m.Ordinal, m.Length)
			}
			if i > 0 && m.Start != rec.Months[i-1].End {
				t.Errorf("%d months %d..%d leave a gap", year, i-1, i)
			}
			if m.Ordinal < 1 || m.Ordinal > 12 {
				t.Errorf("%d month %d has ordinal %d", year, i, m.Ordinal)
			}
		}
		if rec.Months[0].Ordinal != 1 {
			t.Errorf("%d does not begin with month 1", year)
		}
	}
}

func TestChinese_RoundTrip(t *testing.T) {
	c := newTestChinese()
	start := daycount.FromGregorian(2022, 1, 1)
	end := daycount.FromGregorian(2026, 1, 1)
	for n := start; n < end; n += 7 {
		d := c.FromDayCount(n)
		back, err := c.ToDayCount(d)
		if err != nil {
			t.Fatalf("day %d -> %+v unconvertible: %v", n, d, err)
		}
		if back != n {
			t.Fatalf("day %d -> %+v -> %d", n, d, back)
		}
	}
}

func TestChinese_RejectsMissingLeapMonth(t *testing.T) {
	c := newTestChinese()

	// 2024 has no leap month at all.
	_, err := c.ToDayCount(Date{Year: 2024, Month: 2, Day: 1, LeapMonth: true})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}

	// 2023's leap month follows month 2; a leap month 5 does not exist.
	_, err = c.ToDayCount(Date{Year: 2023, Month: 5, Day: 1, LeapMonth: true})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}

	_, err = c.ToDayCount(Date{Year: 2024, Month: 13, Day: 1})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("month 13: got %v, want ErrInvalidDate", err)
	}
}

func TestChinese_CacheReuse(t *testing.T) {
	cache := NewMemoryYearCache()
	c := NewChinese(cache).(*chineseSystem)

	c.FromDayCount(daycount.FromGregorian(2024, 6, 1))
	if _, ok := cache.Get(2024); !ok {
		t.Fatal("derivation did not populate the cache")
	}

	// A second converter over the same cache must agree without re-deriving.
	c2 := NewChinese(cache).(*chineseSystem)
	d := c2.FromDayCount(daycount.FromGregorian(2024, 2, 10))
	if d.Year != 2024 || d.Month != 1 || d.Day != 1 {
		t.Errorf("cached record gave %+v", d)
	}
}

func TestStemBranch_Cycle(t *testing.T) {
	cases := map[int]string{
		1984: "甲子",
		2024: "甲辰",
		2023: "癸卯",
		1924: "甲子",
		1983: "癸亥",
	}
	for year, want := range cases {
		if got := StemBranch(year); got != want {
			t.Errorf("StemBranch(%d) = %q, want %q", year, got, want)
		}
	}
}

func TestChineseDayName(t *testing.T) {
	cases := map[int]string{1: "初一", 10: "初十", 15: "十五", 20: "二十", 21: "廿一", 30: "三十"}
	for day, want := range cases {
		if got := ChineseDayName(day); got != want {
			t.Errorf("ChineseDayName(%d) = %q, want %q", day, got, want)
		}
	}
	if got := ChineseDayName(31); got != "" {
		t.Errorf("ChineseDayName(31) = %q, want empty", got)
	}
}

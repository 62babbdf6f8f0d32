package daycount

import "testing"

func TestFloorDiv_NegativeOperands(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{-4, 4, -1},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorMod_AlwaysNonNegative(t *testing.T) {
	for a := int64(-10); a <= 10; a++ {
		got := FloorMod(a, 7)
		if got < 0 || got >= 7 {
			t.Errorf("FloorMod(%d, 7) = %d, out of [0,7)", a, got)
		}
		if FloorDiv(a, 7)*7+got != a {
			t.Errorf("FloorDiv/FloorMod identity broken for %d", a)
		}
	}
}

func TestFromGregorian_Anchors(t *testing.T) {
	cases := []struct {
		y, m, d int
		want    int64
	}{
		{1, 1, 1, 1721426},
		{2000, 1, 1, 2451545},
		{-3113, 8, 11, 584283},
		{2024, 2, 29, 2460370},
		{1970, 1, 1, 2440588},
	}
	for _, c := range cases {
		if got := FromGregorian(c.y, c.m, c.d); got != c.want {
			t.Errorf("FromGregorian(%d, %d, %d) = %d, want %d", c.y, c.m, c.d, got, c.want)
		}
	}
}

func TestToGregorian_Anchors(t *testing.T) {
	y, m, d := ToGregorian(584283)
	if y != -3113 || m != 8 || d != 11 {
		t.Errorf("ToGregorian(584283) = %d-%d-%d, want -3113-8-11", y, m, d)
	}
	y, m, d = ToGregorian(1721426)
	if y != 1 || m != 1 || d != 1 {
		t.Errorf("ToGregorian(1721426) = %d-%d-%d, want 1-1-1", y, m, d)
	}
}

func TestGregorian_RoundTripAcrossEras(t *testing.T) {
	// Sweep a wide span including negative years and century boundaries.
	for _, year := range []int{-1000, -100, -1, 0, 1, 100, 1000, 1582, 1900, 2000, 2024, 4000} {
		for _, md := range [][2]int{{1, 1}, {2, 28}, {6, 15}, {12, 31}} {
			n := FromGregorian(year, md[0], md[1])
			gy, gm, gd := ToGregorian(n)
			if gy != year || gm != md[0] || gd != md[1] {
				t.Errorf("round trip %d-%d-%d -> %d -> %d-%d-%d",
					year, md[0], md[1], n, gy, gm, gd)
			}
		}
	}
}

func TestFromJulian_AlignedEpoch(t *testing.T) {
	// Both proleptic calendars anchor year 1, month 1, day 1 at the same
	// day number.
	if got := FromJulian(1, 1, 1); got != GregorianEpoch {
		t.Errorf("FromJulian(1,1,1) = %d, want %d", got, GregorianEpoch)
	}
}

func TestJulian_RoundTrip(t *testing.T) {
	for _, year := range []int{-500, -1, 0, 1, 4, 100, 1500, 2024} {
		for _, md := range [][2]int{{1, 1}, {2, 28}, {12, 31}} {
			n := FromJulian(year, md[0], md[1])
			jy, jm, jd := ToJulian(n)
			if jy != year || jm != md[0] || jd != md[1] {
				t.Errorf("round trip %d-%d-%d -> %d -> %d-%d-%d",
					year, md[0], md[1], n, jy, jm, jd)
			}
		}
	}
}

func TestJulian_LeapEveryFourYears(t *testing.T) {
	// Julian year 100 is leap, unlike Gregorian.
	n := FromJulian(100, 2, 29)
	jy, jm, jd := ToJulian(n)
	if jy != 100 || jm != 2 || jd != 29 {
		t.Errorf("Julian 100-02-29 round trip gave %d-%d-%d", jy, jm, jd)
	}
	if IsGregorianLeap(100) {
		t.Error("Gregorian year 100 must not be leap")
	}
	if !IsJulianLeap(100) {
		t.Error("Julian year 100 must be leap")
	}
}

func TestIsGregorianLeap(t *testing.T) {
	cases := map[int]bool{
		2024: true, 2023: false, 1900: false, 2000: true, 0: true, -1: false, -4: true,
	}
	for year, want := range cases {
		if got := IsGregorianLeap(year); got != want {
			t.Errorf("IsGregorianLeap(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestWeekday_KnownDates(t *testing.T) {
	// 2000-01-01 was a Saturday.
	if got := Weekday(FromGregorian(2000, 1, 1)); got != 6 {
		t.Errorf("Weekday(2000-01-01) = %d, want 6", got)
	}
	// 2024-02-10 was a Saturday.
	if got := Weekday(FromGregorian(2024, 2, 10)); got != 6 {
		t.Errorf("Weekday(2024-02-10) = %d, want 6", got)
	}
	// 1970-01-01 was a Thursday.
	if got := Weekday(FromGregorian(1970, 1, 1)); got != 4 {
		t.Errorf("Weekday(1970-01-01) = %d, want 4", got)
	}
}

func TestGregorianMonthDays(t *testing.T) {
	if got := GregorianMonthDays(2024, 2); got != 29 {
		t.Errorf("February 2024 has %d days, want 29", got)
	}
	if got := GregorianMonthDays(2023, 2); got != 28 {
		t.Errorf("February 2023 has %d days, want 28", got)
	}
	if got := GregorianMonthDays(2023, 12); got != 31 {
		t.Errorf("December has %d days, want 31", got)
	}
}

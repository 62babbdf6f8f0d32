package calendars

import (
	"math"
	"sync"

	"github.com/keyxmakerx/almanac/internal/astro"
	"github.com/keyxmakerx/almanac/internal/daycount"
)

// The Chinese converter derives months from true astronomy instead of
// tables: each month begins at an actual new moon, the month containing the
// winter solstice is fixed as month 11, and when a solstice-to-solstice
// span (sui) holds thirteen lunations the first month without a major solar
// term becomes the leap month, repeating its predecessor's ordinal. All
// events are observed on the UTC+8 meridian before rounding to whole days.
//
// Deriving a year's month table takes dozens of solver runs and is reused
// by every day-level query in that year, so tables are cached through the
// YearCache owned by the converter instance. Tables are pure functions of
// the year number: no invalidation, no eviction.

// chineseMeridian shifts Julian dates to UTC+8 civil days.
const chineseMeridian = 8.0 / 24

var chineseMonthNames = []string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

var chineseDayNames = []string{
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十",
}

var (
	celestialStems    = []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
	terrestrialBranch = []string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
)

// StemBranch returns the sexagenary cycle name of a Chinese year
// (1984 = 甲子).
func StemBranch(year int) string {
	idx := daycount.FloorMod(int64(year-1984), 60)
	return celestialStems[idx%10] + terrestrialBranch[idx%12]
}

// ChineseDayName returns the traditional day-of-month name (初一 .. 三十),
// or empty for out-of-range input.
func ChineseDayName(day int) string {
	if day < 1 || day > len(chineseDayNames) {
		return ""
	}
	return chineseDayNames[day-1]
}

// ChineseMonth is one derived lunar month of a Chinese year.
type ChineseMonth struct {
	// Ordinal is the month number 1..12; a leap month repeats the
	// ordinal of the month it follows.
	Ordinal int  `json:"ordinal"`
	Leap    bool `json:"leap"`

	// Start and End bound the month in day numbers, End exclusive.
	Start  int64 `json:"start"`
	End    int64 `json:"end"`
	Length int   `json:"length"`

	// Terms lists the solar-term indices (0..23) whose boundaries fall
	// inside the month.
	Terms []int `json:"terms"`
}

// ChineseYear is the cached derivation for one Chinese calendar year: its
// new-year day and ordered month table.
type ChineseYear struct {
	Year     int            `json:"year"`
	NewYear  int64          `json:"new_year"`
	LeapYear bool           `json:"leap_year"`
	Months   []ChineseMonth `json:"months"`
}

// End returns the day after the year's last day.
func (y *ChineseYear) End() int64 {
	return y.Months[len(y.Months)-1].End
}

// YearCache stores derived Chinese year records. Implementations must be
// safe for concurrent use; records are pure functions of the year number
// and are never invalidated.
type YearCache interface {
	Get(year int) (*ChineseYear, bool)
	Put(year int, rec *ChineseYear)
}

// MemoryYearCache is the default in-process YearCache: a mutex-guarded
// insert-if-absent map.
type MemoryYearCache struct {
	mu    sync.RWMutex
	years map[int]*ChineseYear
}

// NewMemoryYearCache creates an empty in-memory year cache.
func NewMemoryYearCache() *MemoryYearCache {
	return &MemoryYearCache{years: make(map[int]*ChineseYear)}
}

func (c *MemoryYearCache) Get(year int) (*ChineseYear, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.years[year]
	return rec, ok
}

func (c *MemoryYearCache) Put(year int, rec *ChineseYear) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.years[year] = rec
}

type chineseSystem struct {
	cache YearCache
}

// NewChinese returns the Chinese calendar converter backed by the given
// year cache (NewMemoryYearCache for a self-contained instance).
func NewChinese(cache YearCache) System {
	return &chineseSystem{cache: cache}
}

func (c *chineseSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:              Chinese,
		Name:            "Chinese",
		NativeName:      "农历",
		Kind:            KindLunisolar,
		Months:          13,
		MinYearDays:     353,
		MaxYearDays:     385,
		Epoch:           daycount.FromGregorian(1984, 2, 2), // start of the current sexagenary cycle (甲子)
		LeapRule:        "leap month when a solstice-to-solstice span holds 13 lunations",
		MonthNames:      chineseMonthNames,
		LeapMonthPrefix: "闰",
	}
}

// chineseDay rounds a Julian date to the whole civil day it falls on at the
// UTC+8 meridian.
func chineseDay(jd float64) int64 {
	return int64(math.Floor(jd + chineseMeridian + 0.5))
}

// newMoonJDOnOrBefore finds the new moon whose UTC+8 civil day is the
// latest one not after the given day number.
func newMoonJDOnOrBefore(day int64) float64 {
	jd := astro.NewMoonNear(float64(day) - chineseMeridian)
	for i := 0; i < 3 && chineseDay(jd) > day; i++ {
		jd = astro.NewMoonNear(jd - astro.SynodicMonth)
	}
	for i := 0; i < 3; i++ {
		next := astro.NextNewMoon(jd + 2)
		if chineseDay(next) > day {
			break
		}
		jd = next
	}
	return jd
}

// suiMonth is a lunar month with its provisional calendar-year assignment.
type suiMonth struct {
	ChineseMonth
	year int
}

// suiMonths derives the lunar months of one sui: from the month containing
// the winter solstice of Gregorian year-1 (month 11 of Chinese year-1) up
// to, and excluding, the month containing the next winter solstice.
func suiMonths(year int) []suiMonth {
	s1 := chineseDay(astro.WinterSolsticeJD(year - 1))
	s2 := chineseDay(astro.WinterSolsticeJD(year))

	first := newMoonJDOnOrBefore(s1)
	lastStart := chineseDay(newMoonJDOnOrBefore(s2))

	// Collect month boundaries across the sui. A sui holds 12 lunations,
	// or 13 when a leap month must be inserted.
	var starts []int64
	for jd := first; len(starts) < 14; jd = astro.NextNewMoon(jd + 2) {
		day := chineseDay(jd)
		if day >= lastStart {
			break
		}
		starts = append(starts, day)
	}
	starts = append(starts, lastStart) // sentinel: start of next sui's month 11
	leapSui := len(starts)-1 == 13

	terms := suiTermDays(year)

	months := make([]suiMonth, 0, len(starts)-1)
	ordinal, calYear := 10, year-1 // first month advances this to 11
	leapUsed := false
	for i := 0; i+1 < len(starts); i++ {
		start, end := starts[i], starts[i+1]
		contained := termsWithin(terms, start, end)

		leap := false
		if leapSui && !leapUsed && i > 0 && !hasMajorTerm(contained) {
			leap = true
			leapUsed = true
		} else {
			ordinal++
			if ordinal == 13 {
				ordinal = 1
				calYear++
			}
		}

		months = append(months, suiMonth{
			ChineseMonth: ChineseMonth{
				Ordinal: ordinal,
				Leap:    leap,
				Start:   start,
				End:     end,
				Length:  int(end - start),
				Terms:   contained,
			},
			year: calYear,
		})
	}
	return months
}

// suiTermDays returns the (day, term) boundaries covering a sui, from the
// late terms of the previous term-year through the current one.
func suiTermDays(year int) []termDay {
	out := make([]termDay, 0, 28)
	for _, t := range []int{20, 21, 22, 23} {
		out = append(out, termDay{chineseDay(astro.SolarTermJD(year-1, t)), t})
	}
	for t := 0; t < 24; t++ {
		out = append(out, termDay{chineseDay(astro.SolarTermJD(year, t)), t})
	}
	return out
}

type termDay struct {
	day  int64
	term int
}

func termsWithin(terms []termDay, start, end int64) []int {
	var out []int
	for _, td := range terms {
		if td.day >= start && td.day < end {
			out = append(out, td.term)
		}
	}
	return out
}

// hasMajorTerm reports whether any contained term is a zhongqi. A month
// without one is the leap-month candidate.
func hasMajorTerm(terms []int) bool {
	for _, t := range terms {
		if astro.IsMajorTerm(t) {
			return true
		}
	}
	return false
}

// yearRecord derives (or fetches) the full month table of a Chinese year:
// months ordinal 1..10 come from the sui ending in that year's December,
// months 11 and 12 (and a possible trailing leap month) from the next sui.
func (c *chineseSystem) yearRecord(year int) *ChineseYear {
	if rec, ok := c.cache.Get(year); ok {
		return rec
	}

	var months []ChineseMonth
	for _, m := range suiMonths(year) {
		if m.year == year {
			months = append(months, m.ChineseMonth)
		}
	}
	for _, m := range suiMonths(year + 1) {
		if m.year == year {
			months = append(months, m.ChineseMonth)
		}
	}

	rec := &ChineseYear{
		Year:    year,
		NewYear: months[0].Start,
		Months:  months,
	}
	for _, m := range months {
		if m.Leap {
			rec.LeapYear = true
		}
	}
	c.cache.Put(year, rec)
	return rec
}

func (c *chineseSystem) ToDayCount(d Date) (int64, error) {
	if d.Month < 1 || d.Month > 12 {
		return 0, invalidDatef("chinese month %d out of range 1..12", d.Month)
	}
	rec := c.yearRecord(d.Year)
	for _, m := range rec.Months {
		if m.Ordinal != d.Month || m.Leap != d.LeapMonth {
			continue
		}
		if d.Day < 1 || d.Day > m.Length {
			return 0, invalidDatef("chinese day %d out of range 1..%d for month %d", d.Day, m.Length, d.Month)
		}
		return m.Start + int64(d.Day-1), nil
	}
	return 0, invalidDatef("chinese year %d has no leap month %d", d.Year, d.Month)
}

func (c *chineseSystem) FromDayCount(n int64) Date {
	// The Chinese year number tracks the Gregorian year its new year
	// falls in, so the Gregorian year is the right first guess.
	year, _, _ := daycount.ToGregorian(n)
	rec := c.yearRecord(year)
	for n < rec.NewYear {
		year--
		rec = c.yearRecord(year)
	}
	for n >= rec.End() {
		year++
		rec = c.yearRecord(year)
	}

	for _, m := range rec.Months {
		if n >= m.Start && n < m.End {
			return Date{
				Year:      year,
				Month:     m.Ordinal,
				Day:       int(n - m.Start + 1),
				LeapMonth: m.Leap,
				Era:       StemBranch(year),
			}
		}
	}
	// Unreachable: the month table tiles the year.
	return Date{Year: year}
}

package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// The Baháʼí (Badíʿ) converter uses the Western arithmetic form: the year
// begins at Naw-Rúz on 21 March, nineteen months of nineteen days, with the
// intercalary Ayyám-i-Há (encoded as month 19) between the 18th and 19th
// named months. Ayyám-i-Há has 4 days, or 5 when the Gregorian year it ends
// in is a leap year.

// bahaiGregorianBase converts a Baháʼí year to the Gregorian year its
// Naw-Rúz falls in: BE 1 began 21 March 1844.
const bahaiGregorianBase = 1843

var bahaiMonthNames = []string{
	"Bahá", "Jalál", "Jamál", "'Aẓamat", "Núr", "Raḥmat", "Kalimát",
	"Kamál", "Asmá'", "'Izzat", "Mashíyyat", "'Ilm", "Qudrat", "Qawl",
	"Masá'il", "Sharaf", "Sulṭán", "Mulk", "Ayyám-i-Há", "'Alá'",
}

type bahaiSystem struct{}

// NewBahai returns the Baháʼí calendar converter.
func NewBahai() System { return bahaiSystem{} }

func (bahaiSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          Bahai,
		Name:        "Baháʼí",
		NativeName:  "تقویم بدیع",
		Kind:        KindSolar,
		Months:      20,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       daycount.FromGregorian(1844, 3, 21),
		LeapRule:    "Ayyám-i-Há gains a day before Gregorian leap Februaries",
		MonthNames:  bahaiMonthNames,
		Eras:        [2]string{"BE", ""},
	}
}

func bahaiMonthDays(year, month int) int {
	if month != 19 {
		return 19
	}
	// Ayyám-i-Há ends in late February of the following Gregorian year.
	if daycount.IsGregorianLeap(year + bahaiGregorianBase + 1) {
		return 5
	}
	return 4
}

func bahaiYearStart(year int) int64 {
	return daycount.FromGregorian(year+bahaiGregorianBase, 3, 21)
}

func (bahaiSystem) ToDayCount(d Date) (int64, error) {
	err := validateMonthDay(d, 20, func(m int) int {
		return bahaiMonthDays(d.Year, m)
	})
	if err != nil {
		return 0, err
	}
	offset := 19 * (d.Month - 1)
	if d.Month == 20 {
		offset = 18*19 + bahaiMonthDays(d.Year, 19)
	}
	return bahaiYearStart(d.Year) + int64(offset+d.Day-1), nil
}

func (bahaiSystem) FromDayCount(n int64) Date {
	gy, _, _ := daycount.ToGregorian(n)
	year := gy - bahaiGregorianBase
	if n < bahaiYearStart(year) {
		year--
	}
	offset := int(n - bahaiYearStart(year))
	month, day := monthOf(offset, 20, func(m int) int {
		return bahaiMonthDays(year, m)
	})
	return Date{Year: year, Month: month, Day: day}
}

package calendars

import "github.com/keyxmakerx/almanac/internal/daycount"

// thaiYearOffset is the difference between the Buddhist Era and the Common
// Era: BE 2567 is CE 2024.
const thaiYearOffset = 543

var thaiMonthNames = []string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

type thaiSystem struct{}

// NewThaiBuddhist returns the Thai solar calendar converter: Gregorian
// month structure with years counted in the Buddhist Era.
func NewThaiBuddhist() System { return thaiSystem{} }

func (thaiSystem) Descriptor() Descriptor {
	return Descriptor{
		ID:          ThaiBuddhist,
		Name:        "Thai Buddhist",
		NativeName:  "ปฏิทินสุริยคติไทย",
		Kind:        KindSolar,
		Months:      12,
		MinYearDays: 365,
		MaxYearDays: 366,
		Epoch:       daycount.FromGregorian(1-thaiYearOffset, 1, 1),
		LeapRule:    "Gregorian 4/100/400 rule on the Common Era year",
		MonthNames:  thaiMonthNames,
		Eras:        [2]string{"BE", ""},
	}
}

func (thaiSystem) ToDayCount(d Date) (int64, error) {
	gy := d.Year - thaiYearOffset
	err := validateMonthDay(d, 12, func(m int) int {
		return daycount.GregorianMonthDays(gy, m)
	})
	if err != nil {
		return 0, err
	}
	return daycount.FromGregorian(gy, d.Month, d.Day), nil
}

func (thaiSystem) FromDayCount(n int64) Date {
	y, m, day := daycount.ToGregorian(n)
	return Date{Year: y + thaiYearOffset, Month: m, Day: day}
}

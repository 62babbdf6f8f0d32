package calendars

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format tokens, longest first so the scanner matches greedily:
//
//	YYYY  full year (sign included for negative years)
//	YY    last two digits of the year
//	MMMM  full month name (numeric fallback when the calendar has none)
//	MMM   month name truncated to three runes
//	MM    zero-padded month, L-suffixed for intercalary months
//	M     month, L-suffixed for intercalary months
//	DD    zero-padded day
//	D     day
//	ERA   era label
var formatTokens = []string{"YYYY", "MMMM", "MMM", "ERA", "YY", "MM", "DD", "M", "D"}

// FormatDate renders a date against a token layout using the descriptor's
// month-name table. Unrecognized characters pass through verbatim.
func FormatDate(desc Descriptor, d Date, layout string) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		token := ""
		for _, t := range formatTokens {
			if strings.HasPrefix(layout[i:], t) {
				token = t
				break
			}
		}
		if token == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}
		b.WriteString(renderToken(desc, d, token))
		i += len(token)
	}
	return b.String()
}

func renderToken(desc Descriptor, d Date, token string) string {
	switch token {
	case "YYYY":
		return fmt.Sprintf("%04d", d.Year)
	case "YY":
		y := d.Year % 100
		if y < 0 {
			y = -y
		}
		return fmt.Sprintf("%02d", y)
	case "MMMM":
		return monthName(desc, d)
	case "MMM":
		name := []rune(monthName(desc, d))
		if len(name) > 3 {
			name = name[:3]
		}
		return string(name)
	case "MM":
		return fmt.Sprintf("%02d", d.Month) + leapMarker(d)
	case "M":
		return strconv.Itoa(d.Month) + leapMarker(d)
	case "DD":
		return fmt.Sprintf("%02d", d.Day)
	case "D":
		return strconv.Itoa(d.Day)
	case "ERA":
		if d.Era != "" {
			return d.Era
		}
		return desc.era(d.Year)
	}
	return token
}

// leapMarker renders the intercalary-month flag on the numeric month
// tokens. Without it a leap-month date would print as the regular month of
// the same ordinal and re-parse one lunation off.
func leapMarker(d Date) string {
	if d.LeapMonth {
		return "L"
	}
	return ""
}

// monthName returns the display name of a date's month, falling back to the
// month number for calendars without named months (e.g. the Long Count).
func monthName(desc Descriptor, d Date) string {
	if d.Month < 1 || d.Month > len(desc.MonthNames) {
		return strconv.Itoa(d.Month)
	}
	name := desc.MonthNames[d.Month-1]
	if d.LeapMonth && desc.LeapMonthPrefix != "" {
		name = desc.LeapMonthPrefix + name
	}
	return name
}

// isoDatePattern matches the canonical (-)YYYY-MM-DD shape. The optional L
// after the month marks an intercalary (leap) month.
var isoDatePattern = regexp.MustCompile(`^(-?\d{1,9})-(\d{1,2})(L?)-(\d{1,2})$`)

// parseISO splits a canonical date string into an unvalidated Date.
func parseISO(s string) (Date, bool) {
	m := isoDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Date{}, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		// Year exceeded int range.
		return Date{}, false
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[4])
	return Date{Year: year, Month: month, Day: day, LeapMonth: m[3] == "L"}, true
}

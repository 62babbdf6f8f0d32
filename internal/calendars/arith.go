package calendars

// Month-level helpers shared by the fixed-arithmetic converters. Year
// location uses closed forms in each converter; only the within-year
// month/day split and its validation are common.

// monthOf splits a zero-based day offset within a year into a 1-based month
// and day using the calendar's days-per-month function.
func monthOf(offset int, months int, daysInMonth func(int) int) (month, day int) {
	month = 1
	for month < months {
		length := daysInMonth(month)
		if offset < length {
			break
		}
		offset -= length
		month++
	}
	return month, offset + 1
}

// validateMonthDay checks 1-based month/day bounds against the calendar's
// per-month lengths. Returns a validation error naming the component.
func validateMonthDay(d Date, months int, daysInMonth func(int) int) error {
	if d.Month < 1 || d.Month > months {
		return invalidDatef("%s month %d out of range 1..%d", d.Calendar, d.Month, months)
	}
	if max := daysInMonth(d.Month); d.Day < 1 || d.Day > max {
		return invalidDatef("%s day %d out of range 1..%d for month %d", d.Calendar, d.Day, max, d.Month)
	}
	return nil
}

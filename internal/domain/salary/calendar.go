package salary

import "time"

// WorkingDays counts the Monday-Friday days in the given month. It is the
// theoretical reporting denominator, not a cap on present days.
func WorkingDays(year int, month time.Month) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// MonthBounds returns the first and last calendar day of the month, both at
// midnight UTC, for inclusive date-range queries.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

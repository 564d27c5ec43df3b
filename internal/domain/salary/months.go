package salary

import (
	"strings"
	"time"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the canonical storage key for a month. Out-of-range
// values clamp to January, mirroring the parse side.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return monthNames[0]
	}
	return monthNames[m-1]
}

// MonthByName resolves a stored month name back to a time.Month. Unknown
// names deterministically map to January rather than failing.
func MonthByName(name string) time.Month {
	for i, n := range monthNames {
		if strings.EqualFold(n, name) {
			return time.Month(i + 1)
		}
	}
	return time.January
}

// IsKnownMonth reports whether name is one of the twelve canonical names,
// ignoring case.
func IsKnownMonth(name string) bool {
	for _, n := range monthNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

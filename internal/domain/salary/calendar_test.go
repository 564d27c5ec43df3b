package salary

import (
	"testing"
	"time"
)

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 21}, // leap year, 29 days, starts Thursday
		{2023, time.February, 20}, // 28 days, starts Wednesday
		{2024, time.January, 23},  // 31 days, starts Monday
		{2024, time.March, 21},    // 31 days, starts Friday
		{2024, time.April, 22},    // 30 days, starts Monday
	}
	for _, c := range cases {
		got := WorkingDays(c.year, c.month)
		if got != c.want {
			t.Errorf("WorkingDays(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February)
	if !first.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first = %v", first)
	}
	if !last.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last = %v, want Feb 29 (leap year)", last)
	}

	first, last = MonthBounds(2023, time.December)
	if first.Day() != 1 || last.Day() != 31 {
		t.Errorf("December bounds = %v .. %v", first, last)
	}
}

package salary

import (
	"testing"
	"time"
)

func TestMonthNameRoundTrip(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		name := MonthName(m)
		if got := MonthByName(name); got != m {
			t.Errorf("MonthByName(MonthName(%v)) = %v, want %v", m, got, m)
		}
	}
}

func TestMonthByNameUnknown(t *testing.T) {
	for _, name := range []string{"", "Foo", "Janvier", "13"} {
		if got := MonthByName(name); got != time.January {
			t.Errorf("MonthByName(%q) = %v, want January", name, got)
		}
	}
}

func TestMonthByNameCaseInsensitive(t *testing.T) {
	if got := MonthByName("february"); got != time.February {
		t.Errorf("MonthByName(february) = %v, want February", got)
	}
	if got := MonthByName("DECEMBER"); got != time.December {
		t.Errorf("MonthByName(DECEMBER) = %v, want December", got)
	}
}

func TestIsKnownMonth(t *testing.T) {
	if !IsKnownMonth("March") || !IsKnownMonth("march") {
		t.Error("IsKnownMonth should accept canonical names in any case")
	}
	if IsKnownMonth("Mars") || IsKnownMonth("") {
		t.Error("IsKnownMonth should reject unknown names")
	}
}

func TestMonthNameOutOfRange(t *testing.T) {
	if got := MonthName(time.Month(0)); got != "January" {
		t.Errorf("MonthName(0) = %q, want January", got)
	}
	if got := MonthName(time.Month(13)); got != "January" {
		t.Errorf("MonthName(13) = %q, want January", got)
	}
}

package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"

	// StatusDeleted is a recompute trigger only, never stored on a record.
	StatusDeleted Status = "deleted"
)

// IsValid reports whether s is a storable record status.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLate
}

// FullDayHours is the threshold above which worked hours count as overtime.
const FullDayHours = 8.0

type Attendance struct {
	ID          string
	WorkerID    string
	Date        time.Time // calendar day, midnight UTC
	CheckIn     *time.Time
	CheckOut    *time.Time
	HoursWorked float64
	Overtime    float64
	Status      Status
	AutoMarked  bool
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeriveHours recomputes HoursWorked and Overtime from the check-in/out pair.
// Both stay zero unless the record carries both timestamps.
func (a *Attendance) DeriveHours() {
	a.HoursWorked = 0
	a.Overtime = 0
	if a.CheckIn == nil || a.CheckOut == nil {
		return
	}

	hours := a.CheckOut.Sub(*a.CheckIn).Hours()
	if hours < 0 {
		hours = 0
	}
	a.HoursWorked = hours
	if hours > FullDayHours {
		a.Overtime = hours - FullDayHours
	}
}

// DateOf truncates t to its calendar day in UTC. Attendance identity is
// per (worker, calendar day); time of day is irrelevant for uniqueness.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

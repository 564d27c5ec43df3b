package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/out errors
	ErrAlreadyCheckedIn  = errors.New("worker has already checked in today")
	ErrNotCheckedIn      = errors.New("worker has not checked in yet")
	ErrAlreadyCheckedOut = errors.New("worker has already checked out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance record already exists for this day")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)

package response

import (
	"errors"
	"net/http"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerInactive):
		BadRequest(w, "Worker is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Worker has already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Worker has not checked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Worker has already checked out")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance record already exists for this day")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Monthly salary record not found")
	case errors.Is(err, salary.ErrAlreadyPaid):
		Conflict(w, "Monthly salary record is already marked paid")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid salary period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

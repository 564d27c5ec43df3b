package attendance

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	WorkerID string  `json:"worker_id"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	WorkerID string `json:"worker_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateAttendanceRequest is the admin path for manual records and
// corrections for past days.
type CreateAttendanceRequest struct {
	WorkerID string  `json:"worker_id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Status   string  `json:"status"`
	CheckIn  *string `json:"check_in,omitempty"`  // RFC3339
	CheckOut *string `json:"check_out,omitempty"` // RFC3339
	Notes    *string `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent' or 'late'"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid RFC3339 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	Status   *string `json:"status,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'present', 'absent' or 'late'"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid RFC3339 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	WorkerID *string
	From     *time.Time
	To       *time.Time
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	Date        string  `json:"date"`
	CheckIn     *string `json:"check_in,omitempty"`
	CheckOut    *string `json:"check_out,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
	Overtime    float64 `json:"overtime"`
	Status      string  `json:"status"`
	AutoMarked  bool    `json:"auto_marked"`
	Notes       *string `json:"notes,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		Date:        a.Date.Format("2006-01-02"),
		CheckIn:     timePtrToString(a.CheckIn),
		CheckOut:    timePtrToString(a.CheckOut),
		HoursWorked: a.HoursWorked,
		Overtime:    a.Overtime,
		Status:      string(a.Status),
		AutoMarked:  a.AutoMarked,
		Notes:       a.Notes,
	}
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

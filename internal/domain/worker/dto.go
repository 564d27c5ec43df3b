package worker

import (
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWorkerRequest struct {
	FullName string          `json:"full_name"`
	Role     string          `json:"role"`
	DayRate  decimal.Decimal `json:"day_rate"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Role != string(RoleWorker) && r.Role != string(RoleAdmin) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'worker' or 'admin'"})
	}
	if r.DayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "day_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID       string           `json:"-"`
	FullName *string          `json:"full_name,omitempty"`
	DayRate  *decimal.Decimal `json:"day_rate,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.DayRate != nil && r.DayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "day_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID       string          `json:"id"`
	FullName string          `json:"full_name"`
	Role     string          `json:"role"`
	DayRate  decimal.Decimal `json:"day_rate"`
	IsActive bool            `json:"is_active"`
}

func NewWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:       w.ID,
		FullName: w.FullName,
		Role:     string(w.Role),
		DayRate:  w.DayRate,
		IsActive: w.IsActive,
	}
}

package salary

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateMonthlyRequest struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}

func (r *GenerateMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsKnownMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be an English month name"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckoutRequest struct {
	WorkerID string `json:"worker_id"`
	Month    string `json:"month"`
	Year     int    `json:"year"`
}

func (r *CheckoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "is required"})
	}
	if !IsKnownMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be an English month name"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySalaryResponse struct {
	ID               string          `json:"id"`
	WorkerID         string          `json:"worker_id"`
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	DayRate          decimal.Decimal `json:"day_rate"`
	PresentDays      int             `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	TotalWorkingDays int             `json:"total_working_days"`
	EarnedAmount     decimal.Decimal `json:"earned_amount"`
	MissedAmount     decimal.Decimal `json:"missed_amount"`
	Bonuses          decimal.Decimal `json:"bonuses"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	IsPaid           bool            `json:"is_paid"`
	PaidAt           *string         `json:"paid_at,omitempty"`
}

func NewMonthlySalaryResponse(ms MonthlySalary) MonthlySalaryResponse {
	var paidAt *string
	if ms.PaidAt != nil {
		formatted := ms.PaidAt.UTC().Format(time.RFC3339)
		paidAt = &formatted
	}
	return MonthlySalaryResponse{
		ID:               ms.ID,
		WorkerID:         ms.WorkerID,
		Month:            ms.Month,
		Year:             ms.Year,
		DayRate:          ms.DayRate,
		PresentDays:      ms.PresentDays,
		AbsentDays:       ms.AbsentDays,
		TotalWorkingDays: ms.TotalWorkingDays,
		EarnedAmount:     ms.EarnedAmount,
		MissedAmount:     ms.MissedAmount,
		Bonuses:          ms.Bonuses,
		TotalAmount:      ms.TotalAmount,
		IsPaid:           ms.IsPaid,
		PaidAt:           paidAt,
	}
}

type ReceiptResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	Date        string          `json:"date"`
	DayRate     decimal.Decimal `json:"day_rate"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
}

func NewReceiptResponse(r EarningReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:          r.ID,
		WorkerID:    r.WorkerID,
		Date:        r.Date.Format("2006-01-02"),
		DayRate:     r.DayRate,
		Amount:      r.Amount,
		Kind:        string(r.Kind),
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

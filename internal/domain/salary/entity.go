package salary

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// MonthlySalary is the derived aggregate for one (worker, month, year).
// Its derived fields are always recomputed wholesale from the attendance
// records of that month, never incrementally patched. IsPaid and PaidAt are
// owned by the mark-paid path and never touched by recomputes.
type MonthlySalary struct {
	ID               string
	WorkerID         string
	Month            string // English month name, part of the aggregate key
	Year             int
	DayRate          decimal.Decimal
	PresentDays      int
	AbsentDays       int
	TotalWorkingDays int
	EarnedAmount     decimal.Decimal
	MissedAmount     decimal.Decimal
	Bonuses          decimal.Decimal
	TotalAmount      decimal.Decimal
	IsPaid           bool
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ReceiptKind string

const (
	// ReceiptKindDaily credits a single present day at the worker's day rate.
	ReceiptKindDaily ReceiptKind = "daily"
	// ReceiptKindMonthly is the consolidated checkout summary for a month.
	ReceiptKindMonthly ReceiptKind = "monthly"
)

// EarningReceipt is an append-only audit record. Receipts are never
// deduplicated: every crediting emits a new row.
type EarningReceipt struct {
	ID          string
	WorkerID    string
	Date        time.Time
	DayRate     decimal.Decimal
	Amount      decimal.Decimal
	Kind        ReceiptKind
	Description string
	CreatedAt   time.Time
}

// Calculation is the result of recomputing one worker's month from its
// attendance records.
type Calculation struct {
	DayRate          decimal.Decimal
	PresentDays      int
	AbsentDays       int
	TotalWorkingDays int
	EarnedAmount     decimal.Decimal
	MissedAmount     decimal.Decimal
	TotalAmount      decimal.Decimal
	Records          []attendance.Attendance
}

// ZeroCalculation is the degraded result used when the worker cannot be
// found or the recompute faults. All fields are zero so the caller can still
// upsert a zeroed aggregate instead of leaving it absent.
func ZeroCalculation() Calculation {
	return Calculation{
		DayRate:      decimal.Zero,
		EarnedAmount: decimal.Zero,
		MissedAmount: decimal.Zero,
		TotalAmount:  decimal.Zero,
	}
}

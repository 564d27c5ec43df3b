package salary

import (
	"context"
	"time"
)

// Repository defines data access methods for monthly salary aggregates.
// Uniqueness per (worker_id, month, year) prevents duplicate aggregates but
// does not serialize concurrent recomputations; last write wins.
type Repository interface {
	Create(ctx context.Context, ms MonthlySalary) (MonthlySalary, error)

	GetByID(ctx context.Context, id string) (MonthlySalary, error)

	GetByWorkerPeriod(ctx context.Context, workerID, month string, year int) (MonthlySalary, error)

	// UpdateTotals overwrites the derived fields (day rate, day counts and
	// amounts) of an existing aggregate. It must never touch is_paid,
	// paid_at or bonuses.
	UpdateTotals(ctx context.Context, ms MonthlySalary) error

	// MarkPaid transitions an unpaid aggregate to paid. Returns
	// ErrSalaryNotFound for unknown ids and ErrAlreadyPaid when the
	// transition already happened; the transition is one-way.
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error

	List(ctx context.Context, filter Filter) ([]MonthlySalary, error)
}

// ReceiptRepository is an append-only store; receipts are never updated or
// deleted.
type ReceiptRepository interface {
	Create(ctx context.Context, r EarningReceipt) (EarningReceipt, error)

	List(ctx context.Context, filter ReceiptFilter) ([]EarningReceipt, error)
}

type Filter struct {
	WorkerID *string
	Month    *string
	Year     *int
	IsPaid   *bool
}

type ReceiptFilter struct {
	WorkerID *string
	Kind     *ReceiptKind
}

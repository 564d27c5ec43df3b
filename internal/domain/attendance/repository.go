package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
// Records are unique per (worker_id, date); the unique index is the only
// concurrency safeguard the accrual engine relies on.
type Repository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByWorkerAndDate returns nil when no record exists for that day.
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*Attendance, error)

	// ListByWorkerAndRange retrieves records with from <= date <= to.
	ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]Attendance, error)

	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	Update(ctx context.Context, att Attendance) error

	Delete(ctx context.Context, id string) error
}

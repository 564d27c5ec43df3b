package worker

import "context"

// Repository defines data access methods for worker profiles.
type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)

	Update(ctx context.Context, w Worker) error

	List(ctx context.Context) ([]Worker, error)

	// ListActive retrieves active workers, optionally filtered by role.
	// An empty role matches any role.
	ListActive(ctx context.Context, role Role) ([]Worker, error)
}

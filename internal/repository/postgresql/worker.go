package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}

// Create implements worker.Repository.
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (full_name, role, day_rate, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.FullName,
		w.Role,
		w.DayRate,
		w.IsActive,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID implements worker.Repository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, role, day_rate, is_active, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.FullName, &w.Role, &w.DayRate, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// Update implements worker.Repository.
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET full_name = $2, role = $3, day_rate = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, w.ID, w.FullName, w.Role, w.DayRate, w.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// List implements worker.Repository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, role, day_rate, is_active, created_at, updated_at
		FROM workers
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	return scanWorkers(rows)
}

// ListActive implements worker.Repository.
func (r *workerRepository) ListActive(ctx context.Context, role worker.Role) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, role, day_rate, is_active, created_at, updated_at
		FROM workers
		WHERE is_active = true
		  AND ($1 = '' OR role = $1)
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list active workers: %w", err)
	}
	defer rows.Close()

	return scanWorkers(rows)
}

func scanWorkers(rows pgx.Rows) ([]worker.Worker, error) {
	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.FullName, &w.Role, &w.DayRate, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workers: %w", err)
	}
	return workers, nil
}

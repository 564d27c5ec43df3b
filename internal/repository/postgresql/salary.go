package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

const monthlySalaryColumns = `
	id, worker_id, month, year, day_rate, present_days, absent_days,
	total_working_days, earned_amount, missed_amount, bonuses, total_amount,
	is_paid, paid_at, created_at, updated_at`

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.Repository {
	return &salaryRepository{db: db}
}

// Create implements salary.Repository. The unique index on
// (worker_id, month, year) rejects duplicate aggregates.
func (r *salaryRepository) Create(ctx context.Context, ms salary.MonthlySalary) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_salaries (
			id, worker_id, month, year, day_rate, present_days, absent_days,
			total_working_days, earned_amount, missed_amount, bonuses,
			total_amount, is_paid
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ms.ID,
		ms.WorkerID,
		ms.Month,
		ms.Year,
		ms.DayRate,
		ms.PresentDays,
		ms.AbsentDays,
		ms.TotalWorkingDays,
		ms.EarnedAmount,
		ms.MissedAmount,
		ms.Bonuses,
		ms.TotalAmount,
		ms.IsPaid,
	).Scan(&ms.CreatedAt, &ms.UpdatedAt)
	if err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to create monthly salary: %w", err)
	}

	return ms, nil
}

// GetByID implements salary.Repository.
func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + monthlySalaryColumns + ` FROM monthly_salaries WHERE id = $1`

	ms, err := scanMonthlySalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get monthly salary: %w", err)
	}

	return ms, nil
}

// GetByWorkerPeriod implements salary.Repository.
func (r *salaryRepository) GetByWorkerPeriod(ctx context.Context, workerID, month string, year int) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + monthlySalaryColumns + `
		FROM monthly_salaries
		WHERE worker_id = $1 AND month = $2 AND year = $3
		LIMIT 1`

	ms, err := scanMonthlySalary(q.QueryRow(ctx, query, workerID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get monthly salary: %w", err)
	}

	return ms, nil
}

// UpdateTotals implements salary.Repository. Only the derived fields are
// written; is_paid, paid_at and bonuses stay as they are.
func (r *salaryRepository) UpdateTotals(ctx context.Context, ms salary.MonthlySalary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_salaries
		SET day_rate = $2, present_days = $3, absent_days = $4,
			total_working_days = $5, earned_amount = $6, missed_amount = $7,
			total_amount = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		ms.ID,
		ms.DayRate,
		ms.PresentDays,
		ms.AbsentDays,
		ms.TotalWorkingDays,
		ms.EarnedAmount,
		ms.MissedAmount,
		ms.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to update monthly salary totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// MarkPaid implements salary.Repository. The row is locked so the one-way
// transition cannot race with itself.
func (r *salaryRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		var isPaid bool
		err := tx.QueryRow(ctx, `SELECT is_paid FROM monthly_salaries WHERE id = $1 FOR UPDATE`, id).Scan(&isPaid)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return salary.ErrSalaryNotFound
			}
			return fmt.Errorf("failed to lock monthly salary: %w", err)
		}
		if isPaid {
			return salary.ErrAlreadyPaid
		}

		_, err = tx.Exec(ctx, `
			UPDATE monthly_salaries
			SET is_paid = true, paid_at = $2, updated_at = NOW()
			WHERE id = $1
		`, id, paidAt)
		if err != nil {
			return fmt.Errorf("failed to mark monthly salary paid: %w", err)
		}
		return nil
	})
}

// List implements salary.Repository.
func (r *salaryRepository) List(ctx context.Context, filter salary.Filter) ([]salary.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", argPos))
		args = append(args, *filter.WorkerID)
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("month = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.IsPaid != nil {
		conditions = append(conditions, fmt.Sprintf("is_paid = $%d", argPos))
		args = append(args, *filter.IsPaid)
		argPos++
	}

	query := `SELECT ` + monthlySalaryColumns + ` FROM monthly_salaries`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY year DESC, month, worker_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly salaries: %w", err)
	}
	defer rows.Close()

	var records []salary.MonthlySalary
	for rows.Next() {
		ms, err := scanMonthlySalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly salary: %w", err)
		}
		records = append(records, ms)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly salaries: %w", err)
	}
	return records, nil
}

func scanMonthlySalary(row pgx.Row) (salary.MonthlySalary, error) {
	var ms salary.MonthlySalary
	err := row.Scan(
		&ms.ID, &ms.WorkerID, &ms.Month, &ms.Year, &ms.DayRate,
		&ms.PresentDays, &ms.AbsentDays, &ms.TotalWorkingDays,
		&ms.EarnedAmount, &ms.MissedAmount, &ms.Bonuses, &ms.TotalAmount,
		&ms.IsPaid, &ms.PaidAt, &ms.CreatedAt, &ms.UpdatedAt,
	)
	return ms, err
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

const attendanceColumns = `
	id, worker_id, date, check_in, check_out, hours_worked, overtime,
	status, auto_marked, notes, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository. The unique index on
// (worker_id, date) rejects a second record for the same day.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			worker_id, date, check_in, check_out, hours_worked, overtime,
			status, auto_marked, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.WorkerID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.HoursWorked,
		att.Overtime,
		att.Status,
		att.AutoMarked,
		att.Notes,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByWorkerAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE worker_id = $1 AND date = $2
		LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by worker and date: %w", err)
	}

	return &att, nil
}

// ListByWorkerAndRange implements attendance.Repository.
func (r *attendanceRepository) ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE worker_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", argPos))
		args = append(args, *filter.WorkerID)
		argPos++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argPos))
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argPos))
		args = append(args, *filter.To)
		argPos++
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendances`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, worker_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return scanAttendances(rows)
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, hours_worked = $4, overtime = $5,
			status = $6, auto_marked = $7, notes = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID,
		att.CheckIn,
		att.CheckOut,
		att.HoursWorked,
		att.Overtime,
		att.Status,
		att.AutoMarked,
		att.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.WorkerID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.HoursWorked, &att.Overtime, &att.Status, &att.AutoMarked,
		&att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

func scanAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendances: %w", err)
	}
	return records, nil
}

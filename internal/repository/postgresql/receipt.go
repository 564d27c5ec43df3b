package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type receiptRepository struct {
	db *database.DB
}

func NewReceiptRepository(db *database.DB) salary.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create implements salary.ReceiptRepository. Receipts are append-only and
// deliberately not deduplicated.
func (r *receiptRepository) Create(ctx context.Context, receipt salary.EarningReceipt) (salary.EarningReceipt, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO earning_receipts (id, worker_id, date, day_rate, amount, kind, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		receipt.ID,
		receipt.WorkerID,
		receipt.Date,
		receipt.DayRate,
		receipt.Amount,
		receipt.Kind,
		receipt.Description,
	).Scan(&receipt.CreatedAt)
	if err != nil {
		return salary.EarningReceipt{}, fmt.Errorf("failed to create earning receipt: %w", err)
	}

	return receipt, nil
}

// List implements salary.ReceiptRepository.
func (r *receiptRepository) List(ctx context.Context, filter salary.ReceiptFilter) ([]salary.EarningReceipt, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", argPos))
		args = append(args, *filter.WorkerID)
		argPos++
	}
	if filter.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argPos))
		args = append(args, *filter.Kind)
		argPos++
	}

	query := `
		SELECT id, worker_id, date, day_rate, amount, kind, description, created_at
		FROM earning_receipts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list earning receipts: %w", err)
	}
	defer rows.Close()

	var receipts []salary.EarningReceipt
	for rows.Next() {
		var receipt salary.EarningReceipt
		if err := rows.Scan(
			&receipt.ID, &receipt.WorkerID, &receipt.Date, &receipt.DayRate,
			&receipt.Amount, &receipt.Kind, &receipt.Description, &receipt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan earning receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read earning receipts: %w", err)
	}
	return receipts, nil
}

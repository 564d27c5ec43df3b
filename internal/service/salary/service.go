package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// Engine reconciles monthly salary aggregates with the attendance records
// they are derived from. It exclusively owns writes to the aggregates;
// attendance records are read-only source data here, except for the
// sweep-generated absences the engine creates itself.
type Engine struct {
	calc           *Calculator
	workerRepo     worker.Repository
	attendanceRepo attendance.Repository
	salaryRepo     salary.Repository
	receiptRepo    salary.ReceiptRepository
}

func NewEngine(
	calc *Calculator,
	workerRepo worker.Repository,
	attendanceRepo attendance.Repository,
	salaryRepo salary.Repository,
	receiptRepo salary.ReceiptRepository,
) *Engine {
	return &Engine{
		calc:           calc,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		salaryRepo:     salaryRepo,
		receiptRepo:    receiptRepo,
	}
}

// SweepResult summarizes one absence sweep for the job log.
type SweepResult struct {
	WorkersChecked  int
	AbsencesCreated int
	Failures        int
}

// NotifyAttendanceChanged recomputes the aggregate for the month containing
// date and overwrites its derived fields; the aggregate is created unpaid on
// first touch. When status is present a daily earning receipt is appended;
// receipts are not deduplicated, so redundant present notifications produce
// duplicate receipts.
//
// Recompute failures are returned to the direct caller, which treats them as
// non-fatal by policy: the attendance write that triggered the recompute must
// succeed regardless.
func (e *Engine) NotifyAttendanceChanged(ctx context.Context, workerID string, date time.Time, status attendance.Status) error {
	monthName := salary.MonthName(date.Month())
	year := date.Year()

	agg, err := e.recompute(ctx, workerID, monthName, year)
	if err != nil {
		return err
	}

	if status == attendance.StatusPresent {
		receipt := salary.EarningReceipt{
			ID:          uuid.NewString(),
			WorkerID:    workerID,
			Date:        attendance.DateOf(date),
			DayRate:     agg.DayRate,
			Amount:      agg.DayRate,
			Kind:        salary.ReceiptKindDaily,
			Description: fmt.Sprintf("Day credited for %s", attendance.DateOf(date).Format("2006-01-02")),
		}
		if _, err := e.receiptRepo.Create(ctx, receipt); err != nil {
			return fmt.Errorf("failed to append earning receipt: %w", err)
		}
	}

	return nil
}

// recompute rebuilds the aggregate's derived fields from scratch and upserts
// them. is_paid, paid_at and bonuses are never touched here; the total is
// earned plus whatever bonuses the aggregate already carries.
func (e *Engine) recompute(ctx context.Context, workerID, monthName string, year int) (salary.MonthlySalary, error) {
	calc := e.calc.Calculate(ctx, workerID, monthName, year)

	existing, err := e.salaryRepo.GetByWorkerPeriod(ctx, workerID, monthName, year)
	if err != nil {
		if !errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.MonthlySalary{}, fmt.Errorf("failed to load monthly salary: %w", err)
		}
		created, err := e.salaryRepo.Create(ctx, newAggregate(workerID, monthName, year, calc))
		if err != nil {
			return salary.MonthlySalary{}, fmt.Errorf("failed to create monthly salary: %w", err)
		}
		return created, nil
	}

	existing.DayRate = calc.DayRate
	existing.PresentDays = calc.PresentDays
	existing.AbsentDays = calc.AbsentDays
	existing.TotalWorkingDays = calc.TotalWorkingDays
	existing.EarnedAmount = calc.EarnedAmount
	existing.MissedAmount = calc.MissedAmount
	existing.TotalAmount = calc.EarnedAmount.Add(existing.Bonuses)

	if err := e.salaryRepo.UpdateTotals(ctx, existing); err != nil {
		return salary.MonthlySalary{}, fmt.Errorf("failed to update monthly salary: %w", err)
	}
	return existing, nil
}

func newAggregate(workerID, monthName string, year int, calc salary.Calculation) salary.MonthlySalary {
	return salary.MonthlySalary{
		ID:               uuid.NewString(),
		WorkerID:         workerID,
		Month:            monthName,
		Year:             year,
		DayRate:          calc.DayRate,
		PresentDays:      calc.PresentDays,
		AbsentDays:       calc.AbsentDays,
		TotalWorkingDays: calc.TotalWorkingDays,
		EarnedAmount:     calc.EarnedAmount,
		MissedAmount:     calc.MissedAmount,
		Bonuses:          decimal.Zero,
		TotalAmount:      calc.TotalAmount,
		IsPaid:           false,
	}
}

// SweepAbsences fabricates an auto-marked absence for every active worker
// with role "worker" that has no attendance record for asOf, then recomputes
// the affected month. Per-worker faults are logged and skipped so one bad
// row cannot abort the sweep.
func (e *Engine) SweepAbsences(ctx context.Context, asOf time.Time) (SweepResult, error) {
	workers, err := e.workerRepo.ListActive(ctx, worker.RoleWorker)
	if err != nil {
		return SweepResult{}, fmt.Errorf("failed to list active workers: %w", err)
	}

	day := attendance.DateOf(asOf)
	result := SweepResult{WorkersChecked: len(workers)}

	for _, w := range workers {
		existing, err := e.attendanceRepo.GetByWorkerAndDate(ctx, w.ID, day)
		if err != nil {
			slog.Error("Sweep: attendance lookup failed", "worker_id", w.ID, "date", day, "error", err)
			result.Failures++
			continue
		}
		if existing != nil {
			continue
		}

		absent := attendance.Attendance{
			WorkerID:    w.ID,
			Date:        day,
			Status:      attendance.StatusAbsent,
			AutoMarked:  true,
			HoursWorked: 0,
			Overtime:    0,
		}
		if _, err := e.attendanceRepo.Create(ctx, absent); err != nil {
			// A concurrent write for the same (worker, day) loses to the
			// unique index; the day is covered either way.
			slog.Error("Sweep: failed to create absence record", "worker_id", w.ID, "date", day, "error", err)
			result.Failures++
			continue
		}

		if err := e.NotifyAttendanceChanged(ctx, w.ID, day, attendance.StatusAbsent); err != nil {
			slog.Error("Sweep: salary recompute failed", "worker_id", w.ID, "date", day, "error", err)
			result.Failures++
			continue
		}
		result.AbsencesCreated++
	}

	return result, nil
}

// GenerateMonthlyBatch creates aggregates for every active worker that has
// none for the period yet. Existing aggregates are left untouched, so the
// operation only fills gaps and is idempotent.
func (e *Engine) GenerateMonthlyBatch(ctx context.Context, monthName string, year int) (int, error) {
	workers, err := e.workerRepo.ListActive(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list active workers: %w", err)
	}

	created := 0
	for _, w := range workers {
		_, err := e.salaryRepo.GetByWorkerPeriod(ctx, w.ID, monthName, year)
		if err == nil {
			continue
		}
		if !errors.Is(err, salary.ErrSalaryNotFound) {
			slog.Error("Monthly generation: salary lookup failed", "worker_id", w.ID, "error", err)
			continue
		}

		calc := e.calc.Calculate(ctx, w.ID, monthName, year)
		if _, err := e.salaryRepo.Create(ctx, newAggregate(w.ID, monthName, year, calc)); err != nil {
			slog.Error("Monthly generation: failed to create monthly salary", "worker_id", w.ID, "error", err)
			continue
		}
		created++
	}

	return created, nil
}

// Checkout fetches the period's aggregate, computing and creating it first
// when absent, and appends one consolidated monthly receipt describing the
// breakdown.
func (e *Engine) Checkout(ctx context.Context, workerID, monthName string, year int) (salary.MonthlySalary, salary.EarningReceipt, error) {
	agg, err := e.salaryRepo.GetByWorkerPeriod(ctx, workerID, monthName, year)
	if err != nil {
		if !errors.Is(err, salary.ErrSalaryNotFound) {
			return salary.MonthlySalary{}, salary.EarningReceipt{}, fmt.Errorf("failed to load monthly salary: %w", err)
		}
		calc := e.calc.Calculate(ctx, workerID, monthName, year)
		agg, err = e.salaryRepo.Create(ctx, newAggregate(workerID, monthName, year, calc))
		if err != nil {
			return salary.MonthlySalary{}, salary.EarningReceipt{}, fmt.Errorf("failed to create monthly salary: %w", err)
		}
	}

	receipt := salary.EarningReceipt{
		ID:       uuid.NewString(),
		WorkerID: workerID,
		Date:     attendance.DateOf(time.Now()),
		DayRate:  agg.DayRate,
		Amount:   agg.TotalAmount,
		Kind:     salary.ReceiptKindMonthly,
		Description: fmt.Sprintf(
			"%s %d checkout: %d present day(s) x %s earned %s; %d absent day(s), deductions %s; bonuses %s; total %s",
			agg.Month, agg.Year,
			agg.PresentDays, agg.DayRate.String(), agg.EarnedAmount.String(),
			agg.AbsentDays, agg.MissedAmount.String(),
			agg.Bonuses.String(), agg.TotalAmount.String(),
		),
	}
	created, err := e.receiptRepo.Create(ctx, receipt)
	if err != nil {
		return salary.MonthlySalary{}, salary.EarningReceipt{}, fmt.Errorf("failed to append checkout receipt: %w", err)
	}

	return agg, created, nil
}

// MarkPaid transitions an aggregate to paid. The transition is one-way and
// this is the one accrual path that surfaces failure to its caller, since it
// is a direct admin request rather than a side effect of another write.
func (e *Engine) MarkPaid(ctx context.Context, aggregateID string) (salary.MonthlySalary, error) {
	if err := e.salaryRepo.MarkPaid(ctx, aggregateID, time.Now().UTC()); err != nil {
		return salary.MonthlySalary{}, err
	}
	return e.salaryRepo.GetByID(ctx, aggregateID)
}

// Get returns a single aggregate by id.
func (e *Engine) Get(ctx context.Context, aggregateID string) (salary.MonthlySalary, error) {
	return e.salaryRepo.GetByID(ctx, aggregateID)
}

// List returns aggregates matching the filter.
func (e *Engine) List(ctx context.Context, filter salary.Filter) ([]salary.MonthlySalary, error) {
	return e.salaryRepo.List(ctx, filter)
}

// ListReceipts returns receipts matching the filter, newest first.
func (e *Engine) ListReceipts(ctx context.Context, filter salary.ReceiptFilter) ([]salary.EarningReceipt, error) {
	return e.receiptRepo.List(ctx, filter)
}

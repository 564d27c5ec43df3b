package salary

import (
	"context"
	"errors"
	"log/slog"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// Calculator recomputes one worker's month from the attendance records for
// that month. The result is a pure function of the current record set, which
// is what makes recomputation idempotent and safe against retries.
type Calculator struct {
	workerRepo     worker.Repository
	attendanceRepo attendance.Repository
}

func NewCalculator(workerRepo worker.Repository, attendanceRepo attendance.Repository) *Calculator {
	return &Calculator{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Calculate never fails its caller: an unknown worker or a persistence fault
// degrades to an all-zero result so the attendance write that triggered the
// recompute can still proceed.
func (c *Calculator) Calculate(ctx context.Context, workerID, monthName string, year int) salary.Calculation {
	w, err := c.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if !errors.Is(err, worker.ErrWorkerNotFound) {
			slog.Error("Salary calculation: worker lookup failed", "worker_id", workerID, "error", err)
		}
		return salary.ZeroCalculation()
	}

	month := salary.MonthByName(monthName)
	from, to := salary.MonthBounds(year, month)

	records, err := c.attendanceRepo.ListByWorkerAndRange(ctx, workerID, from, to)
	if err != nil {
		slog.Error("Salary calculation: attendance lookup failed",
			"worker_id", workerID, "month", monthName, "year", year, "error", err)
		return salary.ZeroCalculation()
	}

	dayRate := w.DayRate
	if dayRate.IsNegative() {
		dayRate = decimal.Zero
	}

	presentDays := 0
	absentDays := 0
	for _, r := range records {
		// "late" counts toward neither tally.
		switch r.Status {
		case attendance.StatusPresent:
			presentDays++
		case attendance.StatusAbsent:
			absentDays++
		}
	}

	earned := dayRate.Mul(decimal.NewFromInt(int64(presentDays)))
	missed := dayRate.Mul(decimal.NewFromInt(int64(absentDays)))
	if earned.IsNegative() {
		earned = decimal.Zero
	}
	if missed.IsNegative() {
		missed = decimal.Zero
	}

	return salary.Calculation{
		DayRate:          dayRate,
		PresentDays:      presentDays,
		AbsentDays:       absentDays,
		TotalWorkingDays: salary.WorkingDays(year, month),
		EarnedAmount:     earned,
		// Missed amount is exposed as deductions, not subtracted from the
		// total a second time.
		MissedAmount: missed,
		TotalAmount:  earned,
		Records:      records,
	}
}

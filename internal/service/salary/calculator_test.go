package salary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
)

// seedFebruary2023 inserts one record per weekday of February 2023 (20
// weekdays) for the worker: the first `present` weekdays as present, the
// next `absent` as absent, then stops.
func seedFebruary2023(t *testing.T, repo *fakeAttendanceRepo, workerID string, present, absent int) {
	t.Helper()

	day := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == time.February && present+absent > 0 {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			status := attendance.StatusPresent
			if present > 0 {
				present--
			} else {
				status = attendance.StatusAbsent
				absent--
			}
			_, err := repo.Create(context.Background(), attendance.Attendance{
				WorkerID: workerID,
				Date:     day,
				Status:   status,
			})
			require.NoError(t, err)
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestCalculatorComputesMonthFromRecords(t *testing.T) {
	workers := newFakeWorkerRepo()
	attendances := newFakeAttendanceRepo()
	calc := NewCalculator(workers, attendances)

	w := workers.add(worker.Worker{
		FullName: "Ana Prasetyo",
		Role:     worker.RoleWorker,
		DayRate:  decimal.NewFromInt(50),
		IsActive: true,
	})
	seedFebruary2023(t, attendances, w.ID, 18, 2)

	result := calc.Calculate(context.Background(), w.ID, "February", 2023)

	assert.Equal(t, 18, result.PresentDays)
	assert.Equal(t, 2, result.AbsentDays)
	assert.Equal(t, 20, result.TotalWorkingDays)
	assert.Equal(t, "900", result.EarnedAmount.String())
	assert.Equal(t, "100", result.MissedAmount.String())
	assert.Equal(t, "900", result.TotalAmount.String())
	assert.Len(t, result.Records, 20)
}

func TestCalculatorIgnoresLateRecords(t *testing.T) {
	workers := newFakeWorkerRepo()
	attendances := newFakeAttendanceRepo()
	calc := NewCalculator(workers, attendances)

	w := workers.add(worker.Worker{
		FullName: "Budi Santoso",
		Role:     worker.RoleWorker,
		DayRate:  decimal.NewFromInt(100),
		IsActive: true,
	})

	days := []struct {
		day    int
		status attendance.Status
	}{
		{1, attendance.StatusPresent},
		{2, attendance.StatusLate},
		{3, attendance.StatusAbsent},
		{6, attendance.StatusLate},
	}
	for _, d := range days {
		_, err := attendances.Create(context.Background(), attendance.Attendance{
			WorkerID: w.ID,
			Date:     time.Date(2023, time.February, d.day, 0, 0, 0, 0, time.UTC),
			Status:   d.status,
		})
		require.NoError(t, err)
	}

	result := calc.Calculate(context.Background(), w.ID, "February", 2023)

	assert.Equal(t, 1, result.PresentDays)
	assert.Equal(t, 1, result.AbsentDays)
	assert.Equal(t, "100", result.EarnedAmount.String())
	assert.Equal(t, "100", result.MissedAmount.String())
}

func TestCalculatorUnknownWorkerYieldsZero(t *testing.T) {
	calc := NewCalculator(newFakeWorkerRepo(), newFakeAttendanceRepo())

	result := calc.Calculate(context.Background(), "missing-worker", "February", 2023)

	assert.Equal(t, 0, result.PresentDays)
	assert.Equal(t, 0, result.AbsentDays)
	assert.Equal(t, 0, result.TotalWorkingDays)
	assert.True(t, result.DayRate.IsZero())
	assert.True(t, result.EarnedAmount.IsZero())
	assert.True(t, result.MissedAmount.IsZero())
	assert.True(t, result.TotalAmount.IsZero())
}

func TestCalculatorRepositoryFaultYieldsZero(t *testing.T) {
	workers := newFakeWorkerRepo()
	attendances := newFakeAttendanceRepo()
	calc := NewCalculator(workers, attendances)

	w := workers.add(worker.Worker{
		FullName: "Citra Dewi",
		Role:     worker.RoleWorker,
		DayRate:  decimal.NewFromInt(75),
		IsActive: true,
	})
	attendances.listErr = errors.New("connection reset")

	result := calc.Calculate(context.Background(), w.ID, "February", 2023)

	assert.True(t, result.EarnedAmount.IsZero())
	assert.Equal(t, 0, result.TotalWorkingDays)
}

func TestCalculatorClampsNegativeDayRate(t *testing.T) {
	workers := newFakeWorkerRepo()
	attendances := newFakeAttendanceRepo()
	calc := NewCalculator(workers, attendances)

	w := workers.add(worker.Worker{
		FullName: "Dian Kusuma",
		Role:     worker.RoleWorker,
		DayRate:  decimal.NewFromInt(-40),
		IsActive: true,
	})
	seedFebruary2023(t, attendances, w.ID, 3, 1)

	result := calc.Calculate(context.Background(), w.ID, "February", 2023)

	assert.True(t, result.DayRate.IsZero())
	assert.True(t, result.EarnedAmount.IsZero())
	assert.True(t, result.MissedAmount.IsZero())
	assert.Equal(t, 3, result.PresentDays)
}

func TestCalculatorUnknownMonthFallsBackToJanuary(t *testing.T) {
	workers := newFakeWorkerRepo()
	attendances := newFakeAttendanceRepo()
	calc := NewCalculator(workers, attendances)

	w := workers.add(worker.Worker{
		FullName: "Eko Wijaya",
		Role:     worker.RoleWorker,
		DayRate:  decimal.NewFromInt(50),
		IsActive: true,
	})
	_, err := attendances.Create(context.Background(), attendance.Attendance{
		WorkerID: w.ID,
		Date:     time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		Status:   attendance.StatusPresent,
	})
	require.NoError(t, err)

	result := calc.Calculate(context.Background(), w.ID, "Smarch", 2024)

	assert.Equal(t, 1, result.PresentDays)
	assert.Equal(t, 23, result.TotalWorkingDays) // January 2024
}

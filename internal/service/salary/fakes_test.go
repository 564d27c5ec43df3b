package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
)

// In-memory repository fakes so the accrual properties can be exercised
// hermetically, without a test database.

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
}

func (f *fakeWorkerRepo) add(w worker.Worker) worker.Worker {
	if w.ID == "" {
		w.ID = fmt.Sprintf("worker-%d", len(f.workers)+1)
	}
	f.workers[w.ID] = w
	return w
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return f.add(w), nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, w worker.Worker) error {
	if _, ok := f.workers[w.ID]; !ok {
		return worker.ErrWorkerNotFound
	}
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkerRepo) ListActive(ctx context.Context, role worker.Role) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range f.workers {
		if !w.IsActive {
			continue
		}
		if role != "" && w.Role != role {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
	listErr error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.WorkerID == att.WorkerID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceExists
		}
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[att.ID] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.WorkerID == workerID && att.Date.Equal(date) {
			out := att
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]attendance.Attendance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.WorkerID != workerID {
			continue
		}
		if att.Date.Before(from) || att.Date.After(to) {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if filter.WorkerID != nil && att.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.From != nil && att.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && att.Date.After(*filter.To) {
			continue
		}
		out = append(out, att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[att.ID] = att
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeSalaryRepo struct {
	aggregates map[string]salary.MonthlySalary
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{aggregates: make(map[string]salary.MonthlySalary)}
}

func (f *fakeSalaryRepo) Create(ctx context.Context, ms salary.MonthlySalary) (salary.MonthlySalary, error) {
	for _, existing := range f.aggregates {
		if existing.WorkerID == ms.WorkerID && existing.Month == ms.Month && existing.Year == ms.Year {
			return salary.MonthlySalary{}, salary.ErrSalaryExists
		}
	}
	if ms.ID == "" {
		ms.ID = fmt.Sprintf("sal-%d", len(f.aggregates)+1)
	}
	f.aggregates[ms.ID] = ms
	return ms, nil
}

func (f *fakeSalaryRepo) GetByID(ctx context.Context, id string) (salary.MonthlySalary, error) {
	ms, ok := f.aggregates[id]
	if !ok {
		return salary.MonthlySalary{}, salary.ErrSalaryNotFound
	}
	return ms, nil
}

func (f *fakeSalaryRepo) GetByWorkerPeriod(ctx context.Context, workerID, month string, year int) (salary.MonthlySalary, error) {
	for _, ms := range f.aggregates {
		if ms.WorkerID == workerID && ms.Month == month && ms.Year == year {
			return ms, nil
		}
	}
	return salary.MonthlySalary{}, salary.ErrSalaryNotFound
}

func (f *fakeSalaryRepo) UpdateTotals(ctx context.Context, ms salary.MonthlySalary) error {
	existing, ok := f.aggregates[ms.ID]
	if !ok {
		return salary.ErrSalaryNotFound
	}
	existing.DayRate = ms.DayRate
	existing.PresentDays = ms.PresentDays
	existing.AbsentDays = ms.AbsentDays
	existing.TotalWorkingDays = ms.TotalWorkingDays
	existing.EarnedAmount = ms.EarnedAmount
	existing.MissedAmount = ms.MissedAmount
	existing.TotalAmount = ms.TotalAmount
	f.aggregates[ms.ID] = existing
	return nil
}

func (f *fakeSalaryRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	ms, ok := f.aggregates[id]
	if !ok {
		return salary.ErrSalaryNotFound
	}
	if ms.IsPaid {
		return salary.ErrAlreadyPaid
	}
	ms.IsPaid = true
	ms.PaidAt = &paidAt
	f.aggregates[id] = ms
	return nil
}

func (f *fakeSalaryRepo) List(ctx context.Context, filter salary.Filter) ([]salary.MonthlySalary, error) {
	var out []salary.MonthlySalary
	for _, ms := range f.aggregates {
		if filter.WorkerID != nil && ms.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.Month != nil && ms.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && ms.Year != *filter.Year {
			continue
		}
		if filter.IsPaid != nil && ms.IsPaid != *filter.IsPaid {
			continue
		}
		out = append(out, ms)
	}
	return out, nil
}

type fakeReceiptRepo struct {
	receipts []salary.EarningReceipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{}
}

func (f *fakeReceiptRepo) Create(ctx context.Context, r salary.EarningReceipt) (salary.EarningReceipt, error) {
	if r.ID == "" {
		r.ID = fmt.Sprintf("rcpt-%d", len(f.receipts)+1)
	}
	r.CreatedAt = time.Now()
	f.receipts = append(f.receipts, r)
	return r, nil
}

func (f *fakeReceiptRepo) List(ctx context.Context, filter salary.ReceiptFilter) ([]salary.EarningReceipt, error) {
	var out []salary.EarningReceipt
	for _, r := range f.receipts {
		if filter.WorkerID != nil && r.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.Kind != nil && r.Kind != *filter.Kind {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

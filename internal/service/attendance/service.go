package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

// Recomputer is the accrual engine's inbound trigger. Implementations must
// be safe to call synchronously after every attendance mutation.
type Recomputer interface {
	NotifyAttendanceChanged(ctx context.Context, workerID string, date time.Time, status attendance.Status) error
}

type Service struct {
	attendanceRepo attendance.Repository
	workerRepo     worker.Repository
	recomputer     Recomputer
}

func NewService(attendanceRepo attendance.Repository, workerRepo worker.Repository, recomputer Recomputer) *Service {
	return &Service{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		recomputer:     recomputer,
	}
}

// notifyChanged triggers the salary recompute for a mutated day. Failure is
// non-fatal by policy: the attendance write has already succeeded and must
// appear successful to the caller, so the error is logged and discarded.
func (s *Service) notifyChanged(ctx context.Context, workerID string, date time.Time, status attendance.Status) {
	if err := s.recomputer.NotifyAttendanceChanged(ctx, workerID, date, status); err != nil {
		slog.Error("Salary recompute failed after attendance change",
			"worker_id", workerID,
			"date", date.Format("2006-01-02"),
			"status", status,
			"error", err)
	}
}

func (s *Service) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !w.IsActive {
		return attendance.AttendanceResponse{}, worker.ErrWorkerInactive
	}

	now := time.Now().UTC()
	today := attendance.DateOf(now)

	existing, err := s.attendanceRepo.GetByWorkerAndDate(ctx, w.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Attendance{
		WorkerID: w.ID,
		Date:     today,
		CheckIn:  &now,
		Status:   attendance.StatusPresent,
		Notes:    req.Notes,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.notifyChanged(ctx, created.WorkerID, created.Date, created.Status)
	return attendance.NewAttendanceResponse(created), nil
}

func (s *Service) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	today := attendance.DateOf(now)

	record, err := s.attendanceRepo.GetByWorkerAndDate(ctx, req.WorkerID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &now
	record.DeriveHours()

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.notifyChanged(ctx, record.WorkerID, record.Date, record.Status)
	return attendance.NewAttendanceResponse(*record), nil
}

// Create is the admin path for manual records and corrections of past days.
func (s *Service) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	day := attendance.DateOf(date)

	existing, err := s.attendanceRepo.GetByWorkerAndDate(ctx, req.WorkerID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
	}

	record := attendance.Attendance{
		WorkerID: req.WorkerID,
		Date:     day,
		Status:   attendance.Status(req.Status),
		Notes:    req.Notes,
	}
	if req.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*req.CheckIn)
		t = t.UTC()
		record.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		t = t.UTC()
		record.CheckOut = &t
	}
	record.DeriveHours()

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.notifyChanged(ctx, created.WorkerID, created.Date, created.Status)
	return attendance.NewAttendanceResponse(created), nil
}

func (s *Service) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*req.CheckIn)
		t = t.UTC()
		record.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*req.CheckOut)
		t = t.UTC()
		record.CheckOut = &t
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	record.DeriveHours()

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	s.notifyChanged(ctx, record.WorkerID, record.Date, record.Status)
	return attendance.NewAttendanceResponse(record), nil
}

// Delete removes the record first so the recompute reads a world where the
// day never existed.
func (s *Service) Delete(ctx context.Context, id string) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	s.notifyChanged(ctx, record.WorkerID, record.Date, attendance.StatusDeleted)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(record), nil
}

func (s *Service) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses, nil
}

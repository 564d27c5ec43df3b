package cron

import (
	"context"
	"log/slog"
	"time"

	salaryService "github.com/paydesk/payroll-backend-go/internal/service/salary"
)

// SalaryJobs owns the recurring accrual work: the daily absence sweep that
// fabricates absence records for workers with no attendance entry.
type SalaryJobs struct {
	engine    *salaryService.Engine
	location  *time.Location
	sweepHour int
}

func NewSalaryJobs(engine *salaryService.Engine, location *time.Location, sweepHour int) *SalaryJobs {
	if location == nil {
		location = time.UTC
	}
	return &SalaryJobs{
		engine:    engine,
		location:  location,
		sweepHour: sweepHour,
	}
}

func (j *SalaryJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_workers", 1*time.Hour, j.MarkAbsentWorkers)
}

// MarkAbsentWorkers runs hourly but only acts at the configured local hour,
// so each day gets exactly one sweep.
func (j *SalaryJobs) MarkAbsentWorkers(ctx context.Context) error {
	now := time.Now().In(j.location)
	if now.Hour() != j.sweepHour {
		return nil
	}

	slog.Info("Cron: Starting absence sweep", "as_of", now.Format("2006-01-02"))

	result, err := j.engine.SweepAbsences(ctx, now)
	if err != nil {
		return err
	}

	slog.Info("Cron: Absence sweep completed",
		"workers_checked", result.WorkersChecked,
		"absences_created", result.AbsencesCreated,
		"failures", result.Failures)
	return nil
}

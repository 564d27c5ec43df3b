package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/config"
	appHTTP "github.com/paydesk/payroll-backend-go/internal/handler/http"
	"github.com/paydesk/payroll-backend-go/internal/pkg/cron"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paydesk/payroll-backend-go/internal/service/attendance"
	salaryService "github.com/paydesk/payroll-backend-go/internal/service/salary"
	workerService "github.com/paydesk/payroll-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	receiptRepo := postgresql.NewReceiptRepository(db)

	calculator := salaryService.NewCalculator(workerRepo, attendanceRepo)
	engine := salaryService.NewEngine(calculator, workerRepo, attendanceRepo, salaryRepo, receiptRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, workerRepo, engine)
	workerSvc := workerService.NewService(workerRepo)

	sweepLocation, err := time.LoadLocation(cfg.Sweep.Timezone)
	if err != nil {
		log.Fatal("Invalid SWEEP_TIMEZONE: ", cfg.Sweep.Timezone)
	}

	scheduler := cron.NewScheduler()
	salaryJobs := cron.NewSalaryJobs(engine, sweepLocation, cfg.Sweep.Hour)
	salaryJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	salaryHandler := appHTTP.NewSalaryHandler(engine)

	router := appHTTP.NewRouter(cfg.App.Env, workerHandler, attendanceHandler, salaryHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}

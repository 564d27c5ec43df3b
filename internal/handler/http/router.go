package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	env string,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	salaryHandler SalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paydesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RoleHeader},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendances", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(worker.RoleWorker, worker.RoleAdmin))
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(worker.RoleAdmin))
				r.Post("/", attendanceHandler.Create)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})
		})

		r.Route("/workers", func(r chi.Router) {
			r.Use(middleware.RequireRole(worker.RoleAdmin))
			r.Post("/", workerHandler.Create)
			r.Get("/", workerHandler.List)
			r.Get("/{id}", workerHandler.Get)
			r.Put("/{id}", workerHandler.Update)
		})

		r.Route("/salaries", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(worker.RoleWorker, worker.RoleAdmin))
				r.Post("/checkout", salaryHandler.Checkout)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(worker.RoleAdmin))
				r.Post("/generate", salaryHandler.Generate)
				r.Get("/", salaryHandler.List)
				r.Get("/{id}", salaryHandler.Get)
				r.Post("/{id}/pay", salaryHandler.MarkPaid)
			})
		})

		r.Route("/receipts", func(r chi.Router) {
			r.Use(middleware.RequireRole(worker.RoleWorker, worker.RoleAdmin))
			r.Get("/", salaryHandler.ListReceipts)
		})
	})

	return r
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/salary"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
	salaryService "github.com/paydesk/payroll-backend-go/internal/service/salary"
)

type SalaryHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListReceipts(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	engine *salaryService.Engine
}

func NewSalaryHandler(engine *salaryService.Engine) SalaryHandler {
	return &salaryHandlerImpl{engine: engine}
}

func (h *salaryHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req salary.GenerateMonthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.engine.GenerateMonthlyBatch(r.Context(), req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly salaries generated", map[string]int{"created": created})
}

func (h *salaryHandlerImpl) Checkout(w http.ResponseWriter, r *http.Request) {
	var req salary.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	agg, receipt, err := h.engine.Checkout(r.Context(), req.WorkerID, req.Month, req.Year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"salary":  salary.NewMonthlySalaryResponse(agg),
		"receipt": salary.NewReceiptResponse(receipt),
	})
}

func (h *salaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	agg, err := h.engine.MarkPaid(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly salary marked paid", salary.NewMonthlySalaryResponse(agg))
}

func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	agg, err := h.engine.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, salary.NewMonthlySalaryResponse(agg))
}

func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter salary.Filter

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid 'year'", nil)
			return
		}
		filter.Year = &year
	}
	if paidStr := r.URL.Query().Get("is_paid"); paidStr != "" {
		isPaid, err := strconv.ParseBool(paidStr)
		if err != nil {
			response.BadRequest(w, "Invalid 'is_paid'", nil)
			return
		}
		filter.IsPaid = &isPaid
	}

	records, err := h.engine.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]salary.MonthlySalaryResponse, 0, len(records))
	for _, ms := range records {
		responses = append(responses, salary.NewMonthlySalaryResponse(ms))
	}
	response.Success(w, responses)
}

func (h *salaryHandlerImpl) ListReceipts(w http.ResponseWriter, r *http.Request) {
	var filter salary.ReceiptFilter

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind := salary.ReceiptKind(kindStr)
		if kind != salary.ReceiptKindDaily && kind != salary.ReceiptKindMonthly {
			response.BadRequest(w, "Invalid 'kind'", nil)
			return
		}
		filter.Kind = &kind
	}

	receipts, err := h.engine.ListReceipts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]salary.ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		responses = append(responses, salary.NewReceiptResponse(receipt))
	}
	response.Success(w, responses)
}

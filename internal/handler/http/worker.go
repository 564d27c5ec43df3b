package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/handler/http/response"
	workerService "github.com/paydesk/payroll-backend-go/internal/service/worker"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService *workerService.Service
}

func NewWorkerHandler(svc *workerService.Service) WorkerHandler {
	return &workerHandlerImpl{workerService: svc}
}

func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created", result)
}

func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workerService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workerService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.workerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

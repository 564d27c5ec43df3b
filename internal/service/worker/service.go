package worker

import (
	"context"
	"fmt"

	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
)

type Service struct {
	workerRepo worker.Repository
}

func NewService(workerRepo worker.Repository) *Service {
	return &Service{workerRepo: workerRepo}
}

func (s *Service) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		FullName: req.FullName,
		Role:     worker.Role(req.Role),
		DayRate:  req.DayRate,
		IsActive: true,
	})
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker.NewWorkerResponse(created), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

func (s *Service) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.FullName != nil {
		w.FullName = *req.FullName
	}
	if req.DayRate != nil {
		w.DayRate = *req.DayRate
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}

	if err := s.workerRepo.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to update worker: %w", err)
	}

	return worker.NewWorkerResponse(w), nil
}

func (s *Service) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, nil
}

package worker

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/worker"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]worker.Worker)}
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	w.ID = fmt.Sprintf("worker-%d", len(f.workers)+1)
	f.workers[w.ID] = w
	return w, nil
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

func TestCreateWorkerStartsActive(t *testing.T) {
	svc := NewService(newFakeWorkerRepo())

	resp, err := svc.Create(context.Background(), worker.CreateWorkerRequest{
		FullName: "Ana Prasetyo",
		Role:     "worker",
		DayRate:  decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "worker", resp.Role)
	assert.Equal(t, "50", resp.DayRate.String())
}

func TestCreateWorkerValidation(t *testing.T) {
	svc := NewService(newFakeWorkerRepo())

	_, err := svc.Create(context.Background(), worker.CreateWorkerRequest{
		FullName: "",
		Role:     "manager",
		DayRate:  decimal.NewFromInt(-10),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
}

func TestUpdateWorkerPatchesFields(t *testing.T) {
	svc := NewService(newFakeWorkerRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, worker.CreateWorkerRequest{
		FullName: "Budi Santoso",
		Role:     "worker",
		DayRate:  decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	rate := decimal.NewFromInt(75)
	inactive := false
	resp, err := svc.Update(ctx, worker.UpdateWorkerRequest{
		ID:       created.ID,
		DayRate:  &rate,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", resp.FullName)
	assert.Equal(t, "75", resp.DayRate.String())
	assert.False(t, resp.IsActive)
}

func TestUpdateUnknownWorkerFails(t *testing.T) {
	svc := NewService(newFakeWorkerRepo())

	name := "Nobody"
	_, err := svc.Update(context.Background(), worker.UpdateWorkerRequest{ID: "missing", FullName: &name})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestListWorkers(t *testing.T) {
	svc := NewService(newFakeWorkerRepo())
	ctx := context.Background()

	for _, name := range []string{"Citra Dewi", "Dian Kusuma"} {
		_, err := svc.Create(ctx, worker.CreateWorkerRequest{
			FullName: name, Role: "worker", DayRate: decimal.NewFromInt(40),
		})
		require.NoError(t, err)
	}

	out, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

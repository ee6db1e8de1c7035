package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	serviceRepo "github.com/bethsalao/BS-BookingService/internal/infra/storage/service"
)

type fakeServiceRepo struct {
	createFn func(ctx context.Context, draft *domain.ServiceDraft) (*domain.Service, error)
	listFn   func(ctx context.Context) ([]*domain.Service, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeServiceRepo) Create(ctx context.Context, draft *domain.ServiceDraft) (*domain.Service, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, draft)
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*domain.Service, error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx)
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, id)
}

type fakeCache struct {
	invalidations int
}

func (f *fakeCache) Invalidate(ctx context.Context) {
	f.invalidations++
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validDraft() *domain.ServiceDraft {
	return &domain.ServiceDraft{
		Name:            "Coloração",
		ActiveTimeStart: 20,
		WaitTime:        30,
		ActiveTimeEnd:   15,
	}
}

func TestCreate_Success(t *testing.T) {
	cache := &fakeCache{}
	repo := &fakeServiceRepo{
		createFn: func(ctx context.Context, draft *domain.ServiceDraft) (*domain.Service, error) {
			return &domain.Service{
				ID:              "svc-1",
				Name:            draft.Name,
				ActiveTimeStart: draft.ActiveTimeStart,
				WaitTime:        draft.WaitTime,
				ActiveTimeEnd:   draft.ActiveTimeEnd,
				TotalTime:       domain.ComputeTotalTime(draft.ActiveTimeStart, draft.WaitTime, draft.ActiveTimeEnd),
			}, nil
		},
	}
	svc := NewService(repo, cache, nopLogger{})

	created, err := svc.Create(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Equal(t, "svc-1", created.ID)
	assert.Equal(t, 65, created.TotalTime)
	assert.Equal(t, 1, cache.invalidations, "catalog cache must be invalidated after create")
}

func TestCreate_ValidationErrors(t *testing.T) {
	cache := &fakeCache{}
	svc := NewService(&fakeServiceRepo{}, cache, nopLogger{})

	for name, mutate := range map[string]func(*domain.ServiceDraft){
		"empty name":      func(d *domain.ServiceDraft) { d.Name = "" },
		"negative phase":  func(d *domain.ServiceDraft) { d.WaitTime = -10 },
		"oversized phase": func(d *domain.ServiceDraft) { d.ActiveTimeStart = 481 },
		"zero duration": func(d *domain.ServiceDraft) {
			d.ActiveTimeStart = 0
			d.WaitTime = 0
			d.ActiveTimeEnd = 0
		},
	} {
		draft := validDraft()
		mutate(draft)
		_, err := svc.Create(context.Background(), draft)
		assert.ErrorIs(t, err, ErrInvalidInput, "case %q", name)
	}

	assert.Zero(t, cache.invalidations, "invalid drafts must not touch the cache")
}

func TestDelete_Success(t *testing.T) {
	cache := &fakeCache{}
	repo := &fakeServiceRepo{
		deleteFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "svc-1", id)
			return nil
		},
	}
	svc := NewService(repo, cache, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "svc-1"))
	assert.Equal(t, 1, cache.invalidations)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeServiceRepo{
		deleteFn: func(ctx context.Context, id string) error {
			return serviceRepo.ErrServiceNotFound
		},
	}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	err := svc.Delete(context.Background(), "svc-missing")

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &fakeServiceRepo{
		listFn: func(ctx context.Context) ([]*domain.Service, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(repo, &fakeCache{}, nopLogger{})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

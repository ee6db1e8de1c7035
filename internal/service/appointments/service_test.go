package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	appointmentRepo "github.com/bethsalao/BS-BookingService/internal/infra/storage/appointment"
	"github.com/bethsalao/BS-BookingService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	getByIDFn  func(ctx context.Context, id string) (*domain.Appointment, error)
	listFn     func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	cancelFn   func(ctx context.Context, id string) error
	deleteOkFn func(ctx context.Context) error
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.listFn == nil {
		panic("ListWithFilter not configured")
	}
	return f.listFn(ctx, filter)
}

func (f *fakeAppointmentRepo) Cancel(ctx context.Context, id string) error {
	if f.cancelFn == nil {
		panic("Cancel not configured")
	}
	return f.cancelFn(ctx, id)
}

func (f *fakeAppointmentRepo) DeleteAll(ctx context.Context) error {
	if f.deleteOkFn == nil {
		panic("DeleteAll not configured")
	}
	return f.deleteOkFn(ctx)
}

type fakeCatalog struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalog) List(ctx context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCancel_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return &domain.Appointment{ID: id, Status: domain.StatusConfirmed}, nil
		},
		cancelFn: func(ctx context.Context, id string) error {
			assert.Equal(t, "appt-1", id)
			return nil
		},
	}
	svc := NewService(repo, &fakeCatalog{}, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), "appt-1"))
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, &fakeCatalog{}, nopLogger{})

	err := svc.Cancel(context.Background(), "appt-missing")

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &fakeAppointmentRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Appointment, error) {
			return &domain.Appointment{ID: id, Status: domain.StatusCancelled}, nil
		},
		cancelFn: func(ctx context.Context, id string) error {
			t.Fatal("Cancel must not be called for a terminal status")
			return nil
		},
	}
	svc := NewService(repo, &fakeCatalog{}, nopLogger{})

	err := svc.Cancel(context.Background(), "appt-1")

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestList_StatusFilter(t *testing.T) {
	repo := &fakeAppointmentRepo{
		listFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, domain.StatusCancelled, *filter.Status)
			return []*domain.Appointment{
				{ID: "appt-1", Status: domain.StatusCancelled},
			}, nil
		},
	}
	svc := NewService(repo, &fakeCatalog{}, nopLogger{})

	status := "cancelled"
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "cancelled", resp.Appointments[0].Status)
}

func TestList_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, &fakeCatalog{}, nopLogger{})

	status := "pending"
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExportCSV_IncludesCancelled(t *testing.T) {
	repo := &fakeAppointmentRepo{
		listFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			assert.True(t, filter.IncludeCancelled, "export must include cancelled appointments")
			return []*domain.Appointment{
				{ClientName: "Maria Silva", ServiceID: "svc-1", Date: "2026-09-10",
					StartTime: "09:00", EndTime: "10:05", Status: domain.StatusConfirmed},
			}, nil
		},
	}
	catalog := &fakeCatalog{services: []*domain.Service{{ID: "svc-1", Name: "Coloração"}}}
	svc := NewService(repo, catalog, nopLogger{})

	csv, err := svc.ExportCSV(context.Background())

	require.NoError(t, err)
	assert.Contains(t, csv, "Maria Silva,Coloração,2026-09-10,09:00,10:05,confirmed")
}

func TestClearAll(t *testing.T) {
	called := false
	repo := &fakeAppointmentRepo{
		deleteOkFn: func(ctx context.Context) error {
			called = true
			return nil
		},
	}
	svc := NewService(repo, &fakeCatalog{}, nopLogger{})

	require.NoError(t, svc.ClearAll(context.Background()))
	assert.True(t, called)
}

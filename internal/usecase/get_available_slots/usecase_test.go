package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

type fakeAppointmentRepo struct {
	listFn func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.listFn == nil {
		panic("ListWithFilter not configured")
	}
	return f.listFn(ctx, filter)
}

type fakeCatalog struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalog) List(ctx context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testHours = domain.WorkingHours{Start: 9, End: 19}

// вторник 2026-09-08; салон закрыт по воскресеньям (weekday 0)
var (
	tuesday = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
)

func coloringService() *domain.Service {
	return &domain.Service{
		ID:              "svc-coloring",
		Name:            "Coloração",
		ActiveTimeStart: 20,
		WaitTime:        30,
		ActiveTimeEnd:   15,
		TotalTime:       65,
	}
}

func newTestUseCase(repo AppointmentRepository, catalog ServiceCatalog, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, testHours, []int{0}, nopLogger{})
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalog{}, tuesday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: "svc-coloring", Date: sunday})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalog{}, tuesday)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: "svc-coloring",
		Date:      tuesday.AddDate(0, 0, -1),
	})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &fakeCatalog{services: []*domain.Service{coloringService()}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalog, tuesday)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "svc-unknown", Date: tuesday})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalog{}, tuesday)

	_, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "svc-coloring"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotsWithConflict(t *testing.T) {
	svc := coloringService()
	catalog := &fakeCatalog{services: []*domain.Service{svc}}
	repo := &fakeAppointmentRepo{
		listFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			require.NotNil(t, filter.Date)
			assert.Equal(t, "2026-09-08", *filter.Date)
			require.NotNil(t, filter.Status)
			assert.Equal(t, domain.StatusConfirmed, *filter.Status)

			return []*domain.Appointment{{
				ID:        "appt-1",
				ServiceID: svc.ID,
				Date:      "2026-09-08",
				StartTime: "09:00",
				EndTime:   "10:05",
				Status:    domain.StatusConfirmed,
			}}, nil
		},
	}
	uc := newTestUseCase(repo, catalog, tuesday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: svc.ID, Date: tuesday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
	assert.False(t, resp.Slots[0].Available)
	assert.Equal(t, "09:30", resp.Slots[1].Time.String())
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_RepositoryError(t *testing.T) {
	catalog := &fakeCatalog{services: []*domain.Service{coloringService()}}
	repo := &fakeAppointmentRepo{
		listFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := newTestUseCase(repo, catalog, tuesday)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: "svc-coloring", Date: tuesday})

	assert.ErrorIs(t, err, ErrInternal)
}

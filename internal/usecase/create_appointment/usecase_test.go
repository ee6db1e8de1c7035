package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/internal/integrations/brevo"
)

type fakeAppointmentRepo struct {
	listFn   func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	createFn func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, filter)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, appt)
}

type fakeCatalog struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalog) List(ctx context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

type fakeNotifier struct {
	sent []brevo.AppointmentInfo
	err  error
}

func (f *fakeNotifier) SendConfirmation(ctx context.Context, client brevo.ClientInfo, appt brevo.AppointmentInfo) error {
	f.sent = append(f.sent, appt)
	return f.err
}

// fakeTxManager выполняет функцию напрямую, без транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// вторник 2026-09-08; воскресенье 2026-09-06 закрыто
var (
	tuesday = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
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

func validRequest() *Request {
	return &Request{
		ClientName:     "Maria Silva",
		ClientWhatsapp: "+5511999990000",
		ClientEmail:    "maria@example.com",
		ServiceID:      "svc-coloring",
		Date:           tuesday,
		StartTime:      "09:30",
	}
}

func newTestUseCase(repo AppointmentRepository, catalog ServiceCatalog, notifier NotificationClient) *UseCase {
	uc := NewUseCase(repo, catalog, notifier, fakeTxManager{}, testHours, []int{0}, nopLogger{})
	uc.timeProvider = &fakeTime{now: tuesday}
	return uc
}

func TestExecute_Success(t *testing.T) {
	svc := coloringService()
	catalog := &fakeCatalog{services: []*domain.Service{svc}}
	notifier := &fakeNotifier{}
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			created := *appt
			created.ID = "appt-1"
			created.CreatedAt = tuesday
			created.UpdatedAt = tuesday
			return &created, nil
		},
	}
	uc := newTestUseCase(repo, catalog, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, "Coloração", resp.ServiceName)
	assert.Equal(t, "09:30", resp.StartTime.String())
	assert.Equal(t, "10:35", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// письмо подтверждения отправлено один раз
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Coloração", notifier.sent[0].ServiceName)
	assert.Equal(t, "2026-09-08", notifier.sent[0].Date)
}

func TestExecute_SlotConflict(t *testing.T) {
	svc := coloringService()
	catalog := &fakeCatalog{services: []*domain.Service{svc}}
	repo := &fakeAppointmentRepo{
		listFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{{
				ID:        "appt-existing",
				ServiceID: svc.ID,
				Date:      "2026-09-08",
				StartTime: "09:30",
				EndTime:   "10:35",
				Status:    domain.StatusConfirmed,
			}}, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			t.Fatal("Create must not be called for an occupied slot")
			return nil, nil
		},
	}
	uc := newTestUseCase(repo, catalog, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SalonClosed(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalog{}, &fakeNotifier{})

	req := validRequest()
	req.Date = sunday

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalog{}, &fakeNotifier{})

	req := validRequest()
	req.Date = tuesday.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	catalog := &fakeCatalog{services: []*domain.Service{coloringService()}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalog, &fakeNotifier{})

	req := validRequest()
	req.ServiceID = "svc-unknown"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_TimeSlotValidation(t *testing.T) {
	catalog := &fakeCatalog{services: []*domain.Service{coloringService()}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, catalog, &fakeNotifier{})

	// вне сетки относительно открытия
	req := validRequest()
	req.StartTime = "09:45"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// до открытия
	req = validRequest()
	req.StartTime = "08:30"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// услуга не помещается до закрытия: 18:30 + 65 минут > 19:00
	req = validRequest()
	req.StartTime = "18:30"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalog{}, &fakeNotifier{})

	for _, mutate := range []func(*Request){
		func(r *Request) { r.ClientName = "" },
		func(r *Request) { r.ClientWhatsapp = "" },
		func(r *Request) { r.ClientEmail = "" },
		func(r *Request) { r.ServiceID = "" },
		func(r *Request) { r.Date = time.Time{} },
		func(r *Request) { r.StartTime = "" },
	} {
		req := validRequest()
		mutate(req)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	svc := coloringService()
	catalog := &fakeCatalog{services: []*domain.Service{svc}}
	notifier := &fakeNotifier{err: errors.New("brevo is down")}
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			created := *appt
			created.ID = "appt-1"
			return &created, nil
		},
	}
	uc := newTestUseCase(repo, catalog, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)
}

func TestExecute_CreateError(t *testing.T) {
	catalog := &fakeCatalog{services: []*domain.Service{coloringService()}}
	repo := &fakeAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return nil, errors.New("unique violation")
		},
	}
	uc := newTestUseCase(repo, catalog, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

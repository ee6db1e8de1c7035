package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/internal/scheduling"
	"github.com/bethsalao/BS-BookingService/pkg/ptr"
)

// UseCase use case получения слотов для бронирования услуги
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	workingHours    domain.WorkingHours
	closedDays      []int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	workingHours domain.WorkingHours,
	closedDays []int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		workingHours:    workingHours,
		closedDays:      closedDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)

	// 2. Выходной день — проверяется здесь, движок о днях недели не знает
	if uc.isClosedDay(req.Date.Weekday()) {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", date)
		return &Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			Closed:    true,
			Slots:     []Slot{},
		}, nil
	}

	// 3. Дата в прошлом — слотов нет
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date)
		return &Response{
			Date:      req.Date,
			ServiceID: req.ServiceID,
			Slots:     []Slot{},
		}, nil
	}

	// 4. Загружаем каталог услуг (через кеш) и находим бронируемую услугу
	services, err := uc.catalog.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load service catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load service catalog: %v", ErrInternal, err)
	}

	byID := scheduling.ServicesByID(services)
	svc, ok := byID[req.ServiceID]
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Загружаем подтвержденные записи на дату
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		Date:   ptr.Ptr(date),
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Чистый движок доступности
	timeSlots := scheduling.AvailableSlots(date, svc, appointments, byID, uc.workingHours)

	slots := make([]Slot, len(timeSlots))
	for i, s := range timeSlots {
		slots[i] = Slot{Time: s.Time, Available: s.Available}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s",
		len(slots), req.ServiceID, date)

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

func (uc *UseCase) isClosedDay(weekday time.Weekday) bool {
	for _, d := range uc.closedDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

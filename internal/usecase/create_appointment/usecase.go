package create_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/internal/integrations/brevo"
	"github.com/bethsalao/BS-BookingService/internal/scheduling"
	"github.com/bethsalao/BS-BookingService/pkg/ptr"
)

// UseCase use case создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	notifier        NotificationClient
	txManager       TransactionManager
	workingHours    domain.WorkingHours
	closedDays      []int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	notifier NotificationClient,
	txManager TransactionManager,
	workingHours domain.WorkingHours,
	closedDays []int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		notifier:        notifier,
		txManager:       txManager,
		workingHours:    workingHours,
		closedDays:      closedDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Доступность слота перепроверяется внутри сериализуемой транзакции с
// блокировкой записей дня — список слотов, показанный клиенту, носит
// рекомендательный характер и к моменту коммита мог устареть.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%s, date=%s, time=%s",
		req.ClientName, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	date := req.Date.Format(domain.DateFormat)

	// 2. Выходной день
	if uc.isClosedDay(req.Date) {
		uc.logger.Warn("CreateAppointment: salon is closed on %s", date)
		return nil, ErrSalonClosed
	}

	// 3. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Каталог услуг и бронируемая услуга
	services, err := uc.catalog.List(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load service catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load service catalog: %v", ErrInternal, err)
	}

	byID := scheduling.ServicesByID(services)
	svc, ok := byID[req.ServiceID]
	if !ok {
		uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Слот лежит на сетке и помещается в рабочие часы
	if err := validateTimeSlot(req, svc, uc.workingHours); err != nil {
		uc.logger.Warn("CreateAppointment: time slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 6. Перепроверка доступности и вставка — в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Подтвержденные записи дня с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			Date:   ptr.Ptr(date),
			Status: ptr.Ptr(domain.StatusConfirmed),
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.2. Перепроверка конфликта активных фаз
		if !scheduling.IsStartAvailable(date, req.StartTime, svc, appointments, byID) {
			uc.logger.Warn("CreateAppointment: slot %s on %s is not available", req.StartTime, date)
			return ErrSlotNotAvailable
		}

		// 6.3. Создаем подтвержденную запись с производным временем окончания
		appt := &domain.Appointment{
			ClientName:     req.ClientName,
			ClientWhatsapp: req.ClientWhatsapp,
			ClientEmail:    req.ClientEmail,
			ServiceID:      req.ServiceID,
			Date:           date,
			StartTime:      req.StartTime,
			EndTime:        scheduling.CalculateEndTime(req.StartTime, svc),
			Status:         domain.StatusConfirmed,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 7. Письмо подтверждения — best-effort, исход не влияет на бронирование
	uc.sendConfirmation(ctx, result, svc)

	return &Response{
		ID:             result.ID,
		ClientName:     result.ClientName,
		ClientWhatsapp: result.ClientWhatsapp,
		ClientEmail:    result.ClientEmail,
		ServiceID:      result.ServiceID,
		ServiceName:    svc.Name,
		Date:           req.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

func (uc *UseCase) isClosedDay(date time.Time) bool {
	for _, d := range uc.closedDays {
		if d == int(date.Weekday()) {
			return true
		}
	}
	return false
}

func (uc *UseCase) sendConfirmation(ctx context.Context, appt *domain.Appointment, svc *domain.Service) {
	err := uc.notifier.SendConfirmation(ctx,
		brevo.ClientInfo{Name: appt.ClientName, Email: appt.ClientEmail},
		brevo.AppointmentInfo{ServiceName: svc.Name, Date: appt.Date, Time: appt.StartTime.String()},
	)
	if err != nil {
		uc.logger.Warn("CreateAppointment: confirmation email for id=%s not sent: %v", appt.ID, err)
	}
}

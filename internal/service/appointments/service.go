package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/bethsalao/BS-BookingService/internal/infra/storage/appointment"
	"github.com/bethsalao/BS-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с журналом записей (админские операции)
type Service struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// List получает записи с фильтрацией по дате и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListAppointments: date=%v, status=%v, includeCancelled=%t",
		req.Date, req.Status, req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListAppointments: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись (мягкое удаление — перевод в статус cancelled).
// Отмененная запись перестает занимать время салона: её слоты снова
// доступны при следующем расчёте.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("CancelAppointment: cancelling id=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelAppointment: id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelAppointment: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("CancelAppointment: id=%s cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelAppointment: id=%s not found during cancellation", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("CancelAppointment: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelAppointment: successfully cancelled id=%s", id)
	return nil
}

// ClearAll полностью очищает журнал записей (физическое удаление)
func (s *Service) ClearAll(ctx context.Context) error {
	s.logger.Info("ClearAllAppointments: deleting all appointments")

	if err := s.appointmentRepo.DeleteAll(ctx); err != nil {
		s.logger.Error("ClearAllAppointments: repository error: %v", err)
		return fmt.Errorf("%w: ClearAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearAllAppointments: journal cleared")
	return nil
}

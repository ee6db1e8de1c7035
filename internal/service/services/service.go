package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	serviceRepo "github.com/bethsalao/BS-BookingService/internal/infra/storage/service"
)

// Service сервис управления каталогом услуг салона
type Service struct {
	serviceRepo ServiceRepository
	cache       CatalogCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	cache CatalogCache,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		cache:       cache,
		logger:      logger,
	}
}

// List получает все услуги каталога
func (s *Service) List(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// Create создает услугу. total_time вычисляется из трёх фаз в хранилище,
// значение от вызывающей стороны не принимается.
func (s *Service) Create(ctx context.Context, draft *domain.ServiceDraft) (*domain.Service, error) {
	s.logger.Info("CreateService: name=%s, phases=%d/%d/%d",
		draft.Name, draft.ActiveTimeStart, draft.WaitTime, draft.ActiveTimeEnd)

	if err := validateDraft(draft); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("CreateService: successfully created id=%s, totalTime=%d",
		created.ID, created.TotalTime)
	return created, nil
}

// Delete удаляет услугу из каталога. Существующие записи на неё остаются:
// движок доступности обрабатывает висячую ссылку консервативно.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("DeleteService: deleting id=%s", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("DeleteService: successfully deleted id=%s", id)
	return nil
}

// validateDraft проверяет фазы услуги: неотрицательные, в разумных
// пределах, и хотя бы одна фаза ненулевая
func validateDraft(draft *domain.ServiceDraft) error {
	if draft.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(draft.Name) > domain.MaxServiceNameLen {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	for _, phase := range []struct {
		name    string
		minutes int
	}{
		{"activeTimeStart", draft.ActiveTimeStart},
		{"waitTime", draft.WaitTime},
		{"activeTimeEnd", draft.ActiveTimeEnd},
	} {
		if phase.minutes < domain.MinPhaseMinutes {
			return fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, phase.name)
		}
		if phase.minutes > domain.MaxPhaseMinutes {
			return fmt.Errorf("%w: %s exceeds %d minutes", ErrInvalidInput, phase.name, domain.MaxPhaseMinutes)
		}
	}

	if domain.ComputeTotalTime(draft.ActiveTimeStart, draft.WaitTime, draft.ActiveTimeEnd) == 0 {
		return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	return nil
}

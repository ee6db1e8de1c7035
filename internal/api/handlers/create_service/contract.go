package create_service

import (
	"context"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

type ServicesService interface {
	Create(ctx context.Context, draft *domain.ServiceDraft) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_services

import (
	"context"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

type ServicesService interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_service

import (
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

// CreateServiceRequest HTTP request model.
// totalTime не принимается: он вычисляется из трёх фаз на сервере.
type CreateServiceRequest struct {
	Name            string `json:"name"`
	ActiveTimeStart int    `json:"activeTimeStart"`
	WaitTime        int    `json:"waitTime"`
	ActiveTimeEnd   int    `json:"activeTimeEnd"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ActiveTimeStart int    `json:"activeTimeStart"`
	WaitTime        int    `json:"waitTime"`
	ActiveTimeEnd   int    `json:"activeTimeEnd"`
	TotalTime       int    `json:"totalTime"`
	CreatedAt       string `json:"createdAt"`
}

// ToDomainDraft конвертирует HTTP запрос в domain черновик услуги
func (r *CreateServiceRequest) ToDomainDraft() *domain.ServiceDraft {
	return &domain.ServiceDraft{
		Name:            r.Name,
		ActiveTimeStart: r.ActiveTimeStart,
		WaitTime:        r.WaitTime,
		ActiveTimeEnd:   r.ActiveTimeEnd,
	}
}

// FromDomainService конвертирует созданную услугу в HTTP response
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		ActiveTimeStart: svc.ActiveTimeStart,
		WaitTime:        svc.WaitTime,
		ActiveTimeEnd:   svc.ActiveTimeEnd,
		TotalTime:       svc.TotalTime,
		CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
	}
}

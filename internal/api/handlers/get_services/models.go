package get_services

import (
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

// ServiceResponse услуга в HTTP ответе
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ActiveTimeStart int    `json:"activeTimeStart"`
	WaitTime        int    `json:"waitTime"`
	ActiveTimeEnd   int    `json:"activeTimeEnd"`
	TotalTime       int    `json:"totalTime"`
	CreatedAt       string `json:"createdAt"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainServices конвертирует domain услуги в HTTP response
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			ActiveTimeStart: svc.ActiveTimeStart,
			WaitTime:        svc.WaitTime,
			ActiveTimeEnd:   svc.ActiveTimeEnd,
			TotalTime:       svc.TotalTime,
			CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ServiceListResponse{
		Services: result,
		Total:    len(result),
	}
}

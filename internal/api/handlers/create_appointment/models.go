package create_appointment

import (
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	createAppointment "github.com/bethsalao/BS-BookingService/internal/usecase/create_appointment"
	"github.com/bethsalao/BS-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName     string `json:"clientName"`
	ClientWhatsapp string `json:"clientWhatsapp"`
	ClientEmail    string `json:"clientEmail"`
	ServiceID      string `json:"serviceId"`
	Date           string `json:"date"`      // "2026-02-10"
	StartTime      string `json:"startTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             string `json:"id"`
	ClientName     string `json:"clientName"`
	ClientWhatsapp string `json:"clientWhatsapp"`
	ClientEmail    string `json:"clientEmail"`
	ServiceID      string `json:"serviceId"`
	ServiceName    string `json:"serviceName"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:     r.ClientName,
		ClientWhatsapp: r.ClientWhatsapp,
		ClientEmail:    r.ClientEmail,
		ServiceID:      r.ServiceID,
		Date:           date,
		StartTime:      startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID,
		ClientName:     resp.ClientName,
		ClientWhatsapp: resp.ClientWhatsapp,
		ClientEmail:    resp.ClientEmail,
		ServiceID:      resp.ServiceID,
		ServiceName:    resp.ServiceName,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

package get_appointments

import (
	"time"

	"github.com/bethsalao/BS-BookingService/internal/service/appointments/models"
)

// AppointmentResponse запись в HTTP ответе
type AppointmentResponse struct {
	ID             string `json:"id"`
	ClientName     string `json:"clientName"`
	ClientWhatsapp string `json:"clientWhatsapp"`
	ClientEmail    string `json:"clientEmail"`
	ServiceID      string `json:"serviceId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, len(resp.Appointments))
	for i, a := range resp.Appointments {
		appointments[i] = AppointmentResponse{
			ID:             a.ID,
			ClientName:     a.ClientName,
			ClientWhatsapp: a.ClientWhatsapp,
			ClientEmail:    a.ClientEmail,
			ServiceID:      a.ServiceID,
			Date:           a.Date,
			StartTime:      a.StartTime,
			EndTime:        a.EndTime,
			Status:         a.Status,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        resp.Total,
	}
}

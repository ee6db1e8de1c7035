package models

import (
	"fmt"
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

// ListAppointmentsRequest запрос списка записей
type ListAppointmentsRequest struct {
	Date             *string // конкретная дата YYYY-MM-DD (опционально)
	Status           *string // фильтр по статусу (опционально)
	IncludeCancelled bool    // включать ли отмененные записи
}

// AppointmentResponse запись в ответе сервиса
type AppointmentResponse struct {
	ID             string
	ClientName     string
	ClientWhatsapp string
	ClientEmail    string
	ServiceID      string
	Date           string
	StartTime      string
	EndTime        string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return domain.AppointmentsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainAppointmentStatus валидирует и конвертирует строковый статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// FromDomainAppointment конвертирует domain запись в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:             a.ID,
		ClientName:     a.ClientName,
		ClientWhatsapp: a.ClientWhatsapp,
		ClientEmail:    a.ClientEmail,
		ServiceID:      a.ServiceID,
		Date:           a.Date,
		StartTime:      a.StartTime.String(),
		EndTime:        a.EndTime.String(),
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain записей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		result[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

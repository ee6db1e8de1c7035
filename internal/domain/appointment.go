package domain

import (
	"time"

	"github.com/bethsalao/BS-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a client appointment in the salon.
// EndTime is derived from StartTime + service total time at creation and
// stored redundantly for display and export.
type Appointment struct {
	ID             string
	ClientName     string
	ClientWhatsapp string
	ClientEmail    string
	ServiceID      string // может указывать на удаленную услугу
	Date           string // YYYY-MM-DD
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the appointment occupies salon time.
// Cancelled appointments are inert history.
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can still be cancelled.
// cancelled является терминальным статусом — переходов из него нет.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Date             *string            // конкретная дата YYYY-MM-DD (опционально)
	Status           *AppointmentStatus // фильтр по статусу (опционально)
	IncludeCancelled bool               // включать ли отмененные записи
}

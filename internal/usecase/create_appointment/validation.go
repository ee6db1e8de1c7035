package create_appointment

import (
	"fmt"
	"time"

	"github.com/bethsalao/BS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLen {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}
	if req.ClientWhatsapp == "" {
		return fmt.Errorf("%w: clientWhatsapp is required", ErrInvalidInput)
	}
	if req.ClientEmail == "" {
		return fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateTimeSlot проверяет, что время начала лежит на 30-минутной сетке
// рабочих часов и услуга целиком помещается до закрытия
func validateTimeSlot(req *Request, svc *domain.Service, hours domain.WorkingHours) error {
	start := req.StartTime.Minutes()

	if start < hours.StartMinutes() {
		return fmt.Errorf("%w: %s is before opening time", ErrInvalidTimeSlot, req.StartTime)
	}
	if (start-hours.StartMinutes())%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: %s is not on the %d-minute grid", ErrInvalidTimeSlot, req.StartTime, domain.SlotStepMinutes)
	}
	if start+svc.TotalTime > hours.EndMinutes() {
		return fmt.Errorf("%w: service does not fit before closing time", ErrInvalidTimeSlot)
	}
	return nil
}

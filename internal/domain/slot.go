package domain

import "github.com/bethsalao/BS-BookingService/pkg/types"

// TimeSlot is a candidate start time on the booking grid.
// Ephemeral: recomputed per query, never persisted.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// WorkingHours дневные границы работы салона, в целых часах
type WorkingHours struct {
	Start int // час открытия (например, 8 = 08:00)
	End   int // час закрытия (например, 18 = 18:00)
}

// StartMinutes возвращает час открытия в минутах с полуночи
func (w WorkingHours) StartMinutes() int {
	return w.Start * 60
}

// EndMinutes возвращает час закрытия в минутах с полуночи
func (w WorkingHours) EndMinutes() int {
	return w.End * 60
}

package domain

// SlotStepMinutes шаг сетки слотов. Фиксирован для всего салона.
const SlotStepMinutes = 30

// Business validation constants
const (
	MinPhaseMinutes   = 0
	MaxPhaseMinutes   = 480 // 8 часов на одну фазу
	MaxClientNameLen  = 200
	MaxServiceNameLen = 200
	MinWorkingHour    = 0
	MaxWorkingHour    = 24
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancelledStatuses статусы, не занимающие время салона.
// Используется при фильтрации для подсчёта доступности.
var CancelledStatuses = []AppointmentStatus{
	StatusCancelled,
}

package domain

import "time"

// Service represents a salon service with a three-phase time model.
// Active phases occupy the chair/stylist exclusively; the wait phase
// (e.g. coloring product processing) leaves the chair free for another
// client's active phase.
type Service struct {
	ID              string
	Name            string
	ActiveTimeStart int // минуты активной работы мастера в начале услуги
	WaitTime        int // минуты ожидания клиента без занятия ресурса
	ActiveTimeEnd   int // минуты активной работы мастера в конце услуги
	TotalTime       int // всегда производное от трёх фаз, см. ComputeTotalTime

	CreatedAt time.Time
}

// ComputeTotalTime derives the total duration from the three phases.
// TotalTime is never accepted from callers independently of its inputs;
// it is recomputed on every mutation of the phase fields.
func ComputeTotalTime(activeTimeStart, waitTime, activeTimeEnd int) int {
	return activeTimeStart + waitTime + activeTimeEnd
}

// HasClosingPhase returns true if the service ends with an active phase
func (s *Service) HasClosingPhase() bool {
	return s.ActiveTimeEnd > 0
}

// ServiceDraft данные для создания услуги. TotalTime вычисляется хранилищем.
type ServiceDraft struct {
	Name            string
	ActiveTimeStart int
	WaitTime        int
	ActiveTimeEnd   int
}

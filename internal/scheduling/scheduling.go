package scheduling

import (
	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/pkg/types"
)

// Пакет scheduling — чистый движок доступности. Никакого I/O и скрытого
// состояния: таблица услуг передается явным аргументом, результат полностью
// определяется входами.

// CalculateEndTime вычисляет время окончания услуги, начатой в startTime.
// Результат может уходить за полночь ("25:05") — вызывающая сторона отсекает
// такие слоты через границу рабочих часов.
func CalculateEndTime(startTime types.TimeString, svc *domain.Service) types.TimeString {
	return types.NewTimeStringFromMinutes(startTime.Minutes() + svc.TotalTime)
}

// AvailableSlots строит упорядоченный список слотов 30-минутной сетки для
// бронирования услуги svc на дату date при существующих записях appointments.
//
// Аргументы:
//   - date: дата YYYY-MM-DD; записи фильтруются по ней внутри
//   - svc: бронируемая услуга с валидными фазами
//   - appointments: полный известный набор записей (любые даты и статусы)
//   - services: таблица id услуги -> услуга для разрешения фаз существующих
//     записей; запись с неразрешимым serviceId обрабатывается консервативно
//   - hours: рабочие часы салона
//
// Слоты генерируются для всех t = start, start+30, ... пока
// t + svc.TotalTime <= конец рабочего дня. Если услуга длиннее рабочего
// окна — пустой список, это нормальный исход, а не ошибка.
// Проверку выходных дней движок не делает — это забота вызывающего слоя.
func AvailableSlots(
	date string,
	svc *domain.Service,
	appointments []*domain.Appointment,
	services map[string]*domain.Service,
	hours domain.WorkingHours,
) []domain.TimeSlot {
	// Время салона занимают только подтвержденные записи этого дня
	dayAppointments := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date == date && a.IsConfirmed() {
			dayAppointments = append(dayAppointments, a)
		}
	}

	startMinutes := hours.StartMinutes()
	endMinutes := hours.EndMinutes()

	slots := make([]domain.TimeSlot, 0)

	for t := startMinutes; t+svc.TotalTime <= endMinutes; t += domain.SlotStepMinutes {
		slots = append(slots, domain.TimeSlot{
			Time:      types.NewTimeStringFromMinutes(t),
			Available: slotAvailable(t, svc, dayAppointments, services),
		})
	}

	return slots
}

// slotAvailable проверяет кандидата на старт в t (минуты с полуночи) против
// всех подтвержденных записей дня. Первый конфликт завершает проверку.
func slotAvailable(t int, svc *domain.Service, dayAppointments []*domain.Appointment, services map[string]*domain.Service) bool {
	slotStart := t
	slotEnd := t + svc.TotalTime

	// Активные фазы кандидата. Фаза ожидания между ними ресурс не занимает.
	activeStart1 := slotStart
	activeEnd1 := slotStart + svc.ActiveTimeStart
	activeStart2 := slotEnd - svc.ActiveTimeEnd
	activeEnd2 := slotEnd

	for _, appt := range dayAppointments {
		apptStart := appt.StartTime.Minutes()
		apptEnd := appt.EndTime.Minutes()

		apptSvc, ok := services[appt.ServiceID]
		if !ok {
			// Услуга записи удалена: фазы не восстановить, поэтому
			// консервативно блокируем весь интервал записи
			if overlaps(slotStart, slotEnd, apptStart, apptEnd) {
				return false
			}
			continue
		}

		// Активные фазы существующей записи, привязанные к её границам
		apptActiveEnd1 := apptStart + apptSvc.ActiveTimeStart
		apptActiveStart2 := apptEnd - apptSvc.ActiveTimeEnd

		// Четыре пары активных фаз; пары с пустой завершающей фазой
		// (activeTimeEnd = 0) не проверяются
		if overlaps(activeStart1, activeEnd1, apptStart, apptActiveEnd1) {
			return false
		}
		if apptSvc.ActiveTimeEnd > 0 && overlaps(activeStart1, activeEnd1, apptActiveStart2, apptEnd) {
			return false
		}
		if svc.ActiveTimeEnd > 0 && overlaps(activeStart2, activeEnd2, apptStart, apptActiveEnd1) {
			return false
		}
		if svc.ActiveTimeEnd > 0 && apptSvc.ActiveTimeEnd > 0 && overlaps(activeStart2, activeEnd2, apptActiveStart2, apptEnd) {
			return false
		}
	}

	return true
}

// IsStartAvailable проверяет один кандидат на старт услуги svc в startTime
// на дату date. Используется при создании записи для перепроверки
// доступности внутри транзакции — та же логика фаз, что и в AvailableSlots.
func IsStartAvailable(
	date string,
	startTime types.TimeString,
	svc *domain.Service,
	appointments []*domain.Appointment,
	services map[string]*domain.Service,
) bool {
	dayAppointments := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date == date && a.IsConfirmed() {
			dayAppointments = append(dayAppointments, a)
		}
	}
	return slotAvailable(startTime.Minutes(), svc, dayAppointments, services)
}

// overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd). Граничащие интервалы не пересекаются.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ServicesByID строит таблицу разрешения услуг по id для AvailableSlots
func ServicesByID(services []*domain.Service) map[string]*domain.Service {
	byID := make(map[string]*domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return byID
}

package get_available_slots

import (
	"time"

	"github.com/bethsalao/BS-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string    // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID string    // ID услуги
	Closed    bool      // Салон закрыт в этот день
	Slots     []Slot    // Список слотов с флагом доступности
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот для этой услуги
}

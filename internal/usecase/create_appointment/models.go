package create_appointment

import (
	"time"

	"github.com/bethsalao/BS-BookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName     string           // Имя клиента
	ClientWhatsapp string           // WhatsApp для связи
	ClientEmail    string           // Email для письма подтверждения
	ServiceID      string           // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID             string           // ID созданной записи
	ClientName     string           // Имя клиента
	ClientWhatsapp string           // WhatsApp
	ClientEmail    string           // Email
	ServiceID      string           // ID услуги
	ServiceName    string           // Название услуги (денормализовано для ответа)
	Date           time.Time        // Дата записи
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время окончания (start + total_time услуги)
	Status         string           // Статус записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

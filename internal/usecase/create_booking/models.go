package create_booking

import (
	"time"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования.
// Время окончания слота клиентом не передается: оно всегда выводится
// на сервере из startTime и slotDuration салона.
type Request struct {
	UserID    int64            // ID клиента (аутентифицированный принципал)
	SalonID   int64            // ID салона
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID клиента
	SalonID         int64            // ID салона
	AppointmentDate time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (start + slotDuration)
	Status          string           // Статус бронирования (всегда "pending")
	Notes           *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

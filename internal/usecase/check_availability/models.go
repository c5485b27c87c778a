package check_availability

import (
	"time"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	SalonID   int64            // ID салона
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала слота
}

// Response модель ответа с информацией о доступности слота.
// Результат является ориентировочным: вместимость может быть исчерпана
// другим клиентом между этой проверкой и попыткой бронирования.
type Response struct {
	Available      bool             // Есть ли свободные места в слоте
	StartTime      types.TimeString // Время начала слота
	EndTime        types.TimeString // Время окончания слота
	RemainingSpots int              // Количество свободных мест
	TotalSpots     int              // Общая вместимость слота
}

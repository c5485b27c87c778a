package get_available_slots

import (
	"time"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID int64     // ID салона
	Date    time.Time // Дата, на которую запрашиваются слоты
}

// Slot информация об одном слоте с остаточной вместимостью
type Slot struct {
	StartTime       types.TimeString // Время начала слота
	EndTime         types.TimeString // Время окончания слота
	DurationMinutes int              // Длительность слота в минутах
	AvailableSpots  int              // Количество свободных мест
	TotalSpots      int              // Общая вместимость слота
}

// Response модель ответа со списком слотов на дату.
// Пустой список для нерабочего дня не является ошибкой.
type Response struct {
	SalonID int64     // ID салона
	Date    time.Time // Запрошенная дата
	Slots   []Slot    // Слоты в хронологическом порядке
}

package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxBookingPerSlot   = 1
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinBookingPerSlot      = 1
	MaxBookingPerSlotLimit = 100
	MaxNotesLength         = 500
	MaxNameLength          = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekdays допустимые значения для workingDays (в нижнем регистре)
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsWeekdayName проверяет, что строка является корректным названием дня недели
func IsWeekdayName(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// ActiveStatuses список статусов, занимающих место в слоте.
// Используется при подсчете занятости слотов.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

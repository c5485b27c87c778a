package domain

import (
	"strings"
	"time"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Salon represents a salon together with its booking schedule configuration.
// The schedule part (working days, operating window, break window, slot
// duration, capacity) is the read-only input of the slot generator.
type Salon struct {
	ID      int64
	OwnerID int64

	Name    string
	Address string
	City    string
	State   string
	Zip     string

	MinServiceCharge float64
	MaxServiceCharge float64

	// WorkingDays contains lowercase weekday names ("monday" ... "sunday")
	// during which bookings are permitted
	WorkingDays []string

	// Daily operating window, StartTime < EndTime
	StartTime types.TimeString
	EndTime   types.TimeString

	// Optional break window inside the operating window; both nil or both set
	BreakStartTime *types.TimeString
	BreakEndTime   *types.TimeString

	SlotDurationMinutes int
	MaxBookingPerSlot   int

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if the salon has a configured break window
func (s *Salon) HasBreak() bool {
	return s.BreakStartTime != nil && s.BreakEndTime != nil
}

// IsWorkingDay returns true if bookings are permitted on the date's weekday
func (s *Salon) IsWorkingDay(date time.Time) bool {
	weekday := strings.ToLower(date.Weekday().String())
	for _, day := range s.WorkingDays {
		if day == weekday {
			return true
		}
	}
	return false
}

// IsOwnedBy returns true if the given user owns the salon
func (s *Salon) IsOwnedBy(userID int64) bool {
	return s.OwnerID == userID
}

// SalonListFilter фильтр для получения списка салонов
type SalonListFilter struct {
	City       *string // Фильтр по городу (опционально)
	OnlyActive bool    // Только активные салоны
}

package create_booking

import (
	"fmt"
	"time"

	"github.com/avelanse/salon-booking-service/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive, got %d", ErrInvalidInput, req.UserID)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salon ID must be positive, got %d", ErrInvalidInput, req.SalonID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if uc.isDateInPast(req.Date) {
		return fmt.Errorf("%w: booking date %s is in the past",
			ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	return nil
}

// isDateInPast проверяет, что дата бронирования раньше сегодняшнего дня.
// Бронирование на сегодня допускается.
func (uc *UseCase) isDateInPast(date time.Time) bool {
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	return target.Before(today)
}

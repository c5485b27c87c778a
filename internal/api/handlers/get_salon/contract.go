package get_salon

import (
	"context"

	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	GetByID(ctx context.Context, salonID int64) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

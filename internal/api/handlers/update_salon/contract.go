package update_salon

import (
	"context"

	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	Update(ctx context.Context, salonID int64, req *models.UpdateSalonRequest) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

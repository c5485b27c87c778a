package list_owner_salons

import (
	"context"

	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
)

type SalonService interface {
	GetByOwner(ctx context.Context, ownerID int64) (*models.SalonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

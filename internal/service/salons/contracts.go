package salons

import (
	"context"

	"github.com/avelanse/salon-booking-service/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	GetByID(ctx context.Context, id int64) (*domain.Salon, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Salon, error)
	List(ctx context.Context, filter domain.SalonListFilter) ([]*domain.Salon, error)
	Update(ctx context.Context, id int64, salon *domain.Salon) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

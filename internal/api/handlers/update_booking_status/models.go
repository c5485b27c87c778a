package update_booking_status

import (
	"github.com/avelanse/salon-booking-service/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(actorID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		ActorID: actorID,
		Status:  r.Status,
	}
}

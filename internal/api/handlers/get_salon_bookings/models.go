package get_salon_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/avelanse/salon-booking-service/internal/domain"
	"github.com/avelanse/salon-booking-service/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров.
// Поддерживаются фильтры date (YYYY-MM-DD), status и includeCancelled.
func ToServiceRequest(actorID, salonID int64, query url.Values) (*models.GetSalonBookingsRequest, error) {
	req := &models.GetSalonBookingsRequest{
		ActorID: actorID,
		SalonID: salonID,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}

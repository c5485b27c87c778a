package check_availability

import (
	"time"

	"github.com/avelanse/salon-booking-service/internal/domain"
	checkAvailability "github.com/avelanse/salon-booking-service/internal/usecase/check_availability"
	"github.com/avelanse/salon-booking-service/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available      bool   `json:"available"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	RemainingSpots int    `json:"remainingSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(salonID int64, dateStr, startTimeStr string) (*checkAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		SalonID:   salonID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:      resp.Available,
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		RemainingSpots: resp.RemainingSpots,
		TotalSpots:     resp.TotalSpots,
	}
}

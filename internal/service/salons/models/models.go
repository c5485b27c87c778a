package models

import (
	"time"

	"github.com/avelanse/salon-booking-service/internal/domain"
	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Request модели

// SalonData данные салона для создания и обновления
type SalonData struct {
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Zip               string   `json:"zip"`
	MinServiceCharge  float64  `json:"minServiceCharge"`
	MaxServiceCharge  float64  `json:"maxServiceCharge"`
	WorkingDays       []string `json:"workingDays"`
	StartTime         string   `json:"startTime"` // "09:00"
	EndTime           string   `json:"endTime"`   // "18:00"
	BreakStartTime    *string  `json:"breakStartTime,omitempty"`
	BreakEndTime      *string  `json:"breakEndTime,omitempty"`
	SlotDuration      int      `json:"slotDuration"` // минуты
	MaxBookingPerSlot int      `json:"maxBookingPerSlot"`
	IsActive          bool     `json:"isActive"`
}

// CreateSalonRequest запрос на создание салона
type CreateSalonRequest struct {
	OwnerID int64 `json:"ownerId"`
	SalonData
}

// UpdateSalonRequest запрос на обновление салона (только владелец)
type UpdateSalonRequest struct {
	ActorID int64 `json:"actorId"`
	SalonData
}

// ToDomainSalon конвертирует данные запроса в domain модель.
// Формат временных полей валидируется; инварианты расписания
// проверяются отдельно в сервисе.
func (d *SalonData) ToDomainSalon(ownerID int64) (*domain.Salon, error) {
	startTime, err := types.NewTimeStringFromString(d.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(d.EndTime)
	if err != nil {
		return nil, err
	}

	salon := &domain.Salon{
		OwnerID:             ownerID,
		Name:                d.Name,
		Address:             d.Address,
		City:                d.City,
		State:               d.State,
		Zip:                 d.Zip,
		MinServiceCharge:    d.MinServiceCharge,
		MaxServiceCharge:    d.MaxServiceCharge,
		WorkingDays:         d.WorkingDays,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: d.SlotDuration,
		MaxBookingPerSlot:   d.MaxBookingPerSlot,
		IsActive:            d.IsActive,
	}

	if d.BreakStartTime != nil {
		breakStart, err := types.NewTimeStringFromString(*d.BreakStartTime)
		if err != nil {
			return nil, err
		}
		salon.BreakStartTime = &breakStart
	}

	if d.BreakEndTime != nil {
		breakEnd, err := types.NewTimeStringFromString(*d.BreakEndTime)
		if err != nil {
			return nil, err
		}
		salon.BreakEndTime = &breakEnd
	}

	return salon, nil
}

// Response модели

// SalonResponse ответ с данными салона
type SalonResponse struct {
	ID                int64    `json:"id"`
	OwnerID           int64    `json:"ownerId"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Zip               string   `json:"zip"`
	MinServiceCharge  float64  `json:"minServiceCharge"`
	MaxServiceCharge  float64  `json:"maxServiceCharge"`
	WorkingDays       []string `json:"workingDays"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
	BreakStartTime    *string  `json:"breakStartTime,omitempty"`
	BreakEndTime      *string  `json:"breakEndTime,omitempty"`
	SlotDuration      int      `json:"slotDuration"`
	MaxBookingPerSlot int      `json:"maxBookingPerSlot"`
	IsActive          bool     `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SalonListResponse ответ со списком салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomainSalon конвертирует domain модель в DTO
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	if s == nil {
		return nil
	}

	resp := &SalonResponse{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		Address:           s.Address,
		City:              s.City,
		State:             s.State,
		Zip:               s.Zip,
		MinServiceCharge:  s.MinServiceCharge,
		MaxServiceCharge:  s.MaxServiceCharge,
		WorkingDays:       s.WorkingDays,
		StartTime:         s.StartTime.String(),
		EndTime:           s.EndTime.String(),
		SlotDuration:      s.SlotDurationMinutes,
		MaxBookingPerSlot: s.MaxBookingPerSlot,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}

	if s.BreakStartTime != nil {
		breakStart := s.BreakStartTime.String()
		resp.BreakStartTime = &breakStart
	}
	if s.BreakEndTime != nil {
		breakEnd := s.BreakEndTime.String()
		resp.BreakEndTime = &breakEnd
	}

	return resp
}

// FromDomainSalonList конвертирует список domain моделей в DTO
func FromDomainSalonList(salons []*domain.Salon) *SalonListResponse {
	resp := &SalonListResponse{
		Salons: make([]SalonResponse, 0, len(salons)),
	}

	for _, salon := range salons {
		if salonResp := FromDomainSalon(salon); salonResp != nil {
			resp.Salons = append(resp.Salons, *salonResp)
		}
	}

	return resp
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelanse/salon-booking-service/internal/domain"
	storage "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
)

// UseCase получение списка слотов салона на дату с остаточной вместимостью.
// Значения AvailableSpots ориентировочные и могут устареть к моменту
// фактического бронирования.
type UseCase struct {
	bookingRepo BookingRepository
	salonRepo   SalonRepository
	logger      Logger
}

// NewUseCase создает новый use case получения доступных слотов
func NewUseCase(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		salonRepo:   salonRepo,
		logger:      logger,
	}
}

// Execute выполняет получение доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[GetAvailableSlots] Запрос слотов: SalonID=%d, Date=%s",
		req.SalonID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salon ID must be positive, got %d", ErrInvalidInput, req.SalonID)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получение салона
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, storage.ErrSalonNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrSalonNotFound, req.SalonID)
		}
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}
	if !salon.IsActive {
		return nil, fmt.Errorf("%w: salon id=%d is not active", ErrSalonNotFound, req.SalonID)
	}

	// 3. Генерация слотов на дату
	windows, err := domain.GenerateSlots(salon, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Нерабочий день: слотов нет, ошибки тоже нет
	if len(windows) == 0 {
		uc.logger.Info("[GetAvailableSlots] Нет слотов на %s (нерабочий день)",
			req.Date.Format(domain.DateFormat))
		return &Response{SalonID: req.SalonID, Date: req.Date, Slots: []Slot{}}, nil
	}

	// 4. Подсчет занятости по активным бронированиям дня
	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, domain.SalonBookingsFilter{
		SalonID: req.SalonID,
		Date:    &req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(windows))
	for _, window := range windows {
		occupied := domain.CountBookingsForSlot(bookings, window.Start)
		remaining := salon.MaxBookingPerSlot - occupied
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, Slot{
			StartTime:       window.Start,
			EndTime:         window.End,
			DurationMinutes: salon.SlotDurationMinutes,
			AvailableSpots:  remaining,
			TotalSpots:      salon.MaxBookingPerSlot,
		})
	}

	uc.logger.Info("[GetAvailableSlots] Найдено %d слотов для салона %d на %s",
		len(slots), req.SalonID, req.Date.Format(domain.DateFormat))

	return &Response{
		SalonID: req.SalonID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}

package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelanse/salon-booking-service/internal/domain"
	storage "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
)

// UseCase проверка остаточной вместимости слота. Проверка выполняется
// вне транзакции и ничего не резервирует: авторитетная проверка
// происходит только при создании бронирования.
type UseCase struct {
	bookingRepo BookingRepository
	salonRepo   SalonRepository
	logger      Logger
}

// NewUseCase создает новый use case проверки доступности слота
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

// Execute выполняет проверку доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[CheckAvailability] Проверка доступности: SalonID=%d, Date=%s, StartTime=%s",
		req.SalonID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("[CheckAvailability] Ошибка валидации: %v", err)
		return nil, err
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

	// 3. Поиск запрошенного окна среди сгенерированных слотов
	windows, err := domain.GenerateSlots(salon, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	window := domain.FindSlot(windows, req.StartTime)
	if window == nil {
		return nil, fmt.Errorf("%w: start time %s is not a bookable slot on %s",
			ErrInvalidSlot, req.StartTime, req.Date.Format(domain.DateFormat))
	}

	// 4. Подсчет активных бронирований слота
	bookings, err := uc.bookingRepo.GetBySalonWithFilter(ctx, domain.SalonBookingsFilter{
		SalonID: req.SalonID,
		Date:    &req.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	occupied := domain.CountBookingsForSlot(bookings, window.Start)
	remaining := salon.MaxBookingPerSlot - occupied
	if remaining < 0 {
		remaining = 0
	}

	uc.logger.Info("[CheckAvailability] Слот %s: занято %d из %d",
		window.Start, occupied, salon.MaxBookingPerSlot)

	return &Response{
		Available:      remaining > 0,
		StartTime:      window.Start,
		EndTime:        window.End,
		RemainingSpots: remaining,
		TotalSpots:     salon.MaxBookingPerSlot,
	}, nil
}

// validateRequest проверяет корректность входных данных запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salon ID must be positive, got %d", ErrInvalidInput, req.SalonID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	return nil
}

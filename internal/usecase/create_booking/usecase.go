package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelanse/salon-booking-service/internal/domain"
	storage "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
)

// UseCase создание бронирования с авторитетной проверкой вместимости слота.
// Вся проверка выполняется внутри сериализуемой транзакции: параллельные
// запросы на последнее место в слоте не могут пройти оба.
type UseCase struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый use case создания бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonRepo:    salonRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("[CreateBooking] Начало создания бронирования: UserID=%d, SalonID=%d, Date=%s, StartTime=%s",
		req.UserID, req.SalonID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("[CreateBooking] Ошибка валидации: %v", err)
		return nil, err
	}

	var created *domain.Booking

	// 2. Проверка слота и создание бронирования атомарно
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2.1. Получение салона
		salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
		if err != nil {
			if errors.Is(err, storage.ErrSalonNotFound) {
				return fmt.Errorf("%w: id=%d", ErrSalonNotFound, req.SalonID)
			}
			return fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
		}
		if !salon.IsActive {
			return fmt.Errorf("%w: salon id=%d is not active", ErrSalonNotFound, req.SalonID)
		}

		// 2.2. Генерация слотов и поиск запрошенного окна
		windows, err := domain.GenerateSlots(salon, req.Date)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		window := domain.FindSlot(windows, req.StartTime)
		if window == nil {
			return fmt.Errorf("%w: start time %s is not a bookable slot on %s",
				ErrInvalidSlot, req.StartTime, req.Date.Format(domain.DateFormat))
		}

		// 2.3. Подсчет активных бронирований слота (строки дня блокируются FOR UPDATE)
		existing, err := uc.bookingRepo.GetBySalonWithFilter(ctx, domain.SalonBookingsFilter{
			SalonID: req.SalonID,
			Date:    &req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		occupied := domain.CountBookingsForSlot(existing, window.Start)
		if occupied >= salon.MaxBookingPerSlot {
			return fmt.Errorf("%w: slot %s on %s has %d/%d bookings",
				ErrSlotFull, window.Start, req.Date.Format(domain.DateFormat), occupied, salon.MaxBookingPerSlot)
		}

		// 2.4. Создание бронирования в статусе pending
		booking := &domain.Booking{
			UserID:          req.UserID,
			SalonID:         req.SalonID,
			AppointmentDate: req.Date,
			StartTime:       window.Start,
			EndTime:         window.End,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Warn("[CreateBooking] Ошибка создания бронирования: %v", err)
		return nil, err
	}

	uc.logger.Info("[CreateBooking] Бронирование успешно создано: ID=%d, Slot=%s-%s",
		created.ID, created.StartTime, created.EndTime)

	return uc.buildResponse(created), nil
}

// buildResponse формирует ответ из доменной модели
func (uc *UseCase) buildResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:              booking.ID,
		UserID:          booking.UserID,
		SalonID:         booking.SalonID,
		AppointmentDate: booking.AppointmentDate,
		StartTime:       booking.StartTime,
		EndTime:         booking.EndTime,
		Status:          string(booking.Status),
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

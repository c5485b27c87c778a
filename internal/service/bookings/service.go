package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelanse/salon-booking-service/internal/domain"
	bookingRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/booking"
	salonRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
	"github.com/avelanse/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и управления их жизненным циклом.
// Владеет машиной состояний статусов: pending -> confirmed/cancelled,
// confirmed -> cancelled; из cancelled переходов нет.
type Service struct {
	bookingRepo BookingRepository
	salonRepo   SalonRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		salonRepo:   salonRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступно клиенту, сделавшему бронирование, и владельцу салона
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actorID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != actorID {
		if err := s.checkOwnerAccess(ctx, booking.SalonID, actorID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actorID, id)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSalonBookings получает бронирования салона с фильтрацией по дате и статусу
// Доступно только владельцу салона
func (s *Service) GetSalonBookings(ctx context.Context, req *models.GetSalonBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSalonBookings: fetching bookings for salon=%d, user=%d", req.SalonID, req.ActorID)

	// Проверяем права владельца
	if err := s.checkOwnerAccess(ctx, req.SalonID, req.ActorID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSalonBookings: invalid filter for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSalonBookings: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalonBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonBookings: successfully fetched %d bookings for salon=%d", len(bookings), req.SalonID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Переход выполняет только владелец салона, к которому относится бронирование;
// клиент не может подтвердить собственную запись.
// Отмена не освобождает место задним числом: отмененное бронирование просто
// перестает учитываться при последующих подсчетах вместимости.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.ActorID)

	// 1. Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только владелец салона)
	if err := s.checkOwnerAccess(ctx, booking.SalonID, req.ActorID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.ActorID, bookingID)
		return nil, err
	}

	// 3. Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	// 4. Проверяем переход по машине состояний
	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	// 5. Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// В отличие от UpdateStatus, отмена доступна и клиенту, сделавшему
// бронирование, и владельцу салона. Машина состояний та же:
// отменить можно только pending или confirmed бронирование.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.ActorID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Клиент может отменить свое бронирование, владелец салона - любое в салоне
	if booking.UserID != req.ActorID {
		if err := s.checkOwnerAccess(ctx, booking.SalonID, req.ActorID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.ActorID, bookingID)
			return nil, ErrAccessDenied
		}
	}

	if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// checkOwnerAccess проверяет, что пользователь является владельцем салона
func (s *Service) checkOwnerAccess(ctx context.Context, salonID int64, userID int64) error {
	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("checkOwnerAccess: salon id=%d not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get salon id=%d: %v", salonID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get salon: %v", ErrInternal, err)
	}

	if !salon.IsOwnedBy(userID) {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of salon=%d", userID, salonID)
		return ErrAccessDenied
	}

	return nil
}

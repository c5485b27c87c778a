package salons

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelanse/salon-booking-service/internal/domain"
	salonRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
)

// Service сервис для управления салонами и их конфигурацией расписания
type Service struct {
	salonRepo SalonRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		logger:    logger,
	}
}

// Create создает новый салон с конфигурацией расписания
func (s *Service) Create(ctx context.Context, req *models.CreateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("Create: creating salon %q for owner=%d", req.Name, req.OwnerID)

	// 1. Конвертируем запрос и валидируем формат времени
	salon, err := req.ToDomainSalon(req.OwnerID)
	if err != nil {
		s.logger.Warn("Create: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Валидируем инварианты расписания
	if err := validateSchedule(salon); err != nil {
		s.logger.Warn("Create: schedule validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.salonRepo.Create(ctx, salon)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created salon id=%d", created.ID)
	return models.FromDomainSalon(created), nil
}

// Update обновляет салон и его конфигурацию расписания
// Доступно только владельцу салона
func (s *Service) Update(ctx context.Context, salonID int64, req *models.UpdateSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("Update: updating salon id=%d by user=%d", salonID, req.ActorID)

	// 1. Получаем салон и проверяем права владельца
	existing, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("Update: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Update: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !existing.IsOwnedBy(req.ActorID) {
		s.logger.Warn("Update: user=%d is not the owner of salon=%d", req.ActorID, salonID)
		return nil, ErrAccessDenied
	}

	// 2. Конвертируем запрос и валидируем
	salon, err := req.ToDomainSalon(existing.OwnerID)
	if err != nil {
		s.logger.Warn("Update: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateSchedule(salon); err != nil {
		s.logger.Warn("Update: schedule validation failed: %v", err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.salonRepo.Update(ctx, salonID, salon)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		s.logger.Error("Update: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated salon id=%d", salonID)
	return models.FromDomainSalon(updated), nil
}

// GetByID получает салон по ID (публичный метод)
func (s *Service) GetByID(ctx context.Context, salonID int64) (*models.SalonResponse, error) {
	s.logger.Info("GetByID: fetching salon id=%d", salonID)

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetByID: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetByID: repository error for salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}

// GetByOwner получает все салоны владельца, включая неактивные
// Доступно только самому владельцу
func (s *Service) GetByOwner(ctx context.Context, ownerID int64) (*models.SalonListResponse, error) {
	s.logger.Info("GetByOwner: fetching salons for owner=%d", ownerID)

	salons, err := s.salonRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByOwner: successfully fetched %d salons for owner=%d", len(salons), ownerID)
	return models.FromDomainSalonList(salons), nil
}

// List получает список салонов с опциональной фильтрацией по городу
// (публичный метод, для браузинга клиентами возвращает только активные салоны)
func (s *Service) List(ctx context.Context, city *string) (*models.SalonListResponse, error) {
	s.logger.Info("List: fetching salons, city=%v", city)

	salons, err := s.salonRepo.List(ctx, domain.SalonListFilter{
		City:       city,
		OnlyActive: true,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d salons", len(salons))
	return models.FromDomainSalonList(salons), nil
}

// validateSchedule проверяет инварианты конфигурации расписания:
//   - startTime < endTime
//   - перерыв либо не задан, либо задан полностью, breakStart < breakEnd,
//     и обе границы лежат внутри рабочего окна
//   - slotDuration и maxBookingPerSlot в допустимых пределах
//   - workingDays содержит только корректные названия дней недели
func validateSchedule(salon *domain.Salon) error {
	if salon.Name == "" || len(salon.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if !salon.StartTime.IsBefore(salon.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidSchedule)
	}

	if (salon.BreakStartTime == nil) != (salon.BreakEndTime == nil) {
		return fmt.Errorf("%w: break window must specify both start and end", ErrInvalidSchedule)
	}

	if salon.HasBreak() {
		if !salon.BreakStartTime.IsBefore(*salon.BreakEndTime) {
			return fmt.Errorf("%w: breakStartTime must be before breakEndTime", ErrInvalidSchedule)
		}
		if salon.BreakStartTime.IsBefore(salon.StartTime) || salon.BreakEndTime.IsAfter(salon.EndTime) {
			return fmt.Errorf("%w: break window must lie within working hours", ErrInvalidSchedule)
		}
	}

	if salon.SlotDurationMinutes < domain.MinSlotDurationMinutes || salon.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidSchedule, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if salon.MaxBookingPerSlot < domain.MinBookingPerSlot || salon.MaxBookingPerSlot > domain.MaxBookingPerSlotLimit {
		return fmt.Errorf("%w: maxBookingPerSlot must be between %d and %d",
			ErrInvalidSchedule, domain.MinBookingPerSlot, domain.MaxBookingPerSlotLimit)
	}

	if len(salon.WorkingDays) == 0 {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidSchedule)
	}
	for _, day := range salon.WorkingDays {
		if !domain.IsWeekdayName(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
	}

	return nil
}

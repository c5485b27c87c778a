package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avelanse/salon-booking-service/internal/domain"
	storage "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

// Понедельник
var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func testSalon(t *testing.T) *domain.Salon {
	t.Helper()
	breakStart := ts(t, "10:00")
	breakEnd := ts(t, "10:30")
	return &domain.Salon{
		ID:                  1,
		OwnerID:             100,
		WorkingDays:         []string{"monday"},
		StartTime:           ts(t, "09:00"),
		EndTime:             ts(t, "11:00"),
		BreakStartTime:      &breakStart,
		BreakEndTime:        &breakEnd,
		SlotDurationMinutes: 30,
		MaxBookingPerSlot:   2,
		IsActive:            true,
	}
}

// Тест 1: Слоты с учетом перерыва и занятости
func TestGetAvailableSlots_WithBookings(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()

	salonRepo.On("GetByID", ctx, int64(1)).Return(testSalon(t), nil).Once()
	bookingRepo.On("GetBySalonWithFilter", ctx, mock.AnythingOfType("domain.SalonBookingsFilter")).
		Return([]*domain.Booking{
			{StartTime: ts(t, "09:00"), Status: domain.StatusConfirmed},
			{StartTime: ts(t, "09:00"), Status: domain.StatusPending},
			{StartTime: ts(t, "09:30"), Status: domain.StatusPending},
			{StartTime: ts(t, "09:30"), Status: domain.StatusCancelled}, // не занимает место
		}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{SalonID: 1, Date: testDate})
	require.NoError(t, err)

	// Слот 10:00 пересекает перерыв и исключен
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, 0, resp.Slots[0].AvailableSpots)

	assert.Equal(t, "09:30", resp.Slots[1].StartTime.String())
	assert.Equal(t, 1, resp.Slots[1].AvailableSpots)

	assert.Equal(t, "10:30", resp.Slots[2].StartTime.String())
	assert.Equal(t, "11:00", resp.Slots[2].EndTime.String())
	assert.Equal(t, 2, resp.Slots[2].AvailableSpots)
	assert.Equal(t, 2, resp.Slots[2].TotalSpots)
	assert.Equal(t, 30, resp.Slots[2].DurationMinutes)
}

// Тест 2: Нерабочий день - пустой список без ошибки
func TestGetAvailableSlots_NonWorkingDay(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	salonRepo.On("GetByID", ctx, int64(1)).Return(testSalon(t), nil).Once()

	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(ctx, &Request{SalonID: 1, Date: tuesday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	bookingRepo.AssertNotCalled(t, "GetBySalonWithFilter", mock.Anything, mock.Anything)
}

// Тест 3: Салон не найден
func TestGetAvailableSlots_SalonNotFound(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	salonRepo.On("GetByID", ctx, int64(99)).Return(nil, storage.ErrSalonNotFound).Once()

	_, err := uc.Execute(ctx, &Request{SalonID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

// Тест 4: Некорректный ID салона
func TestGetAvailableSlots_InvalidInput(t *testing.T) {
	uc := NewUseCase(&MockBookingRepository{}, &MockSalonRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SalonID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SalonID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

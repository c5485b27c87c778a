package check_availability

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

func testSalon(t *testing.T) *domain.Salon {
	t.Helper()
	return &domain.Salon{
		ID:                  1,
		OwnerID:             100,
		WorkingDays:         []string{"monday"},
		StartTime:           ts(t, "09:00"),
		EndTime:             ts(t, "18:00"),
		SlotDurationMinutes: 30,
		MaxBookingPerSlot:   3,
		IsActive:            true,
	}
}

// Понедельник
var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

// Тест 1: Частично занятый слот
func TestCheckAvailability_PartiallyBooked(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	start := ts(t, "10:00")

	salonRepo.On("GetByID", ctx, int64(1)).Return(testSalon(t), nil).Once()
	bookingRepo.On("GetBySalonWithFilter", ctx, mock.AnythingOfType("domain.SalonBookingsFilter")).
		Return([]*domain.Booking{
			{StartTime: start, Status: domain.StatusPending},
			{StartTime: start, Status: domain.StatusConfirmed},
			{StartTime: start, Status: domain.StatusCancelled}, // не занимает место
		}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{SalonID: 1, Date: testDate, StartTime: start})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 1, resp.RemainingSpots)
	assert.Equal(t, 3, resp.TotalSpots)
	assert.Equal(t, "10:30", resp.EndTime.String())
}

// Тест 2: Полностью занятый слот - не ошибка, available=false
func TestCheckAvailability_FullSlot(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	start := ts(t, "10:00")

	salonRepo.On("GetByID", ctx, int64(1)).Return(testSalon(t), nil).Once()
	bookingRepo.On("GetBySalonWithFilter", ctx, mock.AnythingOfType("domain.SalonBookingsFilter")).
		Return([]*domain.Booking{
			{StartTime: start, Status: domain.StatusPending},
			{StartTime: start, Status: domain.StatusPending},
			{StartTime: start, Status: domain.StatusConfirmed},
		}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{SalonID: 1, Date: testDate, StartTime: start})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, 0, resp.RemainingSpots)
}

// Тест 3: Время не является слотом
func TestCheckAvailability_InvalidSlot(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	salonRepo.On("GetByID", ctx, int64(1)).Return(testSalon(t), nil).Once()

	_, err := uc.Execute(ctx, &Request{SalonID: 1, Date: testDate, StartTime: ts(t, "10:10")})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

// Тест 4: Нерабочий день - слота нет
func TestCheckAvailability_NonWorkingDay(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	salonRepo.On("GetByID", ctx, int64(1)).Return(testSalon(t), nil).Once()

	tuesday := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(ctx, &Request{SalonID: 1, Date: tuesday, StartTime: ts(t, "10:00")})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

// Тест 5: Салон не найден или неактивен
func TestCheckAvailability_SalonNotFound(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	salonRepo := &MockSalonRepository{}
	uc := NewUseCase(bookingRepo, salonRepo, nopLogger{})

	ctx := context.Background()
	salonRepo.On("GetByID", ctx, int64(99)).Return(nil, storage.ErrSalonNotFound).Once()

	_, err := uc.Execute(ctx, &Request{SalonID: 99, Date: testDate, StartTime: ts(t, "10:00")})
	assert.ErrorIs(t, err, ErrSalonNotFound)

	inactive := testSalon(t)
	inactive.IsActive = false
	salonRepo.On("GetByID", ctx, int64(1)).Return(inactive, nil).Once()

	_, err = uc.Execute(ctx, &Request{SalonID: 1, Date: testDate, StartTime: ts(t, "10:00")})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

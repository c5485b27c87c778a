package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avelanse/salon-booking-service/internal/domain"
	bookingRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/booking"
	"github.com/avelanse/salon-booking-service/internal/service/bookings/models"
	"github.com/avelanse/salon-booking-service/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetBySalonWithFilter(ctx context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
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

// Хелперы

const (
	customerID = int64(7)
	ownerID    = int64(100)
	strangerID = int64(55)
)

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              42,
		UserID:          customerID,
		SalonID:         1,
		AppointmentDate: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("10:30"),
		Status:          status,
	}
}

func testSalon() *domain.Salon {
	return &domain.Salon{
		ID:       1,
		OwnerID:  ownerID,
		IsActive: true,
	}
}

func newTestService() (*Service, *MockBookingRepository, *MockSalonRepository) {
	bookings := &MockBookingRepository{}
	salons := &MockSalonRepository{}
	return NewService(bookings, salons, nopLogger{}), bookings, salons
}

// ============================ UpdateStatus ============================

// Тест 1: Владелец подтверждает бронирование
func TestUpdateStatus_OwnerConfirms(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()
	bookings.On("UpdateStatus", ctx, int64(42), domain.StatusConfirmed).Return(nil).Once()

	resp, err := svc.UpdateStatus(ctx, 42, &models.UpdateStatusRequest{
		ActorID: ownerID,
		Status:  "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	bookings.AssertExpectations(t)
}

// Тест 2: Клиент не может подтвердить собственное бронирование
func TestUpdateStatus_CustomerCannotConfirm(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()

	_, err := svc.UpdateStatus(ctx, 42, &models.UpdateStatusRequest{
		ActorID: customerID,
		Status:  "confirmed",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// Тест 3: Переход из cancelled запрещен
func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusCancelled), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()

	_, err := svc.UpdateStatus(ctx, 42, &models.UpdateStatusRequest{
		ActorID: ownerID,
		Status:  "confirmed",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Тест 4: Переход confirmed -> pending запрещен
func TestUpdateStatus_NoBackwardTransition(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusConfirmed), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()

	_, err := svc.UpdateStatus(ctx, 42, &models.UpdateStatusRequest{
		ActorID: ownerID,
		Status:  "pending",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Тест 5: Неизвестный статус
func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()

	_, err := svc.UpdateStatus(ctx, 42, &models.UpdateStatusRequest{
		ActorID: ownerID,
		Status:  "done",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// Тест 6: Бронирование не найдено
func TestUpdateStatus_BookingNotFound(t *testing.T) {
	svc, bookings, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound).Once()

	_, err := svc.UpdateStatus(ctx, 99, &models.UpdateStatusRequest{
		ActorID: ownerID,
		Status:  "confirmed",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// ============================ Cancel ============================

// Тест 7: Клиент отменяет свое бронирование
func TestCancel_ByCustomer(t *testing.T) {
	svc, bookings, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()
	bookings.On("UpdateStatus", ctx, int64(42), domain.StatusCancelled).Return(nil).Once()

	resp, err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{ActorID: customerID})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	bookings.AssertExpectations(t)
}

// Тест 8: Владелец салона отменяет чужое бронирование
func TestCancel_ByOwner(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusConfirmed), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()
	bookings.On("UpdateStatus", ctx, int64(42), domain.StatusCancelled).Return(nil).Once()

	resp, err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{ActorID: ownerID})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

// Тест 9: Посторонний пользователь не может отменить бронирование
func TestCancel_ByStranger(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()

	_, err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{ActorID: strangerID})

	assert.ErrorIs(t, err, ErrAccessDenied)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// Тест 10: Повторная отмена запрещена
func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, bookings, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusCancelled), nil).Once()

	_, err := svc.Cancel(ctx, 42, &models.CancelBookingRequest{ActorID: customerID})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// ============================ Чтение ============================

// Тест 11: Клиент читает свое бронирование
func TestGetByID_ByCustomer(t *testing.T) {
	svc, bookings, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()

	resp, err := svc.GetByID(ctx, 42, customerID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
}

// Тест 12: Посторонний пользователь не видит чужое бронирование
func TestGetByID_AccessDenied(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, int64(42)).Return(testBooking(domain.StatusPending), nil).Once()
	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Once()

	_, err := svc.GetByID(ctx, 42, strangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

// Тест 13: Список бронирований салона доступен только владельцу
func TestGetSalonBookings_OwnerOnly(t *testing.T) {
	svc, bookings, salons := newTestService()
	ctx := context.Background()

	salons.On("GetByID", ctx, int64(1)).Return(testSalon(), nil).Twice()

	// Владелец получает список
	bookings.On("GetBySalonWithFilter", ctx, mock.AnythingOfType("domain.SalonBookingsFilter")).
		Return([]*domain.Booking{testBooking(domain.StatusPending)}, nil).Once()

	resp, err := svc.GetSalonBookings(ctx, &models.GetSalonBookingsRequest{
		ActorID: ownerID,
		SalonID: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	// Клиент - нет
	_, err = svc.GetSalonBookings(ctx, &models.GetSalonBookingsRequest{
		ActorID: customerID,
		SalonID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

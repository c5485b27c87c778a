package salons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avelanse/salon-booking-service/internal/domain"
	salonRepo "github.com/avelanse/salon-booking-service/internal/infra/storage/salon"
	"github.com/avelanse/salon-booking-service/internal/service/salons/models"
	"github.com/avelanse/salon-booking-service/pkg/ptr"
)

// Mock структуры

type MockSalonRepository struct {
	mock.Mock
}

func (m *MockSalonRepository) Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	args := m.Called(ctx, salon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Salon, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) List(ctx context.Context, filter domain.SalonListFilter) ([]*domain.Salon, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Salon), args.Error(1)
}

func (m *MockSalonRepository) Update(ctx context.Context, id int64, salon *domain.Salon) (*domain.Salon, error) {
	args := m.Called(ctx, id, salon)
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

func validSalonData() models.SalonData {
	return models.SalonData{
		Name:              "Студия красоты",
		Address:           "ул. Пушкина, 10",
		City:              "Москва",
		State:             "Московская область",
		Zip:               "101000",
		MinServiceCharge:  500,
		MaxServiceCharge:  5000,
		WorkingDays:       []string{"monday", "tuesday", "wednesday"},
		StartTime:         "09:00",
		EndTime:           "18:00",
		BreakStartTime:    ptr.Ptr("13:00"),
		BreakEndTime:      ptr.Ptr("14:00"),
		SlotDuration:      30,
		MaxBookingPerSlot: 2,
		IsActive:          true,
	}
}

// Тест 1: Успешное создание салона
func TestCreateSalon_Success(t *testing.T) {
	repo := &MockSalonRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Salon")).
		Run(func(args mock.Arguments) {
			salon := args.Get(1).(*domain.Salon)
			assert.Equal(t, int64(100), salon.OwnerID)
			assert.Equal(t, "09:00", salon.StartTime.String())
		}).
		Return(&domain.Salon{ID: 1, OwnerID: 100, Name: "Студия красоты"}, nil).Once()

	resp, err := svc.Create(ctx, &models.CreateSalonRequest{
		OwnerID:   100,
		SalonData: validSalonData(),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	repo.AssertExpectations(t)
}

// Тест 2: Валидация расписания при создании
func TestCreateSalon_ScheduleValidation(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(d *models.SalonData)
		wantErr error
	}{
		{
			name:    "start after end",
			mutate:  func(d *models.SalonData) { d.StartTime = "18:00"; d.EndTime = "09:00" },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "start equals end",
			mutate:  func(d *models.SalonData) { d.StartTime = "09:00"; d.EndTime = "09:00" },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "break start without end",
			mutate:  func(d *models.SalonData) { d.BreakEndTime = nil },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "break outside working hours",
			mutate:  func(d *models.SalonData) { d.BreakStartTime = ptr.Ptr("08:00"); d.BreakEndTime = ptr.Ptr("09:30") },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "inverted break",
			mutate:  func(d *models.SalonData) { d.BreakStartTime = ptr.Ptr("14:00"); d.BreakEndTime = ptr.Ptr("13:00") },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "slot duration too small",
			mutate:  func(d *models.SalonData) { d.SlotDuration = 1 },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "slot duration too large",
			mutate:  func(d *models.SalonData) { d.SlotDuration = 600 },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "zero capacity",
			mutate:  func(d *models.SalonData) { d.MaxBookingPerSlot = 0 },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "no working days",
			mutate:  func(d *models.SalonData) { d.WorkingDays = nil },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "unknown weekday",
			mutate:  func(d *models.SalonData) { d.WorkingDays = []string{"Monday"} },
			wantErr: ErrInvalidSchedule,
		},
		{
			name:    "empty name",
			mutate:  func(d *models.SalonData) { d.Name = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time format",
			mutate:  func(d *models.SalonData) { d.StartTime = "9am" },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockSalonRepository{}
			svc := NewService(repo, nopLogger{})

			data := validSalonData()
			tc.mutate(&data)

			_, err := svc.Create(context.Background(), &models.CreateSalonRequest{
				OwnerID:   100,
				SalonData: data,
			})

			assert.ErrorIs(t, err, tc.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

// Тест 3: Обновление доступно только владельцу
func TestUpdateSalon_OwnerOnly(t *testing.T) {
	repo := &MockSalonRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	existing := &domain.Salon{ID: 1, OwnerID: 100}
	repo.On("GetByID", ctx, int64(1)).Return(existing, nil).Twice()
	repo.On("Update", ctx, int64(1), mock.AnythingOfType("*domain.Salon")).
		Return(&domain.Salon{ID: 1, OwnerID: 100}, nil).Once()

	// Владелец обновляет
	_, err := svc.Update(ctx, 1, &models.UpdateSalonRequest{
		ActorID:   100,
		SalonData: validSalonData(),
	})
	require.NoError(t, err)

	// Чужой пользователь - нет
	_, err = svc.Update(ctx, 1, &models.UpdateSalonRequest{
		ActorID:   55,
		SalonData: validSalonData(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// Тест 4: Обновление несуществующего салона
func TestUpdateSalon_NotFound(t *testing.T) {
	repo := &MockSalonRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(99)).Return(nil, salonRepo.ErrSalonNotFound).Once()

	_, err := svc.Update(ctx, 99, &models.UpdateSalonRequest{
		ActorID:   100,
		SalonData: validSalonData(),
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

// Тест 5: Салоны владельца возвращаются включая неактивные
func TestGetByOwner(t *testing.T) {
	repo := &MockSalonRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("GetByOwnerID", ctx, int64(100)).Return([]*domain.Salon{
		{ID: 1, OwnerID: 100, IsActive: true},
		{ID: 2, OwnerID: 100, IsActive: false},
	}, nil).Once()

	resp, err := svc.GetByOwner(ctx, 100)

	require.NoError(t, err)
	assert.Len(t, resp.Salons, 2)
	assert.False(t, resp.Salons[1].IsActive)
	repo.AssertExpectations(t)
}

// Тест 6: Список возвращает только активные салоны
func TestListSalons_OnlyActive(t *testing.T) {
	repo := &MockSalonRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("List", ctx, mock.MatchedBy(func(f domain.SalonListFilter) bool {
		return f.OnlyActive && f.City != nil && *f.City == "Москва"
	})).Return([]*domain.Salon{{ID: 1}, {ID: 2}}, nil).Once()

	resp, err := svc.List(ctx, ptr.Ptr("Москва"))

	require.NoError(t, err)
	assert.Len(t, resp.Salons, 2)
	repo.AssertExpectations(t)
}

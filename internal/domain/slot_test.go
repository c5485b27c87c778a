package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func tsPtr(t *testing.T, s string) *types.TimeString {
	t.Helper()
	v := ts(t, s)
	return &v
}

// Понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func testSalon(t *testing.T) *Salon {
	t.Helper()
	return &Salon{
		ID:                  1,
		OwnerID:             100,
		Name:                "Тестовый салон",
		WorkingDays:         []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:           ts(t, "09:00"),
		EndTime:             ts(t, "18:00"),
		SlotDurationMinutes: 30,
		MaxBookingPerSlot:   3,
		IsActive:            true,
	}
}

// Тест 1: Генерация слотов с перерывом - слот, пересекающий перерыв, исключается
func TestGenerateSlots_WithBreak(t *testing.T) {
	salon := testSalon(t)
	salon.StartTime = ts(t, "09:00")
	salon.EndTime = ts(t, "11:00")
	salon.BreakStartTime = tsPtr(t, "10:00")
	salon.BreakEndTime = tsPtr(t, "10:30")

	windows, err := GenerateSlots(salon, monday)
	require.NoError(t, err)

	starts := make([]string, len(windows))
	for i, w := range windows {
		starts[i] = w.Start.String()
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, starts)
}

// Тест 2: Касание границы перерыва не считается пересечением
func TestGenerateSlots_BreakBoundaryContact(t *testing.T) {
	salon := testSalon(t)
	salon.StartTime = ts(t, "09:00")
	salon.EndTime = ts(t, "13:00")
	salon.BreakStartTime = tsPtr(t, "11:00")
	salon.BreakEndTime = tsPtr(t, "12:00")
	salon.SlotDurationMinutes = 60

	windows, err := GenerateSlots(salon, monday)
	require.NoError(t, err)

	starts := make([]string, len(windows))
	for i, w := range windows {
		starts[i] = w.Start.String()
	}
	// Слот 10:00-11:00 заканчивается ровно в начале перерыва и остается
	assert.Equal(t, []string{"09:00", "10:00", "12:00"}, starts)
}

// Тест 3: Нерабочий день - пустой список, не ошибка
func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	salon := testSalon(t)

	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	windows, err := GenerateSlots(salon, sunday)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

// Тест 4: Последний неполный слот отбрасывается
func TestGenerateSlots_PartialSlotDropped(t *testing.T) {
	salon := testSalon(t)
	salon.StartTime = ts(t, "09:00")
	salon.EndTime = ts(t, "10:45")

	windows, err := GenerateSlots(salon, monday)
	require.NoError(t, err)

	require.Len(t, windows, 3)
	assert.Equal(t, "10:00", windows[2].Start.String())
	assert.Equal(t, "10:30", windows[2].End.String())
}

// Тест 5: Перерыв на весь день - слотов нет
func TestGenerateSlots_FullDayBreak(t *testing.T) {
	salon := testSalon(t)
	salon.BreakStartTime = tsPtr(t, "09:00")
	salon.BreakEndTime = tsPtr(t, "18:00")

	windows, err := GenerateSlots(salon, monday)
	require.NoError(t, err)
	assert.Empty(t, windows)
}

// Тест 6: Некорректная длительность слота
func TestGenerateSlots_InvalidDuration(t *testing.T) {
	salon := testSalon(t)
	salon.SlotDurationMinutes = 0

	_, err := GenerateSlots(salon, monday)
	assert.ErrorIs(t, err, ErrInvalidSlotConfig)
}

// Тест 7: Повторный вызов дает идентичный результат
func TestGenerateSlots_Deterministic(t *testing.T) {
	salon := testSalon(t)
	salon.BreakStartTime = tsPtr(t, "13:00")
	salon.BreakEndTime = tsPtr(t, "14:00")

	first, err := GenerateSlots(salon, monday)
	require.NoError(t, err)
	second, err := GenerateSlots(salon, monday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Тест 8: Слоты идут в хронологическом порядке без пересечений
func TestGenerateSlots_OrderedAndDisjoint(t *testing.T) {
	salon := testSalon(t)

	windows, err := GenerateSlots(salon, monday)
	require.NoError(t, err)
	require.NotEmpty(t, windows)

	for i := 1; i < len(windows); i++ {
		assert.False(t, windows[i].Start.IsBefore(windows[i-1].End),
			"slot %d overlaps slot %d", i, i-1)
	}
}

func TestFindSlot(t *testing.T) {
	salon := testSalon(t)
	windows, err := GenerateSlots(salon, monday)
	require.NoError(t, err)

	found := FindSlot(windows, ts(t, "10:30"))
	require.NotNil(t, found)
	assert.Equal(t, "11:00", found.End.String())

	// Время между границами слотов не является слотом
	assert.Nil(t, FindSlot(windows, ts(t, "10:15")))
	// Время за пределами рабочего дня
	assert.Nil(t, FindSlot(windows, ts(t, "18:00")))
}

func TestCountBookingsForSlot(t *testing.T) {
	start := ts(t, "10:00")
	other := ts(t, "10:30")

	bookings := []*Booking{
		{StartTime: start, Status: StatusPending},
		{StartTime: start, Status: StatusConfirmed},
		{StartTime: start, Status: StatusCancelled}, // не учитывается
		{StartTime: other, Status: StatusPending},
	}

	assert.Equal(t, 2, CountBookingsForSlot(bookings, start))
	assert.Equal(t, 1, CountBookingsForSlot(bookings, other))
	assert.Equal(t, 0, CountBookingsForSlot(nil, start))
}

func TestAvailableSlot_Capacity(t *testing.T) {
	full := &AvailableSlot{AvailableSpots: 0, TotalSpots: 3}
	assert.True(t, full.IsFull())
	assert.False(t, full.IsPartiallyAvailable())

	partial := &AvailableSlot{AvailableSpots: 1, TotalSpots: 3}
	assert.False(t, partial.IsFull())
	assert.True(t, partial.IsPartiallyAvailable())

	free := &AvailableSlot{AvailableSpots: 3, TotalSpots: 3}
	assert.True(t, free.IsFullyAvailable())
}

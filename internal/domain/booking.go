package domain

import (
	"time"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

// BookingStatus represents the status of an appointment booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CanTransitionTo reports whether the status state machine allows moving
// from s to target. Allowed transitions:
//
//	pending   -> confirmed
//	pending   -> cancelled
//	confirmed -> cancelled
//
// cancelled is terminal; self-transitions are not allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	default:
		return false
	}
}

// Booking represents a salon appointment in the system.
// A booking is never deleted: cancellation is a status, not a removal.
type Booking struct {
	ID              int64
	UserID          int64
	SalonID         int64
	AppointmentDate time.Time // calendar date, no time component
	StartTime       types.TimeString
	EndTime         types.TimeString // always StartTime + salon slot duration
	Status          BookingStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies slot capacity
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// SalonBookingsFilter фильтр для получения бронирований салона
type SalonBookingsFilter struct {
	SalonID          int64          // Обязательный параметр
	Date             *time.Time     // Конкретная дата (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}

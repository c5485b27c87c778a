package domain

import (
	"errors"
	"time"

	"github.com/avelanse/salon-booking-service/pkg/types"
)

// ErrInvalidSlotConfig is returned by GenerateSlots when the salon schedule
// configuration is unusable (expected to be rejected upstream by validation)
var ErrInvalidSlotConfig = errors.New("domain: invalid slot configuration")

// TimeWindow is a single bookable window produced by the slot generator
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// AvailableSlot is a time window annotated with remaining capacity
type AvailableSlot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	AvailableSpots  int
	TotalSpots      int
}

// IsFull returns true if the slot has no available spots
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// IsPartiallyAvailable returns true if the slot has some but not all spots available
func (s *AvailableSlot) IsPartiallyAvailable() bool {
	return s.AvailableSpots > 0 && s.AvailableSpots < s.TotalSpots
}

// IsFullyAvailable returns true if all spots are available
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

// GenerateSlots derives the ordered list of bookable time windows for the
// salon on the given date. It is a pure function of its inputs.
//
// Rules:
//   - if the date's weekday is not among the salon's working days, the result
//     is empty (not an error);
//   - windows step forward from StartTime by SlotDurationMinutes while the
//     window end does not pass EndTime;
//   - a window is excluded when its interior intersects the break window
//     (end > breakStart && start < breakEnd); a window touching the break
//     boundary exactly is kept.
func GenerateSlots(salon *Salon, date time.Time) ([]TimeWindow, error) {
	if salon.SlotDurationMinutes <= 0 {
		return nil, ErrInvalidSlotConfig
	}

	windows := make([]TimeWindow, 0)

	if !salon.IsWorkingDay(date) {
		return windows, nil
	}

	current := salon.StartTime
	for {
		end, err := current.AddMinutes(salon.SlotDurationMinutes)
		if err != nil {
			break
		}
		if end.IsAfter(salon.EndTime) {
			break
		}

		if !overlapsBreak(salon, current, end) {
			windows = append(windows, TimeWindow{Start: current, End: end})
		}

		current = end
	}

	return windows, nil
}

// overlapsBreak reports strict interior overlap between the window and the
// salon's break. Boundary contact (end == breakStart or start == breakEnd)
// is not an overlap.
func overlapsBreak(salon *Salon, start, end types.TimeString) bool {
	if !salon.HasBreak() {
		return false
	}
	return end.IsAfter(*salon.BreakStartTime) && start.IsBefore(*salon.BreakEndTime)
}

// FindSlot returns the generated window starting at start, or nil if start is
// not a legitimate slot boundary for the salon/date the windows were built for
func FindSlot(windows []TimeWindow, start types.TimeString) *TimeWindow {
	for i := range windows {
		if windows[i].Start.Equal(start) {
			return &windows[i]
		}
	}
	return nil
}

// CountBookingsForSlot counts non-cancelled bookings occupying the slot that
// starts at start. Bookings are always slot-aligned, so occupancy is keyed by
// equal start time.
func CountBookingsForSlot(bookings []*Booking, start types.TimeString) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() && b.StartTime.Equal(start) {
			count++
		}
	}
	return count
}

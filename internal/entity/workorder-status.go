package entity

import "time"

// WorkOrderStatus is the display-only classification of a work order. It is
// derived at read time from the done flag and the scheduled date; it is never
// persisted.
type WorkOrderStatus string

const (
	StatusScheduled WorkOrderStatus = "Scheduled"
	StatusDueToday  WorkOrderStatus = "Due_Today"
	StatusOverdue   WorkOrderStatus = "Overdue"
	StatusCompleted WorkOrderStatus = "Completed"
)

// DeriveStatus classifies a work order against "now":
//   - done                  => Completed
//   - date after today      => Scheduled
//   - date is today         => Due_Today
//   - date before today     => Overdue
//
// Dates compare as calendar days, not instants, so a work order scheduled for
// today at any hour is Due_Today until midnight.
func DeriveStatus(date time.Time, done bool, now time.Time) WorkOrderStatus {
	if done {
		return StatusCompleted
	}

	d := calendarDay(date)
	today := calendarDay(now)

	switch {
	case d > today:
		return StatusScheduled
	case d == today:
		return StatusDueToday
	default:
		return StatusOverdue
	}
}

// calendarDay collapses a timestamp to a comparable yyyymmdd ordinal.
func calendarDay(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		done bool
		want WorkOrderStatus
	}{
		{
			name: "future date is scheduled",
			date: time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
			want: StatusScheduled,
		},
		{
			name: "same day is due today regardless of hour",
			date: time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC),
			want: StatusDueToday,
		},
		{
			name: "earlier hour today is still due today, not overdue",
			date: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			want: StatusDueToday,
		},
		{
			name: "past date is overdue",
			date: time.Date(2026, time.March, 9, 23, 59, 0, 0, time.UTC),
			want: StatusOverdue,
		},
		{
			name: "done wins over future date",
			date: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
			done: true,
			want: StatusCompleted,
		},
		{
			name: "done wins over overdue date",
			date: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			done: true,
			want: StatusCompleted,
		},
		{
			name: "year boundary compares as calendar days",
			date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: StatusOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.date, tt.done, now))
		})
	}
}

func TestWorkOrderTypeIsValid(t *testing.T) {
	assert.True(t, TypeCorrective.IsValid())
	assert.True(t, TypePredictive.IsValid())
	assert.True(t, TypePreventive.IsValid())
	assert.False(t, WorkOrderType("").IsValid())
	assert.False(t, WorkOrderType("cosmetic").IsValid())
}

package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rheareserve/booking-service/internal/domain"
	"github.com/rheareserve/booking-service/pkg/types"
)

func mustTime(s string) types.TimeString {
	return types.TimeString(s)
}

func usableHours(open, close string) *domain.BusinessHours {
	return &domain.BusinessHours{
		ID:         1,
		BusinessID: 10,
		Weekday:    domain.Monday,
		OpenTime:   mustTime(open),
		CloseTime:  mustTime(close),
		Active:     true,
	}
}

func staffWindow(staffID int64, day domain.Weekday, start, end string, available bool) *domain.StaffAvailability {
	return &domain.StaffAvailability{
		StaffID:    staffID,
		BusinessID: 10,
		Weekday:    day,
		StartTime:  mustTime(start),
		EndTime:    mustTime(end),
		Available:  available,
	}
}

func activeReservation(start, end string) *domain.Reservation {
	return &domain.Reservation{
		StaffID:   1,
		StartTime: mustTime(start),
		EndTime:   mustTime(end),
		Status:    domain.StatusReserved,
	}
}

func TestHoursForWeekday(t *testing.T) {
	rows := []*domain.BusinessHours{
		{Weekday: domain.Monday, OpenTime: "09:00", CloseTime: "18:00", Active: true},
		{Weekday: domain.Tuesday, OpenTime: "09:00", CloseTime: "18:00", Active: false},
		{Weekday: domain.Wednesday, OpenTime: "18:00", CloseTime: "09:00", Active: true},
	}

	hours, ok := HoursForWeekday(rows, domain.Monday)
	require.True(t, ok)
	assert.Equal(t, rows[0], hours)

	// Неактивная строка означает закрытый день
	_, ok = HoursForWeekday(rows, domain.Tuesday)
	assert.False(t, ok)

	// Перевернутое окно непригодно
	_, ok = HoursForWeekday(rows, domain.Wednesday)
	assert.False(t, ok)

	_, ok = HoursForWeekday(rows, domain.Sunday)
	assert.False(t, ok)
}

func TestWindowsForStaffDay(t *testing.T) {
	rows := []*domain.StaffAvailability{
		staffWindow(1, domain.Monday, "09:00", "13:00", true),
		staffWindow(1, domain.Monday, "14:00", "18:00", true),
		staffWindow(1, domain.Monday, "19:00", "21:00", false),
		staffWindow(1, domain.Tuesday, "09:00", "18:00", true),
		staffWindow(2, domain.Monday, "09:00", "18:00", true),
	}

	windows := WindowsForStaffDay(rows, 1, domain.Monday)
	require.Len(t, windows, 2)
	assert.Equal(t, mustTime("09:00"), windows[0].StartTime)
	assert.Equal(t, mustTime("14:00"), windows[1].StartTime)

	assert.Empty(t, WindowsForStaffDay(rows, 3, domain.Monday))
}

func TestFreeBlocks(t *testing.T) {
	hours := usableHours("09:00", "18:00")

	tests := []struct {
		name     string
		windows  []*domain.StaffAvailability
		taken    []*domain.Reservation
		duration int
		want     []Block
	}{
		{
			name:     "window inside business hours, no reservations",
			windows:  []*domain.StaffAvailability{staffWindow(1, domain.Monday, "10:00", "12:00", true)},
			duration: 60,
			want: []Block{
				{Start: "10:00", End: "11:00"},
				{Start: "11:00", End: "12:00"},
			},
		},
		{
			name:     "window clipped by business hours",
			windows:  []*domain.StaffAvailability{staffWindow(1, domain.Monday, "08:00", "11:00", true)},
			duration: 60,
			want: []Block{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00"},
			},
		},
		{
			name:     "window outside business hours yields nothing",
			windows:  []*domain.StaffAvailability{staffWindow(1, domain.Monday, "19:00", "22:00", true)},
			duration: 30,
			want:     []Block{},
		},
		{
			name: "reservation knocks out overlapping block",
			windows: []*domain.StaffAvailability{
				staffWindow(1, domain.Monday, "09:00", "12:00", true),
			},
			taken:    []*domain.Reservation{activeReservation("10:00", "11:00")},
			duration: 60,
			want: []Block{
				{Start: "09:00", End: "10:00"},
				{Start: "11:00", End: "12:00"},
			},
		},
		{
			name: "partially overlapping reservation removes both touched blocks",
			windows: []*domain.StaffAvailability{
				staffWindow(1, domain.Monday, "09:00", "12:00", true),
			},
			taken:    []*domain.Reservation{activeReservation("09:30", "10:30")},
			duration: 60,
			want: []Block{
				{Start: "11:00", End: "12:00"},
			},
		},
		{
			name: "cancelled reservation frees its block",
			windows: []*domain.StaffAvailability{
				staffWindow(1, domain.Monday, "09:00", "11:00", true),
			},
			taken: []*domain.Reservation{
				{StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
			},
			duration: 60,
			want: []Block{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00"},
			},
		},
		{
			name: "two independent windows produce independent blocks",
			windows: []*domain.StaffAvailability{
				staffWindow(1, domain.Monday, "09:00", "10:30", true),
				staffWindow(1, domain.Monday, "14:00", "15:30", true),
			},
			duration: 60,
			want: []Block{
				{Start: "09:00", End: "10:00"},
				{Start: "14:00", End: "15:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FreeBlocks(hours, tt.windows, tt.taken, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

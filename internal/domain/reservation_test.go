package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ActiveStatuses используется репозиторием при поиске конфликтов; расхождение
// с IsActive означало бы, что проверка занятости и фильтр запроса видят разные
// множества резерваций
func TestActiveStatuses_MatchIsActive(t *testing.T) {
	active := make(map[ReservationStatus]bool, len(ActiveStatuses))
	for _, s := range ActiveStatuses {
		active[s] = true
	}

	for _, s := range []ReservationStatus{StatusReserved, StatusPaid, StatusCompleted, StatusCancelled} {
		r := Reservation{Status: s}
		assert.Equal(t, r.IsActive(), active[s], "status %s", s)
	}

	assert.Len(t, ActiveStatuses, 3)
	assert.NotContains(t, ActiveStatuses, StatusCancelled)
}

func TestReservationStatusPredicates(t *testing.T) {
	tests := []struct {
		status         ReservationStatus
		isActive       bool
		isCancelled    bool
		canBeCancelled bool
	}{
		{StatusReserved, true, false, true},
		{StatusPaid, true, false, true},
		{StatusCompleted, true, false, false},
		{StatusCancelled, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := Reservation{Status: tt.status}
			assert.Equal(t, tt.isActive, r.IsActive())
			assert.Equal(t, tt.isCancelled, r.IsCancelled())
			assert.Equal(t, tt.canBeCancelled, r.CanBeCancelled())
		})
	}
}

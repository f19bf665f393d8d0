package domain

import (
	"time"

	"github.com/rheareserve/booking-service/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation.
// Values are persisted as-is; they are the Spanish labels the rest of the
// product (payments, dashboard) already understands.
type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "reservado"
	StatusPaid      ReservationStatus = "pagado"
	StatusCompleted ReservationStatus = "completado"
	StatusCancelled ReservationStatus = "cancelado"
)

// Reservation represents a committed booking occupying a staff member's time.
// Invariant: for a given (business, staff, date) no two reservations with a
// status other than cancelled may have overlapping [start, end).
type Reservation struct {
	ID         int64
	BusinessID int64
	StaffID    int64
	ServiceID  int64
	ClientID   int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Status        ReservationStatus
	ClientComment *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time block
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation may still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusReserved || r.Status == StatusPaid
}

// ValidStatus возвращает true для известного статуса
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusReserved, StatusPaid, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// BusinessReservationsFilter фильтр для выборки резерваций бизнеса
type BusinessReservationsFilter struct {
	BusinessID      int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по сотруднику (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые резервации
}

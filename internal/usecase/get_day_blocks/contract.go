package get_day_blocks

import (
	"context"

	"github.com/rheareserve/booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetBusiness(ctx context.Context, id int64) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
	GetBusinessStaff(ctx context.Context, businessID int64) ([]*domain.Staff, error)
	GetBusinessHours(ctx context.Context, businessID int64) ([]*domain.BusinessHours, error)
	GetStaffAvailability(ctx context.Context, businessID int64) ([]*domain.StaffAvailability, error)
	GetServiceStaffIDs(ctx context.Context, serviceID int64) ([]int64, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetForBusinessDay(ctx context.Context, businessID int64, date string) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

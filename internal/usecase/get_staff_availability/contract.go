package get_staff_availability

import (
	"context"
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetBusiness(ctx context.Context, id int64) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID int64) (*domain.Service, error)
	GetStaff(ctx context.Context, businessID, staffID int64) (*domain.Staff, error)
	GetBusinessHours(ctx context.Context, businessID int64) ([]*domain.BusinessHours, error)
	GetStaffAvailabilityByStaff(ctx context.Context, businessID, staffID int64) ([]*domain.StaffAvailability, error)
}

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetForStaffRange(ctx context.Context, staffID int64, startDate, endDate string) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

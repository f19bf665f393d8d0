package get_staff_availability

import (
	"context"

	staffAvailability "github.com/rheareserve/booking-service/internal/usecase/get_staff_availability"
)

type StaffAvailabilityUseCase interface {
	Execute(ctx context.Context, req *staffAvailability.Request) (*staffAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

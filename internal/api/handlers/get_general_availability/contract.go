package get_general_availability

import (
	"context"

	generalAvailability "github.com/rheareserve/booking-service/internal/usecase/get_general_availability"
)

type GeneralAvailabilityUseCase interface {
	Execute(ctx context.Context, req *generalAvailability.Request) (*generalAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

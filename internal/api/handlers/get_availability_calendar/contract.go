package get_availability_calendar

import (
	"context"

	availabilityCalendar "github.com/rheareserve/booking-service/internal/usecase/get_availability_calendar"
)

type AvailabilityCalendarUseCase interface {
	Execute(ctx context.Context, req *availabilityCalendar.Request) (*availabilityCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_business_reservations

import (
	"context"

	"github.com/rheareserve/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetBusinessReservations(ctx context.Context, req *models.GetBusinessReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

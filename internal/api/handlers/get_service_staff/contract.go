package get_service_staff

import (
	"context"

	"github.com/rheareserve/booking-service/internal/service/staff/models"
)

type StaffService interface {
	GetServiceStaff(ctx context.Context, businessID, serviceID int64) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

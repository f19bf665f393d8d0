package get_business_reservations

import (
	"strconv"
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
	"github.com/rheareserve/booking-service/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров.
// Пустые query параметры означают отсутствие фильтра
func ToServiceRequest(businessID int64, staffIDStr, startDateStr, endDateStr, statusStr, includeInactiveStr string) (*models.GetBusinessReservationsRequest, error) {
	req := &models.GetBusinessReservationsRequest{
		BusinessID: businessID,
	}

	if staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

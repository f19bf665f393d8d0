package create_reservation

import (
	"fmt"
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidBlock)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

// validateDate проверяет, что дата резервации не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// validateBlockLength проверяет, что длина блока совпадает с длительностью услуги
func validateBlockLength(req *Request, service *domain.Service) error {
	length, err := req.StartTime.MinutesBetween(req.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}

	if length != service.DurationMinutes {
		return fmt.Errorf("%w: block length %d does not match service duration %d",
			ErrInvalidBlock, length, service.DurationMinutes)
	}

	return nil
}

// hasOverlap проверяет пересечение блока с активными резервациями дня
// Строгие неравенства: граничащие блоки не конфликтуют
func hasOverlap(req *Request, taken []*domain.Reservation) bool {
	for _, reservation := range taken {
		if !reservation.IsActive() {
			continue
		}
		if reservation.StartTime.IsBefore(req.EndTime) && reservation.EndTime.IsAfter(req.StartTime) {
			return true
		}
	}
	return false
}

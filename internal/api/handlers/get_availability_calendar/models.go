package get_availability_calendar

import (
	"github.com/rheareserve/booking-service/internal/domain"
	availabilityCalendar "github.com/rheareserve/booking-service/internal/usecase/get_availability_calendar"
)

// DayResponse флаг доступности одного дня
// Эндпоинт отдаёт плоский массив дней, без обёртки
type DayResponse struct {
	Date      string `json:"date"` // "2025-10-15"
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availabilityCalendar.Response) []DayResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Available: day.Available,
		})
	}
	return days
}

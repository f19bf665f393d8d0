package get_staff_availability

import (
	"github.com/rheareserve/booking-service/internal/domain"
	staffAvailability "github.com/rheareserve/booking-service/internal/usecase/get_staff_availability"
)

// StaffAvailabilityResponse HTTP response model
type StaffAvailabilityResponse struct {
	BusinessID int64         `json:"businessId"`
	ServiceID  int64         `json:"serviceId"`
	StaffID    int64         `json:"staffId"`
	StaffName  string        `json:"staffName"`
	Days       []DayResponse `json:"days"`
}

// DayResponse доступность одного дня горизонта
type DayResponse struct {
	Date      string          `json:"date"` // "2025-10-15"
	Available bool            `json:"available"`
	Blocks    []BlockResponse `json:"blocks"`
}

// BlockResponse временной блок
type BlockResponse struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "11:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *staffAvailability.Response) *StaffAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		blocks := make([]BlockResponse, 0, len(day.Blocks))
		for _, b := range day.Blocks {
			blocks = append(blocks, BlockResponse{Start: b.Start.String(), End: b.End.String()})
		}
		days = append(days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Available: day.Available,
			Blocks:    blocks,
		})
	}

	return &StaffAvailabilityResponse{
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		StaffID:    resp.StaffID,
		StaffName:  resp.StaffName,
		Days:       days,
	}
}

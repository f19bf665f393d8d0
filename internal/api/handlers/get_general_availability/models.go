package get_general_availability

import (
	"github.com/rheareserve/booking-service/internal/domain"
	generalAvailability "github.com/rheareserve/booking-service/internal/usecase/get_general_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BusinessID int64         `json:"businessId"`
	ServiceID  int64         `json:"serviceId"`
	Days       []DayResponse `json:"days"`
}

// DayResponse доступность одного дня горизонта
type DayResponse struct {
	Date      string                `json:"date"` // "2025-10-15"
	Available bool                  `json:"available"`
	Staff     []StaffBlocksResponse `json:"staff"`
}

// StaffBlocksResponse свободные блоки одного сотрудника
type StaffBlocksResponse struct {
	StaffID   int64           `json:"staffId"`
	StaffName string          `json:"staffName"`
	Blocks    []BlockResponse `json:"blocks"`
}

// BlockResponse временной блок
type BlockResponse struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "11:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generalAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		staff := make([]StaffBlocksResponse, 0, len(day.StaffBlocks))
		for _, sb := range day.StaffBlocks {
			blocks := make([]BlockResponse, 0, len(sb.Blocks))
			for _, b := range sb.Blocks {
				blocks = append(blocks, BlockResponse{Start: b.Start.String(), End: b.End.String()})
			}
			staff = append(staff, StaffBlocksResponse{
				StaffID:   sb.StaffID,
				StaffName: sb.StaffName,
				Blocks:    blocks,
			})
		}
		days = append(days, DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			Available: day.Available,
			Staff:     staff,
		})
	}

	return &AvailabilityResponse{
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		Days:       days,
	}
}

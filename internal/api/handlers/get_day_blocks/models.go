package get_day_blocks

import (
	dayBlocks "github.com/rheareserve/booking-service/internal/usecase/get_day_blocks"
)

// StaffBlockResponse свободный блок с владеющим сотрудником
// Эндпоинт отдаёт плоский массив блоков, без обёртки
type StaffBlockResponse struct {
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName"`
	Start     string `json:"start"` // "10:00"
	End       string `json:"end"`   // "11:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *dayBlocks.Response) []StaffBlockResponse {
	blocks := make([]StaffBlockResponse, 0, len(resp.Blocks))
	for _, b := range resp.Blocks {
		blocks = append(blocks, StaffBlockResponse{
			StaffID:   b.StaffID,
			StaffName: b.StaffName,
			Start:     b.Start.String(),
			End:       b.End.String(),
		})
	}
	return blocks
}

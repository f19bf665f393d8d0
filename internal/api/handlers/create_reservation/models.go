package create_reservation

import (
	"time"

	"github.com/rheareserve/booking-service/internal/domain"
	createReservation "github.com/rheareserve/booking-service/internal/usecase/create_reservation"
	"github.com/rheareserve/booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	BusinessID int64   `json:"businessId"`
	ServiceID  int64   `json:"serviceId"`
	StaffID    int64   `json:"staffId"`
	Date       string  `json:"date"`  // "2025-10-15"
	StartTime  string  `json:"start"` // "10:00"
	EndTime    string  `json:"end"`   // "11:00"
	Comment    *string `json:"comment,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64  `json:"id"`
	ClientID   int64  `json:"clientId"`
	BusinessID int64  `json:"businessId"`
	ServiceID  int64  `json:"serviceId"`
	StaffID    int64  `json:"staffId"`
	Date       string `json:"date"`
	StartTime  string `json:"start"`
	EndTime    string `json:"end"`
	Status     string `json:"status"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	StaffName    string  `json:"staffName"`
	Comment      *string `json:"comment,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// ID клиента берется из контекста аутентификации, не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientID:   clientID,
		BusinessID: r.BusinessID,
		ServiceID:  r.ServiceID,
		StaffID:    r.StaffID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Comment:    r.Comment,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		BusinessID:   resp.BusinessID,
		ServiceID:    resp.ServiceID,
		StaffID:      resp.StaffID,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		StaffName:    resp.StaffName,
		Comment:      resp.Comment,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

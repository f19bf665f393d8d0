package cancel_reservation

import "github.com/rheareserve/booking-service/internal/service/reservations/models"

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelReservationRequest) ToServiceRequest(clientID int64) *models.CancelReservationRequest {
	return &models.CancelReservationRequest{
		ClientID:           clientID,
		CancellationReason: r.CancellationReason,
	}
}

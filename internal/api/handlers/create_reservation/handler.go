package create_reservation

import (
	"errors"
	"net/http"

	"github.com/rheareserve/booking-service/internal/api/handlers"
	"github.com/rheareserve/booking-service/internal/api/middleware"
	createReservation "github.com/rheareserve/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidDateOrTime  = "formato de fecha u hora inválido, se espera YYYY-MM-DD y HH:MM"
	msgMissingClientID    = "falta el identificador del cliente"
	msgSlotTaken          = "el bloque de tiempo seleccionado ya no está disponible"
	msgBusinessNotFound   = "negocio no encontrado"
	msgServiceNotFound    = "servicio no encontrado"
	msgStaffNotFound      = "empleado no encontrado"
	msgInvalidDate        = "la fecha de la reserva no puede estar en el pasado"
	msgInvalidBlock       = "bloque de tiempo inválido"
	msgInvalidParams      = "parámetros de solicitud inválidos"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: client_id=%d, staff_id=%d, date=%s",
				clientID, req.StaffID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrBusinessNotFound):
			h.logger.Warn("POST /reservations - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: business_id=%d, service_id=%d",
				req.BusinessID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrStaffNotFound):
			h.logger.Warn("POST /reservations - Staff not found: business_id=%d, staff_id=%d",
				req.BusinessID, req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: client_id=%d, date=%s",
				clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidBlock):
			h.logger.Warn("POST /reservations - Invalid time block: client_id=%d, start=%s, end=%s",
				clientID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%d, business_id=%d, error=%v",
				clientID, req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, client_id=%d, business_id=%d",
		result.ID, clientID, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

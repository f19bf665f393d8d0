package get_general_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rheareserve/booking-service/internal/api/handlers"
	generalAvailability "github.com/rheareserve/booking-service/internal/usecase/get_general_availability"
)

const (
	msgInvalidBusinessID = "identificador de negocio inválido"
	msgInvalidServiceID  = "identificador de servicio inválido"
	msgBusinessNotFound  = "negocio no encontrado"
	msgServiceNotFound   = "servicio no encontrado"
	msgInvalidParams     = "parámetros de solicitud inválidos"
)

type Handler struct {
	useCase GeneralAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GeneralAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/general/{businessId}/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/general - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/general - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generalAvailability.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, generalAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /availability/general - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, generalAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability/general - Service not found: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, generalAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/general - Invalid input: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/general - Failed to compute availability: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/general - Availability computed: business_id=%d, service_id=%d, days=%d",
		businessID, serviceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

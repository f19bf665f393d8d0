package get_staff_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rheareserve/booking-service/internal/api/handlers"
	staffAvailability "github.com/rheareserve/booking-service/internal/usecase/get_staff_availability"
)

const (
	msgInvalidBusinessID = "identificador de negocio inválido"
	msgInvalidServiceID  = "identificador de servicio inválido"
	msgInvalidStaffID    = "identificador de empleado inválido"
	msgBusinessNotFound  = "negocio no encontrado"
	msgServiceNotFound   = "servicio no encontrado"
	msgStaffNotFound     = "empleado no encontrado"
	msgInvalidParams     = "parámetros de solicitud inválidos"
)

type Handler struct {
	useCase StaffAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase StaffAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/staff/{businessId}/{serviceId}/{staffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/staff - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/staff - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &staffAvailability.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		StaffID:    staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, staffAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /availability/staff - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, staffAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability/staff - Service not found: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, staffAvailability.ErrStaffNotFound):
			h.logger.Warn("GET /availability/staff - Staff not found: business_id=%d, staff_id=%d",
				businessID, staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, staffAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/staff - Invalid input: business_id=%d, service_id=%d, staff_id=%d",
				businessID, serviceID, staffID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/staff - Failed to compute availability: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/staff - Availability computed: business_id=%d, staff_id=%d, days=%d",
		businessID, staffID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_service_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rheareserve/booking-service/internal/api/handlers"
	"github.com/rheareserve/booking-service/internal/service/staff"
)

const (
	msgInvalidBusinessID = "identificador de negocio inválido"
	msgInvalidServiceID  = "identificador de servicio inválido"
	msgBusinessNotFound  = "negocio no encontrado"
	msgServiceNotFound   = "servicio no encontrado"
	msgInvalidParams     = "parámetros de solicitud inválidos"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services/{serviceId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/staff - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/staff - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.GetServiceStaff(r.Context(), businessID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{id}/staff - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, staff.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{id}/staff - Service not found: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/services/{id}/staff - Invalid input: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /businesses/{id}/services/{id}/staff - Failed to get staff: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/services/{id}/staff - Staff retrieved successfully: business_id=%d, service_id=%d, count=%d",
		businessID, serviceID, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}

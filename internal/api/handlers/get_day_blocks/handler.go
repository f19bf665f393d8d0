package get_day_blocks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/rheareserve/booking-service/internal/api/handlers"
	"github.com/rheareserve/booking-service/internal/domain"
	dayBlocks "github.com/rheareserve/booking-service/internal/usecase/get_day_blocks"
)

const (
	msgInvalidBusinessID = "identificador de negocio inválido"
	msgInvalidServiceID  = "identificador de servicio inválido"
	msgInvalidDate       = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgBusinessNotFound  = "negocio no encontrado"
	msgServiceNotFound   = "servicio no encontrado"
	msgInvalidParams     = "parámetros de solicitud inválidos"
)

type Handler struct {
	useCase DayBlocksUseCase
	logger  Logger
}

func NewHandler(useCase DayBlocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/blocks/{businessId}/{serviceId}/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/blocks - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/blocks - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/blocks - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &dayBlocks.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dayBlocks.ErrBusinessNotFound):
			h.logger.Warn("GET /availability/blocks - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, dayBlocks.ErrServiceNotFound):
			h.logger.Warn("GET /availability/blocks - Service not found: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, dayBlocks.ErrInvalidInput):
			h.logger.Warn("GET /availability/blocks - Invalid input: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/blocks - Failed to compute blocks: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/blocks - Blocks computed: business_id=%d, date=%s, count=%d",
		businessID, vars["date"], len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

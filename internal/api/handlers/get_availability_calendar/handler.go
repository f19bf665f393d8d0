package get_availability_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rheareserve/booking-service/internal/api/handlers"
	availabilityCalendar "github.com/rheareserve/booking-service/internal/usecase/get_availability_calendar"
)

const (
	msgInvalidBusinessID = "identificador de negocio inválido"
	msgBusinessNotFound  = "negocio no encontrado"
	msgInvalidParams     = "parámetros de solicitud inválidos"
)

type Handler struct {
	useCase AvailabilityCalendarUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar/{businessId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability/calendar - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &availabilityCalendar.Request{
		BusinessID: businessID,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityCalendar.ErrBusinessNotFound):
			h.logger.Warn("GET /availability/calendar - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, availabilityCalendar.ErrInvalidInput):
			h.logger.Warn("GET /availability/calendar - Invalid input: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/calendar - Failed to compute calendar: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/calendar - Calendar computed: business_id=%d, days=%d",
		businessID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

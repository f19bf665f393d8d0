package get_availability_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	availabilityCalendar "github.com/rheareserve/booking-service/internal/usecase/get_availability_calendar"
)

type stubUseCase struct {
	resp *availabilityCalendar.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *availabilityCalendar.Request) (*availabilityCalendar.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serveCalendar(t *testing.T, uc *stubUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/availability/calendar/{businessId}", handler.Handle).Methods(http.MethodGet)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestHandle_ReturnsFlatDayArray(t *testing.T) {
	uc := &stubUseCase{
		resp: &availabilityCalendar.Response{
			BusinessID: 10,
			Days: []availabilityCalendar.Day{
				{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Available: true},
				{Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), Available: false},
			},
		},
	}

	recorder := serveCalendar(t, uc, "/api/v1/availability/calendar/10")
	require.Equal(t, http.StatusOK, recorder.Code)

	// Контракт эндпоинта: плоский массив дней на верхнем уровне
	var days []DayResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &days))
	require.Len(t, days, 2)
	assert.Equal(t, DayResponse{Date: "2025-06-02", Available: true}, days[0])
	assert.Equal(t, DayResponse{Date: "2025-06-03", Available: false}, days[1])
}

func TestHandle_BusinessNotFound(t *testing.T) {
	uc := &stubUseCase{err: availabilityCalendar.ErrBusinessNotFound}

	recorder := serveCalendar(t, uc, "/api/v1/availability/calendar/10")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandle_InvalidBusinessID(t *testing.T) {
	recorder := serveCalendar(t, &stubUseCase{}, "/api/v1/availability/calendar/abc")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

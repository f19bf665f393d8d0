package get_day_blocks

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

	dayBlocks "github.com/rheareserve/booking-service/internal/usecase/get_day_blocks"
)

type stubUseCase struct {
	resp *dayBlocks.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *dayBlocks.Request) (*dayBlocks.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serveBlocks(t *testing.T, uc *stubUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/availability/blocks/{businessId}/{serviceId}/{date}", handler.Handle).
		Methods(http.MethodGet)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestHandle_ReturnsFlatBlockArray(t *testing.T) {
	uc := &stubUseCase{
		resp: &dayBlocks.Response{
			BusinessID: 10,
			ServiceID:  5,
			Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Blocks: []dayBlocks.StaffBlock{
				{StaffID: 1, StaffName: "María", Start: "09:00", End: "10:00"},
				{StaffID: 1, StaffName: "María", Start: "10:00", End: "11:00"},
			},
		},
	}

	recorder := serveBlocks(t, uc, "/api/v1/availability/blocks/10/5/2025-06-02")
	require.Equal(t, http.StatusOK, recorder.Code)

	// Контракт эндпоинта: плоский массив блоков на верхнем уровне
	var blocks []StaffBlockResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, StaffBlockResponse{StaffID: 1, StaffName: "María", Start: "09:00", End: "10:00"}, blocks[0])
}

func TestHandle_EmptyDayStaysArray(t *testing.T) {
	uc := &stubUseCase{
		resp: &dayBlocks.Response{
			BusinessID: 10,
			ServiceID:  5,
			Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Blocks:     []dayBlocks.StaffBlock{},
		},
	}

	recorder := serveBlocks(t, uc, "/api/v1/availability/blocks/10/5/2025-06-02")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	recorder := serveBlocks(t, &stubUseCase{}, "/api/v1/availability/blocks/10/5/02-06-2025")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &stubUseCase{err: dayBlocks.ErrServiceNotFound}

	recorder := serveBlocks(t, uc, "/api/v1/availability/blocks/10/5/2025-06-02")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

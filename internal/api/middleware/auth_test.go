package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serveAuth(t *testing.T, clientIDHeader string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var gotID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = GetClientID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/1", nil)
	if clientIDHeader != "" {
		req.Header.Set(HeaderClientID, clientIDHeader)
	}

	recorder := httptest.NewRecorder()
	Auth(nopLogger{})(next).ServeHTTP(recorder, req)
	return recorder, gotID, gotOK
}

func TestAuth_ValidHeader(t *testing.T) {
	recorder, clientID, ok := serveAuth(t, "42")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, ok)
	assert.Equal(t, int64(42), clientID)
}

func TestAuth_MissingHeader(t *testing.T) {
	recorder, _, ok := serveAuth(t, "")

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, ok)
	// Сообщения пользователю на языке продукта
	assert.Contains(t, recorder.Body.String(), msgMissingClientID)
}

func TestAuth_InvalidHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, _, ok := serveAuth(t, tt.header)

			require.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, ok)
			assert.Contains(t, recorder.Body.String(), msgInvalidClientID)
		})
	}
}

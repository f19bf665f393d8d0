package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rheareserve/booking-service/internal/api/handlers"
)

type contextKey string

const clientIDKey contextKey = "clientID"

// HeaderClientID заголовок, через который шлюз пробрасывает ID клиента
const HeaderClientID = "X-Client-ID"

const (
	msgMissingClientID = "falta el identificador del cliente"
	msgInvalidClientID = "identificador de cliente inválido"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает ID клиента из заголовка и кладет его в контекст запроса.
// Запросы без валидного заголовка отклоняются с 401
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderClientID)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderClientID)
				handlers.RespondUnauthorized(w, msgMissingClientID)
				return
			}

			clientID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || clientID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, HeaderClientID, raw)
				handlers.RespondUnauthorized(w, msgInvalidClientID)
				return
			}

			ctx := context.WithValue(r.Context(), clientIDKey, clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClientID возвращает ID клиента из контекста запроса
func GetClientID(ctx context.Context) (int64, bool) {
	clientID, ok := ctx.Value(clientIDKey).(int64)
	return clientID, ok
}

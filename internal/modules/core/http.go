package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	CorrelationIDHeader                = "Correlation-Id"
	CorrelationIDContextKey contextKey = "correlation_id"
)

func CorrelationIDHTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		correlationID := r.Header.Get(CorrelationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx = context.WithValue(ctx, CorrelationIDContextKey, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func CorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(CorrelationIDContextKey).(string)
	return correlationID
}

// LoggingHTTPMiddleware stores a request scoped logger in the context and writes
// one access log line per request.
func LoggingHTTPMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var fields []zap.Field
			if requestID := middleware.GetReqID(ctx); requestID != "" {
				fields = append(fields, zap.String("request_id", requestID))
			}
			if correlationID := CorrelationID(ctx); correlationID != "" {
				fields = append(fields, zap.String("correlation_id", correlationID))
			}

			requestLogger := logger.With(fields...)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(WithLogger(ctx, requestLogger)))

			requestLogger.Info(
				"http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RecoveryHTTPMiddleware turns panics into a generic internal server error.
func RecoveryHTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				LogError(r.Context(), "recovered from panic", zap.Any("panic", rec), zap.Stack("stack"))
				WriteInternalServerError(w, r)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

var errIDOutOfRange = errors.New("identifier is outside the key range")

// URLParamID reads an integer identifier from the route. Keys are SERIAL columns,
// so identifiers outside the int4 range can never match a row and are reported
// with notFoundReason.
func URLParamID(r *http.Request, key string, notFoundReason string) (int64, error) {
	raw := chi.URLParam(r, key)

	id, err := strconv.ParseInt(raw, 10, 32)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, NewNotFoundError(errIDOutOfRange, notFoundReason)
	case err != nil:
		return 0, NewCommandError(http.StatusBadRequest, fmt.Errorf("invalid %s: '%s'", key, raw))
	}

	return id, nil
}

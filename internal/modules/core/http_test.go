package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func Test_CorrelationIDHTTPMiddleware_Generates_ID(t *testing.T) {
	// Arrange
	var seen string
	h := CorrelationIDHTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationID(r.Context())
	}))

	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func Test_CorrelationIDHTTPMiddleware_Keeps_Incoming_ID(t *testing.T) {
	// Arrange
	var seen string
	h := CorrelationIDHTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
}

func Test_RecoveryHTTPMiddleware_Writes_Generic_Error(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.ErrorLevel)
	h := LoggingHTTPMiddleware(zap.New(core))(
		RecoveryHTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})),
	)

	rec := httptest.NewRecorder()

	// Act
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	// Assert
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	require.Equal(t, 1, logs.FilterMessage("recovered from panic").Len())
}

func Test_LoggingHTTPMiddleware_Logs_Status(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.InfoLevel)
	h := LoggingHTTPMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// Act
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	// Assert
	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, http.StatusTeapot, entries[0].ContextMap()["status"])
	require.Equal(t, "/status", entries[0].ContextMap()["path"])
}

func Test_Logger_Defaults_To_Nop(t *testing.T) {
	require.NotNil(t, Logger(context.Background()))
}

func Test_URLParamID(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		want       int64
		wantStatus int
	}{
		{name: "integer", path: "/things/42", want: 42},
		{name: "negative", path: "/things/-1", want: -1},
		{name: "largest key", path: "/things/2147483647", want: 2147483647},
		{name: "not a number", path: "/things/abc", wantStatus: http.StatusBadRequest},
		{name: "float", path: "/things/1.5", wantStatus: http.StatusBadRequest},
		{name: "above key range", path: "/things/3000000000", wantStatus: http.StatusNotFound},
		{name: "below key range", path: "/things/-3000000000", wantStatus: http.StatusNotFound},
		{name: "above int64", path: "/things/99999999999999999999", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var (
				got int64
				err error
			)

			r := chi.NewRouter()
			r.Get("/things/{id}", func(w http.ResponseWriter, req *http.Request) {
				got, err = URLParamID(req, "id", "Thing not found")
			})

			// Act
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			// Assert
			if tt.wantStatus != 0 {
				var commandErr CommandError
				require.ErrorAs(t, err, &commandErr)
				require.Equal(t, tt.wantStatus, commandErr.StatusCode)
				if tt.wantStatus == http.StatusNotFound {
					require.Equal(t, "Thing not found", commandErr.Message())
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

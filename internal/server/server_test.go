package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/system"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRouter(db, zap.NewNop()), mock
}

func Test_OpenAPI_Document_Describes_Every_Route(t *testing.T) {
	// Arrange
	r, _ := newTestRouter(t)

	var document struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(system.OpenAPIDocument(), &document))

	var routes []string
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == system.DocsPath || route == system.OpenAPIDocPath {
			return nil
		}
		routes = append(routes, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	var documented []string
	for path, operations := range document.Paths {
		for method := range operations {
			if method == "parameters" {
				continue
			}
			documented = append(documented, strings.ToUpper(method)+" "+path)
		}
	}

	// Assert
	sort.Strings(routes)
	sort.Strings(documented)
	require.Len(t, routes, 21)
	require.Equal(t, routes, documented)
}

func Test_Unknown_Route_Returns_Json_Not_Found(t *testing.T) {
	// Arrange
	r, _ := newTestRouter(t)
	rec := httptest.NewRecorder()

	// Act
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/warehouses", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(core.CorrelationIDHeader))
}

func Test_Unsupported_Method_Returns_Json_Error(t *testing.T) {
	// Arrange
	r, _ := newTestRouter(t)
	rec := httptest.NewRecorder()

	// Act
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/products/1", nil))

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"message":"Method not allowed"}`, rec.Body.String())
}

func Test_Status_Reports_Healthy_Database(t *testing.T) {
	// Arrange
	r, mock := newTestRouter(t)
	mock.ExpectPing()
	rec := httptest.NewRecorder()

	// Act
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, system.StatusPath, nil))

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy","checks":{"database":"ok"}}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_Status_Reports_Unreachable_Database(t *testing.T) {
	// Arrange
	r, mock := newTestRouter(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec := httptest.NewRecorder()

	// Act
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, system.StatusPath, nil))

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"status":"unhealthy","checks":{"database":"unreachable"}}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_Docs_Are_Served(t *testing.T) {
	// Arrange
	r, _ := newTestRouter(t)

	// Act
	ui := httptest.NewRecorder()
	r.ServeHTTP(ui, httptest.NewRequest(http.MethodGet, system.DocsPath, nil))

	doc := httptest.NewRecorder()
	r.ServeHTTP(doc, httptest.NewRequest(http.MethodGet, system.OpenAPIDocPath, nil))

	// Assert
	require.Equal(t, http.StatusOK, ui.Code)
	require.Contains(t, ui.Header().Get("Content-Type"), "text/html")
	require.Contains(t, ui.Body.String(), system.OpenAPIDocPath)

	require.Equal(t, http.StatusOK, doc.Code)
	require.Equal(t, "application/json", doc.Header().Get("Content-Type"))
	require.True(t, json.Valid(doc.Body.Bytes()))
}

package saleschannel

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/tql"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
)

var (
	mock   sqlmock.Sqlmock
	router http.Handler
)

func TestMain(m *testing.M) {
	db, sqlMock, err := sqlmock.New()
	if err != nil {
		log.Fatal(err)
	}
	mock = sqlMock

	tql.SetActiveDriver("postgres")

	mediator.RegisterPipelineBehavior(&core.RequestValidationBehavior{})

	if err := RegisterHandlers(db); err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(core.RecoveryHTTPMiddleware)
	Routes(r)
	router = r

	code := m.Run()

	_ = db.Close()
	os.Exit(code)
}

func serve(method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func rows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"channel_id", "channel_name"})
}

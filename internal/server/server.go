package server

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/eskrenkovic/sales-catalog-go/internal/config"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/country"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/itemtype"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/product"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/saleschannel"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/system"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/eskrenkovic/tql"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Server interface {
	Start() error
	Stop(ctx context.Context) error
	Handler() http.Handler
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for an application.
type HTTPServer struct {
	server *http.Server
	db     *sql.DB
	logger *zap.Logger
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := core.WithLogger(context.Background(), config.Logger)

	tql.SetActiveDriver("postgres")

	db, err := core.OpenDB(
		baseCtx,
		config.Database.URL,
		core.WithMaxOpenConns(config.Database.MaxOpenConns),
		core.WithMaxIdleConns(config.Database.MaxIdleConns),
		core.WithConnMaxLifetime(config.Database.ConnMaxLifetime),
	)
	if err != nil {
		return nil, err
	}

	if err := migrate.Run(baseCtx, db, config.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := RegisterHandlers(db, config.Logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	server := http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler:           NewRouter(db, config.Logger),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return &HTTPServer{server: &server, db: db, logger: config.Logger}, nil
}

// RegisterHandlers wires the pipeline behaviors and every request handler into
// the mediator. The pool is shared by all handlers.
func RegisterHandlers(db *sql.DB, logger *zap.Logger) error {
	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	modules := []func(*sql.DB) error{
		product.RegisterHandlers,
		country.RegisterHandlers,
		itemtype.RegisterHandlers,
		saleschannel.RegisterHandlers,
	}

	for _, register := range modules {
		if err := register(db); err != nil {
			return err
		}
	}

	return nil
}

func NewRouter(db *sql.DB, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		core.CorrelationIDHTTPMiddleware,
		core.LoggingHTTPMiddleware(logger),
		core.RecoveryHTTPMiddleware,
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		core.WriteResponse(w, r, http.StatusNotFound, core.ErrorResponse{Message: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		core.WriteResponse(w, r, http.StatusMethodNotAllowed, core.ErrorResponse{Message: "Method not allowed"})
	})

	system.Routes(r, db)

	product.Routes(r)
	country.Routes(r)
	itemtype.Routes(r)
	saleschannel.Routes(r)

	return r
}

func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop drains in-flight requests and closes the connection pool.
func (s *HTTPServer) Stop(ctx context.Context) error {
	shutdownErr := s.server.Shutdown(ctx)
	closeErr := s.db.Close()

	return errors.Join(shutdownErr, closeErr)
}

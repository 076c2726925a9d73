package system

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"go.uber.org/zap"
)

const (
	StatusPath = "/status"

	healthCheckTimeout = 2 * time.Second
)

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db}
}

func (h *HealthHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status: "healthy",
		Checks: map[string]string{"database": "ok"},
	}

	if err := h.db.PingContext(ctx); err != nil {
		core.Logger(r.Context()).Warn("database health check failed", zap.Error(err))

		response.Status = "unhealthy"
		response.Checks["database"] = "unreachable"
		core.WriteResponse(w, r, http.StatusServiceUnavailable, response)
		return
	}

	core.WriteOK(w, r, response)
}

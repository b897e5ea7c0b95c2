package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventregistration/internal/delivery/http/helpers"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the data of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthController struct {
	Logger      *slog.Logger
	DB          Pinger
	PingTimeout time.Duration
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{
		Logger:      logger,
		DB:          db,
		PingTimeout: 2 * time.Second,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports liveness and database reachability.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.PingTimeout)
	defer cancel()

	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeServiceUnavailable, "database unreachable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}

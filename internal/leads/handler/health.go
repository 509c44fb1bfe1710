package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"radar/pkg/contracts"
	httputil "radar/pkg/http"
	"radar/pkg/logger"
)

const readinessTimeout = 2 * time.Second

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type HealthHandler struct {
	checks map[string]contracts.ReadinessCheck
	log    *logger.Logger
}

// NewHealthHandler serves liveness unconditionally and readiness from the
// named checks, all of which must pass.
func NewHealthHandler(checks map[string]contracts.ReadinessCheck, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		log:    log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := make(map[string]string, len(h.checks))
	ready := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.log.Warn("Readiness check failed",
				"check", name,
				"error", err,
				"path", r.URL.Path,
			)
			results[name] = "error"
			ready = false
			continue
		}
		results[name] = "ok"
	}

	if !ready {
		httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Checks: results,
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ready",
		Checks: results,
	})
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

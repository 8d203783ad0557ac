package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"nba-update-service/internal/runner"
	"nba-update-service/internal/updater"
)

// Invoker executes one update invocation and returns its terminal result.
type Invoker interface {
	Run(ctx context.Context) updater.Result
}

// Handler serves the trigger surface: manual runs plus health reporting.
type Handler struct {
	invoker  Invoker
	statusFn func() runner.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler. statusFn may be nil when the interval
// runner is disabled; readiness then depends only on the process being up.
func NewHandler(invoker Invoker, statusFn func() runner.Status, logger *slog.Logger) *Handler {
	return &Handler{
		invoker:  invoker,
		statusFn: statusFn,
		logger:   logger,
	}
}

// RunUpdate triggers one invocation and relays its result verbatim:
// the result's status code becomes the HTTP status, the result is the body.
func (h *Handler) RunUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	res := h.invoker.Run(r.Context())
	writeJSON(w, res.StatusCode, res, loggerFromContext(r, h.logger))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether scheduled runs are succeeding.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}

	status := h.statusFn()
	payload := map[string]any{
		"consecutiveFailures": status.ConsecutiveFailures,
		"lastStatusCode":      status.LastStatusCode,
		"lastAttempt":         status.LastAttempt,
		"lastSuccess":         status.LastSuccess,
	}
	if !status.IsReady() {
		writeJSON(w, http.StatusServiceUnavailable, payload, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

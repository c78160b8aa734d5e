package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleHealth reports 200 when the database answers a ping and 503
// otherwise.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

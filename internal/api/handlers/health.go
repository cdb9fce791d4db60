package handlers

import (
	"net/http"
)

// HealthHandler provides a minimal liveness check endpoint.
type HealthHandler struct {
	Store string
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok", "layout_store": h.Store}
	writeJSON(w, r, http.StatusOK, res)
}

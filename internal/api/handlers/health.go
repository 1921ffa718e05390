package handlers

import (
	"net/http"
	"time"
)

const serviceVersion = "2.0.0"

// HealthHandler reports liveness plus a snapshot of external dependencies.
type HealthHandler struct {
	CatalogSize int
	// GeoPing probes the municipality catalog service; nil skips the probe.
	GeoPing             func(r *http.Request) bool
	InventoryConfigured bool
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSONError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	geoStatus := "unknown"
	if h.GeoPing != nil {
		if h.GeoPing(r) {
			geoStatus = "available"
		} else {
			geoStatus = "unavailable"
		}
	}

	inventory := "not configured"
	if h.InventoryConfigured {
		inventory = "configured"
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"centers":   h.CatalogSize,
		"geo_api":   geoStatus,
		"inventory": inventory,
		"version":   serviceVersion,
	})
}

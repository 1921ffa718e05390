package api

import (
	"net/http"

	"freight-quote-service/internal/api/handlers"
	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/metrics"
	"freight-quote-service/internal/services"
)

// RouterDeps carries everything the HTTP layer needs; handlers stay unaware
// of concrete adapters.
type RouterDeps struct {
	Quotes  *services.QuoteService
	Catalog domain.Catalog
	// GeoPing probes the locality API for the health endpoint; may be nil.
	GeoPing             func(r *http.Request) bool
	InventoryConfigured bool
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := &handlers.QuoteHandler{Quotes: deps.Quotes}
	centerHandler := &handlers.CenterHandler{Catalog: deps.Catalog}
	healthHandler := &handlers.HealthHandler{
		CatalogSize:         len(deps.Catalog),
		GeoPing:             deps.GeoPing,
		InventoryConfigured: deps.InventoryConfigured,
	}

	mux.HandleFunc("/frete", quoteHandler.Freight)
	mux.HandleFunc("/quote", quoteHandler.Quote)
	mux.HandleFunc("/cds", centerHandler.List)
	mux.HandleFunc("/health", healthHandler.Check)
	mux.Handle("/metrics", metrics.Handler())

	return requestMiddleware(mux)
}

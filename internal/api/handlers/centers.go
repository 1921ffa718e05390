package handlers

import (
	"net/http"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/domain"
)

// CenterHandler exposes the read-only distribution center catalog.
type CenterHandler struct {
	Catalog domain.Catalog
}

func (h *CenterHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSONError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListCentersResponse{
		Total:   len(h.Catalog),
		Centers: make([]dto.CenterResponse, 0, len(h.Catalog)),
	}
	for _, dc := range h.Catalog {
		res.Centers = append(res.Centers, dto.CenterResponse{
			ID:         dc.ID,
			Name:       dc.Name,
			City:       dc.City,
			UF:         dc.UF,
			PostalCode: formatPostalCode(dc.PostalCode),
			Lat:        dc.Location.Lat,
			Lon:        dc.Location.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func formatPostalCode(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	return raw[:5] + "-" + raw[5:]
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/services"
)

// QuoteHandler exposes the freight computation over two wire formats: the
// storefront-compatible XML endpoint and a service-native JSON endpoint.
type QuoteHandler struct {
	Quotes *services.QuoteService
}

// Storefront-facing messages; part of the integration contract.
const (
	msgMissingPostalCode = "CEP não informado"
	msgMissingOrder      = "Produtos não informados"
	msgMalformedOrder    = "Formato de produtos inválido"
	msgGeoLookupFailed   = "CEP inválido ou não encontrado"
	msgInternalError     = "Erro ao calcular frete"
)

// Freight serves GET|POST /frete with the XML document the storefront
// expects. Parameters arrive via query string or form body.
func (h *QuoteHandler) Freight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		writeXMLError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeXMLError(w, r, http.StatusBadRequest, msgMalformedOrder)
		return
	}

	req := quoteRequestFromForm(r)

	quote, err := h.Quotes.Quote(r.Context(), req)
	if err != nil {
		status, msg := declineOf(err)
		if status == http.StatusInternalServerError {
			log.Ctx(r.Context()).Error().Err(err).Msg("quote failed")
		}
		writeXMLError(w, r, status, msg)
		return
	}

	res := dto.ShippingResponse{
		CEP:          req.PostalCode,
		Price:        fmt.Sprintf("%.2f", quote.Price),
		DeliveryTime: quote.LeadTimeDays,
		Message:      "Frete calculado via " + quote.Selection.Center.Name,
		Carrier:      quote.Selection.Center.Name,
		Distance:     fmt.Sprintf("%.1f", quote.Selection.DistanceKm),
		Origin:       quote.Selection.Center.City + "/" + quote.Selection.Center.UF,
	}

	writeXML(w, r, http.StatusOK, res)
}

// Quote serves GET /quote with a JSON body, same computation as Freight.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSONError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, msgMalformedOrder)
		return
	}

	req := quoteRequestFromForm(r)

	quote, err := h.Quotes.Quote(r.Context(), req)
	if err != nil {
		status, msg := declineOf(err)
		if status == http.StatusInternalServerError {
			log.Ctx(r.Context()).Error().Err(err).Msg("quote failed")
		}
		writeJSONError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.QuoteResponse{
		PostalCode:   req.PostalCode,
		Municipality: quote.Destination.Municipality,
		UF:           quote.Destination.UF,
		CenterID:     quote.Selection.Center.ID,
		CenterName:   quote.Selection.Center.Name,
		OriginCity:   quote.Selection.Center.City,
		OriginUF:     quote.Selection.Center.UF,
		DistanceKm:   quote.Selection.DistanceKm,
		FullyStocked: quote.Selection.FullyStocked,
		Price:        quote.Price,
		LeadTimeDays: quote.LeadTimeDays,
	})
}

func quoteRequestFromForm(r *http.Request) services.QuoteRequest {
	postalCode := r.Form.Get("cep_destino")
	if postalCode == "" {
		postalCode = r.Form.Get("cep")
	}

	var rate float64
	for _, key := range []string{"valor_km", "rate_per_km"} {
		if raw := r.Form.Get(key); raw != "" {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				rate = parsed
				break
			}
		}
	}

	return services.QuoteRequest{
		PostalCode:    postalCode,
		OrderEncoding: r.Form.Get("prods"),
		RatePerKm:     rate,
	}
}

func declineOf(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingPostalCode):
		return http.StatusBadRequest, msgMissingPostalCode
	case errors.Is(err, services.ErrMissingOrder):
		return http.StatusBadRequest, msgMissingOrder
	case errors.Is(err, services.ErrMalformedOrder):
		return http.StatusBadRequest, msgMalformedOrder
	case errors.Is(err, services.ErrGeoLookupFailed):
		return http.StatusBadRequest, msgGeoLookupFailed
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

package handlers

import (
	"encoding/json"
	"encoding/xml"
	"net/http"

	"github.com/rs/zerolog/log"

	"freight-quote-service/internal/api/dto"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).Str("path", r.URL.Path).
			Msg("encode json response failed")
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func writeXML(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("write xml header failed")
		return
	}
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		log.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).Str("path", r.URL.Path).
			Msg("encode xml response failed")
	}
}

func writeXMLError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeXML(w, r, status, dto.ShippingError{Message: msg})
}

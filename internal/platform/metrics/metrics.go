package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QuoteMetrics counts quote outcomes and measures end-to-end quote latency.
type QuoteMetrics struct {
	Quotes       *prometheus.CounterVec
	Duration     prometheus.Histogram
	GeoFallbacks prometheus.Counter
}

func NewQuoteMetrics() *QuoteMetrics {
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freight",
		Name:      "quotes_total",
		Help:      "Quote requests by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "freight",
		Name:      "quote_duration_seconds",
		Help:      "End-to-end quote computation latency.",
		Buckets:   prometheus.DefBuckets,
	})
	geoFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "freight",
		Name:      "geo_fallback_total",
		Help:      "Destinations resolved via the capital fallback table.",
	})

	prometheus.MustRegister(quotes, duration, geoFallbacks)
	return &QuoteMetrics{Quotes: quotes, Duration: duration, GeoFallbacks: geoFallbacks}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

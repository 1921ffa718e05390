package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/metrics"
	"freight-quote-service/internal/ports"
)

// QuoteService orchestrates the leaf computations of a freight quote:
// order parsing, destination resolution, center selection and pricing.
type QuoteService struct {
	Catalog   domain.Catalog
	Resolver  ports.DestinationResolver
	Stock     ports.StockChecker
	RatePerKm float64
	Metrics   *metrics.QuoteMetrics // optional
}

type QuoteRequest struct {
	PostalCode    string
	OrderEncoding string
	// RatePerKm overrides the configured rate when positive.
	RatePerKm float64
}

func NewQuoteService(
	catalog domain.Catalog,
	resolver ports.DestinationResolver,
	stock ports.StockChecker,
	ratePerKm float64,
	m *metrics.QuoteMetrics,
) *QuoteService {
	return &QuoteService{
		Catalog:   catalog,
		Resolver:  resolver,
		Stock:     stock,
		RatePerKm: ratePerKm,
		Metrics:   m,
	}
}

// Quote computes a freight quote for one request. Failures are one of the
// sentinel errors of this package; stock-check problems never surface here.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (domain.Quote, error) {
	start := time.Now()

	postalCode := strings.TrimSpace(req.PostalCode)
	if postalCode == "" {
		return domain.Quote{}, s.decline(ErrMissingPostalCode, "missing_postal_code")
	}

	if strings.TrimSpace(req.OrderEncoding) == "" {
		return domain.Quote{}, s.decline(ErrMissingOrder, "missing_order")
	}

	items, err := ParseOrder(req.OrderEncoding)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("order encoding rejected")
		return domain.Quote{}, s.decline(ErrMalformedOrder, "malformed_order")
	}
	if len(items) == 0 {
		return domain.Quote{}, s.decline(ErrMalformedOrder, "malformed_order")
	}

	totals := domain.Totals(items)

	destination, err := s.Resolver.Resolve(ctx, postalCode)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("postal_code", postalCode).Msg("destination resolution failed")
		return domain.Quote{}, s.decline(
			fmt.Errorf("postal code %q: %w", postalCode, ErrGeoLookupFailed),
			"geo_lookup_failed",
		)
	}

	selection := SelectCenter(ctx, s.Catalog, destination.Location, items, s.Stock)

	rate := s.RatePerKm
	if req.RatePerKm > 0 {
		rate = req.RatePerKm
	}

	quote := domain.Quote{
		Destination:  destination,
		Selection:    selection,
		Totals:       totals,
		Price:        FreightPrice(selection.DistanceKm, totals.WeightKg, totals.VolumeM3, rate),
		LeadTimeDays: LeadTimeDays(selection.DistanceKm),
	}

	if s.Metrics != nil {
		s.Metrics.Quotes.WithLabelValues("ok").Inc()
		s.Metrics.Duration.Observe(time.Since(start).Seconds())
	}

	log.Ctx(ctx).Info().
		Str("postal_code", postalCode).
		Str("center", selection.Center.ID).
		Float64("distance_km", selection.DistanceKm).
		Bool("fully_stocked", selection.FullyStocked).
		Float64("price", quote.Price).
		Int("lead_time_days", quote.LeadTimeDays).
		Msg("quote computed")

	return quote, nil
}

func (s *QuoteService) decline(err error, outcome string) error {
	if s.Metrics != nil {
		s.Metrics.Quotes.WithLabelValues(outcome).Inc()
	}
	return err
}

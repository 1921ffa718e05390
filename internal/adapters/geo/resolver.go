package geo

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/platform/obs"
	"freight-quote-service/internal/ports"
)

// Resolver turns a postal code into a destination coordinate via the
// two-stage external lookup, with a deterministic capital fallback when the
// municipality has no exact catalog match.
//
// The lookups run sequentially and are attempted exactly once each; any
// failure past the fallback point fails the whole resolution. A resolution
// cache may be attached; it is consulted best-effort and never fails a
// request.
type Resolver struct {
	Postal         ports.PostalLocator
	Municipalities ports.MunicipalityCatalog
	Coordinates    ports.CoordinateResolver
	Cache          ports.ResolutionCache // optional
	Fallbacks      prometheus.Counter    // optional
}

func NewResolver(
	postal ports.PostalLocator,
	municipalities ports.MunicipalityCatalog,
	coordinates ports.CoordinateResolver,
	cache ports.ResolutionCache,
	fallbacks prometheus.Counter,
) *Resolver {
	return &Resolver{
		Postal:         postal,
		Municipalities: municipalities,
		Coordinates:    coordinates,
		Cache:          cache,
		Fallbacks:      fallbacks,
	}
}

var postalCodeCleaner = strings.NewReplacer("-", "", ".", "", " ", "")

// NormalizePostalCode strips separators and whitespace from a postal code.
func NormalizePostalCode(postalCode string) string {
	return postalCodeCleaner.Replace(strings.TrimSpace(postalCode))
}

// Resolve implements ports.DestinationResolver.
func (r *Resolver) Resolve(ctx context.Context, postalCode string) (_ domain.DestinationResolution, err error) {
	defer obs.Time(ctx, "geo.Resolve")(&err)

	normalized := NormalizePostalCode(postalCode)
	if normalized == "" {
		return domain.DestinationResolution{}, fmt.Errorf("resolve destination: empty postal code")
	}

	if cached, ok := r.cacheGet(ctx, normalized); ok {
		return cached, nil
	}

	locality, err := r.Postal.Locate(ctx, normalized)
	if err != nil {
		return domain.DestinationResolution{}, fmt.Errorf("resolve destination %q: %w", normalized, err)
	}

	municipalities, err := r.Municipalities.ListMunicipalities(ctx, locality.UF)
	if err != nil {
		return domain.DestinationResolution{}, fmt.Errorf("resolve destination %q: %w", normalized, err)
	}

	// Exact name match only, case-insensitive. Partial or fuzzy matching
	// would silently reprice against the wrong municipality.
	var match *ports.Municipality
	for i := range municipalities {
		if strings.EqualFold(municipalities[i].Name, locality.Municipality) {
			match = &municipalities[i]
			break
		}
	}

	if match == nil {
		fallback, ok := capitalFallback(locality.UF)
		if !ok {
			return domain.DestinationResolution{}, fmt.Errorf(
				"resolve destination %q: municipality %q not cataloged and UF %q has no capital entry",
				normalized, locality.Municipality, locality.UF,
			)
		}

		if r.Fallbacks != nil {
			r.Fallbacks.Inc()
		}
		log.Ctx(ctx).Info().
			Str("postal_code", normalized).
			Str("municipality", locality.Municipality).
			Str("uf", locality.UF).
			Str("capital", fallback.Municipality).
			Msg("municipality not cataloged, using capital fallback")

		r.cachePut(ctx, normalized, fallback)
		return fallback, nil
	}

	location, err := r.Coordinates.ResolveCoordinate(ctx, match.Code)
	if err != nil {
		return domain.DestinationResolution{}, fmt.Errorf("resolve destination %q: %w", normalized, err)
	}

	resolution := domain.DestinationResolution{
		Municipality: locality.Municipality,
		UF:           locality.UF,
		Location:     location,
		IBGECode:     match.Code,
	}

	r.cachePut(ctx, normalized, resolution)
	return resolution, nil
}

func (r *Resolver) cacheGet(ctx context.Context, postalCode string) (domain.DestinationResolution, bool) {
	if r.Cache == nil {
		return domain.DestinationResolution{}, false
	}

	res, ok, err := r.Cache.Get(ctx, postalCode)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("postal_code", postalCode).Msg("resolution cache read failed")
		return domain.DestinationResolution{}, false
	}
	return res, ok
}

func (r *Resolver) cachePut(ctx context.Context, postalCode string, res domain.DestinationResolution) {
	if r.Cache == nil {
		return
	}

	if err := r.Cache.Put(ctx, postalCode, res); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("postal_code", postalCode).Msg("resolution cache write failed")
	}
}

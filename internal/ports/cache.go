package ports

import (
	"context"

	"freight-quote-service/internal/domain"
)

// Port: cache of postal-code resolutions.
//
// A postal code's coordinate is stable, so resolutions may be reused across
// requests. Implementations are consulted best-effort: callers treat a cache
// error like a miss and log write failures without propagating them.
type ResolutionCache interface {
	Get(ctx context.Context, postalCode string) (domain.DestinationResolution, bool, error)
	Put(ctx context.Context, postalCode string, res domain.DestinationResolution) error
}

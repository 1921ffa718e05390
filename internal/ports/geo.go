package ports

import (
	"context"

	"freight-quote-service/internal/domain"
)

// Locality is a municipality/UF pair resolved from a postal code.
type Locality struct {
	Municipality string
	UF           string
}

// Municipality is one catalog entry of a UF's administrative division.
type Municipality struct {
	Name string
	Code int
}

// Port: resolve a normalized postal code to its locality.
type PostalLocator interface {
	Locate(ctx context.Context, postalCode string) (Locality, error)
}

// Port: list all municipalities of a UF with their administrative codes.
type MunicipalityCatalog interface {
	ListMunicipalities(ctx context.Context, uf string) ([]Municipality, error)
}

// Port: resolve an administrative code to a coordinate.
type CoordinateResolver interface {
	ResolveCoordinate(ctx context.Context, code int) (domain.Coordinate, error)
}

// Port: full postal-code-to-coordinate resolution, consumed by the quote
// service. Implementations compose the three lookups above.
type DestinationResolver interface {
	Resolve(ctx context.Context, postalCode string) (domain.DestinationResolution, error)
}

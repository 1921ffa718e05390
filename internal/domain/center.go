package domain

import "fmt"

// DistributionCenter is a static catalog entry for one warehouse.
type DistributionCenter struct {
	ID          string // two-letter region code, unique within the catalog
	Name        string
	City        string
	UF          string
	PostalCode  string
	Location    Coordinate
	InventoryID string // identifier used by the inventory system (e.g. CD_RS)
}

// Catalog is the ordered, immutable set of distribution centers.
//
// Order matters: equal-distance ties during selection are broken by catalog
// position, so the catalog is a slice rather than a map.
type Catalog []DistributionCenter

// Brazil bounding box, generous enough for every UF including islands.
const (
	minBrazilLat = -34.0
	maxBrazilLat = 6.0
	minBrazilLon = -74.5
	maxBrazilLon = -32.0
)

// Validate checks the startup invariants of the catalog. A catalog that
// fails validation is a configuration error and the process must not boot.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("validate catalog: no distribution centers configured")
	}

	seen := make(map[string]struct{}, len(c))
	for _, dc := range c {
		if dc.ID == "" {
			return fmt.Errorf("validate catalog: center %q has empty id", dc.Name)
		}
		if _, ok := seen[dc.ID]; ok {
			return fmt.Errorf("validate catalog: duplicate center id %q", dc.ID)
		}
		seen[dc.ID] = struct{}{}

		if dc.InventoryID == "" {
			return fmt.Errorf("validate catalog: center %q has empty inventory id", dc.ID)
		}

		loc := dc.Location
		if loc.Lat < minBrazilLat || loc.Lat > maxBrazilLat ||
			loc.Lon < minBrazilLon || loc.Lon > maxBrazilLon {
			return fmt.Errorf(
				"validate catalog: center %q location (%.4f, %.4f) outside Brazil",
				dc.ID, loc.Lat, loc.Lon,
			)
		}
	}

	return nil
}

// DefaultCatalog returns the five production distribution centers.
// The slice order is part of the selection contract; do not reorder.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          "RS",
			Name:        "CD Sul - Rio Grande do Sul",
			City:        "Frederico Westphalen",
			UF:          "RS",
			PostalCode:  "98400000",
			Location:    Coordinate{Lat: -27.3636, Lon: -53.3978},
			InventoryID: "CD_RS",
		},
		{
			ID:          "SC",
			Name:        "CD Sudeste - Santa Catarina",
			City:        "Joinville",
			UF:          "SC",
			PostalCode:  "89239250",
			Location:    Coordinate{Lat: -26.3045, Lon: -48.8487},
			InventoryID: "CD_SC",
		},
		{
			ID:          "MG",
			Name:        "CD Sudeste - Minas Gerais",
			City:        "Montes Claros",
			UF:          "MG",
			PostalCode:  "39404627",
			Location:    Coordinate{Lat: -16.7350, Lon: -43.8619},
			InventoryID: "CD_MG",
		},
		{
			ID:          "MS",
			Name:        "CD Centro-Oeste - Mato Grosso do Sul",
			City:        "Campo Grande",
			UF:          "MS",
			PostalCode:  "79108630",
			Location:    Coordinate{Lat: -20.4697, Lon: -54.6201},
			InventoryID: "CD_MS",
		},
		{
			ID:          "CE",
			Name:        "CD Nordeste - Ceará",
			City:        "Tauá",
			UF:          "CE",
			PostalCode:  "63660000",
			Location:    Coordinate{Lat: -6.0014, Lon: -40.2925},
			InventoryID: "CD_CE",
		},
	}
}

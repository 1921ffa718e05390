package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog, 5)

	// Catalog order is part of the tie-breaking contract.
	ids := make([]string, 0, len(catalog))
	for _, dc := range catalog {
		ids = append(ids, dc.ID)
	}
	assert.Equal(t, []string{"RS", "SC", "MG", "MS", "CE"}, ids)
}

func TestCatalogValidateRejectsEmpty(t *testing.T) {
	assert.Error(t, Catalog{}.Validate())
}

func TestCatalogValidateRejectsDuplicateID(t *testing.T) {
	c := Catalog{
		{ID: "RS", InventoryID: "CD_RS", Location: Coordinate{Lat: -27, Lon: -53}},
		{ID: "RS", InventoryID: "CD_RS2", Location: Coordinate{Lat: -26, Lon: -48}},
	}
	assert.ErrorContains(t, c.Validate(), "duplicate")
}

func TestCatalogValidateRejectsForeignCoordinate(t *testing.T) {
	c := Catalog{
		{ID: "XX", InventoryID: "CD_XX", Location: Coordinate{Lat: 48.8566, Lon: 2.3522}},
	}
	assert.ErrorContains(t, c.Validate(), "outside Brazil")
}

func TestCatalogValidateRejectsMissingInventoryID(t *testing.T) {
	c := Catalog{
		{ID: "RS", Location: Coordinate{Lat: -27, Lon: -53}},
	}
	assert.ErrorContains(t, c.Validate(), "inventory id")
}

func TestTotalsAggregatesPerUnitValues(t *testing.T) {
	items := []LineItem{
		{CubicVolume: 0.1, Quantity: 2, Weight: 3.5, SKU: "SKU1"},
		{CubicVolume: 0.01, Quantity: 1, Weight: 0.5, SKU: "SKU2"},
	}

	totals := Totals(items)
	assert.InDelta(t, 7.5, totals.WeightKg, 1e-9)
	assert.InDelta(t, 0.21, totals.VolumeM3, 1e-9)
	assert.Equal(t, 3, totals.Quantity)
}

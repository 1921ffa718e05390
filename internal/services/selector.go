package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"freight-quote-service/internal/domain"
	"freight-quote-service/internal/ports"
)

// RankCenters computes the road distance from every catalog center to the
// destination, ordered nearest first. The sort is stable so equal-distance
// centers keep catalog order; that ordering is part of the selection
// contract.
func RankCenters(catalog domain.Catalog, destination domain.Coordinate) []domain.CenterDistance {
	ranking := make([]domain.CenterDistance, 0, len(catalog))
	for _, dc := range catalog {
		ranking = append(ranking, domain.CenterDistance{
			Center:     dc,
			DistanceKm: domain.RoadDistanceKm(dc.Location, destination),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].DistanceKm < ranking[j].DistanceKm
	})

	return ranking
}

// SelectCenter picks the nearest center that has every line item in stock.
//
// Candidates are walked nearest to farthest; an item with an empty sku is
// treated as available and skipped. When no center can confirm the whole
// order, the globally nearest center is returned with FullyStocked false:
// a quote is always produced, inventory is advisory. Total function.
func SelectCenter(
	ctx context.Context,
	catalog domain.Catalog,
	destination domain.Coordinate,
	items []domain.LineItem,
	stock ports.StockChecker,
) domain.SelectionResult {
	ranking := RankCenters(catalog, destination)

	for _, candidate := range ranking {
		if allItemsAvailable(ctx, candidate.Center, items, stock) {
			return domain.SelectionResult{
				Center:       candidate.Center,
				DistanceKm:   candidate.DistanceKm,
				FullyStocked: true,
			}
		}
	}

	nearest := ranking[0]
	log.Ctx(ctx).Warn().
		Str("center", nearest.Center.ID).
		Float64("distance_km", nearest.DistanceKm).
		Msg("no center fully stocked, falling back to nearest")

	return domain.SelectionResult{
		Center:       nearest.Center,
		DistanceKm:   nearest.DistanceKm,
		FullyStocked: false,
	}
}

func allItemsAvailable(
	ctx context.Context,
	center domain.DistributionCenter,
	items []domain.LineItem,
	stock ports.StockChecker,
) bool {
	for _, item := range items {
		if item.SKU == "" {
			continue
		}
		if !stock.Available(ctx, item.SKU, center.InventoryID) {
			return false
		}
	}
	return true
}

package ports

import "context"

// Port: advisory stock availability for one product at one center.
//
// Available never reports an error: the check is advisory, and any failure
// (missing configuration, network error, unknown product) must read as
// available so a quote is always produced.
type StockChecker interface {
	Available(ctx context.Context, sku string, centerInventoryID string) bool
}

package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TrayStockChecker reads per-center stock levels from the storefront API.
//
// Availability is advisory: every failure path (missing configuration,
// network error, non-200, unknown product, absent stock fields) reads as
// available so the quote is never blocked. Failures are logged, not
// returned.
type TrayStockChecker struct {
	session *http.Client
	baseURL string
	token   string
}

func NewTrayStockChecker(baseURL, token string) *TrayStockChecker {
	return &TrayStockChecker{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
	}
}

// Configured reports whether the checker has an endpoint and credentials.
func (t *TrayStockChecker) Configured() bool {
	return t.baseURL != "" && t.token != ""
}

type productListResponse struct {
	Products []map[string]json.RawMessage `json:"products"`
}

// Available implements ports.StockChecker.
func (t *TrayStockChecker) Available(ctx context.Context, sku, centerInventoryID string) bool {
	if !t.Configured() {
		return true
	}

	endpoint := fmt.Sprintf("%s/products?reference=%s", t.baseURL, url.QueryEscape(sku))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("sku", sku).Msg("stock check request build failed")
		return true
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.session.Do(req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("sku", sku).Msg("stock check call failed, assuming available")
		return true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Ctx(ctx).Warn().Int("status", resp.StatusCode).Str("sku", sku).
			Msg("stock check returned non-200, assuming available")
		return true
	}

	var decoded productListResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("sku", sku).Msg("stock check decode failed, assuming available")
		return true
	}

	if len(decoded.Products) == 0 {
		log.Ctx(ctx).Debug().Str("sku", sku).Msg("product not found in storefront, assuming available")
		return true
	}

	product := decoded.Products[0]

	// Per-center field first, generic stock second, optimistic last.
	if qty, ok := stockField(product, "stock_"+centerInventoryID); ok {
		return qty > 0
	}
	if qty, ok := stockField(product, "stock"); ok {
		return qty > 0
	}

	return true
}

// stockField reads an integer stock level that the storefront may serialize
// as a number or a numeric string.
func stockField(product map[string]json.RawMessage, field string) (int, bool) {
	raw, ok := product[field]
	if !ok {
		return 0, false
	}

	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return qty, true
}

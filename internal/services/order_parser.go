package services

import (
	"fmt"
	"strconv"
	"strings"

	"freight-quote-service/internal/domain"
)

const itemFieldCount = 8

// ParseOrder decodes the inbound order encoding into line items.
//
// Items are separated by "/"; each item carries eight ";"-separated fields
// in fixed order: length, width, height, cubic volume, quantity, weight,
// sku, unit value. Items with fewer than eight fields are dropped without
// error, while a numeric field that fails to parse aborts the whole order.
// This asymmetry is wire-compatible behavior and must not be tightened:
// callers treat an empty result as a malformed order.
func ParseOrder(encoded string) ([]domain.LineItem, error) {
	items := []domain.LineItem{}

	for _, raw := range strings.Split(encoded, "/") {
		fields := strings.Split(raw, ";")
		if len(fields) < itemFieldCount {
			continue
		}

		item, err := parseLineItem(fields)
		if err != nil {
			return nil, fmt.Errorf("parse order item %q: %w", raw, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func parseLineItem(fields []string) (domain.LineItem, error) {
	length, err := parseFloatField("length", fields[0])
	if err != nil {
		return domain.LineItem{}, err
	}
	width, err := parseFloatField("width", fields[1])
	if err != nil {
		return domain.LineItem{}, err
	}
	height, err := parseFloatField("height", fields[2])
	if err != nil {
		return domain.LineItem{}, err
	}
	volume, err := parseFloatField("cubic volume", fields[3])
	if err != nil {
		return domain.LineItem{}, err
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("field quantity: %w", err)
	}
	weight, err := parseFloatField("weight", fields[5])
	if err != nil {
		return domain.LineItem{}, err
	}
	unitValue, err := parseFloatField("unit value", fields[7])
	if err != nil {
		return domain.LineItem{}, err
	}

	return domain.LineItem{
		Length:      length,
		Width:       width,
		Height:      height,
		CubicVolume: volume,
		Quantity:    quantity,
		Weight:      weight,
		SKU:         strings.TrimSpace(fields[6]),
		UnitValue:   unitValue,
	}, nil
}

func parseFloatField(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", name, err)
	}
	return f, nil
}

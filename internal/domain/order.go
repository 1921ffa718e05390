package domain

// LineItem is one product on an order, immutable once parsed.
// Weight is per unit; CubicVolume is per unit in cubic meters.
type LineItem struct {
	Length      float64
	Width       float64
	Height      float64
	CubicVolume float64
	Quantity    int
	Weight      float64
	SKU         string
	UnitValue   float64
}

// OrderTotals are the aggregates pricing works from. Derived per request,
// never stored.
type OrderTotals struct {
	WeightKg float64
	VolumeM3 float64
	Quantity int
}

// Totals aggregates weight, volume and quantity across all line items.
func Totals(items []LineItem) OrderTotals {
	var t OrderTotals
	for _, it := range items {
		t.WeightKg += it.Weight * float64(it.Quantity)
		t.VolumeM3 += it.CubicVolume * float64(it.Quantity)
		t.Quantity += it.Quantity
	}
	return t
}

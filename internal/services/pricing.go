package services

import "math"

// Pricing model constants. The formula is part of the external contract
// with the storefront; changing any of these is a pricing change, not a
// refactor.
const (
	minimumFreight   = 50.00
	weightStepKg     = 10.0
	weightStepFactor = 0.05 // +5% per 10 kg
	volumeFactor     = 0.10 // +10% per m³
)

// FreightPrice computes the freight amount for a shipment, rounded to two
// decimals and never below the 50.00 floor. Pure and total.
func FreightPrice(distanceKm, totalWeightKg, totalVolumeM3, ratePerKm float64) float64 {
	base := distanceKm * ratePerKm
	weightAdj := 1 + (totalWeightKg/weightStepKg)*weightStepFactor
	volumeAdj := 1 + totalVolumeM3*volumeFactor

	amount := round2(base * weightAdj * volumeAdj)
	if amount < minimumFreight {
		return minimumFreight
	}
	return amount
}

// LeadTimeDays maps distance to a delivery estimate in business days.
// Bounds are inclusive: exactly 100 km still quotes 3 days.
func LeadTimeDays(distanceKm float64) int {
	switch {
	case distanceKm <= 100:
		return 3
	case distanceKm <= 300:
		return 5
	case distanceKm <= 600:
		return 7
	case distanceKm <= 1000:
		return 10
	default:
		return 15
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

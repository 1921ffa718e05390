package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreightPriceExample(t *testing.T) {
	// base=700, weightAdj=1.05, volumeAdj=1.10 -> 808.50
	got := FreightPrice(100, 10, 1, 7.0)
	assert.Equal(t, 808.50, got)
}

func TestFreightPriceFloor(t *testing.T) {
	assert.Equal(t, 50.00, FreightPrice(0, 0, 0, 7.0))
	assert.Equal(t, 50.00, FreightPrice(1, 0, 0, 7.0))
}

func TestFreightPriceRounding(t *testing.T) {
	// 33.333 * 7 = 233.331 -> 233.33
	assert.Equal(t, 233.33, FreightPrice(33.333, 0, 0, 7.0))
}

func TestLeadTimeDaysBoundaries(t *testing.T) {
	cases := []struct {
		distanceKm float64
		want       int
	}{
		{0, 3},
		{100, 3},
		{100.01, 5},
		{300, 5},
		{300.01, 7},
		{600, 7},
		{600.01, 10},
		{1000, 10},
		{1000.01, 15},
		{4000, 15},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LeadTimeDays(tc.distanceKm), "distance %.2f", tc.distanceKm)
	}
}

func TestLeadTimeDaysMonotonic(t *testing.T) {
	prev := 0
	for d := 0.0; d <= 2000; d += 10 {
		got := LeadTimeDays(d)
		assert.GreaterOrEqual(t, got, prev, "distance %.0f", d)
		prev = got
	}
}

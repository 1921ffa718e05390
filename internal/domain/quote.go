package domain

// DestinationResolution is the outcome of resolving a postal code to a
// coordinate. IBGECode is zero when the resolution came from the capital
// fallback table.
type DestinationResolution struct {
	Municipality string
	UF           string
	Location     Coordinate
	IBGECode     int
}

// CenterDistance is one entry of a per-request distance ranking.
type CenterDistance struct {
	Center     DistributionCenter
	DistanceKm float64
}

// SelectionResult names the center an order ships from. FullyStocked is
// false when no center could confirm stock for every item and the quote
// fell back to the nearest center.
type SelectionResult struct {
	Center       DistributionCenter
	DistanceKm   float64
	FullyStocked bool
}

// Quote is the complete outcome of a freight computation.
type Quote struct {
	Destination  DestinationResolution
	Selection    SelectionResult
	Totals       OrderTotals
	Price        float64
	LeadTimeDays int
}

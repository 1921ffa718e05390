package dto

type CenterResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	UF         string  `json:"uf"`
	PostalCode string  `json:"postal_code"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

type ListCentersResponse struct {
	Total   int              `json:"total"`
	Centers []CenterResponse `json:"centers"`
}

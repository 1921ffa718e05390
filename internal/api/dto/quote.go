package dto

import "encoding/xml"

// ShippingResponse is the storefront-compatible XML quote document.
type ShippingResponse struct {
	XMLName      xml.Name `xml:"shipping"`
	CEP          string   `xml:"cep"`
	Price        string   `xml:"price"`
	DeliveryTime int      `xml:"delivery_time"`
	Message      string   `xml:"message"`
	Carrier      string   `xml:"carrier"`
	Distance     string   `xml:"distance"`
	Origin       string   `xml:"origin"`
}

// ShippingError is the storefront-compatible XML error document.
type ShippingError struct {
	XMLName xml.Name `xml:"error"`
	Message string   `xml:",chardata"`
}

// QuoteResponse is the service-native JSON quote shape.
type QuoteResponse struct {
	PostalCode   string  `json:"postal_code"`
	Municipality string  `json:"municipality"`
	UF           string  `json:"uf"`
	CenterID     string  `json:"center_id"`
	CenterName   string  `json:"center_name"`
	OriginCity   string  `json:"origin_city"`
	OriginUF     string  `json:"origin_uf"`
	DistanceKm   float64 `json:"distance_km"`
	FullyStocked bool    `json:"fully_stocked"`
	Price        float64 `json:"price"`
	LeadTimeDays int     `json:"lead_time_days"`
}

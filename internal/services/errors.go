package services

import "errors"

// Request-level failures surfaced to the transport layer. All of them map
// to a declined quote, never to a retry or a process failure.
var (
	ErrMissingPostalCode = errors.New("postal code not provided")
	ErrMissingOrder      = errors.New("order not provided")
	ErrMalformedOrder    = errors.New("order encoding is invalid")
	ErrGeoLookupFailed   = errors.New("postal code could not be resolved")
)

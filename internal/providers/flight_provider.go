package providers

import (
	"context"
	"fmt"

	"airease/backend/internal/models/dtos"
)

// FlightProvider defines the interface for external flight-data sources
type FlightProvider interface {
	// SearchFlights fetches and normalizes flight offers for a query
	SearchFlights(ctx context.Context, query dtos.SearchQuery) ([]dtos.FlightRecord, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

// ProviderError wraps provider failures with a stable error code the
// orchestrator switches on.
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

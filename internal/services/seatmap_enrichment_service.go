package services

import (
	"context"

	"airease/backend/internal/logging"
	"airease/backend/internal/metrics"
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/providers"
	"airease/backend/internal/scoring"

	"go.uber.org/zap"
)

// SeatMapFetcher resolves cabin-amenity detail for a flight.
type SeatMapFetcher interface {
	FetchSeatMap(ctx context.Context, record dtos.FlightRecord) (*providers.SeatMapDetail, error)
}

// SeatMapEnrichmentService upgrades a stored flight with seat-map
// detail when the user opens its detail view. The facility update and
// the rescore land in the store as one swap, so concurrent readers
// never see new amenities paired with the old score.
type SeatMapEnrichmentService struct {
	fetcher SeatMapFetcher
	store   *FlightStore
	scorer  *scoring.Scorer
	metrics *metrics.MetricsRegistry
}

func NewSeatMapEnrichmentService(fetcher SeatMapFetcher, store *FlightStore, scorer *scoring.Scorer, reg *metrics.MetricsRegistry) *SeatMapEnrichmentService {
	return &SeatMapEnrichmentService{
		fetcher: fetcher,
		store:   store,
		scorer:  scorer,
		metrics: reg,
	}
}

// Enrich fetches seat-map amenities for a stored flight and folds them
// into its facilities and score. Fetch failures leave the stored
// result untouched and report Updated=false.
func (s *SeatMapEnrichmentService) Enrich(ctx context.Context, flightID string) (*dtos.SeatMapResponse, error) {
	current, ok := s.store.Get(flightID)
	if !ok {
		return nil, ErrFlightNotFound
	}

	response := &dtos.SeatMapResponse{
		FlightID: flightID,
		Aircraft: current.Flight.Aircraft,
		Cabin:    current.Flight.Cabin,
	}

	detail, err := s.fetcher.FetchSeatMap(ctx, current.Flight)
	if err != nil {
		logging.Warn("seat map fetch failed",
			zap.String("flightId", flightID), zap.Error(err))
		return response, nil
	}

	s.store.Replace(flightID, func(result dtos.ScoreResult) dtos.ScoreResult {
		flight := result.Flight
		flight.Facilities = mergeFacilities(flight.Facilities, detail)
		return s.scorer.ScoreFlight(flight, scoring.ParsePersona(result.Persona), scoring.SafetyProfile{})
	})

	if s.metrics != nil {
		s.metrics.SeatMapEnrichmentsTotal.Inc()
	}

	updated, _ := s.store.Get(flightID)
	response.Updated = true
	response.SeatTilt = detail.SeatTilt
	response.ExtraLegroom = detail.ExtraLegroom
	if updated.Flight.Facilities.SeatPitchInch != nil {
		response.SeatPitchInch = *updated.Flight.Facilities.SeatPitchInch
	}
	if detail.Aircraft != "" {
		response.Aircraft = detail.Aircraft
	}
	return response, nil
}

// mergeFacilities overlays seat-map detail on provider-derived flags.
// Seat-map data wins where present; unknowns stay unknown.
func mergeFacilities(base dtos.FlightFacilities, detail *providers.SeatMapDetail) dtos.FlightFacilities {
	if detail.HasWifi != nil {
		base.HasWifi = detail.HasWifi
	}
	if detail.HasPower != nil {
		base.HasPower = detail.HasPower
	}
	if detail.HasIFE != nil {
		base.HasIFE = detail.HasIFE
	}
	if detail.MealIncluded != nil {
		base.MealIncluded = detail.MealIncluded
	}
	if detail.LegSpaceInch != nil {
		base.SeatPitchInch = detail.LegSpaceInch
	}
	return base
}

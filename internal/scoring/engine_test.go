package scoring

import (
	"testing"

	"airease/backend/internal/models/dtos"
	"airease/backend/internal/refdata"
)

func newTestScorer() *Scorer {
	return NewScorer(
		refdata.NewAircraftComfortService(nil),
		refdata.NewAirlineReliabilityService(nil),
		refdata.NewAirlineReviewsService(nil),
	)
}

func TestScoreFlightCarriesCabinBreakdown(t *testing.T) {
	s := newTestScorer()
	pitch := 32
	flight := dtos.FlightRecord{
		ID:              "f-1",
		Airline:         "Cathay Pacific",
		AirlineCode:     "CX",
		Aircraft:        "Airbus A350-900",
		Cabin:           "economy",
		DurationMinutes: 250,
		Price:           420,
		Facilities:      dtos.FlightFacilities{SeatPitchInch: &pitch},
	}

	result := s.ScoreFlight(flight, PersonaDefault, SafetyProfile{})

	if result.Explanation == nil {
		t.Fatal("explanation missing")
	}
	breakdown := result.Explanation.CabinBreakdown
	for _, cabin := range []string{"economy", "business"} {
		dims, ok := breakdown[cabin]
		if !ok {
			t.Fatalf("cabin %s missing from breakdown: %v", cabin, breakdown)
		}
		if dims.Comfort < 1.0 || dims.Comfort > 10.0 {
			t.Errorf("%s comfort out of range: %v", cabin, dims.Comfort)
		}
		if dims.Service < 1.0 || dims.Service > 10.0 {
			t.Errorf("%s service out of range: %v", cabin, dims.Service)
		}
	}

	// The flown cabin's comfort in the breakdown matches the scored
	// dimension, since both use the same inputs.
	if breakdown["economy"].Comfort != result.Dimensions.Comfort {
		t.Errorf("flown-cabin comfort mismatch: %v vs %v",
			breakdown["economy"].Comfort, result.Dimensions.Comfort)
	}
}

func TestScoreFlightDefaultsSafetyToClean(t *testing.T) {
	s := newTestScorer()
	result := s.ScoreFlight(dtos.FlightRecord{ID: "f-2", Cabin: "economy"}, PersonaFamily, SafetyProfile{})

	if result.Dimensions.Safety != 10.0 {
		t.Errorf("safety without incident data: expected 10.0, got %v", result.Dimensions.Safety)
	}
	detail, ok := result.Explanation.Dimensions["safety"]
	if !ok || detail.DataSource != "default" {
		t.Errorf("safety data source: expected default, got %+v", detail)
	}
}

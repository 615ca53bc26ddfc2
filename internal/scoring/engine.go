package scoring

import (
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/refdata"
)

// Scorer turns normalized flight records into scored results. It holds
// the reference-data resolvers, which are read-only after their
// startup load, so a single Scorer is safe for concurrent use.
type Scorer struct {
	comfort     *refdata.AircraftComfortService
	reliability *refdata.AirlineReliabilityService
	reviews     *refdata.AirlineReviewsService
}

func NewScorer(
	comfort *refdata.AircraftComfortService,
	reliability *refdata.AirlineReliabilityService,
	reviews *refdata.AirlineReviewsService,
) *Scorer {
	return &Scorer{
		comfort:     comfort,
		reliability: reliability,
		reviews:     reviews,
	}
}

func boolVal(p *bool) bool {
	return p != nil && *p
}

// ScoreFlight computes the full seven-dimension score for one flight
// under the given persona. Safety defaults to a clean profile when no
// incident data has been resolved for the flight.
func (s *Scorer) ScoreFlight(flight dtos.FlightRecord, persona Persona, safety SafetyProfile) dtos.ScoreResult {
	fac := flight.Facilities

	reliabilityScore, reliabilityDetail := s.reliability.Score(flight.AirlineCode, flight.OftenDelayed)

	legroom := 0
	if fac.SeatPitchInch != nil {
		legroom = *fac.SeatPitchInch
	}
	comfortScore, comfortDetail := s.comfort.Score(refdata.ComfortInputs{
		AircraftModel:   flight.Aircraft,
		Cabin:           flight.Cabin,
		HasWifi:         boolVal(fac.HasWifi),
		HasPower:        boolVal(fac.HasPower),
		HasIFE:          boolVal(fac.HasIFE),
		LegroomOverride: legroom,
	})

	serviceScore, serviceDetail := s.reviews.Score(flight.Airline, flight.Cabin)

	valueScore := ValueScore(flight.Price, flight.PriceLevel, flight.TypicalPriceRange)

	anyAmenityKnown := fac.HasWifi != nil || fac.HasPower != nil || fac.HasIFE != nil || fac.MealIncluded != nil
	amenitiesScore := AmenitiesScore(
		boolVal(fac.HasWifi),
		boolVal(fac.HasPower),
		boolVal(fac.HasIFE),
		boolVal(fac.MealIncluded),
		anyAmenityKnown,
		comfortScore,
	)

	efficiencyScore := EfficiencyScore(flight.Stops, flight.DurationMinutes, flight.ShortestDurationMinutes)

	safetyScore := SafetyScore(safety)
	safetySrc := "default"
	if !safety.Empty() {
		safetySrc = "incident_db"
	}

	raw := dtos.DimensionScores{
		Safety:      safetyScore,
		Reliability: reliabilityScore,
		Comfort:     comfortScore,
		Service:     serviceScore,
		Value:       valueScore,
		Amenities:   amenitiesScore,
		Efficiency:  efficiencyScore,
	}

	overall, breakdown := Compose(raw, persona, true)

	explain := BuildExplanation(ExplainInputs{
		Flight:      flight,
		Raw:         raw,
		Reliability: reliabilityDetail,
		Comfort:     comfortDetail,
		Service:     serviceDetail,
		Safety:      safety,
		SafetySrc:   safetySrc,
	}, s.reviews.Highlights(flight.Airline, flight.Cabin))
	explain.CabinBreakdown = s.cabinBreakdown(flight)

	return dtos.ScoreResult{
		Flight:                flight,
		OverallScore:          overall,
		Dimensions:            raw,
		Persona:               string(persona),
		PersonaLabel:          LabelFor(persona),
		PersonaWeightsApplied: breakdown.Weights.Map(),
		Explanation:           explain,
	}
}

// cabinBreakdown computes the cabin-dependent dimensions for both
// cabin classes so clients can show an economy/business comparison
// without a second scoring call. The legroom override only applies to
// the cabin actually flown.
func (s *Scorer) cabinBreakdown(flight dtos.FlightRecord) map[string]dtos.CabinDimensions {
	fac := flight.Facilities
	breakdown := make(map[string]dtos.CabinDimensions, 2)

	for _, cabin := range []string{"economy", "business"} {
		legroom := 0
		if cabin == flight.Cabin && fac.SeatPitchInch != nil {
			legroom = *fac.SeatPitchInch
		}
		comfort, _ := s.comfort.Score(refdata.ComfortInputs{
			AircraftModel:   flight.Aircraft,
			Cabin:           cabin,
			HasWifi:         boolVal(fac.HasWifi),
			HasPower:        boolVal(fac.HasPower),
			HasIFE:          boolVal(fac.HasIFE),
			LegroomOverride: legroom,
		})
		service, _ := s.reviews.Score(flight.Airline, cabin)
		breakdown[cabin] = dtos.CabinDimensions{Comfort: comfort, Service: service}
	}

	return breakdown
}

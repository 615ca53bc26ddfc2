package services

import (
	"context"
	"errors"
	"testing"

	"airease/backend/internal/models/dtos"
	"airease/backend/internal/providers"
	"airease/backend/internal/scoring"
)

type stubSeatMapFetcher struct {
	detail *providers.SeatMapDetail
	err    error
}

func (f *stubSeatMapFetcher) FetchSeatMap(ctx context.Context, record dtos.FlightRecord) (*providers.SeatMapDetail, error) {
	return f.detail, f.err
}

func seededStore(scorerFlight dtos.FlightRecord) (*FlightStore, dtos.ScoreResult) {
	store := NewFlightStore()
	result := testScorer().ScoreFlight(scorerFlight, scoring.PersonaFamily, scoring.SafetyProfile{})
	store.Put(result)
	return store, result
}

func TestEnrichUpdatesFacilitiesAndScore(t *testing.T) {
	flight := dtos.FlightRecord{
		ID:              "f-1",
		Airline:         "Cathay Pacific",
		AirlineCode:     "CX",
		Origin:          "HKG",
		Destination:     "NRT",
		DurationMinutes: 295,
		Cabin:           "economy",
		Price:           420,
	}
	store, before := seededStore(flight)

	pitch := 34
	wifi := true
	power := true
	fetcher := &stubSeatMapFetcher{detail: &providers.SeatMapDetail{
		Aircraft:     "789",
		LegSpaceInch: &pitch,
		HasWifi:      &wifi,
		HasPower:     &power,
	}}

	svc := NewSeatMapEnrichmentService(fetcher, store, testScorer(), nil)
	resp, err := svc.Enrich(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("enrich failed: %v", err)
	}
	if !resp.Updated {
		t.Fatal("expected updated response")
	}
	if resp.SeatPitchInch != 34 {
		t.Errorf("pitch not reported: %d", resp.SeatPitchInch)
	}

	after, _ := store.Get("f-1")
	if after.Flight.Facilities.HasWifi == nil || !*after.Flight.Facilities.HasWifi {
		t.Error("wifi flag not merged")
	}
	if after.Flight.Facilities.SeatPitchInch == nil || *after.Flight.Facilities.SeatPitchInch != 34 {
		t.Error("legroom not merged")
	}
	// Known wifi and power must move amenities off the pre-enrichment value.
	if after.Dimensions.Amenities == before.Dimensions.Amenities {
		t.Error("amenities dimension not recomputed")
	}
	if after.Persona != before.Persona {
		t.Errorf("persona changed during enrichment: %s", after.Persona)
	}
}

func TestEnrichFetchFailureLeavesStoreUntouched(t *testing.T) {
	flight := dtos.FlightRecord{ID: "f-1", AirlineCode: "CX", Cabin: "economy", DurationMinutes: 295, Price: 420}
	store, before := seededStore(flight)

	fetcher := &stubSeatMapFetcher{err: errors.New("upstream down")}
	svc := NewSeatMapEnrichmentService(fetcher, store, testScorer(), nil)

	resp, err := svc.Enrich(context.Background(), "f-1")
	if err != nil {
		t.Fatalf("fetch failure should not surface as error: %v", err)
	}
	if resp.Updated {
		t.Error("response should not claim an update")
	}

	after, _ := store.Get("f-1")
	if after.OverallScore != before.OverallScore {
		t.Error("stored score changed despite failed fetch")
	}
}

func TestEnrichUnknownFlight(t *testing.T) {
	svc := NewSeatMapEnrichmentService(&stubSeatMapFetcher{}, NewFlightStore(), testScorer(), nil)
	if _, err := svc.Enrich(context.Background(), "nope"); !errors.Is(err, ErrFlightNotFound) {
		t.Errorf("expected ErrFlightNotFound, got %v", err)
	}
}

package refdata

import (
	"math"
	"testing"
)

func seededComfortService() *AircraftComfortService {
	s := NewAircraftComfortService(nil)
	specs787 := &ComfortSpecs{
		AircraftModel:     "Boeing 787-9",
		SeatWidthEconomy:  17.5,
		SeatPitchEconomy:  32,
		ReclineEconomy:    5,
		IFEScreenEconomy:  11,
		SeatWidthBusiness: 22,
		SeatPitchBusiness: 72,
		IFEScreenBusiness: 18,
	}
	s.cache["boeing 787-9"] = specs787
	s.cache["787-9"] = specs787
	s.cache["airbus a320neo"] = &ComfortSpecs{
		AircraftModel:     "Airbus A320neo",
		SeatWidthEconomy:  18.0,
		SeatPitchEconomy:  30,
		ReclineEconomy:    4,
		IFEScreenEconomy:  9,
		SeatWidthBusiness: 20,
		SeatPitchBusiness: 37,
		IFEScreenBusiness: 12,
	}
	return s
}

func TestLookupExactMatch(t *testing.T) {
	s := seededComfortService()
	if got := s.Lookup("Boeing 787-9"); got == nil || got.AircraftModel != "Boeing 787-9" {
		t.Fatalf("exact match failed: %+v", got)
	}
}

func TestLookupAbbreviationNormalization(t *testing.T) {
	s := seededComfortService()
	if got := s.Lookup("B787-9"); got == nil || got.AircraftModel != "Boeing 787-9" {
		t.Fatalf("abbreviation match failed: %+v", got)
	}
}

func TestLookupSubstringMatch(t *testing.T) {
	s := seededComfortService()
	if got := s.Lookup("Boeing 787-9 Dreamliner"); got == nil || got.AircraftModel != "Boeing 787-9" {
		t.Fatalf("substring match failed: %+v", got)
	}
}

func TestLookupRegexTokenMatch(t *testing.T) {
	s := seededComfortService()
	// "A320neo" should reach the Airbus entry via the a320 token.
	if got := s.Lookup("A320neo sharklets"); got == nil || got.AircraftModel != "Airbus A320neo" {
		t.Fatalf("token match failed: %+v", got)
	}
}

func TestLookupUnknownReturnsNil(t *testing.T) {
	s := seededComfortService()
	if got := s.Lookup("Concorde"); got != nil {
		t.Fatalf("expected nil for unknown model, got %+v", got)
	}
	if got := s.Lookup(""); got != nil {
		t.Fatalf("expected nil for empty model, got %+v", got)
	}
}

func TestNormalizeModel(t *testing.T) {
	cases := map[string]string{
		"B787-9":      "boeing 787-9",
		"A350-900":    "airbus a350-900",
		" Boeing 777": "boeing 777",
	}
	for in, want := range cases {
		if got := NormalizeModel(in); got != want {
			t.Errorf("NormalizeModel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestComfortScoreUnknownAircraftUsesDefaults(t *testing.T) {
	s := seededComfortService()
	score, detail := s.Score(ComfortInputs{AircraftModel: "Unknown Jet", Cabin: "economy"})

	// All components sit at 5.0 with no data.
	if score != 5.0 {
		t.Errorf("expected neutral 5.0, got %v", score)
	}
	if detail.DataSource != "default" {
		t.Errorf("expected default data source, got %s", detail.DataSource)
	}
}

func TestComfortScoreLegroomOverrideWithoutSpecs(t *testing.T) {
	s := seededComfortService()
	score, detail := s.Score(ComfortInputs{
		AircraftModel:   "Unknown Jet",
		Cabin:           "economy",
		LegroomOverride: 34,
	})

	if detail.DataSource != "api_legroom" {
		t.Errorf("expected api_legroom source, got %s", detail.DataSource)
	}
	// Pitch at band max scores 10; 10*0.40 + 5*0.60 = 7.0.
	if math.Abs(score-7.0) > 1e-9 {
		t.Errorf("expected 7.0, got %v", score)
	}
}

func TestComfortScoreBusinessAssumptions(t *testing.T) {
	s := seededComfortService()
	_, detail := s.Score(ComfortInputs{AircraftModel: "787-9", Cabin: "Business"})

	if detail.Recline != 15 {
		t.Errorf("business recline assumption: expected 15, got %d", detail.Recline)
	}
	if detail.ReclineScore != 9.0 {
		t.Errorf("business recline score: expected 9.0, got %v", detail.ReclineScore)
	}
	if detail.SeatPitch != 72 {
		t.Errorf("business pitch: expected 72, got %d", detail.SeatPitch)
	}
}

func TestComfortScoreAmenityBonuses(t *testing.T) {
	s := seededComfortService()
	bare, _ := s.Score(ComfortInputs{AircraftModel: "787-9", Cabin: "economy"})
	loaded, detail := s.Score(ComfortInputs{
		AircraftModel: "787-9",
		Cabin:         "economy",
		HasWifi:       true,
		HasPower:      true,
		HasIFE:        true,
	})

	if math.Abs(detail.AmenityBonus-0.7) > 1e-9 {
		t.Errorf("amenity bonus: expected 0.7, got %v", detail.AmenityBonus)
	}
	if loaded <= bare {
		t.Errorf("amenities did not raise score: %v vs %v", loaded, bare)
	}
	if loaded > 10.0 {
		t.Errorf("score exceeded cap: %v", loaded)
	}
}

func TestNormalizeScoreBands(t *testing.T) {
	if got := normalizeScore(28, 28, 34); got != 3.0 {
		t.Errorf("band min: expected 3.0, got %v", got)
	}
	if got := normalizeScore(34, 28, 34); got != 10.0 {
		t.Errorf("band max: expected 10.0, got %v", got)
	}
	if got := normalizeScore(31, 28, 34); math.Abs(got-6.5) > 1e-9 {
		t.Errorf("band mid: expected 6.5, got %v", got)
	}
	if got := normalizeScore(20, 28, 34); got != 3.0 {
		t.Errorf("below band: expected 3.0, got %v", got)
	}
}

func TestIsBusinessCabin(t *testing.T) {
	for _, c := range []string{"Business", "business class", "First", "Premium Economy"} {
		if !IsBusinessCabin(c) {
			t.Errorf("expected %q to use business benchmarks", c)
		}
	}
	for _, c := range []string{"Economy", "economy class", ""} {
		if IsBusinessCabin(c) {
			t.Errorf("expected %q to use economy benchmarks", c)
		}
	}
}

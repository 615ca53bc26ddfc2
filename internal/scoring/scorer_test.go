package scoring

import (
	"math"
	"testing"

	"airease/backend/internal/models/dtos"
)

func TestPersonaWeightsSumToOne(t *testing.T) {
	for _, p := range []Persona{PersonaStudent, PersonaBusiness, PersonaFamily, PersonaDefault} {
		sum := WeightsFor(p).Sum()
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("persona %s: weights sum to %v, want 1.0", p, sum)
		}
	}
}

func TestPersonaEmphasis(t *testing.T) {
	student := WeightsFor(PersonaStudent)
	if student.Value != 0.33 {
		t.Errorf("student value weight: expected 0.33, got %v", student.Value)
	}
	business := WeightsFor(PersonaBusiness)
	if business.Reliability != 0.25 {
		t.Errorf("business reliability weight: expected 0.25, got %v", business.Reliability)
	}
	family := WeightsFor(PersonaFamily)
	if family.Comfort != 0.22 || family.Service != 0.22 {
		t.Errorf("family comfort/service weights: expected 0.22 each, got %v/%v", family.Comfort, family.Service)
	}
}

func TestUnknownPersonaFallsBackToDefault(t *testing.T) {
	for _, s := range []string{"", "astronaut", "STUDENTS", "business class"} {
		if p := ParsePersona(s); p != PersonaDefault {
			t.Errorf("ParsePersona(%q) = %s, want default", s, p)
		}
	}
	if p := ParsePersona("Business"); p != PersonaBusiness {
		t.Errorf("ParsePersona is not case-insensitive: got %s", p)
	}
}

func TestHardScoreClamps(t *testing.T) {
	raw := dtos.DimensionScores{
		Safety:      0.0,
		Reliability: -3.0,
		Comfort:     0.0,
		Service:     0.0,
		Value:       12.0,
		Amenities:   0.0,
		Efficiency:  0.5,
	}
	_, breakdown := Compose(raw, PersonaDefault, true)

	if breakdown.Adjusted.Safety < 1.0 || breakdown.Adjusted.Reliability < 1.0 || breakdown.Adjusted.Efficiency < 1.0 {
		t.Errorf("hard-scored dimensions below 1.0: %+v", breakdown.Adjusted)
	}
	if breakdown.Adjusted.Value != 10.0 {
		t.Errorf("value not clamped to 10.0: %v", breakdown.Adjusted.Value)
	}
}

func TestSoftBaselineFloorsAtFive(t *testing.T) {
	raw := dtos.DimensionScores{
		Comfort:   1.0,
		Service:   2.0,
		Amenities: 0.0,
	}
	_, breakdown := Compose(raw, PersonaDefault, true)

	if breakdown.Adjusted.Comfort < 5.0 || breakdown.Adjusted.Service < 5.0 || breakdown.Adjusted.Amenities < 5.0 {
		t.Errorf("soft-baselined dimensions below 5.0: %+v", breakdown.Adjusted)
	}
}

func TestSoftBaselineBoostsAndCaps(t *testing.T) {
	raw := dtos.DimensionScores{Comfort: 8.0, Service: 9.5, Amenities: 6.0}
	_, breakdown := Compose(raw, PersonaDefault, true)

	if math.Abs(breakdown.Adjusted.Comfort-8.8) > 1e-9 {
		t.Errorf("comfort boost: expected 8.8, got %v", breakdown.Adjusted.Comfort)
	}
	if breakdown.Adjusted.Service != 10.0 {
		t.Errorf("service not capped at 10.0: %v", breakdown.Adjusted.Service)
	}
	if math.Abs(breakdown.Adjusted.Amenities-6.6) > 1e-9 {
		t.Errorf("amenities boost: expected 6.6, got %v", breakdown.Adjusted.Amenities)
	}
}

func TestOverallScoreInRangeAndRounded(t *testing.T) {
	raw := dtos.DimensionScores{
		Safety: 10, Reliability: 7.37, Comfort: 6.21, Service: 7.0,
		Value: 8.0, Amenities: 9.0, Efficiency: 7.7,
	}
	overall, _ := Compose(raw, PersonaFamily, true)
	if overall < 1.0 || overall > 10.0 {
		t.Errorf("overall out of range: %v", overall)
	}
	if overall != math.Round(overall*10)/10 {
		t.Errorf("overall not rounded to one decimal: %v", overall)
	}
}

func TestPoorEfficiencyLowersOverall(t *testing.T) {
	good := dtos.DimensionScores{
		Safety: 10, Reliability: 8, Comfort: 8, Service: 8,
		Value: 8, Amenities: 10,
		Efficiency: EfficiencyScore(0, 240, 240),
	}
	bad := good
	bad.Efficiency = EfficiencyScore(1, 22*60, 4*60)

	goodOverall, _ := Compose(good, PersonaDefault, false)
	badOverall, _ := Compose(bad, PersonaDefault, false)

	if goodOverall <= badOverall {
		t.Errorf("bad efficiency scored as high as good: %v vs %v", goodOverall, badOverall)
	}
	if goodOverall-badOverall < 0.3 {
		t.Errorf("efficiency difference too small: %v", goodOverall-badOverall)
	}
}

func TestRescoreIsDeterministicAndWeightOnly(t *testing.T) {
	raw := dtos.DimensionScores{
		Safety: 9.4, Reliability: 8.5, Comfort: 7.1, Service: 7.0,
		Value: 9.0, Amenities: 6.5, Efficiency: 8.0,
	}
	base := dtos.ScoreResult{Dimensions: raw}

	first := Rescore(base, PersonaStudent)
	second := Rescore(base, PersonaStudent)
	if first.OverallScore != second.OverallScore {
		t.Errorf("rescore not deterministic: %v vs %v", first.OverallScore, second.OverallScore)
	}
	if first.Dimensions != raw {
		t.Errorf("rescore mutated raw dimensions")
	}

	business := Rescore(base, PersonaBusiness)
	if business.Persona != "business" || business.PersonaLabel != "Business Priority" {
		t.Errorf("persona metadata not updated: %s / %s", business.Persona, business.PersonaLabel)
	}
	// Value-heavy raw dimensions should favor the student weighting.
	if first.OverallScore <= business.OverallScore {
		t.Errorf("expected student weighting to score higher on value-heavy flight: %v vs %v",
			first.OverallScore, business.OverallScore)
	}
}

func TestPersonaLabels(t *testing.T) {
	cases := map[Persona]string{
		PersonaStudent:  "Budget Traveler",
		PersonaBusiness: "Business Priority",
		PersonaFamily:   "Family Comfort",
		PersonaDefault:  "Balanced",
	}
	for p, want := range cases {
		if got := LabelFor(p); got != want {
			t.Errorf("label for %s: expected %q, got %q", p, want, got)
		}
	}
}

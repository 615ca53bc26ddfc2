package scoring

import (
	"math"
	"testing"
)

func TestEfficiencyShortestDirectGetsMax(t *testing.T) {
	score := EfficiencyScore(0, 240, 240)
	if score != 10.0 {
		t.Errorf("expected 10.0, got %v", score)
	}
}

func TestEfficiencyThirtyMinutesOverLosesOnePoint(t *testing.T) {
	score := EfficiencyScore(0, 270, 240)
	if score != 9.0 {
		t.Errorf("expected 9.0, got %v", score)
	}
}

func TestEfficiencyTwoHoursOverLosesFourPoints(t *testing.T) {
	score := EfficiencyScore(0, 360, 240)
	if score != 6.0 {
		t.Errorf("expected 6.0, got %v", score)
	}
}

func TestEfficiencyOneStopMultiplier(t *testing.T) {
	score := EfficiencyScore(1, 240, 240)
	if score != 8.0 {
		t.Errorf("expected 8.0, got %v", score)
	}
}

func TestEfficiencyTwoStopsMultiplier(t *testing.T) {
	score := EfficiencyScore(2, 240, 240)
	if score != 6.0 {
		t.Errorf("expected 6.0, got %v", score)
	}
}

func TestEfficiencyLongFlightWithStopScoresVeryLow(t *testing.T) {
	// 22h with one stop against a 4h direct baseline
	score := EfficiencyScore(1, 22*60, 4*60)
	if score > 2.0 {
		t.Errorf("expected <= 2.0, got %v", score)
	}
	if score < 1.0 {
		t.Errorf("score fell below floor: %v", score)
	}
}

func TestEfficiencyAbsoluteScaleWithoutBaseline(t *testing.T) {
	if score := EfficiencyScore(0, 120, 0); score != 10.0 {
		t.Errorf("short flight: expected 10.0, got %v", score)
	}
	if score := EfficiencyScore(0, 25*60, 0); score > 2.0 {
		t.Errorf("25h flight: expected <= 2.0, got %v", score)
	}
}

func TestEfficiencyUnknownDurationIsNeutral(t *testing.T) {
	score := EfficiencyScore(0, 0, 0)
	if score != 7.0 {
		t.Errorf("expected 7.0, got %v", score)
	}
}

func TestSafetyDefaultsToTen(t *testing.T) {
	score := SafetyScore(SafetyProfile{})
	if score != 10.0 {
		t.Errorf("expected 10.0 for clean profile, got %v", score)
	}
}

func TestSafetyMonotoneNonIncreasing(t *testing.T) {
	base := SafetyProfile{}
	variants := []SafetyProfile{
		{AirlineAccidents: 1},
		{AirlineAccidents: 5},
		{ModelAccidents: 3},
		{PlaneIncidents: 1},
		{SeriousInjuryIncidents: 1},
		{FatalAccidents: 1, TotalFatalities: 2},
	}

	prev := SafetyScore(base)
	for _, v := range variants {
		s := SafetyScore(v)
		if s > prev {
			t.Errorf("safety score increased with incidents: %+v -> %v", v, s)
		}
	}

	// Scaling every count up must not raise the score.
	small := SafetyProfile{AirlineAccidents: 2, ModelAccidents: 2, PlaneIncidents: 1}
	large := SafetyProfile{AirlineAccidents: 20, ModelAccidents: 20, PlaneIncidents: 10, SeriousInjuryIncidents: 5, FatalAccidents: 3, TotalFatalities: 50}
	if SafetyScore(large) > SafetyScore(small) {
		t.Errorf("more incidents scored higher than fewer")
	}
}

func TestSafetyNeverBelowFloor(t *testing.T) {
	worst := SafetyProfile{
		AirlineAccidents:       100,
		ModelAccidents:         100,
		PlaneIncidents:         100,
		SeriousInjuryIncidents: 100,
		FatalAccidents:         10,
		TotalFatalities:        500,
	}
	if score := SafetyScore(worst); score != 2.0 {
		t.Errorf("expected floor 2.0, got %v", score)
	}
}

func TestSafetyPerClassCaps(t *testing.T) {
	// Airline accidents alone cap at -3.0.
	score := SafetyScore(SafetyProfile{AirlineAccidents: 50})
	if score != 7.0 {
		t.Errorf("expected 7.0 with airline cap, got %v", score)
	}
	// Model accidents alone cap at -2.0.
	score = SafetyScore(SafetyProfile{ModelAccidents: 50})
	if score != 8.0 {
		t.Errorf("expected 8.0 with model cap, got %v", score)
	}
}

func TestValuePriceLevelMapping(t *testing.T) {
	cases := []struct {
		level string
		want  float64
	}{
		{"low", 10.0},
		{"typical", 7.0},
		{"high", 4.0},
	}
	for _, tc := range cases {
		if got := ValueScore(500, tc.level, nil); got != tc.want {
			t.Errorf("price level %q: expected %v, got %v", tc.level, tc.want, got)
		}
	}
}

func TestValueTypicalRangePosition(t *testing.T) {
	// Below the range is top score.
	if got := ValueScore(200, "", []float64{300, 500}); got != 10.0 {
		t.Errorf("below range: expected 10.0, got %v", got)
	}
	// Low end of range.
	if got := ValueScore(300, "", []float64{300, 500}); got != 8.0 {
		t.Errorf("low end: expected 8.0, got %v", got)
	}
	// High end of range.
	if got := ValueScore(500, "", []float64{300, 500}); got != 6.0 {
		t.Errorf("high end: expected 6.0, got %v", got)
	}
	// Far above the range bottoms out at 2.0.
	if got := ValueScore(5000, "", []float64{300, 500}); got != 2.0 {
		t.Errorf("far above: expected 2.0, got %v", got)
	}
}

func TestValueBracketFallback(t *testing.T) {
	cases := []struct {
		price float64
		want  float64
	}{
		{0, 6.0},
		{250, 9.0},
		{450, 8.0},
		{700, 7.0},
		{1000, 6.0},
		{2000, 5.0},
	}
	for _, tc := range cases {
		if got := ValueScore(tc.price, "", nil); got != tc.want {
			t.Errorf("price %v: expected %v, got %v", tc.price, tc.want, got)
		}
	}
}

func TestAmenitiesAdditive(t *testing.T) {
	// All four flags on the 4.0 base caps at 10.
	if got := AmenitiesScore(true, true, true, true, true, 0); got != 10.0 {
		t.Errorf("all amenities: expected 10.0, got %v", got)
	}
	// Wifi only.
	if got := AmenitiesScore(true, false, false, false, true, 0); got != 6.5 {
		t.Errorf("wifi only: expected 6.5, got %v", got)
	}
	// Known but absent amenities keep the base.
	if got := AmenitiesScore(false, false, false, false, true, 0); got != 4.0 {
		t.Errorf("known-empty: expected 4.0, got %v", got)
	}
}

func TestAmenitiesComfortProxyWhenUnknown(t *testing.T) {
	if got := AmenitiesScore(false, false, false, false, false, 7.3); got != 7.3 {
		t.Errorf("expected comfort proxy 7.3, got %v", got)
	}
}

func TestAmenitiesScoreStaysInRange(t *testing.T) {
	for _, wifi := range []bool{false, true} {
		for _, power := range []bool{false, true} {
			for _, ife := range []bool{false, true} {
				for _, meal := range []bool{false, true} {
					got := AmenitiesScore(wifi, power, ife, meal, true, 0)
					if got < 1.0 || got > 10.0 {
						t.Errorf("score out of range: %v", got)
					}
				}
			}
		}
	}
}

func TestEfficiencyRoundedToOneDecimal(t *testing.T) {
	score := EfficiencyScore(1, 250, 240)
	rounded := math.Round(score*10) / 10
	if score != rounded {
		t.Errorf("score not rounded to one decimal: %v", score)
	}
}

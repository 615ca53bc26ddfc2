package refdata

import (
	"math"
	"testing"
)

func seededReliabilityService() *AirlineReliabilityService {
	s := NewAirlineReliabilityService(nil)
	s.byCode["CX"] = 90.0
	s.byCode["CA"] = 85.0
	s.byCode["MU"] = 72.0
	s.byCode["ZZ"] = 55.0
	return s
}

func TestOTPBands(t *testing.T) {
	cases := []struct {
		otp  float64
		want float64
	}{
		{95, 9.5},
		{90, 9.0},
		{85, 8.25},
		{80, 7.5},
		{75, 6.75},
		{70, 6.0},
		{65, 5.0},
		{60, 4.0},
		{45, 3.0},
		{10, 2.0}, // floor of the bottom band
	}
	for _, tc := range cases {
		if got := otpToScore(tc.otp); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("otpToScore(%v) = %v, want %v", tc.otp, got, tc.want)
		}
	}
}

func TestScoreKnownAirline(t *testing.T) {
	s := seededReliabilityService()
	score, detail := s.Score("CX", false)
	if score != 9.0 {
		t.Errorf("expected 9.0 for 90%% OTP, got %v", score)
	}
	if detail.DataSource != "database" || detail.OTP != 90.0 {
		t.Errorf("unexpected breakdown: %+v", detail)
	}
}

func TestScoreUnknownAirlineGetsNeutralDefault(t *testing.T) {
	s := seededReliabilityService()
	score, detail := s.Score("XX", false)
	if score != 7.0 {
		t.Errorf("expected neutral 7.0 for unknown airline, got %v", score)
	}
	if detail.DataSource != "default" {
		t.Errorf("expected default data source, got %s", detail.DataSource)
	}
}

func TestOftenDelayedPenaltyAndCap(t *testing.T) {
	s := seededReliabilityService()

	normal, _ := s.Score("CX", false)
	delayed, detail := s.Score("CX", true)

	if !detail.Penalized {
		t.Errorf("expected penalty flag set")
	}
	// Excellent airlines still cap at 5.0 when the flight itself is
	// often delayed.
	if delayed > 5.0 {
		t.Errorf("delayed score above cap: %v", delayed)
	}
	if normal-delayed < 2.5 {
		t.Errorf("penalty too small: %v -> %v", normal, delayed)
	}
}

func TestOftenDelayedUnknownAirlineCapped(t *testing.T) {
	s := seededReliabilityService()
	score, _ := s.Score("XX", true)
	if score > 5.0 {
		t.Errorf("unknown airline delayed score above cap: %v", score)
	}
}

func TestOftenDelayedFloor(t *testing.T) {
	s := seededReliabilityService()
	score, _ := s.Score("ZZ", true)
	// 55% OTP maps to 3.67; penalty takes it to 2.67, never below 2.0.
	if score < 2.0 {
		t.Errorf("delayed score below floor: %v", score)
	}
}

func TestScoreIsCaseInsensitiveOnCode(t *testing.T) {
	s := seededReliabilityService()
	upper, _ := s.Score("CA", false)
	lower, _ := s.Score("ca", false)
	if upper != lower {
		t.Errorf("code lookup not case-insensitive: %v vs %v", upper, lower)
	}
}

package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"airease/backend/internal/constants"
	"airease/backend/internal/models/dtos"
)

const sampleGFResponse = `{
	"best_flights": [
		{
			"flights": [
				{
					"departure_airport": {"name": "Hong Kong International Airport", "id": "HKG", "time": "2026-09-01 09:30"},
					"arrival_airport": {"name": "Narita International Airport", "id": "NRT", "time": "2026-09-01 14:25"},
					"duration": 295,
					"airplane": "Boeing 777",
					"airline": "Cathay Pacific",
					"flight_number": "CX 500",
					"legroom": "32 in",
					"extensions": ["Wi-Fi for a fee", "In-seat power outlet", "On-demand video", "Meal included"],
					"often_delayed_by_over_30_min": false
				}
			],
			"total_duration": 295,
			"price": 420,
			"booking_token": "tok-abc"
		}
	],
	"other_flights": [
		{
			"flights": [
				{
					"departure_airport": {"name": "Hong Kong International Airport", "id": "HKG", "time": "2026-09-01 11:00"},
					"arrival_airport": {"name": "Shanghai Pudong", "id": "PVG", "time": "2026-09-01 14:00"},
					"duration": 180,
					"airplane": "Airbus A330",
					"airline": "Philippine Airlines",
					"flight_number": "PR 311",
					"legroom": "31 in",
					"extensions": [],
					"often_delayed_by_over_30_min": true
				},
				{
					"departure_airport": {"name": "Shanghai Pudong", "id": "PVG", "time": "2026-09-01 18:00"},
					"arrival_airport": {"name": "Narita International Airport", "id": "NRT", "time": "2026-09-01 21:40"},
					"duration": 160,
					"airplane": "Airbus A321",
					"airline": "Philippine Airlines",
					"flight_number": "PR 873"
				}
			],
			"layovers": [{"duration": 240, "name": "Shanghai Pudong", "id": "PVG", "overnight": false}],
			"total_duration": 580,
			"price": 310
		}
	],
	"price_insights": {"price_level": "low", "typical_price_range": [380, 520]}
}`

func newTestGFProvider(serverURL string) *GoogleFlightsProvider {
	return &GoogleFlightsProvider{
		client:  &http.Client{},
		apiKey:  "test-key",
		baseURL: serverURL,
	}
}

func TestGoogleFlightsSearchNormalizesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("engine"); got != "google_flights" {
			t.Errorf("expected engine google_flights, got %s", got)
		}
		if got := r.URL.Query().Get("departure_id"); got != "HKG" {
			t.Errorf("expected departure_id HKG, got %s", got)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(sampleGFResponse))
	}))
	defer server.Close()

	provider := newTestGFProvider(server.URL)
	records, err := provider.SearchFlights(context.Background(), dtos.SearchQuery{
		Origin:        "HKG",
		Destination:   "NRT",
		DepartureDate: "2026-09-01",
		Cabin:         "economy",
		Currency:      "USD",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	direct := records[0]
	if direct.Airline != "Cathay Pacific" || direct.AirlineCode != "CX" {
		t.Errorf("airline not normalized: %s / %s", direct.Airline, direct.AirlineCode)
	}
	if direct.Stops != 0 || direct.DurationMinutes != 295 {
		t.Errorf("itinerary shape wrong: stops=%d duration=%d", direct.Stops, direct.DurationMinutes)
	}
	if direct.Facilities.HasWifi == nil || !*direct.Facilities.HasWifi {
		t.Errorf("wifi keyword not detected")
	}
	if direct.Facilities.MealIncluded == nil || !*direct.Facilities.MealIncluded {
		t.Errorf("meal keyword not detected")
	}
	if direct.Facilities.SeatPitchInch == nil || *direct.Facilities.SeatPitchInch != 32 {
		t.Errorf("legroom not parsed: %v", direct.Facilities.SeatPitchInch)
	}
	if direct.PriceLevel != "low" {
		t.Errorf("price insights not attached: %q", direct.PriceLevel)
	}
	if direct.DepartureCity != "Hong Kong International Airport" || direct.ArrivalCity != "Narita International Airport" {
		t.Errorf("city names not carried: %q / %q", direct.DepartureCity, direct.ArrivalCity)
	}

	connecting := records[1]
	if connecting.Stops != 1 {
		t.Errorf("expected 1 stop, got %d", connecting.Stops)
	}
	if len(connecting.Layovers) != 1 || connecting.Layovers[0].City != "Shanghai Pudong" {
		t.Errorf("layover city not carried: %+v", connecting.Layovers)
	}
	if !connecting.OftenDelayed {
		t.Errorf("often-delayed flag lost")
	}
	// No extensions on the first segment: amenities stay unknown.
	if connecting.Facilities.HasWifi != nil {
		t.Errorf("expected unknown wifi for flight without extensions")
	}

	// Both records carry the result set's shortest duration.
	for _, r := range records {
		if r.ShortestDurationMinutes != 295 {
			t.Errorf("shortest duration not stamped: %d", r.ShortestDurationMinutes)
		}
	}
}

func TestGoogleFlightsErrorPayloadBecomesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": "Your searches for the month are exhausted."}`))
	}))
	defer server.Close()

	provider := newTestGFProvider(server.URL)
	_, err := provider.SearchFlights(context.Background(), dtos.SearchQuery{Origin: "HKG", Destination: "NRT"})

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeProviderError {
		t.Errorf("expected code %s, got %s", constants.ErrCodeProviderError, provErr.Code)
	}
}

func TestGoogleFlightsEmptyResultIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"best_flights": [], "other_flights": []}`))
	}))
	defer server.Close()

	provider := newTestGFProvider(server.URL)
	_, err := provider.SearchFlights(context.Background(), dtos.SearchQuery{Origin: "HKG", Destination: "NRT"})

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeEmptyResult {
		t.Errorf("expected code %s, got %s", constants.ErrCodeEmptyResult, provErr.Code)
	}
}

func TestGoogleFlightsMissingAPIKey(t *testing.T) {
	provider := &GoogleFlightsProvider{client: &http.Client{}}
	_, err := provider.SearchFlights(context.Background(), dtos.SearchQuery{Origin: "HKG", Destination: "NRT"})

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeInvalidAPIKey {
		t.Errorf("expected code %s, got %s", constants.ErrCodeInvalidAPIKey, provErr.Code)
	}
}

func TestGoogleFlightsRateLimitStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := newTestGFProvider(server.URL)
	_, err := provider.SearchFlights(context.Background(), dtos.SearchQuery{Origin: "HKG", Destination: "NRT"})

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeRateLimited {
		t.Errorf("expected code %s, got %s", constants.ErrCodeRateLimited, provErr.Code)
	}
}

func TestExtractAirlineCode(t *testing.T) {
	cases := map[string]string{
		"BA 301":  "BA",
		"CX 500":  "CX",
		"3U 8888": "U",
		"":        "XX",
	}
	for in, want := range cases {
		if got := ExtractAirlineCode(in); got != want {
			t.Errorf("ExtractAirlineCode(%q) = %q, want %q", in, got, want)
		}
	}
}

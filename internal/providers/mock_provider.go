package providers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/models/dtos"
)

// MockProvider is the last-resort source: it synthesizes plausible
// flights so the pipeline keeps producing scored results when every
// real provider is down.
type MockProvider struct {
	rng *rand.Rand
}

// NewMockProvider creates the synthetic flight provider
func NewMockProvider() *MockProvider {
	return &MockProvider{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededMockProvider creates a deterministic synthetic provider for
// tests.
func NewSeededMockProvider(seed int64) *MockProvider {
	return &MockProvider{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GetProviderType returns the provider type identifier
func (p *MockProvider) GetProviderType() string {
	return "mock"
}

type mockAirline struct {
	code string
	name string
}

var mockAirlines = []mockAirline{
	{"CA", "Air China"},
	{"MU", "China Eastern"},
	{"CZ", "China Southern"},
	{"HU", "Hainan Airlines"},
	{"3U", "Sichuan Airlines"},
	{"ZH", "Shenzhen Airlines"},
	{"FM", "Shanghai Airlines"},
	{"MF", "Xiamen Airlines"},
}

var mockAircraft = []string{
	"Boeing 787-9", "Boeing 737-800", "Boeing 777-300",
	"Airbus A320", "Airbus A330", "Airbus A350", "Airbus A321",
}

// SearchFlights generates 6-12 synthetic flights for the requested
// route and cabin. Prices and timings are randomized within realistic
// bands; roughly 15% of flights carry one stop.
func (p *MockProvider) SearchFlights(ctx context.Context, query dtos.SearchQuery) ([]dtos.FlightRecord, error) {
	count := 6 + p.rng.Intn(7)
	records := make([]dtos.FlightRecord, 0, count)

	day, err := time.Parse("2006-01-02", query.DepartureDate)
	if err != nil {
		day = time.Now().AddDate(0, 0, 3)
	}

	currency := query.Currency
	if currency == "" {
		currency = "USD"
	}

	for i := 0; i < count; i++ {
		airline := mockAirlines[p.rng.Intn(len(mockAirlines))]
		flightNumber := fmt.Sprintf("%s%d", airline.code, 1000+p.rng.Intn(9000))

		hour := 6 + p.rng.Intn(16)
		minute := []int{0, 15, 30, 45}[p.rng.Intn(4)]
		departure := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

		duration := 120 + p.rng.Intn(81)
		stops := 0
		if p.rng.Intn(100) < 15 {
			stops = 1
			duration += 60 + p.rng.Intn(61)
		}
		arrival := departure.Add(time.Duration(duration) * time.Minute)

		var price float64
		switch {
		case IsPremiumCabin(query.Cabin):
			price = float64(2500 + p.rng.Intn(2001))
		default:
			price = float64(800 + p.rng.Intn(701))
		}

		premium := IsPremiumCabin(query.Cabin)
		wifi := p.rng.Intn(2) == 0
		power := premium || p.rng.Intn(2) == 0
		ife := premium || p.rng.Intn(2) == 0
		meal := true

		var layovers []dtos.Layover
		if stops == 1 {
			layovers = []dtos.Layover{{
				Airport:         "WUH",
				City:            common.CityForAirport("WUH"),
				DurationMinutes: 60 + p.rng.Intn(60),
			}}
		}

		records = append(records, dtos.FlightRecord{
			ID:              fmt.Sprintf("mock-%d", i+1),
			Airline:         airline.name,
			AirlineCode:     airline.code,
			FlightNumber:    flightNumber,
			Origin:          query.Origin,
			Destination:     query.Destination,
			DepartureCity:   common.CityForAirport(query.Origin),
			ArrivalCity:     common.CityForAirport(query.Destination),
			DepartureTime:   departure.Format(time.RFC3339),
			ArrivalTime:     arrival.Format(time.RFC3339),
			DurationMinutes: duration,
			Stops:           stops,
			Layovers:        layovers,
			Aircraft:        mockAircraft[p.rng.Intn(len(mockAircraft))],
			Cabin:           query.Cabin,
			Price:           price,
			Currency:        currency,
			Facilities: dtos.FlightFacilities{
				HasWifi:      &wifi,
				HasPower:     &power,
				HasIFE:       &ife,
				MealIncluded: &meal,
			},
			Source: p.GetProviderType(),
		})
	}

	stampShortestDuration(records)

	return records, nil
}

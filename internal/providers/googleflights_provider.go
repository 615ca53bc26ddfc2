package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/constants"
	"airease/backend/internal/models/dtos"

	"github.com/google/uuid"
)

// GoogleFlightsProvider is the primary source. It queries a Google
// Flights results API and normalizes the payload into FlightRecords.
type GoogleFlightsProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewGoogleFlightsProvider creates the primary flight provider
func NewGoogleFlightsProvider() *GoogleFlightsProvider {
	return &GoogleFlightsProvider{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  os.Getenv("SERPAPI_KEY"),
		baseURL: "https://serpapi.com/search",
	}
}

// GetProviderType returns the provider type identifier
func (p *GoogleFlightsProvider) GetProviderType() string {
	return "google_flights"
}

// Response payload shapes. Only the fields the normalizer reads.

type gfSegment struct {
	DepartureAirport gfAirport `json:"departure_airport"`
	ArrivalAirport   gfAirport `json:"arrival_airport"`
	Duration         int       `json:"duration"`
	Airplane         string    `json:"airplane"`
	Airline          string    `json:"airline"`
	FlightNumber     string    `json:"flight_number"`
	Legroom          string    `json:"legroom"`
	Extensions       []string  `json:"extensions"`
	OftenDelayed     bool      `json:"often_delayed_by_over_30_min"`
	Overnight        bool      `json:"overnight"`
}

type gfAirport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type gfLayover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight"`
}

type gfFlight struct {
	Flights         []gfSegment `json:"flights"`
	Layovers        []gfLayover `json:"layovers"`
	TotalDuration   int         `json:"total_duration"`
	Price           float64     `json:"price"`
	BookingToken    string      `json:"booking_token"`
	DepartureToken  string      `json:"departure_token"`
	CarbonEmissions struct {
		ThisFlight int `json:"this_flight"`
	} `json:"carbon_emissions"`
}

type gfPriceInsights struct {
	PriceLevel        string    `json:"price_level"`
	TypicalPriceRange []float64 `json:"typical_price_range"`
}

type gfResponse struct {
	Error         string           `json:"error"`
	BestFlights   []gfFlight       `json:"best_flights"`
	OtherFlights  []gfFlight       `json:"other_flights"`
	PriceInsights *gfPriceInsights `json:"price_insights"`
}

func travelClassParam(cabin string) string {
	switch strings.ToLower(cabin) {
	case "business":
		return "3"
	case "first":
		return "4"
	case "premium", "premium_economy":
		return "2"
	default:
		return "1"
	}
}

// SearchFlights queries the API and normalizes the result set. The
// second pass stamps every record with the shortest itinerary duration
// seen, which downstream scoring uses as the efficiency baseline.
func (p *GoogleFlightsProvider) SearchFlights(ctx context.Context, query dtos.SearchQuery) ([]dtos.FlightRecord, error) {
	if p.apiKey == "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidAPIKey),
		}
	}

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("api_key", p.apiKey)
	params.Set("departure_id", query.Origin)
	params.Set("arrival_id", query.Destination)
	params.Set("outbound_date", query.DepartureDate)
	params.Set("travel_class", travelClassParam(query.Cabin))
	params.Set("currency", query.Currency)
	params.Set("type", "2") // one-way; round trips go through departure tokens
	if query.ReturnDate != "" {
		params.Set("type", "1")
		params.Set("return_date", query.ReturnDate)
	}
	if query.Adults > 0 {
		params.Set("adults", fmt.Sprintf("%d", query.Adults))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidAPIKey),
		}
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Code:    constants.ErrCodeProviderError,
			Message: constants.GetErrorMessage(constants.ErrCodeProviderError),
			Details: fmt.Sprintf("status %d", resp.StatusCode),
		}
	}

	var payload gfResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
			Err:     err,
		}
	}

	// An explicit error field in an otherwise-200 body still means the
	// provider failed.
	if payload.Error != "" {
		return nil, &ProviderError{
			Code:    constants.ErrCodeProviderError,
			Message: constants.GetErrorMessage(constants.ErrCodeProviderError),
			Details: payload.Error,
		}
	}

	all := append(payload.BestFlights, payload.OtherFlights...)
	if len(all) == 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeEmptyResult,
			Message: constants.GetErrorMessage(constants.ErrCodeEmptyResult),
		}
	}

	records := make([]dtos.FlightRecord, 0, len(all))
	for _, f := range all {
		record, ok := p.normalizeFlight(f, query, payload.PriceInsights)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	stampShortestDuration(records)

	return records, nil
}

// normalizeFlight converts one raw itinerary into the canonical shape.
func (p *GoogleFlightsProvider) normalizeFlight(f gfFlight, query dtos.SearchQuery, insights *gfPriceInsights) (dtos.FlightRecord, bool) {
	if len(f.Flights) == 0 {
		return dtos.FlightRecord{}, false
	}
	first := f.Flights[0]
	last := f.Flights[len(f.Flights)-1]

	legroom := common.ParseLegroomInches(first.Legroom)
	facilities := parseExtensions(first.Extensions, legroom)

	segments := make([]dtos.FlightSegment, 0, len(f.Flights))
	for _, seg := range f.Flights {
		segments = append(segments, dtos.FlightSegment{
			Airline:          seg.Airline,
			FlightNumber:     seg.FlightNumber,
			DepartureAirport: seg.DepartureAirport.ID,
			ArrivalAirport:   seg.ArrivalAirport.ID,
			DepartureTime:    seg.DepartureAirport.Time,
			ArrivalTime:      seg.ArrivalAirport.Time,
			Aircraft:         seg.Airplane,
			DurationMinutes:  seg.Duration,
			LegroomInches:    common.ParseLegroomInches(seg.Legroom),
			OftenDelayed:     seg.OftenDelayed,
		})
	}

	layovers := make([]dtos.Layover, 0, len(f.Layovers))
	for _, lay := range f.Layovers {
		layovers = append(layovers, dtos.Layover{
			Airport:         lay.ID,
			City:            lay.Name,
			DurationMinutes: lay.Duration,
			Overnight:       lay.Overnight,
		})
	}

	record := dtos.FlightRecord{
		ID:              "serp-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8],
		Airline:         first.Airline,
		AirlineCode:     ExtractAirlineCode(first.FlightNumber),
		FlightNumber:    first.FlightNumber,
		Origin:          first.DepartureAirport.ID,
		Destination:     last.ArrivalAirport.ID,
		DepartureCity:   first.DepartureAirport.Name,
		ArrivalCity:     last.ArrivalAirport.Name,
		DepartureTime:   first.DepartureAirport.Time,
		ArrivalTime:     last.ArrivalAirport.Time,
		DurationMinutes: f.TotalDuration,
		Stops:           len(f.Layovers),
		Segments:        segments,
		Layovers:        layovers,
		Aircraft:        first.Airplane,
		Cabin:           query.Cabin,
		Price:           f.Price,
		Currency:        query.Currency,
		Facilities:      facilities,
		OftenDelayed:    first.OftenDelayed,
		BookingToken:    f.BookingToken,
		DepartureToken:  f.DepartureToken,
		CarbonGrams:     f.CarbonEmissions.ThisFlight,
		Source:          p.GetProviderType(),
	}

	if insights != nil {
		record.PriceLevel = insights.PriceLevel
		record.TypicalPriceRange = insights.TypicalPriceRange
	}

	return record, true
}

// parseExtensions reads amenity keywords out of the provider's
// free-text extension strings. A flight with extensions but no match
// explicitly lacks the amenity; a flight with no extensions at all is
// unknown across the board.
func parseExtensions(extensions []string, legroomInches int) dtos.FlightFacilities {
	facilities := dtos.FlightFacilities{}
	if legroomInches > 0 {
		facilities.SeatPitchInch = &legroomInches
	}
	if len(extensions) == 0 {
		return facilities
	}

	joined := strings.ToLower(strings.Join(extensions, " "))

	wifi := strings.Contains(joined, "wi-fi") || strings.Contains(joined, "wifi")
	power := strings.Contains(joined, "power") || strings.Contains(joined, "usb") || strings.Contains(joined, "outlet")
	ife := strings.Contains(joined, "video") || strings.Contains(joined, "tv") || strings.Contains(joined, "entertainment")
	meal := strings.Contains(joined, "meal") || strings.Contains(joined, "food") || strings.Contains(joined, "snack") ||
		strings.Contains(joined, "dinner") || strings.Contains(joined, "lunch") || strings.Contains(joined, "breakfast")

	facilities.HasWifi = &wifi
	facilities.HasPower = &power
	facilities.HasIFE = &ife
	facilities.MealIncluded = &meal
	return facilities
}

// ExtractAirlineCode pulls the 2-letter carrier code from a flight
// number like "BA 301". Unknown formats yield "XX".
func ExtractAirlineCode(flightNumber string) string {
	parts := strings.Fields(flightNumber)
	if len(parts) == 0 {
		return "XX"
	}
	var letters []rune
	for _, r := range parts[0] {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			letters = append(letters, r)
		}
		if len(letters) == 2 {
			break
		}
	}
	if len(letters) == 0 {
		return "XX"
	}
	return strings.ToUpper(string(letters))
}

// stampShortestDuration records the minimum itinerary duration of the
// result set on every record.
func stampShortestDuration(records []dtos.FlightRecord) {
	shortest := 0
	for _, r := range records {
		if r.DurationMinutes > 0 && (shortest == 0 || r.DurationMinutes < shortest) {
			shortest = r.DurationMinutes
		}
	}
	for i := range records {
		records[i].ShortestDurationMinutes = shortest
	}
}

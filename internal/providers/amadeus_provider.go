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
)

// AmadeusProvider is the secondary source, used when the primary
// provider fails. It speaks the Amadeus flight-offers API behind an
// OAuth2 client-credentials flow.
type AmadeusProvider struct {
	client       *http.Client
	cache        common.CacheInterface
	baseURL      string
	clientID     string
	clientSecret string
}

// NewAmadeusProvider creates the secondary flight provider
func NewAmadeusProvider(cache common.CacheInterface) *AmadeusProvider {
	baseURL := os.Getenv("AMADEUS_BASE_URL")
	if baseURL == "" {
		baseURL = "https://test.api.amadeus.com"
	}
	return &AmadeusProvider{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:        cache,
		baseURL:      baseURL,
		clientID:     os.Getenv("AMADEUS_API_KEY"),
		clientSecret: os.Getenv("AMADEUS_API_SECRET"),
	}
}

// GetProviderType returns the provider type identifier
func (p *AmadeusProvider) GetProviderType() string {
	return "amadeus"
}

type amadeusTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type amadeusSegment struct {
	Departure struct {
		IATACode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IATACode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
}

type amadeusOffer struct {
	ID          string `json:"id"`
	Itineraries []struct {
		Duration string           `json:"duration"`
		Segments []amadeusSegment `json:"segments"`
	} `json:"itineraries"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	NumberOfBookableSeats int `json:"numberOfBookableSeats"`
}

type amadeusSearchResponse struct {
	Data   []amadeusOffer `json:"data"`
	Errors []struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// accessToken returns a cached bearer token, refreshing it 60 seconds
// before expiry.
func (p *AmadeusProvider) accessToken(ctx context.Context) (string, error) {
	cacheKey := string(constants.CachePrefixOAuthToken) + "amadeus"
	if val, found := p.cache.Get(cacheKey); found {
		if token, ok := val.(string); ok && token != "" {
			return token, nil
		}
	}

	if p.clientID == "" || p.clientSecret == "" {
		return "", &ProviderError{
			Code:    constants.ErrCodeInvalidAPIKey,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidAPIKey),
		}
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)

	req, err := http.NewRequestWithContext(ctx, "POST",
		p.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{
			Code:    constants.ErrCodeAuthenticationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeAuthenticationFailed),
			Details: fmt.Sprintf("status %d", resp.StatusCode),
		}
	}

	var tokenResp amadeusTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
			Err:     err,
		}
	}

	ttl := time.Duration(tokenResp.ExpiresIn-60) * time.Second
	if ttl > 0 {
		p.cache.Set(cacheKey, tokenResp.AccessToken, ttl)
	}
	return tokenResp.AccessToken, nil
}

func amadeusTravelClass(cabin string) string {
	switch strings.ToLower(cabin) {
	case "business":
		return "BUSINESS"
	case "first":
		return "FIRST"
	case "premium", "premium_economy":
		return "PREMIUM_ECONOMY"
	default:
		return "ECONOMY"
	}
}

// SearchFlights queries the flight-offers endpoint and normalizes the
// typed offer payload.
func (p *AmadeusProvider) SearchFlights(ctx context.Context, query dtos.SearchQuery) ([]dtos.FlightRecord, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	params.Set("travelClass", amadeusTravelClass(query.Cabin))
	params.Set("currencyCode", query.Currency)
	params.Set("max", "50")
	adults := query.Adults
	if adults <= 0 {
		adults = 1
	}
	params.Set("adults", fmt.Sprintf("%d", adults))
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}

	req, err := http.NewRequestWithContext(ctx, "GET",
		p.baseURL+"/v2/shopping/flight-offers?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token may have been revoked server-side; drop it so the next
		// attempt re-authenticates.
		p.cache.Delete(string(constants.CachePrefixOAuthToken) + "amadeus")
		return nil, &ProviderError{
			Code:    constants.ErrCodeAuthenticationFailed,
			Message: constants.GetErrorMessage(constants.ErrCodeAuthenticationFailed),
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

	var payload amadeusSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
			Err:     err,
		}
	}

	if len(payload.Errors) > 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeProviderError,
			Message: constants.GetErrorMessage(constants.ErrCodeProviderError),
			Details: payload.Errors[0].Detail,
		}
	}
	if len(payload.Data) == 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeEmptyResult,
			Message: constants.GetErrorMessage(constants.ErrCodeEmptyResult),
		}
	}

	records := make([]dtos.FlightRecord, 0, len(payload.Data))
	for _, offer := range payload.Data {
		record, ok := p.normalizeOffer(offer, query)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	stampShortestDuration(records)

	return records, nil
}

// normalizeOffer converts one typed offer into the canonical shape.
// Amadeus carries no amenity detail, so premium cabins assume power
// and entertainment while economy stays unknown.
func (p *AmadeusProvider) normalizeOffer(offer amadeusOffer, query dtos.SearchQuery) (dtos.FlightRecord, bool) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return dtos.FlightRecord{}, false
	}
	itinerary := offer.Itineraries[0]
	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	var price float64
	fmt.Sscanf(offer.Price.Total, "%f", &price)

	duration := segmentSpanMinutes(first.Departure.At, last.Arrival.At)

	facilities := dtos.FlightFacilities{}
	if IsPremiumCabin(query.Cabin) {
		premium := true
		facilities.HasPower = &premium
		facilities.HasIFE = &premium
	}

	segments := make([]dtos.FlightSegment, 0, len(itinerary.Segments))
	for _, seg := range itinerary.Segments {
		segments = append(segments, dtos.FlightSegment{
			Airline:          seg.CarrierCode,
			FlightNumber:     seg.CarrierCode + seg.Number,
			DepartureAirport: seg.Departure.IATACode,
			ArrivalAirport:   seg.Arrival.IATACode,
			DepartureTime:    seg.Departure.At,
			ArrivalTime:      seg.Arrival.At,
			Aircraft:         seg.Aircraft.Code,
			DurationMinutes:  segmentSpanMinutes(seg.Departure.At, seg.Arrival.At),
		})
	}

	currency := offer.Price.Currency
	if currency == "" {
		currency = query.Currency
	}

	var seats *int
	if offer.NumberOfBookableSeats > 0 {
		n := offer.NumberOfBookableSeats
		seats = &n
	}

	return dtos.FlightRecord{
		ID:              "amadeus-" + offer.ID,
		Airline:         first.CarrierCode,
		AirlineCode:     first.CarrierCode,
		FlightNumber:    first.CarrierCode + first.Number,
		Origin:          first.Departure.IATACode,
		Destination:     last.Arrival.IATACode,
		DepartureCity:   common.CityForAirport(first.Departure.IATACode),
		ArrivalCity:     common.CityForAirport(last.Arrival.IATACode),
		DepartureTime:   first.Departure.At,
		ArrivalTime:     last.Arrival.At,
		DurationMinutes: duration,
		Stops:           len(itinerary.Segments) - 1,
		Segments:        segments,
		Aircraft:        first.Aircraft.Code,
		Cabin:           query.Cabin,
		Price:           price,
		Currency:        currency,
		Facilities:      facilities,
		SeatsRemaining:  seats,
		Source:          p.GetProviderType(),
	}, true
}

// IsPremiumCabin reports whether a cabin string names a premium tier.
func IsPremiumCabin(cabin string) bool {
	c := strings.ToLower(cabin)
	return strings.Contains(c, "business") || strings.Contains(c, "first") || strings.Contains(c, "premium")
}

// segmentSpanMinutes computes the minutes between two RFC 3339-ish
// local timestamps. Returns 0 when either end fails to parse.
func segmentSpanMinutes(departAt, arriveAt string) int {
	const layout = "2006-01-02T15:04:05"
	dep, err1 := time.Parse(layout, strings.TrimSuffix(departAt, "Z"))
	arr, err2 := time.Parse(layout, strings.TrimSuffix(arriveAt, "Z"))
	if err1 != nil || err2 != nil {
		return 0
	}
	minutes := int(arr.Sub(dep).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

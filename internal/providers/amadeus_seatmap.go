package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"airease/backend/internal/constants"
	"airease/backend/internal/models/dtos"
)

// SeatMapDetail is the cabin-amenity subset of a seat-map response
// that feeds back into flight scoring.
type SeatMapDetail struct {
	Aircraft     string
	LegSpaceInch *int
	SeatTilt     string
	HasWifi      *bool
	HasPower     *bool
	HasIFE       *bool
	MealIncluded *bool
	ExtraLegroom bool
}

// seat-map wire types. The API returns full deck layouts; only the
// cabin amenities block matters for scoring.
type seatMapResponse struct {
	Data []struct {
		Aircraft struct {
			Code string `json:"code"`
		} `json:"aircraft"`
		Decks []struct {
			Seats []struct {
				CharacteristicsCodes []string `json:"characteristicsCodes"`
			} `json:"seats"`
		} `json:"decks"`
		AircraftCabinAmenities struct {
			Power struct {
				PowerType string `json:"powerType"`
			} `json:"power"`
			Seat struct {
				LegSpace  int    `json:"legSpace"`
				SpaceUnit string `json:"spaceUnit"`
				Tilt      string `json:"tilt"`
			} `json:"seat"`
			Wifi struct {
				WifiCoverage string `json:"wifiCoverage"`
			} `json:"wifi"`
			Entertainment []struct {
				EntertainmentType string `json:"entertainmentType"`
			} `json:"entertainment"`
			Food struct {
				FoodType string `json:"foodType"`
			} `json:"food"`
		} `json:"aircraftCabinAmenities"`
	} `json:"data"`
}

// FetchSeatMap resolves seat-map amenities for a flight. The seat-map
// endpoint needs a full offer object, so this re-searches offers
// restricted to the flight's carrier and posts the first match.
func (p *AmadeusProvider) FetchSeatMap(ctx context.Context, record dtos.FlightRecord) (*SeatMapDetail, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	offer, err := p.rawOfferForFlight(ctx, token, record)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{"data": []json.RawMessage{offer}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		p.baseURL+"/v1/shopping/seatmaps", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create seatmap request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-HTTP-Method-Override", "GET")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Code:    constants.ErrCodeProviderError,
			Message: constants.GetErrorMessage(constants.ErrCodeProviderError),
			Details: fmt.Sprintf("seatmap status %d", resp.StatusCode),
		}
	}

	var payload seatMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
			Err:     err,
		}
	}
	if len(payload.Data) == 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeEmptyResult,
			Message: constants.GetErrorMessage(constants.ErrCodeEmptyResult),
		}
	}

	return parseSeatMap(payload), nil
}

// rawOfferForFlight searches offers for the flight's route and carrier
// and returns the raw JSON of the best match, preferring the exact
// flight number.
func (p *AmadeusProvider) rawOfferForFlight(ctx context.Context, token string, record dtos.FlightRecord) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("originLocationCode", record.Origin)
	params.Set("destinationLocationCode", record.Destination)
	params.Set("departureDate", departureDateOf(record))
	params.Set("adults", "1")
	params.Set("travelClass", amadeusTravelClass(record.Cabin))
	params.Set("includedAirlineCodes", record.AirlineCode)
	params.Set("max", "10")

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

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Code:    constants.ErrCodeProviderError,
			Message: constants.GetErrorMessage(constants.ErrCodeProviderError),
			Details: fmt.Sprintf("offer search status %d", resp.StatusCode),
		}
	}

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidDataFormat),
			Err:     err,
		}
	}
	if len(payload.Data) == 0 {
		return nil, &ProviderError{
			Code:    constants.ErrCodeEmptyResult,
			Message: constants.GetErrorMessage(constants.ErrCodeEmptyResult),
		}
	}

	wantNumber := numericFlightNumber(record.FlightNumber)
	for _, raw := range payload.Data {
		var offer amadeusOffer
		if err := json.Unmarshal(raw, &offer); err != nil {
			continue
		}
		for _, itin := range offer.Itineraries {
			for _, seg := range itin.Segments {
				if seg.CarrierCode == record.AirlineCode && seg.Number == wantNumber {
					return raw, nil
				}
			}
		}
	}

	// Exact flight not offered; the first offer still covers the same
	// route and aircraft family.
	return payload.Data[0], nil
}

func parseSeatMap(payload seatMapResponse) *SeatMapDetail {
	sm := payload.Data[0]
	detail := &SeatMapDetail{
		Aircraft: sm.Aircraft.Code,
		SeatTilt: sm.AircraftCabinAmenities.Seat.Tilt,
	}

	amenities := sm.AircraftCabinAmenities

	if amenities.Seat.LegSpace > 0 {
		inches := amenities.Seat.LegSpace
		if strings.EqualFold(amenities.Seat.SpaceUnit, "CENTIMETERS") {
			inches = int(float64(inches)/2.54 + 0.5)
		}
		detail.LegSpaceInch = &inches
	}

	if amenities.Wifi.WifiCoverage != "" {
		wifi := amenities.Wifi.WifiCoverage != "NONE"
		detail.HasWifi = &wifi
	}
	if amenities.Power.PowerType != "" {
		power := amenities.Power.PowerType != "NONE"
		detail.HasPower = &power
	}
	if len(amenities.Entertainment) > 0 {
		ife := true
		detail.HasIFE = &ife
	}
	if amenities.Food.FoodType != "" {
		meal := amenities.Food.FoodType != "NONE"
		detail.MealIncluded = &meal
	}

	for _, deck := range sm.Decks {
		for _, seat := range deck.Seats {
			for _, code := range seat.CharacteristicsCodes {
				if code == "L" || code == "LS" {
					detail.ExtraLegroom = true
				}
			}
		}
	}

	return detail
}

// departureDateOf extracts YYYY-MM-DD from a record's departure time.
func departureDateOf(record dtos.FlightRecord) string {
	if len(record.DepartureTime) >= 10 {
		return record.DepartureTime[:10]
	}
	return record.DepartureTime
}

// numericFlightNumber strips the carrier prefix, leaving the digits.
func numericFlightNumber(flightNumber string) string {
	var b strings.Builder
	for _, r := range flightNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package dtos

// FlightSegment is one leg of an itinerary.
type FlightSegment struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	Aircraft         string `json:"aircraft,omitempty"`
	DurationMinutes  int    `json:"durationMinutes"`
	LegroomInches    int    `json:"legroomInches,omitempty"`
	OftenDelayed     bool   `json:"oftenDelayed,omitempty"`
}

// Layover describes a connection between two segments.
type Layover struct {
	Airport         string `json:"airport"`
	City            string `json:"city,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	Overnight       bool   `json:"overnight,omitempty"`
}

// FlightFacilities captures the onboard amenities known for a flight.
// Nil pointer means the provider said nothing either way.
type FlightFacilities struct {
	HasWifi       *bool `json:"hasWifi"`
	HasPower      *bool `json:"hasPower"`
	HasIFE        *bool `json:"hasIFE"`
	MealIncluded  *bool `json:"mealIncluded"`
	SeatPitchInch *int  `json:"seatPitchInches,omitempty"`
}

// FlightRecord is the provider-neutral shape every normalizer produces.
// Price of 0 means unknown; DurationMinutes of 0 means unknown.
type FlightRecord struct {
	ID              string           `json:"id"`
	Airline         string           `json:"airline"`
	AirlineCode     string           `json:"airlineCode"`
	FlightNumber    string           `json:"flightNumber"`
	Origin          string           `json:"origin"`
	Destination     string           `json:"destination"`
	DepartureCity   string           `json:"departureCity,omitempty"`
	ArrivalCity     string           `json:"arrivalCity,omitempty"`
	DepartureTime   string           `json:"departureTime"`
	ArrivalTime     string           `json:"arrivalTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Stops           int              `json:"stops"`
	Segments        []FlightSegment  `json:"segments,omitempty"`
	Layovers        []Layover        `json:"layovers,omitempty"`
	Aircraft        string           `json:"aircraft,omitempty"`
	Cabin           string           `json:"cabin"`
	Price           float64          `json:"price"`
	Currency        string           `json:"currency"`
	PriceLevel      string           `json:"priceLevel,omitempty"`
	Facilities      FlightFacilities `json:"facilities"`
	OftenDelayed    bool             `json:"oftenDelayed,omitempty"`
	BookingToken    string           `json:"bookingToken,omitempty"`
	DepartureToken  string           `json:"departureToken,omitempty"`
	CarbonGrams     int              `json:"carbonGrams,omitempty"`
	SeatsRemaining  *int             `json:"seatsRemaining,omitempty"`
	Source          string           `json:"source"`

	// ShortestDurationMinutes is the shortest itinerary duration seen in
	// the same result set. Filled by the normalizer second pass, used as
	// the efficiency baseline.
	ShortestDurationMinutes int `json:"-"`

	// TypicalPriceRange is [low, high] for the route when the provider
	// supplies price insights.
	TypicalPriceRange []float64 `json:"typicalPriceRange,omitempty"`
}

// HasTypicalRange reports whether the provider supplied a usable
// typical price range for the route.
func (f *FlightRecord) HasTypicalRange() bool {
	return len(f.TypicalPriceRange) == 2 && f.TypicalPriceRange[1] > f.TypicalPriceRange[0]
}

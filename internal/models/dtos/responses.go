package dtos

// SearchResponse is the payload of a successful flight search.
type SearchResponse struct {
	SearchID     string        `json:"searchId"`
	Query        SearchQuery   `json:"query"`
	Results      []ScoreResult `json:"results"`
	ResultCount  int           `json:"resultCount"`
	TotalFound   int           `json:"totalFound"`
	Truncated    bool          `json:"truncated"`
	Source       string        `json:"source"`
	CacheHit     bool          `json:"cacheHit"`
	PriceHistory []PricePoint  `json:"priceHistory,omitempty"`
}

// PricePoint is one day in the synthesized route price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// AirlineReviewsResponse returns a page of raw traveler reviews.
type AirlineReviewsResponse struct {
	Airline string             `json:"airline"`
	Summary *ServiceHighlights `json:"summary,omitempty"`
	Reviews []ReviewItem       `json:"reviews"`
}

// ReviewItem is one traveler review as served to clients.
type ReviewItem struct {
	Title       string `json:"title"`
	Review      string `json:"review"`
	CabinType   string `json:"cabinType,omitempty"`
	TravelType  string `json:"travelType,omitempty"`
	Route       string `json:"route,omitempty"`
	Recommended bool   `json:"recommended"`
}

// SeatMapResponse carries cabin layout details for one flight.
type SeatMapResponse struct {
	FlightID      string `json:"flightId"`
	Aircraft      string `json:"aircraft"`
	Cabin         string `json:"cabin"`
	SeatPitchInch int    `json:"seatPitchInches,omitempty"`
	SeatTilt      string `json:"seatTilt,omitempty"`
	ExtraLegroom  bool   `json:"extraLegroomAvailable"`
	Updated       bool   `json:"updated"`
}

package dtos

// SearchQuery carries the parsed parameters of one flight search.
type SearchQuery struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Cabin         string `json:"cabin"`
	Persona       string `json:"persona"`
	Adults        int    `json:"adults"`
	Currency      string `json:"currency"`
	Authenticated bool   `json:"-"`
}

// CacheKey builds the availability-cache key for this query. Persona is
// deliberately excluded: a cached result set can be rescored for any
// persona without refetching.
func (q SearchQuery) CacheKey() string {
	return q.Origin + "|" + q.Destination + "|" + q.DepartureDate + "|" + q.Cabin
}

// RescoreRequest asks for an already-fetched flight to be rescored
// under a different persona.
type RescoreRequest struct {
	Persona string `json:"persona"`
}

package dtos

// DimensionScores holds the seven per-dimension scores, each on the
// 1-10 scale after floors are applied.
type DimensionScores struct {
	Safety      float64 `json:"safety"`
	Reliability float64 `json:"reliability"`
	Comfort     float64 `json:"comfort"`
	Service     float64 `json:"service"`
	Value       float64 `json:"value"`
	Efficiency  float64 `json:"efficiency"`
	Amenities   float64 `json:"amenities"`
}

// DimensionDetail explains one dimension: where its inputs came from
// and the short human-readable notes behind the number.
type DimensionDetail struct {
	Score      float64  `json:"score"`
	DataSource string   `json:"dataSource"`
	Notes      []string `json:"notes,omitempty"`
}

// ServiceHighlights summarizes review sentiment for the airline.
type ServiceHighlights struct {
	ReviewCount      int      `json:"reviewCount"`
	RecommendPercent float64  `json:"recommendPercent"`
	Positives        []string `json:"positives,omitempty"`
	Negatives        []string `json:"negatives,omitempty"`
}

// Highlight is a single callout surfaced next to a scored flight.
type Highlight struct {
	Label      string `json:"label"`
	IsPositive bool   `json:"isPositive"`
}

// CabinDimensions holds the cabin-dependent dimension values for one
// cabin class. Comfort and service are the only dimensions that change
// with the cabin flown.
type CabinDimensions struct {
	Comfort float64 `json:"comfort"`
	Service float64 `json:"service"`
}

// ScoreExplanation breaks a score down dimension by dimension.
type ScoreExplanation struct {
	Dimensions        map[string]DimensionDetail `json:"dimensions"`
	CabinBreakdown    map[string]CabinDimensions `json:"cabinBreakdown,omitempty"`
	Highlights        []Highlight                `json:"highlights,omitempty"`
	ServiceHighlights *ServiceHighlights         `json:"serviceHighlights,omitempty"`
}

// ScoreResult is a flight with its persona-weighted score attached.
type ScoreResult struct {
	Flight                FlightRecord       `json:"flight"`
	OverallScore          float64            `json:"overallScore"`
	Dimensions            DimensionScores    `json:"dimensions"`
	Persona               string             `json:"persona"`
	PersonaLabel          string             `json:"personaLabel"`
	PersonaWeightsApplied map[string]float64 `json:"personaWeightsApplied"`
	Explanation           *ScoreExplanation  `json:"explanation,omitempty"`
}

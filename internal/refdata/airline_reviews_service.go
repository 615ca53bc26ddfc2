package refdata

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"airease/backend/internal/db/repositories"
	"airease/backend/internal/logging"
	"airease/backend/internal/models/dtos"

	"go.uber.org/zap"
)

// ServiceRatings is the aggregated review data for one airline + cabin
// pair, already converted from the 1-5 review scale to 0-10.
type ServiceRatings struct {
	AirlineName         string
	CabinType           string
	FoodRating          float64
	GroundServiceRating float64
	SeatComfortRating   float64
	ServiceRating       float64
	ReviewCount         int
	RecommendationRate  float64
}

// ServiceBreakdown explains a service score.
type ServiceBreakdown struct {
	DataSource         string
	ReviewCount        int
	RecommendationRate float64
	Highlights         []string
}

const serviceBaselineScore = 7.0

// airlineNameAliases maps localized carrier names to the English names
// used in the review corpus.
var airlineNameAliases = map[string]string{
	"中国国航": "Air China",
	"国航":   "Air China",
	"东方航空": "China Eastern",
	"东航":   "China Eastern",
	"南方航空": "China Southern",
	"南航":   "China Southern",
	"海南航空": "Hainan Airlines",
	"海航":   "Hainan Airlines",
	"四川航空": "Sichuan Airlines",
	"川航":   "Sichuan Airlines",
	"深圳航空": "Shenzhen Airlines",
	"深航":   "Shenzhen Airlines",
	"厦门航空": "Xiamen Airlines",
	"厦航":   "Xiamen Airlines",
	"上海航空": "Shanghai Airlines",
}

// AirlineReviewsService aggregates traveler reviews into the service
// dimension. The airline|cabin aggregate table is loaded once;
// individual reviews are fetched on demand per flight.
type AirlineReviewsService struct {
	repo *repositories.AirlineReviewsRepository

	loadOnce sync.Once
	mu       sync.RWMutex
	byKey    map[string]*ServiceRatings
}

func NewAirlineReviewsService(repo *repositories.AirlineReviewsRepository) *AirlineReviewsService {
	return &AirlineReviewsService{
		repo:  repo,
		byKey: make(map[string]*ServiceRatings),
	}
}

// scaleRating converts a 1-5 review average to the 0-10 scale.
func scaleRating(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return r * 2
}

// NormalizeCabinType folds cabin strings onto "economy" or "business".
func NormalizeCabinType(cabin string) string {
	c := strings.ToLower(cabin)
	if strings.Contains(c, "business") || strings.Contains(c, "first") || strings.Contains(c, "premium") {
		return "business"
	}
	return "economy"
}

// NormalizeAirlineName lower-cases a carrier name, translating
// localized names to their review-corpus equivalents first.
func NormalizeAirlineName(airline string) string {
	if airline == "" {
		return ""
	}
	if english, ok := airlineNameAliases[airline]; ok {
		return strings.ToLower(english)
	}
	return strings.ToLower(airline)
}

// Load builds the aggregate cache. A failed load leaves every airline
// at the baseline score.
func (s *AirlineReviewsService) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		if s.repo == nil {
			return
		}
		rows, err := s.repo.AggregatesAll(ctx)
		if err != nil {
			logging.Warn("airline reviews load failed, using baseline scores", zap.Error(err))
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			cabin := NormalizeCabinType(row.CabinType)
			key := strings.ToLower(row.AirlineName) + "|" + cabin
			s.byKey[key] = &ServiceRatings{
				AirlineName:         row.AirlineName,
				CabinType:           cabin,
				FoodRating:          scaleRating(row.AvgFood.Float64),
				GroundServiceRating: scaleRating(row.AvgGroundService.Float64),
				SeatComfortRating:   scaleRating(row.AvgSeatComfort.Float64),
				ServiceRating:       scaleRating(row.AvgService.Float64),
				ReviewCount:         row.ReviewCount,
				RecommendationRate:  row.RecommendPct.Float64,
			}
		}
		logging.Info("airline reviews cache loaded", zap.Int("entries", len(s.byKey)))
	})
}

// Ratings resolves an airline + cabin pair, falling back to a
// bidirectional substring match on the airline name within the same
// cabin when there is no exact hit.
func (s *AirlineReviewsService) Ratings(airlineName, cabin string) *ServiceRatings {
	normalizedAirline := NormalizeAirlineName(airlineName)
	normalizedCabin := NormalizeCabinType(cabin)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if ratings, ok := s.byKey[normalizedAirline+"|"+normalizedCabin]; ok {
		return ratings
	}

	for key, ratings := range s.byKey {
		parts := strings.SplitN(key, "|", 2)
		if len(parts) != 2 || parts[1] != normalizedCabin {
			continue
		}
		if strings.Contains(normalizedAirline, parts[0]) || strings.Contains(parts[0], normalizedAirline) {
			return ratings
		}
	}

	return nil
}

// Score computes the 0-10 service dimension for an airline + cabin.
// Sub-rating weights are food 25%, ground service 20%, seat comfort
// 25%, in-flight service 30%, re-normalized over whichever sub-ratings
// the corpus actually has. Scores never drop below the baseline.
func (s *AirlineReviewsService) Score(airlineName, cabin string) (float64, ServiceBreakdown) {
	ratings := s.Ratings(airlineName, cabin)
	if ratings == nil {
		return serviceBaselineScore, ServiceBreakdown{DataSource: "default"}
	}

	type weighted struct {
		value  float64
		weight float64
	}
	var present []weighted
	if ratings.FoodRating > 0 {
		present = append(present, weighted{ratings.FoodRating, 0.25})
	}
	if ratings.GroundServiceRating > 0 {
		present = append(present, weighted{ratings.GroundServiceRating, 0.20})
	}
	if ratings.SeatComfortRating > 0 {
		present = append(present, weighted{ratings.SeatComfortRating, 0.25})
	}
	if ratings.ServiceRating > 0 {
		present = append(present, weighted{ratings.ServiceRating, 0.30})
	}

	score := serviceBaselineScore
	if len(present) > 0 {
		totalWeight := 0.0
		for _, w := range present {
			totalWeight += w.weight
		}
		score = 0.0
		for _, w := range present {
			score += w.value * (w.weight / totalWeight)
		}
	}
	if score < serviceBaselineScore {
		score = serviceBaselineScore
	}

	breakdown := ServiceBreakdown{
		DataSource:         "database",
		ReviewCount:        ratings.ReviewCount,
		RecommendationRate: ratings.RecommendationRate,
		Highlights:         serviceHighlightLines(ratings),
	}

	return score, breakdown
}

// serviceHighlightLines picks the sub-ratings worth calling out: all
// ratings at 7.0 or above, or the single best one when nothing clears
// that bar.
func serviceHighlightLines(ratings *ServiceRatings) []string {
	type named struct {
		name  string
		value float64
	}
	all := []named{
		{"Food & Beverage", ratings.FoodRating},
		{"Ground Service", ratings.GroundServiceRating},
		{"Seat Comfort", ratings.SeatComfortRating},
		{"In-flight Service", ratings.ServiceRating},
	}

	var good []named
	for _, n := range all {
		if n.value >= 7.0 {
			good = append(good, n)
		}
	}

	if len(good) > 0 {
		sort.Slice(good, func(i, j int) bool { return good[i].value > good[j].value })
		lines := make([]string, 0, len(good))
		for _, n := range good {
			lines = append(lines, fmt.Sprintf("%s: %.1f/10", n.name, n.value))
		}
		return lines
	}

	var rated []named
	for _, n := range all {
		if n.value > 0 {
			rated = append(rated, n)
		}
	}
	if len(rated) == 0 {
		return nil
	}
	sort.Slice(rated, func(i, j int) bool { return rated[i].value > rated[j].value })
	return []string{"Good " + strings.ToLower(rated[0].name)}
}

// Highlights builds the review summary block served alongside a
// scored flight.
func (s *AirlineReviewsService) Highlights(airlineName, cabin string) *dtos.ServiceHighlights {
	ratings := s.Ratings(airlineName, cabin)
	if ratings == nil {
		return nil
	}

	lines := serviceHighlightLines(ratings)
	highlights := &dtos.ServiceHighlights{
		ReviewCount:      ratings.ReviewCount,
		RecommendPercent: ratings.RecommendationRate,
		Positives:        lines,
	}
	if ratings.RecommendationRate > 0 && ratings.RecommendationRate < 50 {
		highlights.Negatives = []string{fmt.Sprintf("Only %.0f%% of travelers recommend", ratings.RecommendationRate)}
	}
	return highlights
}

// UserReviews fetches individual reviews on demand for one airline +
// cabin. Called when a traveler opens a specific flight, never during
// search scoring.
func (s *AirlineReviewsService) UserReviews(ctx context.Context, airlineName, cabin string, limit int) ([]dtos.ReviewItem, error) {
	if s.repo == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	cabinFilter := "Economy"
	if NormalizeCabinType(cabin) == "business" {
		cabinFilter = "Business"
	}

	rows, err := s.repo.BestByAirline(ctx, airlineName, cabinFilter, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.ReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dtos.ReviewItem{
			Title:       row.Title,
			Review:      row.Review,
			CabinType:   row.CabinType,
			TravelType:  row.TravelType,
			Route:       row.Route,
			Recommended: row.Recommended == "yes",
		})
	}
	return items, nil
}

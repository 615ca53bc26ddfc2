package services

import (
	"math"
	"math/rand"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/constants"
	"airease/backend/internal/models/dtos"
)

// PriceHistoryService synthesizes a seven-day price walk for a route.
// No provider exposes historical fares, so the walk is generated once
// per route and cached so repeat requests see a stable series.
type PriceHistoryService struct {
	cache common.CacheInterface
	rng   *rand.Rand
}

func NewPriceHistoryService(cache common.CacheInterface) *PriceHistoryService {
	return &PriceHistoryService{
		cache: cache,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededPriceHistoryService pins the random source for tests.
func NewSeededPriceHistoryService(cache common.CacheInterface, seed int64) *PriceHistoryService {
	return &PriceHistoryService{
		cache: cache,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// History returns seven daily price points ending today, anchored on
// the current best price for the route.
func (s *PriceHistoryService) History(routeKey string, currentPrice float64) []dtos.PricePoint {
	cacheKey := string(constants.CachePrefixPriceHistory) + routeKey

	if s.cache != nil {
		var points []dtos.PricePoint
		if s.cache.GetJSON(cacheKey, &points) && len(points) > 0 {
			return points
		}
	}

	points := s.synthesize(currentPrice)

	if s.cache != nil {
		s.cache.Set(cacheKey, points, time.Duration(constants.AvailabilityCacheTTLSeconds)*time.Second)
	}

	return points
}

// synthesize walks backwards from today's price. Rising routes were
// cheaper a week ago, falling routes dearer; stable routes just
// wobble. The floor keeps outliers from dipping below 70% of today's
// fare.
func (s *PriceHistoryService) synthesize(currentPrice float64) []dtos.PricePoint {
	if currentPrice <= 0 {
		currentPrice = 500
	}

	trend := []string{"rising", "falling", "stable"}[s.rng.Intn(3)]
	floor := currentPrice * 0.7
	today := time.Now()

	points := make([]dtos.PricePoint, 0, 7)
	for i := 0; i < 7; i++ {
		daysAgo := 6 - i
		var price float64
		switch trend {
		case "rising":
			price = currentPrice - float64(daysAgo)*(15+s.rng.Float64()*10)
		case "falling":
			price = currentPrice + float64(daysAgo)*(15+s.rng.Float64()*10)
		default:
			price = currentPrice + (s.rng.Float64()*60 - 30)
		}
		if price < floor {
			price = floor
		}
		points = append(points, dtos.PricePoint{
			Date:  today.AddDate(0, 0, -daysAgo).Format("2006-01-02"),
			Price: math.Round(price),
		})
	}

	return points
}

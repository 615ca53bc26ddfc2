package api

import (
	"os"

	"airease/backend/internal/common"
	"airease/backend/internal/db"
	"airease/backend/internal/db/repositories"
	"airease/backend/internal/logging"
	"airease/backend/internal/metrics"
	"airease/backend/internal/providers"
	"airease/backend/internal/refdata"
	"airease/backend/internal/scoring"
	"airease/backend/internal/services"
)

type Repositories struct {
	AircraftComfort    *repositories.AircraftComfortRepository
	AirlineReliability *repositories.AirlineReliabilityRepository
	AirlineReviews     *repositories.AirlineReviewsRepository
	MetadataCache      *repositories.MetadataCacheRepository
}

type Services struct {
	Cache        common.CacheInterface
	Comfort      *refdata.AircraftComfortService
	Reliability  *refdata.AirlineReliabilityService
	Reviews      *refdata.AirlineReviewsService
	Scorer       *scoring.Scorer
	Store        *services.FlightStore
	Search       *services.SearchService
	SeatMap      *services.SeatMapEnrichmentService
	Metadata     *services.AircraftMetadataService
	PriceHistory *services.PriceHistoryService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// InitDependencies wires repositories, reference data, providers, and
// the search pipeline. Provider order is fixed: SerpAPI first, Amadeus
// second, the synthetic provider as the always-available floor.
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repo := &Repositories{
		AircraftComfort:    repositories.NewAircraftComfortRepository(db.PgDB),
		AirlineReliability: repositories.NewAirlineReliabilityRepository(db.PgDB),
		AirlineReviews:     repositories.NewAirlineReviewsRepository(db.DB),
		MetadataCache:      repositories.NewMetadataCacheRepository(db.PgDB),
	}

	var cacheSvc common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
			cacheSvc = common.NewCacheService(1800, 600)
		} else {
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = common.NewCacheService(1800, 600)
	}

	comfortSvc := refdata.NewAircraftComfortService(repo.AircraftComfort)
	reliabilitySvc := refdata.NewAirlineReliabilityService(repo.AirlineReliability)
	reviewsSvc := refdata.NewAirlineReviewsService(repo.AirlineReviews)

	scorer := scoring.NewScorer(comfortSvc, reliabilitySvc, reviewsSvc)
	store := services.NewFlightStore()

	amadeus := providers.NewAmadeusProvider(cacheSvc)
	chain := []providers.FlightProvider{
		providers.NewGoogleFlightsProvider(),
		amadeus,
		providers.NewMockProvider(),
	}

	searchSvc := services.NewSearchService(chain, scorer, store, cacheSvc, metricsReg)
	seatMapSvc := services.NewSeatMapEnrichmentService(amadeus, store, scorer, metricsReg)
	metadataSvc := services.NewAircraftMetadataService(repo.MetadataCache, metricsReg)
	priceHistorySvc := services.NewPriceHistoryService(cacheSvc)

	return &Dependencies{
		Repo: repo,
		Services: &Services{
			Cache:        cacheSvc,
			Comfort:      comfortSvc,
			Reliability:  reliabilitySvc,
			Reviews:      reviewsSvc,
			Scorer:       scorer,
			Store:        store,
			Search:       searchSvc,
			SeatMap:      seatMapSvc,
			Metadata:     metadataSvc,
			PriceHistory: priceHistorySvc,
		},
		Metrics: metricsReg,
	}, nil
}

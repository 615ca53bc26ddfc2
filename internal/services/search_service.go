package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/constants"
	"airease/backend/internal/logging"
	"airease/backend/internal/metrics"
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/providers"
	"airease/backend/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchService orchestrates provider selection, caching, scoring, and
// result shaping for one flight search.
type SearchService struct {
	providers []providers.FlightProvider
	scorer    *scoring.Scorer
	store     *FlightStore
	cache     common.CacheInterface
	metrics   *metrics.MetricsRegistry
}

func NewSearchService(
	providerChain []providers.FlightProvider,
	scorer *scoring.Scorer,
	store *FlightStore,
	cache common.CacheInterface,
	reg *metrics.MetricsRegistry,
) *SearchService {
	return &SearchService{
		providers: providerChain,
		scorer:    scorer,
		store:     store,
		cache:     cache,
		metrics:   reg,
	}
}

// fetchWithFallback walks the provider chain in priority order. Any
// error, including explicit error payloads, moves on to the next
// provider; only a fully exhausted chain fails the search.
func (s *SearchService) fetchWithFallback(ctx context.Context, query dtos.SearchQuery) ([]dtos.FlightRecord, string, error) {
	var lastErr error

	for _, provider := range s.providers {
		start := time.Now()
		records, err := provider.SearchFlights(ctx, query)
		if s.metrics != nil {
			s.metrics.ProviderCallDuration.WithLabelValues(provider.GetProviderType()).Observe(time.Since(start).Seconds())
		}

		if err == nil && len(records) > 0 {
			return records, provider.GetProviderType(), nil
		}

		code := constants.ErrCodeProviderError
		var provErr *providers.ProviderError
		if errors.As(err, &provErr) {
			code = provErr.Code
		}
		if s.metrics != nil {
			s.metrics.ProviderFallbacks.WithLabelValues(provider.GetProviderType(), code).Inc()
		}
		logging.Warn("provider failed, falling back",
			zap.String("provider", provider.GetProviderType()),
			zap.String("errorCode", code),
			zap.Error(err))
		lastErr = err
	}

	return nil, "", lastErr
}

// availability fetches normalized records for a query, serving from
// the 30-minute availability cache when possible. Persona is not part
// of the key: cached records are rescored per request.
func (s *SearchService) availability(ctx context.Context, query dtos.SearchQuery) ([]dtos.FlightRecord, string, bool, error) {
	cacheKey := string(constants.CachePrefixAvailability) + query.CacheKey()

	var cached cachedAvailability
	if s.cache.GetJSON(cacheKey, &cached) && len(cached.Records) > 0 {
		// The shortest-duration baseline is not part of the record's
		// JSON shape; restore it from the envelope.
		for i := range cached.Records {
			cached.Records[i].ShortestDurationMinutes = cached.ShortestMinutes
		}
		if s.metrics != nil {
			s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixAvailability)).Inc()
		}
		return cached.Records, cached.Source, true, nil
	}
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixAvailability)).Inc()
	}

	records, source, err := s.fetchWithFallback(ctx, query)
	if err != nil {
		return nil, "", false, err
	}

	shortest := 0
	if len(records) > 0 {
		shortest = records[0].ShortestDurationMinutes
	}
	s.cache.Set(cacheKey, cachedAvailability{Records: records, Source: source, ShortestMinutes: shortest},
		time.Duration(constants.AvailabilityCacheTTLSeconds)*time.Second)

	return records, source, false, nil
}

// cachedAvailability is the availability-cache value shape. It must
// survive a JSON round-trip, since the Redis backend serializes values.
type cachedAvailability struct {
	Records         []dtos.FlightRecord `json:"records"`
	Source          string              `json:"source"`
	ShortestMinutes int                 `json:"shortestMinutes"`
}

// Search runs the full pipeline for one query: fetch (or cache-hit),
// score every record under the query's persona, sort, and bound the
// result count for unauthenticated callers.
func (s *SearchService) Search(ctx context.Context, query dtos.SearchQuery) (*dtos.SearchResponse, error) {
	persona := scoring.ParsePersona(query.Persona)
	query.Persona = string(persona)

	records, source, cacheHit, err := s.availability(ctx, query)
	if err != nil {
		return nil, err
	}

	scoringStart := time.Now()
	results := make([]dtos.ScoreResult, 0, len(records))
	for _, record := range records {
		results = append(results, s.scorer.ScoreFlight(record, persona, scoring.SafetyProfile{}))
	}
	if s.metrics != nil {
		s.metrics.ScoringDuration.Observe(time.Since(scoringStart).Seconds())
		s.metrics.FlightsScoredTotal.Add(float64(len(results)))
		s.metrics.SearchesTotal.WithLabelValues(string(persona), source).Inc()
	}

	sortResults(results, persona)

	s.store.PutAll(results)

	totalFound := len(results)
	truncated := false
	if !query.Authenticated && totalFound > constants.MaxFreeResults {
		results = results[:constants.MaxFreeResults]
		truncated = true
	}

	return &dtos.SearchResponse{
		SearchID:    uuid.New().String(),
		Query:       query,
		Results:     results,
		ResultCount: len(results),
		TotalFound:  totalFound,
		Truncated:   truncated,
		Source:      source,
		CacheHit:    cacheHit,
	}, nil
}

// sortResults orders a result set for a persona. Students shop on
// price, everyone else on score.
func sortResults(results []dtos.ScoreResult, persona scoring.Persona) {
	if persona == scoring.PersonaStudent {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Flight.Price < results[j].Flight.Price
		})
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
}

// Rescore re-ranks a previously scored flight under a new persona
// without touching provider data.
func (s *SearchService) Rescore(flightID, personaID string) (*dtos.ScoreResult, error) {
	persona := scoring.ParsePersona(personaID)

	current, ok := s.store.Get(flightID)
	if !ok {
		return nil, ErrFlightNotFound
	}

	rescored := scoring.Rescore(current, persona)
	s.store.Put(rescored)

	if s.metrics != nil {
		s.metrics.RescoresTotal.WithLabelValues(string(persona)).Inc()
	}

	return &rescored, nil
}

// GetFlight returns a stored scored flight by ID.
func (s *SearchService) GetFlight(flightID string) (*dtos.ScoreResult, error) {
	result, ok := s.store.Get(flightID)
	if !ok {
		return nil, ErrFlightNotFound
	}
	return &result, nil
}

// ErrFlightNotFound is returned when a flight ID has no stored result,
// typically because the search results expired with the process.
var ErrFlightNotFound = errors.New("flight not found")

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/logging"
	"airease/backend/internal/middleware"
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/providers"
	"airease/backend/internal/services"
)

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Searches a route, scores every flight for the requested persona, and returns ranked results.
// @Tags         Flights
// @Produce      json
// @Param        origin       query  string true  "Origin airport code or city name"
// @Param        destination  query  string true  "Destination airport code or city name"
// @Param        date         query  string true  "Departure date (YYYY-MM-DD)"
// @Param        returnDate   query  string false "Return date (YYYY-MM-DD)"
// @Param        cabin        query  string false "Cabin class" default(economy)
// @Param        persona      query  string false "Traveler persona" default(default)
// @Success      200          {object} dtos.APIResponse
// @Failure      400,502      {object} dtos.APIResponse
// @Router       /api/v1/flights/search [get]
func SearchFlightsHandler(searchSvc *services.SearchService, historySvc *services.PriceHistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		origin := common.AirportCodeForCity(q.Get("origin"))
		destination := common.AirportCodeForCity(q.Get("destination"))
		if origin == "" || destination == "" || origin == destination {
			common.RespondError(w, initTime, nil, "Invalid origin or destination", http.StatusBadRequest)
			return
		}

		date := q.Get("date")
		if date == "" {
			date = q.Get("departureDate")
		}
		if _, err := common.ParseISODate(date); err != nil {
			common.RespondError(w, initTime, nil, "Invalid departure date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		cabin := q.Get("cabin")
		if cabin == "" {
			cabin = "economy"
		}
		currency := q.Get("currency")
		if currency == "" {
			currency = "USD"
		}

		adults := 1
		if a, err := strconv.Atoi(q.Get("adults")); err == nil && a > 0 {
			adults = a
		}

		query := dtos.SearchQuery{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: date,
			ReturnDate:    q.Get("returnDate"),
			Cabin:         cabin,
			Persona:       q.Get("persona"),
			Adults:        adults,
			Currency:      currency,
			Authenticated: middleware.IsAuthenticated(r.Context()),
		}

		resp, err := searchSvc.Search(r.Context(), query)
		if err != nil {
			status := http.StatusBadGateway
			var provErr *providers.ProviderError
			if errors.As(err, &provErr) {
				common.RespondError(w, initTime, provErr, provErr.Message, status)
				return
			}
			common.RespondError(w, initTime, err, "Flight search failed", status)
			return
		}

		if historySvc != nil && len(resp.Results) > 0 {
			resp.PriceHistory = historySvc.History(query.CacheKey(), cheapestPrice(resp.Results))
		}

		logging.WithSearch(resp.SearchID, origin, destination, resp.Query.Persona).Infow(
			"search completed",
			"results", resp.ResultCount,
			"source", resp.Source,
			"cache_hit", resp.CacheHit,
		)

		common.RespondSuccess(w, initTime, "Flights fetched", resp)
	}
}

func cheapestPrice(results []dtos.ScoreResult) float64 {
	cheapest := results[0].Flight.Price
	for _, r := range results[1:] {
		if r.Flight.Price < cheapest {
			cheapest = r.Flight.Price
		}
	}
	return cheapest
}

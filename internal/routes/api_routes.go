package routes

import (
	"airease/backend/internal/api"
	"airease/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth is optional: anonymous callers get a capped result list.
		v1.Use(middleware.OptionalAuthMiddleware)

		v1.Route("/flights", func(flights chi.Router) {
			flights.Get("/search", api.SearchFlightsHandler(deps.Services.Search, deps.Services.PriceHistory))
			flights.Get("/{flight_id}", api.FlightDetailHandler(deps.Services.Search))
			flights.Post("/{flight_id}/rescore", api.RescoreFlightHandler(deps.Services.Search))
			flights.Get("/{flight_id}/seatmap", api.FlightSeatMapHandler(deps.Services.SeatMap))
		})

		v1.Get("/airlines/{airline}/reviews", api.AirlineReviewsHandler(deps.Services.Reviews))
		v1.Get("/aircraft/{registration}", api.AircraftMetadataHandler(deps.Services.Metadata))
	})
}

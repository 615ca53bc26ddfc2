package api

import (
	"errors"
	"net/http"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// FlightSeatMapHandler godoc
// @Summary      Enrich a flight with seat-map detail
// @Description  Fetches cabin layout data for a stored flight and folds it back into the flight's facilities and score.
// @Tags         Flights
// @Produce      json
// @Param        flight_id  path  string  true  "Flight ID"
// @Success      200        {object} dtos.APIResponse
// @Failure      404        {object} dtos.APIResponse
// @Router       /api/v1/flights/{flight_id}/seatmap [get]
func FlightSeatMapHandler(seatMapSvc *services.SeatMapEnrichmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")
		resp, err := seatMapSvc.Enrich(r.Context(), flightID)
		if err != nil {
			if errors.Is(err, services.ErrFlightNotFound) {
				common.RespondError(w, initTime, err, "Flight not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Seat map fetch failed")
			return
		}

		common.RespondSuccess(w, initTime, "Seat map fetched", resp)
	}
}

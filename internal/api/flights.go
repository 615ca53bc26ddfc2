package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// FlightDetailHandler godoc
// @Summary      Get a scored flight
// @Description  Returns the stored scored result for a flight from a recent search.
// @Tags         Flights
// @Produce      json
// @Param        flight_id  path  string  true  "Flight ID"
// @Success      200        {object} dtos.APIResponse
// @Failure      404        {object} dtos.APIResponse
// @Router       /api/v1/flights/{flight_id} [get]
func FlightDetailHandler(searchSvc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")
		result, err := searchSvc.GetFlight(flightID)
		if err != nil {
			common.RespondError(w, initTime, err, "Flight not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Flight fetched", result)
	}
}

// RescoreFlightHandler godoc
// @Summary      Rescore a flight for a persona
// @Description  Re-ranks an already-fetched flight under a different persona without refetching provider data.
// @Tags         Flights
// @Accept       json
// @Produce      json
// @Param        flight_id  path  string               true  "Flight ID"
// @Param        body       body  dtos.RescoreRequest  true  "Target persona"
// @Success      200        {object} dtos.APIResponse
// @Failure      400,404    {object} dtos.APIResponse
// @Router       /api/v1/flights/{flight_id}/rescore [post]
func RescoreFlightHandler(searchSvc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")

		var req dtos.RescoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		result, err := searchSvc.Rescore(flightID, req.Persona)
		if err != nil {
			if errors.Is(err, services.ErrFlightNotFound) {
				common.RespondError(w, initTime, err, "Flight not found", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, "Rescore failed")
			return
		}

		common.RespondSuccess(w, initTime, "Flight rescored", result)
	}
}

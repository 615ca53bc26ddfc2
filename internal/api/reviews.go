package api

import (
	"net/http"
	"strconv"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/refdata"

	"github.com/go-chi/chi/v5"
)

// AirlineReviewsHandler godoc
// @Summary      Get traveler reviews for an airline
// @Description  Returns recent traveler reviews plus the aggregated service highlights, optionally filtered by cabin.
// @Tags         Airlines
// @Produce      json
// @Param        airline  path   string  true   "Airline name"
// @Param        cabin    query  string  false  "Cabin filter (economy or business)"
// @Param        limit    query  int     false  "Max reviews"  default(10)
// @Success      200      {object} dtos.APIResponse
// @Failure      400      {object} dtos.APIResponse
// @Router       /api/v1/airlines/{airline}/reviews [get]
func AirlineReviewsHandler(reviewsSvc *refdata.AirlineReviewsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airline := chi.URLParam(r, "airline")
		if airline == "" {
			common.RespondError(w, initTime, nil, "Airline name required", http.StatusBadRequest)
			return
		}

		cabin := r.URL.Query().Get("cabin")
		limit := 10
		if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
			limit = l
		}

		reviews, err := reviewsSvc.UserReviews(r.Context(), airline, cabin, limit)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch reviews")
			return
		}

		resp := dtos.AirlineReviewsResponse{
			Airline: airline,
			Summary: reviewsSvc.Highlights(airline, cabin),
			Reviews: reviews,
		}

		common.RespondSuccess(w, initTime, "Reviews fetched", resp)
	}
}

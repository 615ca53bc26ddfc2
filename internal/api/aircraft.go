package api

import (
	"net/http"
	"time"

	"airease/backend/internal/common"
	"airease/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// AircraftMetadataHandler godoc
// @Summary      Look up aircraft metadata
// @Description  Resolves engine, age, and image data for a tail number. Responses are cached for 90 days.
// @Tags         Aircraft
// @Produce      json
// @Param        registration  path  string  true  "Aircraft registration (tail number)"
// @Success      200           {object} dtos.APIResponse
// @Failure      404           {object} dtos.APIResponse
// @Router       /api/v1/aircraft/{registration} [get]
func AircraftMetadataHandler(metadataSvc *services.AircraftMetadataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		registration := chi.URLParam(r, "registration")
		meta, err := metadataSvc.Lookup(r.Context(), registration)
		if err != nil {
			common.RespondError(w, initTime, err, "Aircraft lookup failed")
			return
		}
		if meta == nil {
			common.RespondError(w, initTime, nil, "No data for this aircraft", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Aircraft fetched", meta)
	}
}

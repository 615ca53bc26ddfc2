package scoring

import (
	"fmt"

	"airease/backend/internal/common"
	"airease/backend/internal/models/dtos"
	"airease/backend/internal/refdata"
)

// ExplainInputs collects everything the explanation renderer needs
// beyond the scores themselves.
type ExplainInputs struct {
	Flight      dtos.FlightRecord
	Raw         dtos.DimensionScores
	Reliability refdata.ReliabilityBreakdown
	Comfort     refdata.ComfortBreakdown
	Service     refdata.ServiceBreakdown
	Safety      SafetyProfile
	SafetySrc   string
}

// BuildHighlights produces the short callout list shown on a result
// card. A delay warning always leads when present; positives follow
// in fixed order.
func BuildHighlights(in ExplainInputs) []dtos.Highlight {
	var highlights []dtos.Highlight

	if in.Flight.OftenDelayed {
		highlights = append(highlights, dtos.Highlight{Label: "Often delayed 30+ min", IsPositive: false})
	}

	if in.Flight.Stops == 0 {
		highlights = append(highlights, dtos.Highlight{Label: "Direct flight", IsPositive: true})
	}

	if in.Raw.Comfort >= 8.0 {
		highlights = append(highlights, dtos.Highlight{Label: "Comfortable seating", IsPositive: true})
	}

	if in.Flight.PriceLevel == "low" {
		highlights = append(highlights, dtos.Highlight{Label: "Low price", IsPositive: true})
	}

	// The provider's per-flight delay flag outranks airline-level OTP,
	// so no on-time badge for flagged flights.
	if in.Reliability.OTP >= 85 && !in.Flight.OftenDelayed {
		highlights = append(highlights, dtos.Highlight{
			Label:      fmt.Sprintf("%.0f%% on-time rate", in.Reliability.OTP),
			IsPositive: true,
		})
	}

	fac := in.Flight.Facilities
	if fac.HasWifi != nil && *fac.HasWifi {
		highlights = append(highlights, dtos.Highlight{Label: "WiFi available", IsPositive: true})
	}
	if fac.HasPower != nil && *fac.HasPower {
		highlights = append(highlights, dtos.Highlight{Label: "Power outlets", IsPositive: true})
	}
	if fac.HasIFE != nil && *fac.HasIFE {
		highlights = append(highlights, dtos.Highlight{Label: "In-flight entertainment", IsPositive: true})
	}

	return highlights
}

// BuildExplanation renders the full per-dimension breakdown attached
// to a scored flight.
func BuildExplanation(in ExplainInputs, serviceHighlights *dtos.ServiceHighlights) *dtos.ScoreExplanation {
	dims := make(map[string]dtos.DimensionDetail, 7)

	// Safety
	safetyNotes := []string{}
	if in.Safety.Empty() {
		safetyNotes = append(safetyNotes, "No recorded incidents")
	} else {
		if in.Safety.AirlineAccidents > 0 {
			safetyNotes = append(safetyNotes, fmt.Sprintf("%d airline accidents in the last 10 years", in.Safety.AirlineAccidents))
		}
		if in.Safety.ModelAccidents > 0 {
			safetyNotes = append(safetyNotes, fmt.Sprintf("%d recorded accidents for this aircraft model", in.Safety.ModelAccidents))
		}
		if in.Safety.PlaneIncidents > 0 {
			safetyNotes = append(safetyNotes, fmt.Sprintf("%d incidents for this airframe", in.Safety.PlaneIncidents))
		}
		if in.Safety.FatalAccidents > 0 {
			safetyNotes = append(safetyNotes, "Includes fatal accident history")
		}
	}
	dims["safety"] = dtos.DimensionDetail{
		Score:      in.Raw.Safety,
		DataSource: in.SafetySrc,
		Notes:      safetyNotes,
	}

	// Reliability
	relNote := "On-time data not available for this airline"
	if in.Reliability.DataSource == "database" {
		relNote = fmt.Sprintf("On-time performance: %.1f%%", in.Reliability.OTP)
	}
	if in.Reliability.OftenDelayed {
		relNote += " (this flight often delayed 30+ min)"
	}
	dims["reliability"] = dtos.DimensionDetail{
		Score:      in.Raw.Reliability,
		DataSource: in.Reliability.DataSource,
		Notes:      []string{relNote},
	}

	// Comfort
	comfortNotes := []string{}
	if in.Comfort.SeatPitch > 0 {
		comfortNotes = append(comfortNotes, fmt.Sprintf("Seat pitch %d in", in.Comfort.SeatPitch))
	}
	if in.Comfort.SeatWidth > 0 {
		comfortNotes = append(comfortNotes, fmt.Sprintf("Seat width %.1f in", in.Comfort.SeatWidth))
	}
	if in.Comfort.IFEScreen > 0 {
		comfortNotes = append(comfortNotes, fmt.Sprintf("Screen %d in", in.Comfort.IFEScreen))
	}
	dims["comfort"] = dtos.DimensionDetail{
		Score:      in.Raw.Comfort,
		DataSource: in.Comfort.DataSource,
		Notes:      comfortNotes,
	}

	// Service
	serviceNotes := in.Service.Highlights
	if in.Service.ReviewCount > 0 {
		serviceNotes = append([]string{fmt.Sprintf("Based on %d traveler reviews", in.Service.ReviewCount)}, serviceNotes...)
	}
	dims["service"] = dtos.DimensionDetail{
		Score:      in.Raw.Service,
		DataSource: in.Service.DataSource,
		Notes:      serviceNotes,
	}

	// Value
	valueNote := valueNoteFor(in.Flight)
	dims["value"] = dtos.DimensionDetail{
		Score:      in.Raw.Value,
		DataSource: valueSourceFor(in.Flight),
		Notes:      []string{valueNote},
	}

	// Efficiency
	effNote := fmt.Sprintf("%d stops", in.Flight.Stops)
	if in.Flight.Stops == 0 {
		effNote = "Nonstop"
	} else if in.Flight.Stops == 1 {
		effNote = "1 stop"
	}
	if in.Flight.DurationMinutes > 0 {
		effNote += ", " + common.FormatDuration(in.Flight.DurationMinutes)
	}
	dims["efficiency"] = dtos.DimensionDetail{
		Score:      in.Raw.Efficiency,
		DataSource: "computed",
		Notes:      []string{effNote},
	}

	// Amenities
	dims["amenities"] = dtos.DimensionDetail{
		Score:      in.Raw.Amenities,
		DataSource: amenitySourceFor(in.Flight),
	}

	return &dtos.ScoreExplanation{
		Dimensions:        dims,
		Highlights:        BuildHighlights(in),
		ServiceHighlights: serviceHighlights,
	}
}

func valueSourceFor(f dtos.FlightRecord) string {
	if f.PriceLevel != "" {
		return "price_level"
	}
	if f.HasTypicalRange() {
		return "typical_range"
	}
	return "price_bracket"
}

func valueNoteFor(f dtos.FlightRecord) string {
	switch f.PriceLevel {
	case "low":
		return "Priced below the typical range for this route"
	case "typical":
		return "Priced within the typical range for this route"
	case "high":
		return "Priced above the typical range for this route"
	}
	if f.HasTypicalRange() {
		return fmt.Sprintf("Typical range %.0f-%.0f %s", f.TypicalPriceRange[0], f.TypicalPriceRange[1], f.Currency)
	}
	if f.Price > 0 {
		return fmt.Sprintf("Priced at %.0f %s", f.Price, f.Currency)
	}
	return "Price data unavailable"
}

func amenitySourceFor(f dtos.FlightRecord) string {
	fac := f.Facilities
	if fac.HasWifi == nil && fac.HasPower == nil && fac.HasIFE == nil && fac.MealIncluded == nil {
		return "comfort_proxy"
	}
	return "provider"
}

package scoring

import "math"

// SafetyProfile aggregates incident history for one flight's airline,
// aircraft model, and specific airframe.
type SafetyProfile struct {
	AirlineAccidents       int
	ModelAccidents         int
	PlaneIncidents         int
	SeriousInjuryIncidents int
	FatalAccidents         int
	TotalFatalities        int
}

// Empty reports whether the profile carries no incident data at all.
func (p SafetyProfile) Empty() bool {
	return p.AirlineAccidents == 0 && p.ModelAccidents == 0 &&
		p.PlaneIncidents == 0 && p.SeriousInjuryIncidents == 0 &&
		p.FatalAccidents == 0 && p.TotalFatalities == 0
}

// SafetyScore starts from a perfect 10 and deducts per incident class,
// each class capped so no single class dominates. Fatal accidents take
// a flat penalty plus a per-fatality component. Floor 2.0.
func SafetyScore(p SafetyProfile) float64 {
	score := 10.0

	score -= math.Min(3.0, float64(p.AirlineAccidents)*0.3)
	score -= math.Min(2.0, float64(p.ModelAccidents)*0.15)
	score -= math.Min(3.0, float64(p.PlaneIncidents)*1.0)
	score -= math.Min(3.0, float64(p.SeriousInjuryIncidents)*1.5)

	if p.FatalAccidents > 0 {
		score -= 2.0
		score -= math.Min(3.0, float64(p.TotalFatalities)*0.5)
	}

	if score < 2.0 {
		return 2.0
	}
	return score
}

// ValueScore rates price attractiveness. Provider price-level signals
// win over the numeric typical range; absent both, a coarse absolute
// bracket heuristic applies.
func ValueScore(price float64, priceLevel string, typicalRange []float64) float64 {
	switch priceLevel {
	case "low":
		return 10.0
	case "typical":
		return 7.0
	case "high":
		return 4.0
	}

	if len(typicalRange) == 2 && typicalRange[1] > 0 {
		low, high := typicalRange[0], typicalRange[1]
		switch {
		case price < low:
			return 10.0
		case price <= high:
			position := 0.5
			if high > low {
				position = (price - low) / (high - low)
			}
			return math.Round((8.0-position*2)*10) / 10
		default:
			overage := (price - high) / high
			return math.Max(2.0, 5.0-overage*5)
		}
	}

	switch {
	case price <= 0:
		return 6.0
	case price < 300:
		return 9.0
	case price < 500:
		return 8.0
	case price < 800:
		return 7.0
	case price < 1200:
		return 6.0
	default:
		return 5.0
	}
}

// AmenitiesScore builds an additive score from presence flags on a
// 4.0 base, capped at 10. When nothing is known about any amenity the
// comfort score stands in as a proxy so the dimension does not punish
// sparse provider data.
func AmenitiesScore(hasWifi, hasPower, hasIFE, hasMeal, anyKnown bool, comfortProxy float64) float64 {
	if !anyKnown {
		return comfortProxy
	}

	score := 4.0
	if hasWifi {
		score += 2.5
	}
	if hasPower {
		score += 2.0
	}
	if hasIFE {
		score += 2.5
	}
	if hasMeal {
		score += 2.0
	}

	if score > 10.0 {
		return 10.0
	}
	return score
}

// absoluteDurationScore rates a duration with no route baseline:
// anything up to 3 hours is a 10, then one point off per 90 minutes,
// floor 1.0.
func absoluteDurationScore(durationMinutes int) float64 {
	if durationMinutes <= 180 {
		return 10.0
	}
	score := 10.0 - float64(durationMinutes-180)/90
	if score < 1.0 {
		return 1.0
	}
	return score
}

// EfficiencyScore rates routing. Duration dominates: one point off per
// 30 minutes over the shortest itinerary on the route (floor 1.0), or
// an absolute table when no baseline exists. Stops then scale the
// duration score so a connection penalizes proportionally.
func EfficiencyScore(stops, durationMinutes, shortestDuration int) float64 {
	var durationScore float64
	switch {
	case durationMinutes <= 0:
		durationScore = 7.0
	case shortestDuration > 0:
		durationScore = 10.0 - float64(durationMinutes-shortestDuration)/30
		if durationScore < 1.0 {
			durationScore = 1.0
		}
	default:
		durationScore = absoluteDurationScore(durationMinutes)
	}

	multiplier := 1.0
	switch {
	case stops == 1:
		multiplier = 0.8
	case stops >= 2:
		multiplier = 0.6
	}

	score := durationScore * multiplier
	if score < 1.0 {
		score = 1.0
	}
	return math.Round(score*10) / 10
}

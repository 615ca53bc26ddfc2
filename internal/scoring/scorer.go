package scoring

import (
	"math"

	"airease/backend/internal/models/dtos"
)

const (
	softBoostFactor = 1.10
	softFloor       = 5.0
	hardFloor       = 1.0
	hardCeiling     = 10.0
)

// hardScore clamps an objectively measured dimension to [1,10] with
// no boost.
func hardScore(raw float64) float64 {
	if raw < hardFloor {
		return hardFloor
	}
	if raw > hardCeiling {
		return hardCeiling
	}
	return raw
}

// softBaseline boosts a subjectively measured dimension by 10% and
// floors it at 5.0, reflecting measurement uncertainty.
func softBaseline(raw float64) float64 {
	adjusted := raw * softBoostFactor
	if adjusted < softFloor {
		adjusted = softFloor
	}
	if adjusted > hardCeiling {
		adjusted = hardCeiling
	}
	return adjusted
}

// Breakdown carries raw and adjusted dimension values plus the weight
// vector that produced an overall score.
type Breakdown struct {
	Raw      dtos.DimensionScores
	Adjusted dtos.DimensionScores
	Weights  Weights
	Persona  Persona
}

// Compose applies the two-tier adjustment policy to the raw dimensions
// and folds them into the persona-weighted overall score, rounded to
// one decimal. applyBoost disables the soft-baseline policy for
// like-for-like comparisons in diagnostics.
func Compose(raw dtos.DimensionScores, persona Persona, applyBoost bool) (float64, Breakdown) {
	weights := WeightsFor(persona)

	adjusted := dtos.DimensionScores{
		Safety:      hardScore(raw.Safety),
		Reliability: hardScore(raw.Reliability),
		Value:       hardScore(raw.Value),
		Efficiency:  hardScore(raw.Efficiency),
	}
	if applyBoost {
		adjusted.Comfort = softBaseline(raw.Comfort)
		adjusted.Service = softBaseline(raw.Service)
		adjusted.Amenities = softBaseline(raw.Amenities)
	} else {
		adjusted.Comfort = hardScore(raw.Comfort)
		adjusted.Service = hardScore(raw.Service)
		adjusted.Amenities = hardScore(raw.Amenities)
	}

	overall := adjusted.Safety*weights.Safety +
		adjusted.Reliability*weights.Reliability +
		adjusted.Comfort*weights.Comfort +
		adjusted.Service*weights.Service +
		adjusted.Value*weights.Value +
		adjusted.Amenities*weights.Amenities +
		adjusted.Efficiency*weights.Efficiency

	overall = math.Round(overall*10) / 10

	return overall, Breakdown{
		Raw:      raw,
		Adjusted: adjusted,
		Weights:  weights,
		Persona:  persona,
	}
}

// Rescore recomputes the overall score for an existing result under a
// new persona. Raw dimension values are reused untouched, so the
// output differs only via the weight vector.
func Rescore(result dtos.ScoreResult, persona Persona) dtos.ScoreResult {
	overall, breakdown := Compose(result.Dimensions, persona, true)

	result.OverallScore = overall
	result.Persona = string(persona)
	result.PersonaLabel = LabelFor(persona)
	result.PersonaWeightsApplied = breakdown.Weights.Map()
	return result
}

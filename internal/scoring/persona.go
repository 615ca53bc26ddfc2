package scoring

import "strings"

// Persona is a closed set of traveler archetypes. Unknown identifiers
// resolve to PersonaDefault.
type Persona string

const (
	PersonaStudent  Persona = "student"
	PersonaBusiness Persona = "business"
	PersonaFamily   Persona = "family"
	PersonaDefault  Persona = "default"
)

// Weights is one persona's dimension weight vector. Every vector sums
// to 1.0.
type Weights struct {
	Safety      float64
	Reliability float64
	Comfort     float64
	Service     float64
	Value       float64
	Amenities   float64
	Efficiency  float64
}

// Sum returns the total of all seven weights.
func (w Weights) Sum() float64 {
	return w.Safety + w.Reliability + w.Comfort + w.Service + w.Value + w.Amenities + w.Efficiency
}

// Map renders the vector as a dimension-keyed map for API payloads.
func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		"safety":      w.Safety,
		"reliability": w.Reliability,
		"comfort":     w.Comfort,
		"service":     w.Service,
		"value":       w.Value,
		"amenities":   w.Amenities,
		"efficiency":  w.Efficiency,
	}
}

var personaWeights = map[Persona]Weights{
	PersonaStudent: {
		Safety:      0.07,
		Reliability: 0.14,
		Comfort:     0.13,
		Service:     0.09,
		Value:       0.33, // price is the deciding factor
		Amenities:   0.09,
		Efficiency:  0.15,
	},
	PersonaBusiness: {
		Safety:      0.10,
		Reliability: 0.25, // cannot miss meetings
		Comfort:     0.17,
		Service:     0.17,
		Value:       0.08,
		Amenities:   0.10, // wifi for work
		Efficiency:  0.13,
	},
	PersonaFamily: {
		Safety:      0.12,
		Reliability: 0.17,
		Comfort:     0.22, // kids need space
		Service:     0.22,
		Value:       0.13,
		Amenities:   0.09,
		Efficiency:  0.05,
	},
	PersonaDefault: {
		Safety:      0.10,
		Reliability: 0.18,
		Comfort:     0.20,
		Service:     0.17,
		Value:       0.17,
		Amenities:   0.10,
		Efficiency:  0.08,
	},
}

var personaLabels = map[Persona]string{
	PersonaStudent:  "Budget Traveler",
	PersonaBusiness: "Business Priority",
	PersonaFamily:   "Family Comfort",
	PersonaDefault:  "Balanced",
}

// ParsePersona maps an arbitrary identifier onto the closed persona
// set, falling back to PersonaDefault.
func ParsePersona(s string) Persona {
	switch Persona(strings.ToLower(strings.TrimSpace(s))) {
	case PersonaStudent:
		return PersonaStudent
	case PersonaBusiness:
		return PersonaBusiness
	case PersonaFamily:
		return PersonaFamily
	default:
		return PersonaDefault
	}
}

// WeightsFor returns the weight vector for a persona.
func WeightsFor(p Persona) Weights {
	if w, ok := personaWeights[p]; ok {
		return w
	}
	return personaWeights[PersonaDefault]
}

// LabelFor returns the display label for a persona.
func LabelFor(p Persona) string {
	if label, ok := personaLabels[p]; ok {
		return label
	}
	return personaLabels[PersonaDefault]
}

// Package domain defines the core interfaces and types for Harmony.
package domain

// Dimension is one of the eight axes of holistic wellness.
type Dimension string

const (
	DimensionFinancial     Dimension = "financial"
	DimensionPhysical      Dimension = "physical"
	DimensionEmotional     Dimension = "emotional"
	DimensionSocial        Dimension = "social"
	DimensionIntellectual  Dimension = "intellectual"
	DimensionOccupational  Dimension = "occupational"
	DimensionEnvironmental Dimension = "environmental"
	DimensionSpiritual     Dimension = "spiritual"
)

// Dimensions returns the eight wellness dimensions in canonical order.
// Insight lists and tie-breaking follow this order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionFinancial,
		DimensionPhysical,
		DimensionEmotional,
		DimensionSocial,
		DimensionIntellectual,
		DimensionOccupational,
		DimensionEnvironmental,
		DimensionSpiritual,
	}
}

// Label returns the display name for a dimension.
func (d Dimension) Label() string {
	switch d {
	case DimensionFinancial:
		return "Financial"
	case DimensionPhysical:
		return "Physical"
	case DimensionEmotional:
		return "Emotional"
	case DimensionSocial:
		return "Social"
	case DimensionIntellectual:
		return "Intellectual"
	case DimensionOccupational:
		return "Occupational"
	case DimensionEnvironmental:
		return "Environmental"
	case DimensionSpiritual:
		return "Spiritual"
	default:
		return string(d)
	}
}

// WellnessScore maps each of the eight dimensions to a value in [0,100].
// All eight keys must be present for downstream computation to be valid;
// the engines trust the contract and the API boundary enforces it.
type WellnessScore map[Dimension]float64

// Complete reports whether all eight dimensions are present with values
// in [0,100].
func (s WellnessScore) Complete() bool {
	if len(s) != len(Dimensions()) {
		return false
	}
	for _, d := range Dimensions() {
		v, ok := s[d]
		if !ok || v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// Energy is the categorical band for a dimension score.
type Energy string

const (
	EnergyLow      Energy = "low"
	EnergyModerate Energy = "moderate"
	EnergyHigh     Energy = "high"
	EnergyThriving Energy = "thriving"
)

// WellnessInsight is the per-dimension interpretation of a score.
type WellnessInsight struct {
	Dimension  string `json:"dimension"`
	Score      int    `json:"score"`
	Insight    string `json:"insight"`
	Suggestion string `json:"suggestion"`
	Energy     Energy `json:"energy"`
}

// WellnessProfile labels the overall pattern of a score set and lists the
// dimensions most in need of attention.
type WellnessProfile struct {
	Profile string      `json:"profile"`
	Focus   []Dimension `json:"focus"`
}

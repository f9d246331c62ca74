package archetype

import (
	"fmt"
	"math"
	"strings"

	"github.com/heru-ai/harmony/internal/domain"
)

// Classify maps a wellness pattern plus a wealth profile to an archetype.
// Rules are evaluated in a fixed order and the first match wins; when no
// rule fires the result falls back to the harmonious strategist with no
// reasoning attached.
func Classify(scores domain.WellnessScore, profile *domain.WealthProfile) domain.ArchetypeClassification {
	var total float64
	for _, v := range scores {
		total += v
	}
	avgWellness := 0.0
	if len(scores) > 0 {
		avgWellness = total / float64(len(scores))
	}

	highSpiritual := scores[domain.DimensionSpiritual] > 70
	highOccupational := scores[domain.DimensionOccupational] > 70
	highIntellectual := scores[domain.DimensionIntellectual] > 70
	highEnvironmental := scores[domain.DimensionEnvironmental] > 70
	highEmotional := scores[domain.DimensionEmotional] > 70
	longHorizon := profile.TimeHorizon == domain.HorizonLong || profile.TimeHorizon == domain.HorizonPerpetual
	hasLegacyGoal := profile.HasGoal("Legacy Building")
	highLegacyPriority := profile.Priorities.Legacy > 25

	id := domain.ArchetypeHarmoniousStrategist
	var reasoning []string

	switch {
	case (highSpiritual || highEmotional) && highEnvironmental && profile.ImpactFocus != "":
		id = domain.ArchetypeConsciousCreator
		reasoning = []string{
			"Strong spiritual and environmental wellness with impact focus",
			"Values-aligned investment preferences",
		}
	case highLegacyPriority && longHorizon && hasLegacyGoal:
		id = domain.ArchetypeLegacySovereign
		reasoning = []string{
			"Multi-generational time horizon with legacy prioritization",
			"Emphasis on structured wealth transmission",
		}
	case highOccupational && highIntellectual && profile.RiskAppetite > 65:
		id = domain.ArchetypeVisionaryBuilder
		reasoning = []string{
			"High occupational engagement with strong intellectual pursuits",
			"Risk-capable profile aligned with growth objectives",
		}
	case scores[domain.DimensionFinancial] > 75 && scores[domain.DimensionPhysical] > 70 &&
		profile.Priorities.Stability >= profile.Priorities.Growth:
		id = domain.ArchetypeHarmoniousStrategist
		reasoning = []string{
			"Balanced wellness profile across multiple dimensions",
			"Preference for stability and systematic optimization",
		}
	case profile.LiquidityNeeds > 50 || profile.RiskAppetite < 40 || profile.Priorities.Stability > 30:
		id = domain.ArchetypeGuardianOfStability
		reasoning = []string{
			"Risk-conscious approach with emphasis on security",
			"High priority on capital preservation and accessibility",
		}
	}

	// Confidence grows with wellness dispersion from the neutral midpoint;
	// the wealth profile does not contribute.
	confidence := math.Min(0.95, 0.6+math.Abs(avgWellness-50)/100*0.35)

	return domain.ArchetypeClassification{
		Archetype:  registry[id],
		Confidence: int(math.Round(confidence * 100)),
		Reasoning:  reasoning,
	}
}

// Insights formats the persona guidance derived from an archetype's static
// fields.
func Insights(a *domain.WealthArchetype) domain.ArchetypeInsights {
	return domain.ArchetypeInsights{
		Philosophy:      fmt.Sprintf("As %s, you embody %s.", a.Name, strings.Join(a.CoreTraits, ", ")),
		MoneyPsychology: a.MoneyEnergyPattern,
		StrategicPath:   fmt.Sprintf("Your optimal path involves: %s.", strings.Join(a.RecommendedActions[:2], ", ")),
		NextSteps:       a.RecommendedActions,
	}
}

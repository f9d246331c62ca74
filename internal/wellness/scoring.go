// Package wellness scores the eight dimensions of holistic wellness.
package wellness

import (
	"math"
	"sort"

	"github.com/heru-ai/harmony/internal/domain"
)

// CalculateOverallScore returns the arithmetic mean of all dimension
// values, rounded to the nearest integer. It divides by the number of keys
// actually present; callers must supply exactly eight.
func CalculateOverallScore(scores domain.WellnessScore) int {
	if len(scores) == 0 {
		return 0
	}
	var total float64
	for _, v := range scores {
		total += v
	}
	return int(math.Round(total / float64(len(scores))))
}

// EnergyFor maps a dimension score to its categorical band.
func EnergyFor(score float64) domain.Energy {
	switch {
	case score < 35:
		return domain.EnergyLow
	case score < 60:
		return domain.EnergyModerate
	case score < 85:
		return domain.EnergyHigh
	default:
		return domain.EnergyThriving
	}
}

// CalculateInsights returns one insight per dimension, in canonical
// dimension order, with narrative text looked up by (dimension, band).
func CalculateInsights(scores domain.WellnessScore) []domain.WellnessInsight {
	insights := make([]domain.WellnessInsight, 0, len(domain.Dimensions()))

	for _, dim := range domain.Dimensions() {
		score := scores[dim]
		energy := EnergyFor(score)
		narrative := insightTable[dim][energy]

		insights = append(insights, domain.WellnessInsight{
			Dimension:  dim.Label(),
			Score:      int(math.Round(score)),
			Insight:    narrative.insight,
			Suggestion: narrative.suggestion,
			Energy:     energy,
		})
	}

	return insights
}

// GetProfile ranks the dimensions descending by score, takes the top three
// as strengths and bottom two as focus areas, and labels the profile by
// which dimension pairs appear among the strengths. First matching rule
// wins; ties rank in canonical dimension order.
func GetProfile(scores domain.WellnessScore) domain.WellnessProfile {
	ranked := make([]domain.Dimension, 0, len(domain.Dimensions()))
	ranked = append(ranked, domain.Dimensions()...)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	strengths := ranked[:3]
	weaknesses := ranked[len(ranked)-2:]

	profile := "Balanced"
	switch {
	case hasAll(strengths, domain.DimensionSpiritual, domain.DimensionEmotional):
		profile = "The Conscious Creator"
	case hasAll(strengths, domain.DimensionFinancial, domain.DimensionIntellectual):
		profile = "The Visionary Builder"
	case hasAll(strengths, domain.DimensionPhysical, domain.DimensionEnvironmental):
		profile = "The Harmonious Strategist"
	}

	focus := make([]domain.Dimension, len(weaknesses))
	copy(focus, weaknesses)

	return domain.WellnessProfile{Profile: profile, Focus: focus}
}

func hasAll(dims []domain.Dimension, want ...domain.Dimension) bool {
	for _, w := range want {
		found := false
		for _, d := range dims {
			if d == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

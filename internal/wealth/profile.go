// Package wealth derives risk profiles, priority weightings, and narrative
// insights from a finalized wealth profile.
package wealth

import (
	"math"

	"github.com/heru-ai/harmony/internal/domain"
)

// horizonMultipliers scale the raw risk appetite by how much time the
// client has to recover from drawdowns.
var horizonMultipliers = map[domain.TimeHorizon]float64{
	domain.HorizonShort:     0.70,
	domain.HorizonMedium:    0.85,
	domain.HorizonLong:      1.0,
	domain.HorizonPerpetual: 1.15,
}

// allocationTemplates maps each risk band to its model allocation.
// Every template sums to 100.
var allocationTemplates = map[domain.RiskClassification]domain.Allocation{
	domain.RiskConservative: {Equities: 30, FixedIncome: 55, Alternatives: 10, Cash: 5},
	domain.RiskModerate:     {Equities: 40, FixedIncome: 45, Alternatives: 10, Cash: 5},
	domain.RiskBalanced:     {Equities: 55, FixedIncome: 30, Alternatives: 12, Cash: 3},
	domain.RiskGrowth:       {Equities: 70, FixedIncome: 15, Alternatives: 12, Cash: 3},
	domain.RiskAggressive:   {Equities: 85, FixedIncome: 5, Alternatives: 8, Cash: 2},
}

// CalculateRiskProfile derives the full risk profile from the wealth
// profile. The composite score is riskAppetite scaled by the horizon
// multiplier and dampened by liquidity needs, clamped to [0,100].
// Classification and tolerances use the unrounded score; only the
// reported Score is rounded.
func CalculateRiskProfile(profile *domain.WealthProfile) domain.RiskProfile {
	multiplier, ok := horizonMultipliers[profile.TimeHorizon]
	if !ok {
		multiplier = 1.0
	}

	score := profile.RiskAppetite * multiplier * (1 - profile.LiquidityNeeds/200)
	score = math.Min(100, math.Max(0, score))

	classification := classify(score)

	return domain.RiskProfile{
		Score:                 math.Round(score),
		Classification:        classification,
		VolatilityTolerance:   score,
		DrawdownTolerance:     math.Max(10, 50-score/2),
		RecommendedAllocation: allocationTemplates[classification],
	}
}

func classify(score float64) domain.RiskClassification {
	switch {
	case score < 20:
		return domain.RiskConservative
	case score < 40:
		return domain.RiskModerate
	case score < 60:
		return domain.RiskBalanced
	case score < 80:
		return domain.RiskGrowth
	default:
		return domain.RiskAggressive
	}
}

// PriorityWeighting is the normalized share of each priority, summing to
// 100 when any priority is nonzero.
type PriorityWeighting struct {
	Growth          float64 `json:"growth"`
	Stability       float64 `json:"stability"`
	Liquidity       float64 `json:"liquidity"`
	Legacy          float64 `json:"legacy"`
	TaxOptimization float64 `json:"taxOptimization"`
}

// CalculatePriorityWeighting normalizes the raw priority sub-scores to
// percentage shares. When every sub-score is zero the division yields NaN
// in each field; the API boundary rejects all-zero priorities so the NaN
// case never reaches serialization.
func CalculatePriorityWeighting(p domain.Priorities) PriorityWeighting {
	total := p.Sum()
	return PriorityWeighting{
		Growth:          p.Growth / total * 100,
		Stability:       p.Stability / total * 100,
		Liquidity:       p.Liquidity / total * 100,
		Legacy:          p.Legacy / total * 100,
		TaxOptimization: p.TaxOptimization / total * 100,
	}
}

// GenerateInsights returns the narrative observations that apply to the
// profile, in a fixed evaluation order.
func GenerateInsights(profile *domain.WealthProfile) []string {
	var insights []string

	if profile.TotalAssets > 5_000_000 {
		insights = append(insights, "Strong asset base positions you for sophisticated wealth structures and diversified strategies.")
	} else if profile.TotalAssets > 1_000_000 {
		insights = append(insights, "Solid financial foundation allows for strategic diversification and professional management.")
	}

	if profile.AnnualIncome/profile.TotalAssets > 0.1 {
		insights = append(insights, "Strong annual income relative to assets suggests capacity for significant wealth accumulation.")
	}

	if profile.TimeHorizon == domain.HorizonPerpetual {
		insights = append(insights, "Multi-generational wealth perspective opens opportunities for legacy-focused structures and patient capital strategies.")
	}

	if profile.RiskAppetite > 70 && profile.LiquidityNeeds < 30 {
		insights = append(insights, "Risk appetite and liquidity profile support allocation to higher-return alternatives and illiquid investments.")
	}

	return insights
}

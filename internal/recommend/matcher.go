// Package recommend scores catalog products against a client profile and
// derives tiered portfolio allocations.
package recommend

import (
	"math"
	"strings"

	"github.com/heru-ai/harmony/internal/domain"
)

// CalculateProductMatch scores one product against the profile, 0-100.
// Additive components: base 50, risk alignment up to 40, liquidity fit up
// to 15, horizon bonus up to 10, goal bonus 10, ESG bonus up to 15 for
// conscious investors. An underqualified investor (assets below the product
// minimum) keeps 70% of the additive total. wellness may be nil when only
// financial inputs are available.
func CalculateProductMatch(
	product *domain.InvestmentProduct,
	profile *domain.WealthProfile,
	risk *domain.RiskProfile,
	wellness domain.WellnessScore,
) float64 {
	score := 50.0

	riskDifference := math.Abs(product.RiskRating - risk.Score)
	score += math.Max(0, 40-riskDifference*0.5)

	liquidityPreference := 100 - profile.LiquidityNeeds
	liquidityDifference := math.Abs(product.LiquidityScore - liquidityPreference)
	score += math.Max(0, 15-liquidityDifference*0.15)

	score += horizonBonus(product.MinTimeHorizon, profile.TimeHorizon)

	desc := strings.ToLower(product.Description)
	for _, goal := range profile.InvestmentGoals {
		if strings.Contains(desc, strings.ToLower(goal)) {
			score += 10
			break
		}
	}

	if wellness != nil &&
		wellness[domain.DimensionSpiritual] > 65 &&
		wellness[domain.DimensionEnvironmental] > 60 &&
		product.ESGScore != nil {
		score += *product.ESGScore / 100 * 15
	}

	if profile.TotalAssets < product.MinInvestment {
		score *= 0.7
	}

	return math.Min(100, math.Max(0, score))
}

// horizonBonus rewards products whose minimum holding period fits the
// client's horizon. Longer client horizons tolerate shorter-dated products
// at reduced credit; perpetual products score only for perpetual clients.
func horizonBonus(product, client domain.TimeHorizon) float64 {
	switch product {
	case domain.HorizonShort:
		switch client {
		case domain.HorizonShort:
			return 10
		case domain.HorizonMedium:
			return 5
		}
		return 0
	case domain.HorizonMedium:
		if client == domain.HorizonMedium {
			return 10
		}
		switch client {
		case domain.HorizonShort, domain.HorizonLong, domain.HorizonPerpetual:
			return 5
		}
		return 0
	case domain.HorizonLong:
		switch client {
		case domain.HorizonLong:
			return 10
		case domain.HorizonPerpetual:
			return 8
		}
		return 5
	case domain.HorizonPerpetual:
		if client == domain.HorizonPerpetual {
			return 10
		}
		return 0
	}
	return 0
}

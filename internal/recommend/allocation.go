package recommend

import "github.com/heru-ai/harmony/internal/domain"

// Tier budget shares of the total allocation.
const (
	coreShare      = 0.7
	satelliteShare = 0.2
	altShare       = 0.1
)

// CalculateOptimalAllocation distributes the portfolio across recommended
// products: 70% to core, 20% to satellite, 10% to alternatives, split
// within each tier proportionally to match scores. An empty tier's budget
// is dropped, not redistributed, so the percentages can sum below 100.
func CalculateOptimalAllocation(recs []domain.ProductRecommendation, totalAmount float64) map[string]float64 {
	allocation := make(map[string]float64)

	tiers := map[domain.Priority][]domain.ProductRecommendation{}
	for _, r := range recs {
		tiers[r.Priority] = append(tiers[r.Priority], r)
	}

	distribute := func(products []domain.ProductRecommendation, amount float64) {
		var totalScore float64
		for _, p := range products {
			totalScore += p.MatchScore
		}
		for _, p := range products {
			allocation[p.Product.ID] = p.MatchScore / totalScore * (amount / totalAmount) * 100
		}
	}

	if core := tiers[domain.PriorityCore]; len(core) > 0 {
		distribute(core, totalAmount*coreShare)
	}
	if satellite := tiers[domain.PrioritySatellite]; len(satellite) > 0 {
		distribute(satellite, totalAmount*satelliteShare)
	}
	if alt := tiers[domain.PriorityAlternative]; len(alt) > 0 {
		distribute(alt, totalAmount*altShare)
	}

	return allocation
}

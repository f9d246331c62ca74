package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/heru-ai/harmony/internal/domain"
)

// DefaultLimit caps the recommendation list when the caller passes no
// explicit limit.
const DefaultLimit = 8

// matchThreshold is the minimum match score a product needs to appear in
// the recommendation list.
const matchThreshold = 40.0

// Engine scores an injected catalog. The catalog is owned by the caller;
// the engine never mutates it.
type Engine struct {
	catalog []domain.InvestmentProduct
}

// NewEngine returns an engine over the given catalog.
func NewEngine(catalog []domain.InvestmentProduct) *Engine {
	return &Engine{catalog: catalog}
}

// CatalogSize returns the number of products the engine scores.
func (e *Engine) CatalogSize() int {
	return len(e.catalog)
}

// GenerateRecommendations scores every catalog product, drops scores at or
// below the threshold, and returns the top matches sorted descending by
// match score. limit <= 0 means DefaultLimit. wellness may be nil.
func (e *Engine) GenerateRecommendations(
	profile *domain.WealthProfile,
	risk *domain.RiskProfile,
	wellness domain.WellnessScore,
	limit int,
) []domain.ProductRecommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	recs := make([]domain.ProductRecommendation, 0, len(e.catalog))
	for i := range e.catalog {
		product := &e.catalog[i]
		score := CalculateProductMatch(product, profile, risk, wellness)
		if score <= matchThreshold {
			continue
		}
		recs = append(recs, domain.ProductRecommendation{
			Product:    *product,
			MatchScore: score,
			Reasoning:  recommendationReasoning(product, profile, risk),
			Priority:   determinePriority(product, risk),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// recommendationReasoning builds the human-readable reasons for one
// recommendation, in a fixed order. A product matching no specific reason
// gets the generic diversification line.
func recommendationReasoning(
	product *domain.InvestmentProduct,
	profile *domain.WealthProfile,
	risk *domain.RiskProfile,
) []string {
	var reasons []string

	if math.Abs(product.RiskRating-risk.Score) < 15 {
		reasons = append(reasons, "Risk profile alignment")
	}

	if product.LiquidityScore >= 80 && profile.LiquidityNeeds > 30 {
		reasons = append(reasons, "High liquidity meets your accessibility needs")
	}

	if goalMatchesSuitability(profile.InvestmentGoals, product.SuitabilityFactors) {
		reasons = append(reasons, "Supports stated investment goals")
	}

	if product.MinTimeHorizon == profile.TimeHorizon {
		reasons = append(reasons, "Time horizon alignment")
	}

	if product.ExpectedReturn > 8 {
		reasons = append(reasons, "Strong expected returns")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Diversification benefit")
	}
	return reasons
}

func goalMatchesSuitability(goals, factors []string) bool {
	for _, g := range goals {
		lower := strings.ToLower(g)
		for _, f := range factors {
			if strings.Contains(strings.ToLower(f), lower) {
				return true
			}
		}
	}
	return false
}

// determinePriority assigns the portfolio tier. Equities and fixed income
// are always core; real estate is core only for higher-risk profiles;
// everything else is an alternative.
func determinePriority(product *domain.InvestmentProduct, risk *domain.RiskProfile) domain.Priority {
	switch product.Category {
	case "Equities", "Fixed Income":
		return domain.PriorityCore
	case "Real Estate":
		if risk.Score > 50 {
			return domain.PriorityCore
		}
		return domain.PrioritySatellite
	}
	return domain.PriorityAlternative
}

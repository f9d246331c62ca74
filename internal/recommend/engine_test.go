package recommend

import (
	"testing"

	"github.com/heru-ai/harmony/internal/domain"
)

func aggressiveProfile() (*domain.WealthProfile, *domain.RiskProfile) {
	profile := &domain.WealthProfile{
		TotalAssets:    5_000_000,
		AnnualIncome:   500_000,
		TimeHorizon:    domain.HorizonPerpetual,
		RiskAppetite:   90,
		LiquidityNeeds: 10,
	}
	risk := &domain.RiskProfile{Score: 98, Classification: domain.RiskAggressive}
	return profile, risk
}

func TestGenerateRecommendationsOrderAndLimit(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	profile, risk := aggressiveProfile()

	recs := engine.GenerateRecommendations(profile, risk, nil, 0)

	if len(recs) == 0 {
		t.Fatal("expected recommendations for a qualified profile")
	}
	if len(recs) > DefaultLimit {
		t.Fatalf("expected at most %d recommendations, got %d", DefaultLimit, len(recs))
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].MatchScore > recs[i-1].MatchScore {
			t.Errorf("recommendations not sorted: %.2f before %.2f", recs[i-1].MatchScore, recs[i].MatchScore)
		}
	}
	for _, r := range recs {
		if r.MatchScore <= 40 {
			t.Errorf("product %s below threshold with score %.2f", r.Product.ID, r.MatchScore)
		}
		if len(r.Reasoning) == 0 {
			t.Errorf("product %s has no reasoning", r.Product.ID)
		}
	}
}

func TestGenerateRecommendationsExplicitLimit(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	profile, risk := aggressiveProfile()

	recs := engine.GenerateRecommendations(profile, risk, nil, 3)
	if len(recs) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(recs))
	}
}

func TestDeterminePriority(t *testing.T) {
	tests := []struct {
		category  string
		riskScore float64
		want      domain.Priority
	}{
		{"Equities", 30, domain.PriorityCore},
		{"Fixed Income", 90, domain.PriorityCore},
		{"Real Estate", 60, domain.PriorityCore},
		{"Real Estate", 40, domain.PrioritySatellite},
		{"Private Equity", 90, domain.PriorityAlternative},
		{"Insurance", 20, domain.PriorityAlternative},
		{"Alternatives", 55, domain.PriorityAlternative},
	}

	for _, tt := range tests {
		product := &domain.InvestmentProduct{Category: tt.category}
		risk := &domain.RiskProfile{Score: tt.riskScore}
		if got := determinePriority(product, risk); got != tt.want {
			t.Errorf("%s at risk %.0f: expected %s, got %s", tt.category, tt.riskScore, tt.want, got)
		}
	}
}

func TestRecommendationReasoning(t *testing.T) {
	profile := &domain.WealthProfile{
		TimeHorizon:     domain.HorizonMedium,
		LiquidityNeeds:  40,
		InvestmentGoals: []string{"Wealth Preservation"},
	}
	risk := &domain.RiskProfile{Score: 40}

	product := &domain.InvestmentProduct{
		RiskRating:         35,
		LiquidityScore:     92,
		ExpectedReturn:     6.5,
		MinTimeHorizon:     domain.HorizonMedium,
		SuitabilityFactors: []string{"Income-focused", "Wealth preservation"},
	}

	got := recommendationReasoning(product, profile, risk)
	want := []string{
		"Risk profile alignment",
		"High liquidity meets your accessibility needs",
		"Supports stated investment goals",
		"Time horizon alignment",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d reasons, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reason %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRecommendationReasoningFallback(t *testing.T) {
	profile := &domain.WealthProfile{TimeHorizon: domain.HorizonShort, LiquidityNeeds: 10}
	risk := &domain.RiskProfile{Score: 90}
	product := &domain.InvestmentProduct{
		RiskRating:     20,
		LiquidityScore: 50,
		ExpectedReturn: 4,
		MinTimeHorizon: domain.HorizonLong,
	}

	got := recommendationReasoning(product, profile, risk)
	if len(got) != 1 || got[0] != "Diversification benefit" {
		t.Errorf("expected diversification fallback, got %v", got)
	}
}

func TestGenerateRecommendationsESGSensitive(t *testing.T) {
	engine := NewEngine(DefaultCatalog())
	profile, risk := aggressiveProfile()

	conscious := domain.WellnessScore{
		domain.DimensionSpiritual:     80,
		domain.DimensionEnvironmental: 75,
	}

	plain := engine.GenerateRecommendations(profile, risk, nil, 12)
	boosted := engine.GenerateRecommendations(profile, risk, conscious, 12)

	score := func(recs []domain.ProductRecommendation, id string) float64 {
		for _, r := range recs {
			if r.Product.ID == id {
				return r.MatchScore
			}
		}
		return -1
	}

	p, b := score(plain, "impact-vc-fund"), score(boosted, "impact-vc-fund")
	if p < 0 || b < 0 {
		t.Fatal("expected impact-vc-fund in both recommendation sets")
	}
	if b <= p {
		t.Errorf("expected ESG boost for conscious investor: %.2f vs %.2f", b, p)
	}
}

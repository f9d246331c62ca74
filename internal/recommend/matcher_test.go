package recommend

import (
	"math"
	"testing"

	"github.com/heru-ai/harmony/internal/domain"
)

func testProduct() *domain.InvestmentProduct {
	return &domain.InvestmentProduct{
		ID:             "test-fund",
		Name:           "Test Fund",
		Category:       "Equities",
		AssetClass:     "equities",
		Description:    "Diversified fund for capital growth",
		MinInvestment:  100_000,
		ExpectedReturn: 7,
		RiskRating:     50,
		LiquidityScore: 80,
		Volatility:     15,
		MinTimeHorizon: domain.HorizonMedium,
	}
}

func testWealthProfile() *domain.WealthProfile {
	return &domain.WealthProfile{
		TotalAssets:    2_000_000,
		AnnualIncome:   200_000,
		TimeHorizon:    domain.HorizonMedium,
		RiskAppetite:   55,
		LiquidityNeeds: 20,
	}
}

func testRiskProfile(score float64) *domain.RiskProfile {
	return &domain.RiskProfile{Score: score, Classification: domain.RiskBalanced}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateProductMatchComponents(t *testing.T) {
	product := testProduct()
	profile := testWealthProfile()
	risk := testRiskProfile(50)

	// base 50 + perfect risk 40 + liquidity (pref 80, diff 0) 15 +
	// horizon (medium/medium) 10 = 100, clamped at 100
	got := CalculateProductMatch(product, profile, risk, nil)
	if got != 100 {
		t.Errorf("expected perfect match 100, got %.2f", got)
	}
}

func TestCalculateProductMatchRiskPenalty(t *testing.T) {
	product := testProduct()
	profile := testWealthProfile()
	profile.LiquidityNeeds = 0 // pref 100, diff 20 -> liquidity 12
	risk := testRiskProfile(90) // diff 40 -> risk alignment 20

	// 50 + 20 + 12 + 10 = 92
	got := CalculateProductMatch(product, profile, risk, nil)
	if !almostEqual(got, 92) {
		t.Errorf("expected 92, got %.4f", got)
	}
}

func TestCalculateProductMatchGoalBonus(t *testing.T) {
	product := testProduct()
	profile := testWealthProfile()
	profile.LiquidityNeeds = 0
	risk := testRiskProfile(90)

	profile.InvestmentGoals = []string{"Capital Growth"}

	// Description contains "capital growth" case-insensitively: +10.
	got := CalculateProductMatch(product, profile, risk, nil)
	if !almostEqual(got, 100) {
		t.Errorf("expected goal bonus to cap at 100, got %.4f", got)
	}
}

func TestCalculateProductMatchESGBonus(t *testing.T) {
	product := testProduct()
	product.ESGScore = func() *float64 { v := 90.0; return &v }()
	profile := testWealthProfile()
	profile.TimeHorizon = domain.HorizonPerpetual
	risk := testRiskProfile(100) // keeps the additive total below the cap

	conscious := domain.WellnessScore{
		domain.DimensionSpiritual:     70,
		domain.DimensionEnvironmental: 65,
	}

	base := CalculateProductMatch(product, profile, risk, nil)
	boosted := CalculateProductMatch(product, profile, risk, conscious)
	if !almostEqual(boosted-base, 90.0/100*15) {
		t.Errorf("expected ESG bonus 13.5, got %.4f", boosted-base)
	}

	// No bonus when the product has no ESG score.
	product.ESGScore = nil
	plain := CalculateProductMatch(product, profile, risk, conscious)
	if !almostEqual(plain, base) {
		t.Errorf("expected no bonus without ESG score, got %.4f vs %.4f", plain, base)
	}
}

func TestCalculateProductMatchUnderqualified(t *testing.T) {
	product := testProduct()
	product.MinInvestment = 5_000_000
	profile := testWealthProfile()
	profile.LiquidityNeeds = 0
	risk := testRiskProfile(90)

	// Additive total 92, scaled by 0.7.
	got := CalculateProductMatch(product, profile, risk, nil)
	if !almostEqual(got, 92*0.7) {
		t.Errorf("expected 64.4, got %.4f", got)
	}
}

func TestHorizonBonusTable(t *testing.T) {
	tests := []struct {
		product domain.TimeHorizon
		client  domain.TimeHorizon
		want    float64
	}{
		{domain.HorizonShort, domain.HorizonShort, 10},
		{domain.HorizonShort, domain.HorizonMedium, 5},
		{domain.HorizonShort, domain.HorizonPerpetual, 0},
		{domain.HorizonMedium, domain.HorizonMedium, 10},
		{domain.HorizonMedium, domain.HorizonShort, 5},
		{domain.HorizonMedium, domain.HorizonPerpetual, 5},
		{domain.HorizonLong, domain.HorizonLong, 10},
		{domain.HorizonLong, domain.HorizonPerpetual, 8},
		{domain.HorizonLong, domain.HorizonShort, 5},
		{domain.HorizonPerpetual, domain.HorizonPerpetual, 10},
		{domain.HorizonPerpetual, domain.HorizonLong, 0},
	}

	for _, tt := range tests {
		if got := horizonBonus(tt.product, tt.client); got != tt.want {
			t.Errorf("horizonBonus(%s, %s): expected %.0f, got %.0f", tt.product, tt.client, tt.want, got)
		}
	}
}

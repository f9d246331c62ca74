package report

import (
	"strings"
	"testing"

	"github.com/heru-ai/harmony/internal/archetype"
	"github.com/heru-ai/harmony/internal/domain"
)

func fixtureInputs() (domain.WellnessScore, *domain.WealthProfile, *domain.RiskProfile, *domain.WealthArchetype) {
	scores := make(domain.WellnessScore, 8)
	for _, d := range domain.Dimensions() {
		scores[d] = 60
	}
	profile := &domain.WealthProfile{
		TotalAssets:    3_000_000,
		AnnualIncome:   400_000,
		TimeHorizon:    domain.HorizonLong,
		RiskAppetite:   60,
		LiquidityNeeds: 30,
	}
	risk := &domain.RiskProfile{Score: 51, Classification: domain.RiskBalanced}
	return scores, profile, risk, archetype.Lookup(domain.ArchetypeHarmoniousStrategist)
}

func fixtureRecs(ids ...string) []domain.ProductRecommendation {
	recs := make([]domain.ProductRecommendation, 0, len(ids))
	for i, id := range ids {
		recs = append(recs, domain.ProductRecommendation{
			Product:    domain.InvestmentProduct{ID: id},
			MatchScore: float64(90 - i*5),
			Priority:   domain.PriorityCore,
		})
	}
	return recs
}

func TestAssembleHeader(t *testing.T) {
	scores, profile, risk, arch := fixtureInputs()

	got := Assemble("tenant-a", scores, profile, risk, arch, fixtureRecs("a", "b"))

	if !strings.HasPrefix(got.ID, "heru-report-") {
		t.Errorf("unexpected report id %q", got.ID)
	}
	if got.TenantID != "tenant-a" {
		t.Errorf("expected tenant-a, got %q", got.TenantID)
	}
	if got.ClientProfile.ArchetypeName != "The Harmonious Strategist" {
		t.Errorf("unexpected archetype name %q", got.ClientProfile.ArchetypeName)
	}
	if got.ClientProfile.WellnessScore != 60 {
		t.Errorf("expected wellness score 60, got %d", got.ClientProfile.WellnessScore)
	}
	if got.ClientProfile.RiskScore != 51 {
		t.Errorf("expected risk score 51, got %.1f", got.ClientProfile.RiskScore)
	}
	if got.GeneratedAt.IsZero() {
		t.Error("generatedAt must be set")
	}
}

func TestExecutiveSummary(t *testing.T) {
	scores, profile, risk, arch := fixtureInputs()

	got := Assemble("t", scores, profile, risk, arch, nil)

	want := "Your Heru AI diagnostic reveals you as The Harmonious Strategist. " +
		"Your holistic wellness score of 60/100 and risk profile of 51 indicate " +
		"a unique wealth archetype combining Balanced perspective and Analytical mindset. " +
		"This report provides personalized recommendations to optimize your wealth " +
		"across all dimensions of wellbeing."
	if got.Sections.Executive != want {
		t.Errorf("unexpected executive summary:\n got: %s\nwant: %s", got.Sections.Executive, want)
	}
}

func TestWellnessSection(t *testing.T) {
	scores, profile, risk, arch := fixtureInputs()
	scores[domain.DimensionFinancial] = 72.5

	got := Assemble("t", scores, profile, risk, arch, nil).Sections.Wellness

	if len(got.Dimensions) != 8 {
		t.Fatalf("expected 8 dimensions, got %d", len(got.Dimensions))
	}
	first := got.Dimensions[0]
	if first.Name != "Financial" {
		t.Errorf("expected capitalized name, got %q", first.Name)
	}
	if first.Score != 72.5 {
		t.Errorf("expected raw score 72.5, got %.1f", first.Score)
	}
	if first.Insight != "Your financial wellness dimension scored 72.5/100." {
		t.Errorf("unexpected insight %q", first.Insight)
	}

	// The section label is a fixed placeholder regardless of scores.
	if got.Profile != "Balanced" {
		t.Errorf("expected fixed Balanced label, got %q", got.Profile)
	}
}

func TestWealthSection(t *testing.T) {
	scores, profile, risk, arch := fixtureInputs()

	got := Assemble("t", scores, profile, risk, arch, nil).Sections.Wealth

	if got.TotalAssets != 3_000_000 {
		t.Errorf("unexpected total assets %.0f", got.TotalAssets)
	}
	if got.RiskClassification != domain.RiskBalanced {
		t.Errorf("unexpected classification %s", got.RiskClassification)
	}
	if got.KeyMetrics["annualIncome"] != 400_000 ||
		got.KeyMetrics["liquidityNeeds"] != 30 ||
		got.KeyMetrics["riskScore"] != 51 {
		t.Errorf("unexpected key metrics %v", got.KeyMetrics)
	}
}

func TestRecommendationSection(t *testing.T) {
	scores, profile, risk, arch := fixtureInputs()
	recs := fixtureRecs("p1", "p2", "p3", "p4", "p5", "p6")

	got := Assemble("t", scores, profile, risk, arch, recs).Sections.Recommendations

	if len(got.TopProducts) != 5 {
		t.Errorf("expected top 5 products, got %d", len(got.TopProducts))
	}
	if len(got.SuggestedAllocation) != 6 {
		t.Errorf("allocation covers every recommendation, got %d entries", len(got.SuggestedAllocation))
	}

	// Rank decay: (100 - idx*5) / count.
	if got.SuggestedAllocation["p1"] != 100.0/6 {
		t.Errorf("unexpected first allocation %.4f", got.SuggestedAllocation["p1"])
	}
	if got.SuggestedAllocation["p6"] != 75.0/6 {
		t.Errorf("unexpected last allocation %.4f", got.SuggestedAllocation["p6"])
	}
}

func TestImplementationPlan(t *testing.T) {
	scores, profile, risk, arch := fixtureInputs()

	got := Assemble("t", scores, profile, risk, arch, nil).Sections.Implementation

	if len(got.Phases) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(got.Phases))
	}
	wantNames := []string{"Foundation", "Build", "Optimize", "Sustain"}
	for i, name := range wantNames {
		if got.Phases[i].Name != name {
			t.Errorf("phase %d: expected %s, got %s", i, name, got.Phases[i].Name)
		}
		if len(got.Phases[i].Objectives) != 3 {
			t.Errorf("phase %s: expected 3 objectives", name)
		}
	}
	if got.Phases[3].Duration != "Year 2+" {
		t.Errorf("unexpected final phase duration %q", got.Phases[3].Duration)
	}
	if len(got.NextSteps) != 4 {
		t.Errorf("expected 4 next steps, got %d", len(got.NextSteps))
	}
	if len(got.AdvisorRecommendations) != len(arch.RecommendedActions) {
		t.Errorf("advisor recommendations must mirror archetype actions")
	}
}

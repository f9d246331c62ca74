// Package report assembles the structured holistic report from the engine
// outputs. All values are copied in; nothing is re-derived downstream.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heru-ai/harmony/internal/domain"
	"github.com/heru-ai/harmony/internal/wellness"
)

// Assemble builds the full report document. The recommendation list is
// taken as scored and ordered by the caller; the suggested allocation is a
// simple rank-decay split over the whole list while TopProducts keeps only
// the leading five.
func Assemble(
	tenantID string,
	scores domain.WellnessScore,
	profile *domain.WealthProfile,
	risk *domain.RiskProfile,
	archetype *domain.WealthArchetype,
	recommendations []domain.ProductRecommendation,
) *domain.HolisticReport {
	overall := wellness.CalculateOverallScore(scores)

	return &domain.HolisticReport{
		ID:          "heru-report-" + uuid.NewString(),
		TenantID:    tenantID,
		GeneratedAt: time.Now().UTC(),
		ClientProfile: domain.ReportClient{
			ArchetypeName: archetype.Name,
			WellnessScore: overall,
			RiskScore:     risk.Score,
		},
		Sections: domain.ReportSections{
			Executive:       executiveSummary(archetype, overall, risk.Score),
			Wellness:        wellnessSection(scores, overall),
			Wealth:          wealthSection(profile, risk),
			Recommendations: recommendationSection(archetype, recommendations),
			Implementation:  implementationPlan(archetype),
		},
	}
}

func executiveSummary(archetype *domain.WealthArchetype, wellnessScore int, riskScore float64) string {
	return fmt.Sprintf(
		"Your Heru AI diagnostic reveals you as %s. Your holistic wellness score of %d/100 and risk profile of %s indicate a unique wealth archetype combining %s. This report provides personalized recommendations to optimize your wealth across all dimensions of wellbeing.",
		archetype.Name,
		wellnessScore,
		formatNumber(riskScore),
		strings.Join(archetype.CoreTraits[:2], " and "),
	)
}

func wellnessSection(scores domain.WellnessScore, overall int) domain.WellnessSection {
	dimensions := make([]domain.ReportDimension, 0, len(scores))
	for _, dim := range domain.Dimensions() {
		value, ok := scores[dim]
		if !ok {
			continue
		}
		key := string(dim)
		dimensions = append(dimensions, domain.ReportDimension{
			Name:    strings.ToUpper(key[:1]) + key[1:],
			Score:   value,
			Insight: fmt.Sprintf("Your %s wellness dimension scored %s/100.", key, formatNumber(value)),
		})
	}

	// The profile label is intentionally the fixed "Balanced" placeholder;
	// the personalized label lives on the assessment itself.
	return domain.WellnessSection{
		OverallScore: overall,
		Dimensions:   dimensions,
		Profile:      "Balanced",
	}
}

func wealthSection(profile *domain.WealthProfile, risk *domain.RiskProfile) domain.WealthSection {
	return domain.WealthSection{
		TotalAssets:        profile.TotalAssets,
		RiskClassification: risk.Classification,
		TimeHorizon:        profile.TimeHorizon,
		KeyMetrics: map[string]float64{
			"annualIncome":   profile.AnnualIncome,
			"liquidityNeeds": profile.LiquidityNeeds,
			"riskScore":      risk.Score,
		},
	}
}

func recommendationSection(archetype *domain.WealthArchetype, recs []domain.ProductRecommendation) domain.RecommendationSection {
	allocation := make(map[string]float64, len(recs))
	for idx, rec := range recs {
		allocation[rec.Product.ID] = float64(100-idx*5) / float64(len(recs))
	}

	top := recs
	if len(top) > 5 {
		top = top[:5]
	}

	return domain.RecommendationSection{
		Archetype:           archetype,
		TopProducts:         top,
		SuggestedAllocation: allocation,
	}
}

func implementationPlan(archetype *domain.WealthArchetype) domain.ImplementationSection {
	return domain.ImplementationSection{
		Phases: []domain.Phase{
			{
				Name:       "Foundation",
				Duration:   "Months 1-3",
				Objectives: []string{"Establish core holdings", "Implement trust structure", "Begin tax optimization"},
			},
			{
				Name:       "Build",
				Duration:   "Months 3-6",
				Objectives: []string{"Add diversification", "Integrate alternatives", "Review and adjust"},
			},
			{
				Name:       "Optimize",
				Duration:   "Months 6-12",
				Objectives: []string{"Fine-tune allocation", "Maximize tax efficiency", "Align with archetype"},
			},
			{
				Name:       "Sustain",
				Duration:   "Year 2+",
				Objectives: []string{"Ongoing governance", "Annual review", "Adapt to life changes"},
			},
		},
		NextSteps: []string{
			"Schedule consultation with Heru AI advisor",
			"Review product recommendations in detail",
			"Discuss trust and structural options",
			"Begin implementation of Phase 1",
		},
		AdvisorRecommendations: archetype.RecommendedActions,
	}
}

// formatNumber renders a score without trailing zeros, e.g. 51 not 51.00.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

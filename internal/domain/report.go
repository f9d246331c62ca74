package domain

import "time"

// HolisticReport is the structured document assembled from all engine
// outputs. Downstream consumers render it without re-deriving any value.
type HolisticReport struct {
	ID            string         `json:"id"`
	TenantID      string         `json:"tenantId"`
	GeneratedAt   time.Time      `json:"generatedAt"`
	ClientProfile ReportClient   `json:"clientProfile"`
	Sections      ReportSections `json:"sections"`
}

// ReportClient is the report header summary.
type ReportClient struct {
	ArchetypeName string  `json:"archetypeName"`
	WellnessScore int     `json:"wellnessScore"`
	RiskScore     float64 `json:"riskScore"`
}

// ReportSections groups the five report sections.
type ReportSections struct {
	Executive       string                `json:"executive"`
	Wellness        WellnessSection       `json:"wellness"`
	Wealth          WealthSection         `json:"wealth"`
	Recommendations RecommendationSection `json:"recommendations"`
	Implementation  ImplementationSection `json:"implementation"`
}

// WellnessSection summarizes the eight dimension scores.
type WellnessSection struct {
	OverallScore int               `json:"overallScore"`
	Dimensions   []ReportDimension `json:"dimensions"`
	Profile      string            `json:"profile"`
}

// ReportDimension is a single dimension line in the wellness section.
type ReportDimension struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Insight string  `json:"insight"`
}

// WealthSection summarizes the financial profile.
type WealthSection struct {
	TotalAssets        float64            `json:"totalAssets"`
	RiskClassification RiskClassification `json:"riskClassification"`
	TimeHorizon        TimeHorizon        `json:"timeHorizon"`
	KeyMetrics         map[string]float64 `json:"keyMetrics"`
}

// RecommendationSection carries the archetype and the leading products.
type RecommendationSection struct {
	Archetype           *WealthArchetype        `json:"archetype"`
	TopProducts         []ProductRecommendation `json:"topProducts"`
	SuggestedAllocation map[string]float64      `json:"suggestedAllocation"`
}

// ImplementationSection is the phased rollout plan.
type ImplementationSection struct {
	Phases                 []Phase  `json:"phases"`
	NextSteps              []string `json:"nextSteps"`
	AdvisorRecommendations []string `json:"advisorRecommendations"`
}

// Phase is one step of the implementation timeline.
type Phase struct {
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	Objectives []string `json:"objectives"`
}

package domain

import "time"

// WealthBreakdown splits existing wealth across the seven intake asset
// classes.
type WealthBreakdown struct {
	Equities      float64 `json:"equities"`
	FixedIncome   float64 `json:"fixedIncome"`
	RealEstate    float64 `json:"realEstate"`
	PrivateEquity float64 `json:"privateEquity"`
	Alternatives  float64 `json:"alternatives"`
	Cash          float64 `json:"cash"`
	Insurance     float64 `json:"insurance"`
}

// Total returns the sum of the breakdown components.
func (b WealthBreakdown) Total() float64 {
	return b.Equities + b.FixedIncome + b.RealEstate + b.PrivateEquity +
		b.Alternatives + b.Cash + b.Insurance
}

// ClientProfile is the personal-info layer supplied once by the intake
// form. Consumed by callers of the classifier, not by the engines.
type ClientProfile struct {
	Name           string          `json:"name"`
	Age            int             `json:"age"`
	Dependents     int             `json:"dependents"`
	ExistingWealth WealthBreakdown `json:"existingWealth"`
	TotalWealth    float64         `json:"totalWealth"`
}

// Assessment is the stored outcome of one full pipeline run.
type Assessment struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId"`
	ClientID string `json:"clientId"`

	WellnessScores WellnessScore `json:"wellnessScores"`
	WealthProfile  WealthProfile `json:"wealthProfile"`

	// Derived outputs
	OverallWellness int                     `json:"overallWellness"`
	WellnessProfile WellnessProfile         `json:"wellnessProfile"`
	RiskProfile     RiskProfile             `json:"riskProfile"`
	Classification  ArchetypeClassification `json:"classification"`
	Recommendations []ProductRecommendation `json:"recommendations"`
	Allocation      map[string]float64      `json:"allocation"`
	Exclusions      []ProductExclusion      `json:"exclusions,omitempty"`
	ReportID        string                  `json:"reportId"`

	CreatedAt time.Time          `json:"createdAt"`
	Metadata  AssessmentMetadata `json:"metadata"`
}

// AssessmentMetadata contains processing information.
type AssessmentMetadata struct {
	TraceID          string `json:"traceId"`
	ScoringMs        int64  `json:"scoringMs"`
	ClassifyMs       int64  `json:"classifyMs"`
	RecommendMs      int64  `json:"recommendMs"`
	TotalMs          int64  `json:"totalMs"`
	ProductsScored   int    `json:"productsScored"`
	ProductsExcluded int    `json:"productsExcluded"`
	CacheHit         bool   `json:"cacheHit"`
	EngineVersion    string `json:"engineVersion"`
}

// Standard topic names for the assessment pipeline.
const (
	TopicAssessmentSubmitted = "harmony.assessment.submitted"
	TopicAssessmentCompleted = "harmony.assessment.completed"
	TopicReportGenerated     = "harmony.report.generated"
)

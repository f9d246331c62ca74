package domain

// InvestmentProduct is a catalog entry. Reference data: the catalog is
// stored in the repository and injected into the recommendation service, so
// it can be swapped or extended without touching scoring logic.
type InvestmentProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	AssetClass  string `json:"assetClass"`
	Description string `json:"description"`

	MinInvestment  float64  `json:"minInvestment"`
	ExpectedReturn float64  `json:"expectedReturn"`
	RiskRating     float64  `json:"riskRating"`     // 0-100
	LiquidityScore float64  `json:"liquidityScore"` // 0-100, 100 = most liquid
	Volatility     float64  `json:"volatility"`     // standard deviation estimate
	ESGScore       *float64 `json:"esgScore,omitempty"`

	MinTimeHorizon     TimeHorizon `json:"minTimeHorizon"`
	Features           []string    `json:"features"`
	SuitabilityFactors []string    `json:"suitabilityFactors"`
}

// Priority is the portfolio tier a recommended product belongs to.
type Priority string

const (
	PriorityCore        Priority = "core"
	PrioritySatellite   Priority = "satellite"
	PriorityAlternative Priority = "alternative"
)

// ProductRecommendation is derived per product on every recommendation
// request; never persisted as reference data.
type ProductRecommendation struct {
	Product              InvestmentProduct `json:"product"`
	MatchScore           float64           `json:"matchScore"` // 0-100
	Reasoning            []string          `json:"reasoning"`
	AllocationPercentage float64           `json:"allocationPercentage,omitempty"`
	Priority             Priority          `json:"priority"`
}

// ProductExclusion records a product removed by a screening rule before
// match scoring.
type ProductExclusion struct {
	ProductID string `json:"productId"`
	RuleID    string `json:"ruleId"`
	Reason    string `json:"reason"`
}

// ScreenRule is a tenant-configurable CEL expression evaluated against
// product and profile fields. A rule returning true excludes the product
// from recommendation.
type ScreenRule struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenantId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`

	// CEL expression to evaluate
	Expression string `json:"expression"`

	// Reason recorded on exclusion
	Reason string `json:"reason"`

	// Whether rule is active
	Enabled bool `json:"enabled"`
}

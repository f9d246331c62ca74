package domain

// TimeHorizon is the investment time-horizon bucket.
type TimeHorizon string

const (
	HorizonShort     TimeHorizon = "short"     // 0-3 years
	HorizonMedium    TimeHorizon = "medium"    // 3-10 years
	HorizonLong      TimeHorizon = "long"      // 10-25 years
	HorizonPerpetual TimeHorizon = "perpetual" // 25+ years
)

// Valid reports whether h is a known horizon.
func (h TimeHorizon) Valid() bool {
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong, HorizonPerpetual:
		return true
	}
	return false
}

// InvestmentGoals is the fixed vocabulary of goal labels offered during
// profiling. Goal strings on a WealthProfile are drawn from this list.
var InvestmentGoals = []string{
	"Wealth Preservation",
	"Passive Income Generation",
	"Capital Growth",
	"Legacy Building",
	"Diversification",
	"Tax Optimization",
	"Impact Investing",
	"Entrepreneurial Ventures",
}

// Priorities holds the five weighted priority sub-scores, each in [0,100].
// They are not required to sum to 100; normalization is explicit via the
// wealth engine's priority weighting.
type Priorities struct {
	Growth          float64 `json:"growth"`
	Stability       float64 `json:"stability"`
	Liquidity       float64 `json:"liquidity"`
	Legacy          float64 `json:"legacy"`
	TaxOptimization float64 `json:"taxOptimization"`
}

// Sum returns the total of the five sub-scores.
func (p Priorities) Sum() float64 {
	return p.Growth + p.Stability + p.Liquidity + p.Legacy + p.TaxOptimization
}

// WealthProfile is the finalized financial profile produced by the
// profiling flow. Treated as immutable input by all engines.
type WealthProfile struct {
	TotalAssets     float64     `json:"totalAssets"`
	AnnualIncome    float64     `json:"annualIncome"`
	TimeHorizon     TimeHorizon `json:"timeHorizon"`
	RiskAppetite    float64     `json:"riskAppetite"`   // 0-100
	LiquidityNeeds  float64     `json:"liquidityNeeds"` // 0-100
	InvestmentGoals []string    `json:"investmentGoals"`
	Priorities      Priorities  `json:"priorities"`
	ImpactFocus     string      `json:"impactFocus,omitempty"`
}

// HasGoal reports whether the profile lists the given goal label.
func (p *WealthProfile) HasGoal(goal string) bool {
	for _, g := range p.InvestmentGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// RiskClassification is one of the five ordered risk bands.
type RiskClassification string

const (
	RiskConservative RiskClassification = "conservative"
	RiskModerate     RiskClassification = "moderate"
	RiskBalanced     RiskClassification = "balanced"
	RiskGrowth       RiskClassification = "growth"
	RiskAggressive   RiskClassification = "aggressive"
)

// Allocation is a four-way asset-class split in percentage points.
// A recommended allocation always sums to 100.
type Allocation struct {
	Equities     float64 `json:"equities"`
	FixedIncome  float64 `json:"fixedIncome"`
	Alternatives float64 `json:"alternatives"`
	Cash         float64 `json:"cash"`
}

// Sum returns the total of the four components.
func (a Allocation) Sum() float64 {
	return a.Equities + a.FixedIncome + a.Alternatives + a.Cash
}

// RiskProfile is fully derived from a WealthProfile; recomputed on demand,
// never cached or mutated.
type RiskProfile struct {
	Score                 float64            `json:"score"` // rounded, 0-100
	Classification        RiskClassification `json:"classification"`
	VolatilityTolerance   float64            `json:"volatilityTolerance"`
	DrawdownTolerance     float64            `json:"drawdownTolerance"`
	RecommendedAllocation Allocation         `json:"recommendedAllocation"`
}

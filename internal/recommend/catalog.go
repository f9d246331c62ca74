package recommend

import "github.com/heru-ai/harmony/internal/domain"

func esg(v float64) *float64 { return &v }

// DefaultCatalog returns the built-in product database. The repository
// seeds its products table from this list on first start; runtime lookups
// always go through the repository so tenants can extend the catalog.
func DefaultCatalog() []domain.InvestmentProduct {
	return []domain.InvestmentProduct{
		{
			ID:                 "hsi-fund",
			Name:               "HSI Equity Fund",
			Category:           "Equities",
			Subcategory:        "Regional Equity",
			AssetClass:         "equities",
			Description:        "Diversified Hong Kong equities tracking the Hang Seng Index",
			MinInvestment:      100_000,
			ExpectedReturn:     8.5,
			RiskRating:         55,
			LiquidityScore:     90,
			Volatility:         18,
			ESGScore:           esg(72),
			MinTimeHorizon:     domain.HorizonMedium,
			Features:           []string{"Tax-efficient", "Liquid", "Diversified"},
			SuitabilityFactors: []string{"Regional exposure", "Growth-oriented", "Balanced risk"},
		},
		{
			ID:                 "global-tech-fund",
			Name:               "Global Tech Growth Fund",
			Category:           "Equities",
			Subcategory:        "Sector Equity",
			AssetClass:         "equities",
			Description:        "Concentrated exposure to global technology and innovation leaders",
			MinInvestment:      500_000,
			ExpectedReturn:     12.5,
			RiskRating:         72,
			LiquidityScore:     85,
			Volatility:         25,
			ESGScore:           esg(68),
			MinTimeHorizon:     domain.HorizonLong,
			Features:           []string{"High growth potential", "Innovation-focused", "Sector diversified"},
			SuitabilityFactors: []string{"Growth investors", "Long time horizon", "Higher risk tolerance"},
		},
		{
			ID:                 "dividend-aristocrats",
			Name:               "Dividend Aristocrats Fund",
			Category:           "Equities",
			Subcategory:        "Income Equity",
			AssetClass:         "equities",
			Description:        "Mature companies with 25+ years of dividend growth history",
			MinInvestment:      250_000,
			ExpectedReturn:     6.5,
			RiskRating:         35,
			LiquidityScore:     92,
			Volatility:         12,
			ESGScore:           esg(75),
			MinTimeHorizon:     domain.HorizonMedium,
			Features:           []string{"Stable income", "Dividend growth", "Blue-chip quality"},
			SuitabilityFactors: []string{"Income-focused", "Risk-conservative", "Wealth preservation"},
		},
		{
			ID:                 "investment-grade-bonds",
			Name:               "Investment Grade Bond Fund",
			Category:           "Fixed Income",
			Subcategory:        "Corporate Bonds",
			AssetClass:         "fixedIncome",
			Description:        "Diversified portfolio of investment-grade corporate and government bonds",
			MinInvestment:      100_000,
			ExpectedReturn:     4.2,
			RiskRating:         25,
			LiquidityScore:     88,
			Volatility:         6,
			MinTimeHorizon:     domain.HorizonShort,
			Features:           []string{"Stable returns", "Low volatility", "Capital preservation"},
			SuitabilityFactors: []string{"Conservative", "Income generation", "Risk mitigation"},
		},
		{
			ID:                 "emerging-market-bonds",
			Name:               "Emerging Market Bond Fund",
			Category:           "Fixed Income",
			Subcategory:        "Emerging Market Bonds",
			AssetClass:         "fixedIncome",
			Description:        "Higher-yielding bonds from emerging market sovereigns and corporates",
			MinInvestment:      300_000,
			ExpectedReturn:     7.8,
			RiskRating:         58,
			LiquidityScore:     75,
			Volatility:         15,
			ESGScore:           esg(65),
			MinTimeHorizon:     domain.HorizonMedium,
			Features:           []string{"Higher yields", "Diversification", "Emerging market exposure"},
			SuitabilityFactors: []string{"Yield seekers", "Balanced portfolio", "Medium-high risk"},
		},
		{
			ID:                 "asia-reits-fund",
			Name:               "Asia REIT Income Fund",
			Category:           "Real Estate",
			Subcategory:        "REITs",
			AssetClass:         "realEstate",
			Description:        "Diversified portfolio of real estate investment trusts across Asia",
			MinInvestment:      200_000,
			ExpectedReturn:     5.8,
			RiskRating:         42,
			LiquidityScore:     85,
			Volatility:         14,
			ESGScore:           esg(70),
			MinTimeHorizon:     domain.HorizonMedium,
			Features:           []string{"Regular income", "Real estate exposure", "Inflation hedge"},
			SuitabilityFactors: []string{"Income generation", "Real estate preference", "Balanced risk"},
		},
		{
			ID:                 "direct-property-hk",
			Name:               "Direct Property Investment (HK)",
			Category:           "Real Estate",
			Subcategory:        "Direct Real Estate",
			AssetClass:         "realEstate",
			Description:        "Direct ownership of premium residential or commercial property in Hong Kong",
			MinInvestment:      2_000_000,
			ExpectedReturn:     5.2,
			RiskRating:         35,
			LiquidityScore:     30,
			Volatility:         10,
			MinTimeHorizon:     domain.HorizonPerpetual,
			Features:           []string{"Long-term appreciation", "Rental income", "Portfolio diversification"},
			SuitabilityFactors: []string{"Wealth preservation", "Low liquidity needs", "Long time horizon"},
		},
		{
			ID:                 "mid-market-pe-fund",
			Name:               "Mid-Market Private Equity Fund",
			Category:           "Private Equity",
			Subcategory:        "PE Funds",
			AssetClass:         "alternatives",
			Description:        "Diversified exposure to mid-market buyouts and growth investments",
			MinInvestment:      1_000_000,
			ExpectedReturn:     11.5,
			RiskRating:         65,
			LiquidityScore:     20,
			Volatility:         20,
			ESGScore:           esg(60),
			MinTimeHorizon:     domain.HorizonPerpetual,
			Features:           []string{"High return potential", "Professional management", "Multi-year lockup"},
			SuitabilityFactors: []string{"Accredited investors", "Long time horizon", "Higher risk tolerance"},
		},
		{
			ID:                 "fine-art-fund",
			Name:               "Fine Art Fractional Investment",
			Category:           "Alternatives",
			Subcategory:        "Collectibles",
			AssetClass:         "alternatives",
			Description:        "Fractional ownership in curated contemporary and blue-chip artwork",
			MinInvestment:      50_000,
			ExpectedReturn:     9.0,
			RiskRating:         62,
			LiquidityScore:     50,
			Volatility:         16,
			ESGScore:           esg(72),
			MinTimeHorizon:     domain.HorizonLong,
			Features:           []string{"Diversification", "Aesthetic value", "Historical appreciation"},
			SuitabilityFactors: []string{"Values-aligned", "Portfolio diversification", "Alt exposure"},
		},
		{
			ID:                 "impact-vc-fund",
			Name:               "Impact Venture Capital Fund",
			Category:           "Alternatives",
			Subcategory:        "Venture Capital",
			AssetClass:         "alternatives",
			Description:        "Growth equity and venture investments in companies with positive social/environmental impact",
			MinInvestment:      500_000,
			ExpectedReturn:     13.2,
			RiskRating:         72,
			LiquidityScore:     15,
			Volatility:         28,
			ESGScore:           esg(90),
			MinTimeHorizon:     domain.HorizonPerpetual,
			Features:           []string{"Impact-driven", "High growth", "ESG-aligned"},
			SuitabilityFactors: []string{"Impact investors", "Values-driven", "Long horizon", "Higher risk"},
		},
		{
			ID:                 "universal-life-policy",
			Name:               "Premium Universal Life (UL) Policy",
			Category:           "Insurance",
			Subcategory:        "Life Insurance",
			AssetClass:         "insurance",
			Description:        "Flexible life insurance with investment account and tax-efficient wealth transfer",
			MinInvestment:      500_000,
			ExpectedReturn:     4.5,
			RiskRating:         30,
			LiquidityScore:     75,
			Volatility:         8,
			MinTimeHorizon:     domain.HorizonPerpetual,
			Features:           []string{"Tax efficiency", "Legacy planning", "Liquidity access", "Estate planning"},
			SuitabilityFactors: []string{"Legacy builders", "Tax optimization", "Wealth preservation"},
		},
		{
			ID:                 "variable-ul-policy",
			Name:               "Variable Universal Life (VUL) Policy",
			Category:           "Insurance",
			Subcategory:        "Investment-Linked Insurance",
			AssetClass:         "insurance",
			Description:        "Life insurance with market-linked investment options for growth and legacy",
			MinInvestment:      300_000,
			ExpectedReturn:     6.5,
			RiskRating:         48,
			LiquidityScore:     70,
			Volatility:         14,
			MinTimeHorizon:     domain.HorizonLong,
			Features:           []string{"Growth potential", "Death benefit", "Tax optimization"},
			SuitabilityFactors: []string{"Legacy planning", "Growth-focused", "Tax-efficient investing"},
		},
	}
}

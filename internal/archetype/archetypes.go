// Package archetype classifies clients into one of five wealth archetypes
// and formats persona guidance from the static archetype records.
package archetype

import "github.com/heru-ai/harmony/internal/domain"

// registry holds the five static persona records. Reference data; the
// exported accessors hand out pointers into it, callers must not mutate.
var registry = map[domain.ArchetypeID]*domain.WealthArchetype{
	domain.ArchetypeLegacySovereign: {
		ID:    domain.ArchetypeLegacySovereign,
		Name:  "The Legacy Sovereign",
		Emoji: "👑",
		CoreTraits: []string{
			"Visionary steward",
			"Multi-generational thinker",
			"Values-aligned",
			"Strategic advisor",
			"Transformative impact",
		},
		Description: "You embody the conscious steward of wealth across generations. Your focus extends beyond personal prosperity to creating lasting impact and meaningful legacy. You balance growth with stability, always viewing wealth through the lens of responsibility and wisdom.",
		GrowthOpportunities: []string{
			"Family governance and succession planning",
			"Impact investing alignment with family values",
			"Structured wealth transfer optimization",
			"Philanthropic strategy integration",
			"Next-generation wealth education",
		},
		MoneyEnergyPattern: "Wealth as a tool for lineage building, values transmission, and conscious impact.",
		IdealAssetStyle: []string{
			"Diversified equities with ESG focus",
			"Direct real estate with long-term hold",
			"Private equity aligned with values",
			"Impact funds and social enterprises",
			"Trust structures and alternative vehicles",
		},
		PhilosophicalAlignment: "Living well, investing wisely, leaving well.",
		RecommendedActions: []string{
			"Engage wealth advisor for multi-generational planning",
			"Establish family office or advisory infrastructure",
			"Align portfolio with family mission and values",
			"Explore trust and legacy structures",
			"Develop impact investing strategy",
		},
	},

	domain.ArchetypeVisionaryBuilder: {
		ID:    domain.ArchetypeVisionaryBuilder,
		Name:  "The Visionary Builder",
		Emoji: "🚀",
		CoreTraits: []string{
			"Entrepreneurial mindset",
			"Growth-oriented",
			"Innovative thinker",
			"Risk-capable",
			"Opportunity seeker",
		},
		Description: "You are the architect of expansion. Your wealth serves as capital for growth, innovation, and new possibilities. You thrive on building, scaling, and creating value. Your portfolio mirrors your ambitious vision, leveraging growth assets while maintaining strategic optionality.",
		GrowthOpportunities: []string{
			"Venture capital and growth equity participation",
			"Startup ecosystem engagement",
			"Business ownership and diversification",
			"Strategic acquisitions and consolidation",
			"Technology and innovation exposure",
		},
		MoneyEnergyPattern: "Wealth as an engine for creation, growth, and transformative ventures.",
		IdealAssetStyle: []string{
			"Growth equities and tech-focused funds",
			"Private equity and venture capital",
			"Business ownership stakes",
			"Emerging market exposure",
			"Real estate development projects",
		},
		PhilosophicalAlignment: "Building forward, scaling wisely, creating legacy through enterprise.",
		RecommendedActions: []string{
			"Develop venture capital allocation strategy",
			"Diversify across business interests",
			"Implement systematic wealth extraction plan",
			"Build professional advisor network",
			"Focus on exit planning for key investments",
		},
	},

	domain.ArchetypeHarmoniousStrategist: {
		ID:    domain.ArchetypeHarmoniousStrategist,
		Name:  "The Harmonious Strategist",
		Emoji: "⚖️",
		CoreTraits: []string{
			"Balanced perspective",
			"Analytical mindset",
			"Systematic optimizer",
			"Holistic integrator",
			"Measured wisdom",
		},
		Description: "You understand that true wealth is balance. You seek harmony across all dimensions: financial growth alongside personal wellbeing, risk management paired with opportunity, preservation balanced with growth. Your strategy reflects a sophisticated understanding that prosperity requires integration.",
		GrowthOpportunities: []string{
			"Systematic rebalancing protocols",
			"Tax-optimized allocation strategies",
			"Integrated financial planning",
			"Sustainable yield generation",
			"Risk-adjusted return maximization",
		},
		MoneyEnergyPattern: "Wealth as a balanced ecosystem supporting multiple life dimensions and objectives.",
		IdealAssetStyle: []string{
			"Balanced multi-asset portfolios",
			"Dividend-yielding equities",
			"Investment-grade bonds",
			"Real estate income properties",
			"Diversified alternative funds",
		},
		PhilosophicalAlignment: "Balance, wisdom, systematic optimization across life and wealth.",
		RecommendedActions: []string{
			"Establish comprehensive financial plan",
			"Implement quarterly review and rebalancing",
			"Optimize tax strategy across holdings",
			"Develop income generation plan",
			"Build integrated advisory team",
		},
	},

	domain.ArchetypeConsciousCreator: {
		ID:    domain.ArchetypeConsciousCreator,
		Name:  "The Conscious Creator",
		Emoji: "🌱",
		CoreTraits: []string{
			"Purpose-driven",
			"Impact-focused",
			"Meaning-seeker",
			"Values-aligned",
			"Social conscious",
		},
		Description: "Your wealth is inseparable from purpose. You seek to create positive change through conscious choices, from investment selections to lifestyle decisions. Every dollar reflects your values. You understand that true prosperity integrates financial success with positive impact on people and planet.",
		GrowthOpportunities: []string{
			"Impact investing and ESG strategies",
			"Social enterprise support",
			"Environmental restoration projects",
			"Community development initiatives",
			"Conscious brand and company backing",
		},
		MoneyEnergyPattern: "Wealth as a force for conscious evolution and regenerative impact.",
		IdealAssetStyle: []string{
			"ESG-focused equity funds",
			"Impact-directed private equity",
			"Sustainable real estate projects",
			"Social enterprise investments",
			"Environmental restoration funds",
		},
		PhilosophicalAlignment: "Conscious prosperity, regenerative wealth, values-aligned growth.",
		RecommendedActions: []string{
			"Develop comprehensive impact strategy",
			"Audit portfolio for values alignment",
			"Allocate portion to impact investing",
			"Engage in steward networks",
			"Support mission-aligned organizations",
		},
	},

	domain.ArchetypeGuardianOfStability: {
		ID:    domain.ArchetypeGuardianOfStability,
		Name:  "The Guardian of Stability",
		Emoji: "🛡️",
		CoreTraits: []string{
			"Risk-conscious",
			"Security-focused",
			"Protective instinct",
			"Steady hand",
			"Prudent steward",
		},
		Description: "You prioritize protection and stability. Your wealth serves as a foundation: solid, secure, and enduring. You understand the value of preservation and prudent management. Your portfolio reflects a measured approach that prioritizes downside protection and reliable income over aggressive growth.",
		GrowthOpportunities: []string{
			"Strategic yield optimization",
			"Diversified fixed income strategies",
			"Alternative stability vehicles",
			"Insurance and protection structures",
			"Emergency fund optimization",
		},
		MoneyEnergyPattern: "Wealth as a secure foundation, weathering volatility with calm wisdom.",
		IdealAssetStyle: []string{
			"High-quality dividend stocks",
			"Investment-grade bonds",
			"Secure real estate income",
			"Treasury and government bonds",
			"Stable alternative income",
		},
		PhilosophicalAlignment: "Stability, security, measured wisdom, protecting what matters.",
		RecommendedActions: []string{
			"Build comprehensive risk management plan",
			"Optimize income-generating assets",
			"Establish diversified bond allocation",
			"Implement insurance strategy",
			"Focus on capital preservation",
		},
	},
}

// Lookup returns the archetype record for the given id, or nil when the id
// is unknown.
func Lookup(id domain.ArchetypeID) *domain.WealthArchetype {
	return registry[id]
}

// All returns the archetype records in a fixed display order.
func All() []*domain.WealthArchetype {
	ids := []domain.ArchetypeID{
		domain.ArchetypeLegacySovereign,
		domain.ArchetypeVisionaryBuilder,
		domain.ArchetypeHarmoniousStrategist,
		domain.ArchetypeConsciousCreator,
		domain.ArchetypeGuardianOfStability,
	}
	out := make([]*domain.WealthArchetype, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry[id])
	}
	return out
}

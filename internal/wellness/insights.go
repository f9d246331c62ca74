package wellness

import "github.com/heru-ai/harmony/internal/domain"

type narrative struct {
	insight    string
	suggestion string
}

// insightTable holds the static narrative copy for each (dimension, band)
// pair: 8 dimensions x 4 bands. Domain copy, not computed.
var insightTable = map[domain.Dimension]map[domain.Energy]narrative{
	domain.DimensionFinancial: {
		domain.EnergyLow: {
			insight:    "Financial clarity may require attention",
			suggestion: "Consider mapping assets, cash flow, and long-term goals",
		},
		domain.EnergyModerate: {
			insight:    "Financial foundations are stable",
			suggestion: "Explore strategic diversification and wealth optimization",
		},
		domain.EnergyHigh: {
			insight:    "Strong financial discipline evident",
			suggestion: "Focus on legacy planning and conscious impact investing",
		},
		domain.EnergyThriving: {
			insight:    "Financial mastery achieved",
			suggestion: "Integrate purpose-driven wealth with conscious prosperity",
		},
	},
	domain.DimensionPhysical: {
		domain.EnergyLow: {
			insight:    "Physical vitality may need nurturing",
			suggestion: "Integrate movement, nutrition, and preventative wellness",
		},
		domain.EnergyModerate: {
			insight:    "Physical health is balanced",
			suggestion: "Deepen practices that enhance energy and longevity",
		},
		domain.EnergyHigh: {
			insight:    "Strong physical foundation in place",
			suggestion: "Explore advanced wellness modalities and optimization",
		},
		domain.EnergyThriving: {
			insight:    "Peak physical vitality demonstrated",
			suggestion: "Model and share your wellness wisdom with others",
		},
	},
	domain.DimensionEmotional: {
		domain.EnergyLow: {
			insight:    "Emotional resilience deserves attention",
			suggestion: "Explore breathwork, meditation, or professional support",
		},
		domain.EnergyModerate: {
			insight:    "Emotional awareness is developing",
			suggestion: "Deepen practices like journaling and self-reflection",
		},
		domain.EnergyHigh: {
			insight:    "Strong emotional intelligence evident",
			suggestion: "Channel emotional wisdom into leadership and impact",
		},
		domain.EnergyThriving: {
			insight:    "Emotional mastery achieved",
			suggestion: "Mentor others in emotional resilience and growth",
		},
	},
	domain.DimensionSocial: {
		domain.EnergyLow: {
			insight:    "Social connection may need cultivation",
			suggestion: "Invest in meaningful relationships and community",
		},
		domain.EnergyModerate: {
			insight:    "Social bonds are developing well",
			suggestion: "Deepen existing relationships and expand network thoughtfully",
		},
		domain.EnergyHigh: {
			insight:    "Strong community and relationships in place",
			suggestion: "Consider giving back and building your inner circle",
		},
		domain.EnergyThriving: {
			insight:    "Social flourishing and influence strong",
			suggestion: "Use your network for mutual growth and impact",
		},
	},
	domain.DimensionIntellectual: {
		domain.EnergyLow: {
			insight:    "Intellectual curiosity may need stimulation",
			suggestion: "Explore learning programs, reading, or skill development",
		},
		domain.EnergyModerate: {
			insight:    "Intellectual engagement is steady",
			suggestion: "Pursue deeper mastery in areas of passion",
		},
		domain.EnergyHigh: {
			insight:    "Strong intellectual pursuits evident",
			suggestion: "Apply learning to strategic thinking and leadership",
		},
		domain.EnergyThriving: {
			insight:    "Intellectual mastery and contribution strong",
			suggestion: "Share knowledge and mentor emerging thinkers",
		},
	},
	domain.DimensionOccupational: {
		domain.EnergyLow: {
			insight:    "Career alignment may need exploration",
			suggestion: "Clarify values and seek work that aligns with purpose",
		},
		domain.EnergyModerate: {
			insight:    "Career satisfaction is developing",
			suggestion: "Align professional goals with personal values",
		},
		domain.EnergyHigh: {
			insight:    "Strong occupational purpose evident",
			suggestion: "Consider legacy impact and next chapter opportunities",
		},
		domain.EnergyThriving: {
			insight:    "Occupational mastery and legacy building",
			suggestion: "Mentor next generation and build your professional legacy",
		},
	},
	domain.DimensionEnvironmental: {
		domain.EnergyLow: {
			insight:    "Environmental awareness may need development",
			suggestion: "Explore sustainable practices and nature connection",
		},
		domain.EnergyModerate: {
			insight:    "Environmental consciousness is growing",
			suggestion: "Deepen sustainable living practices",
		},
		domain.EnergyHigh: {
			insight:    "Strong environmental responsibility evident",
			suggestion: "Consider impact investing and stewardship initiatives",
		},
		domain.EnergyThriving: {
			insight:    "Environmental mastery and regeneration focus",
			suggestion: "Lead sustainable and regenerative impact projects",
		},
	},
	domain.DimensionSpiritual: {
		domain.EnergyLow: {
			insight:    "Spiritual foundation may need nurturing",
			suggestion: "Explore practices like meditation, nature, or philosophy",
		},
		domain.EnergyModerate: {
			insight:    "Spiritual awareness is developing",
			suggestion: "Deepen practices that connect to meaning and purpose",
		},
		domain.EnergyHigh: {
			insight:    "Strong spiritual foundation in place",
			suggestion: "Integrate spiritual wisdom into daily life and decisions",
		},
		domain.EnergyThriving: {
			insight:    "Spiritual mastery and enlightenment path",
			suggestion: "Share spiritual wisdom and guide others' transformation",
		},
	},
}

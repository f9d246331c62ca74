package domain

// ArchetypeID identifies one of the five wealth archetypes.
type ArchetypeID string

const (
	ArchetypeLegacySovereign      ArchetypeID = "legacy-sovereign"
	ArchetypeVisionaryBuilder     ArchetypeID = "visionary-builder"
	ArchetypeHarmoniousStrategist ArchetypeID = "harmonious-strategist"
	ArchetypeConsciousCreator     ArchetypeID = "conscious-creator"
	ArchetypeGuardianOfStability  ArchetypeID = "guardian-of-stability"
)

// WealthArchetype is one of five static persona records. Reference data,
// immutable for the process lifetime.
type WealthArchetype struct {
	ID                     ArchetypeID `json:"id"`
	Name                   string      `json:"name"`
	Emoji                  string      `json:"emoji"`
	CoreTraits             []string    `json:"coreTraits"`
	Description            string      `json:"description"`
	GrowthOpportunities    []string    `json:"growthOpportunities"`
	MoneyEnergyPattern     string      `json:"moneyEnergyPattern"`
	IdealAssetStyle        []string    `json:"idealAssetStyle"`
	PhilosophicalAlignment string      `json:"philosophicalAlignment"`
	RecommendedActions     []string    `json:"recommendedActions"`
}

// ArchetypeClassification is the result of classifying a client.
type ArchetypeClassification struct {
	Archetype  *WealthArchetype `json:"archetype"`
	Confidence int              `json:"confidence"` // 0-95
	Reasoning  []string         `json:"reasoning"`
}

// ArchetypeInsights is the formatted guidance derived from an archetype's
// static fields.
type ArchetypeInsights struct {
	Philosophy      string   `json:"philosophy"`
	MoneyPsychology string   `json:"moneyPsychology"`
	StrategicPath   string   `json:"strategicPath"`
	NextSteps       []string `json:"nextSteps"`
}

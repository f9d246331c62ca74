// Package assessment orchestrates the scoring, classification,
// recommendation, and report stages into a single pipeline run.
package assessment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heru-ai/harmony/internal/archetype"
	"github.com/heru-ai/harmony/internal/domain"
	"github.com/heru-ai/harmony/internal/recommend"
	"github.com/heru-ai/harmony/internal/report"
	"github.com/heru-ai/harmony/internal/screen"
	"github.com/heru-ai/harmony/internal/wealth"
	"github.com/heru-ai/harmony/internal/wellness"
)

// EngineVersion is stamped into assessment metadata.
const EngineVersion = "harmony-1.0"

// recommendationTTL bounds how long a memoized recommendation set stays
// valid. Memoization is an optimization only; results are identical with
// the cache disabled.
const recommendationTTL = 10 * time.Minute

// Pipeline runs a full assessment end to end.
type Pipeline struct {
	repo   domain.Repository
	cache  domain.Cache
	bus    domain.EventBus
	screen *screen.Engine
	logger *slog.Logger

	// RecommendationLimit caps the recommendation list; 0 means the
	// engine default.
	RecommendationLimit int
}

// NewPipeline creates a pipeline over the given infrastructure. cache and
// bus may be nil; the pipeline then skips memoization and event publishing.
func NewPipeline(repo domain.Repository, cache domain.Cache, bus domain.EventBus, screenEngine *screen.Engine, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		repo:   repo,
		cache:  cache,
		bus:    bus,
		screen: screenEngine,
		logger: logger,
	}
}

// Input is one assessment submission.
type Input struct {
	TenantID       string
	ClientID       string
	WellnessScores domain.WellnessScore
	WealthProfile  domain.WealthProfile
	TraceID        string
}

// Run executes the pipeline: score wellness, derive the risk profile,
// classify the archetype, screen and score the catalog, assemble the
// report, and persist both documents. Engine stages are pure; all I/O
// happens at the edges.
func (p *Pipeline) Run(ctx context.Context, input *Input) (*domain.Assessment, *domain.HolisticReport, error) {
	start := time.Now()

	// Scoring stage
	overall := wellness.CalculateOverallScore(input.WellnessScores)
	wellnessProfile := wellness.GetProfile(input.WellnessScores)
	scoringMs := time.Since(start).Milliseconds()

	// Classification stage
	classifyStart := time.Now()
	riskProfile := wealth.CalculateRiskProfile(&input.WealthProfile)
	classification := archetype.Classify(input.WellnessScores, &input.WealthProfile)
	classifyMs := time.Since(classifyStart).Milliseconds()

	// Recommendation stage
	recommendStart := time.Now()
	catalog, err := p.loadCatalog(ctx, input.TenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load product catalog: %w", err)
	}

	set, scored, cacheHit, err := p.recommendations(ctx, input, &riskProfile, catalog)
	if err != nil {
		return nil, nil, err
	}
	recommendMs := time.Since(recommendStart).Milliseconds()

	// Report stage
	doc := report.Assemble(
		input.TenantID,
		input.WellnessScores,
		&input.WealthProfile,
		&riskProfile,
		classification.Archetype,
		set.Recommendations,
	)
	if err := p.repo.SaveReport(ctx, input.TenantID, doc); err != nil {
		return nil, nil, fmt.Errorf("failed to save report: %w", err)
	}

	assessment := &domain.Assessment{
		ID:              uuid.New().String(),
		TenantID:        input.TenantID,
		ClientID:        input.ClientID,
		WellnessScores:  input.WellnessScores,
		WealthProfile:   input.WealthProfile,
		OverallWellness: overall,
		WellnessProfile: wellnessProfile,
		RiskProfile:     riskProfile,
		Classification:  classification,
		Recommendations: set.Recommendations,
		Allocation:      set.Allocation,
		Exclusions:      set.Exclusions,
		ReportID:        doc.ID,
		CreatedAt:       time.Now().UTC(),
		Metadata: domain.AssessmentMetadata{
			TraceID:          input.TraceID,
			ScoringMs:        scoringMs,
			ClassifyMs:       classifyMs,
			RecommendMs:      recommendMs,
			TotalMs:          time.Since(start).Milliseconds(),
			ProductsScored:   scored,
			ProductsExcluded: len(set.Exclusions),
			CacheHit:         cacheHit,
			EngineVersion:    EngineVersion,
		},
	}

	if err := p.repo.SaveAssessment(ctx, input.TenantID, assessment); err != nil {
		return nil, nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	p.countClientAssessment(ctx, input)
	p.publishCompleted(ctx, assessment, doc)

	p.logger.Info("assessment completed",
		"tenant_id", input.TenantID,
		"client_id", input.ClientID,
		"assessment_id", assessment.ID,
		"archetype", classification.Archetype.ID,
		"risk_class", riskProfile.Classification,
		"recommendations", len(set.Recommendations),
		"cache_hit", cacheHit,
		"total_ms", assessment.Metadata.TotalMs,
	)

	return assessment, doc, nil
}

// loadCatalog reads the tenant's product catalog from the repository,
// falling back to the built-in catalog when the store has none.
func (p *Pipeline) loadCatalog(ctx context.Context, tenantID string) ([]domain.InvestmentProduct, error) {
	products, err := p.repo.ListProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return recommend.DefaultCatalog(), nil
	}

	catalog := make([]domain.InvestmentProduct, 0, len(products))
	for _, product := range products {
		catalog = append(catalog, *product)
	}
	return catalog, nil
}

// recommendations screens the catalog, memoizes by input hash, and scores
// the survivors. Returns the set, the number of products scored, and
// whether the set came from cache.
func (p *Pipeline) recommendations(ctx context.Context, input *Input, risk *domain.RiskProfile, catalog []domain.InvestmentProduct) (*domain.RecommendationSet, int, bool, error) {
	hash := inputHash(input, risk, catalog)

	if p.cache != nil {
		cached, err := p.cache.GetRecommendations(ctx, input.TenantID, hash)
		if err != nil {
			p.logger.Warn("recommendation cache read failed", "error", err)
		} else if cached != nil {
			return cached, 0, true, nil
		}
	}

	kept := catalog
	var exclusions []domain.ProductExclusion
	if p.screen != nil {
		var err error
		kept, exclusions, err = p.screen.Screen(ctx, catalog, &input.WealthProfile)
		if err != nil {
			return nil, 0, false, fmt.Errorf("product screening failed: %w", err)
		}
	}

	engine := recommend.NewEngine(kept)
	recs := engine.GenerateRecommendations(&input.WealthProfile, risk, input.WellnessScores, p.RecommendationLimit)
	allocation := recommend.CalculateOptimalAllocation(recs, input.WealthProfile.TotalAssets)

	set := &domain.RecommendationSet{
		Recommendations: recs,
		Allocation:      allocation,
		Exclusions:      exclusions,
	}

	if p.cache != nil {
		if err := p.cache.SetRecommendations(ctx, input.TenantID, hash, set, recommendationTTL); err != nil {
			p.logger.Warn("recommendation cache write failed", "error", err)
		}
	}

	return set, len(kept), false, nil
}

// countClientAssessment tracks per-client submission volume in a rolling
// window. Counting failures are logged, never fatal.
func (p *Pipeline) countClientAssessment(ctx context.Context, input *Input) {
	if p.cache == nil {
		return
	}
	key := "assess-count:" + input.ClientID
	if _, err := p.cache.IncrementCounter(ctx, input.TenantID, key, 24*time.Hour); err != nil {
		p.logger.Warn("assessment counter failed", "client_id", input.ClientID, "error", err)
	}
}

// publishCompleted emits the completion and report events. Publishing is
// best-effort: a bus failure never fails the assessment.
func (p *Pipeline) publishCompleted(ctx context.Context, assessment *domain.Assessment, doc *domain.HolisticReport) {
	if p.bus == nil {
		return
	}

	if payload, err := json.Marshal(assessment); err == nil {
		if err := p.bus.Publish(ctx, assessment.TenantID, domain.TopicAssessmentCompleted, payload); err != nil {
			p.logger.Warn("failed to publish completion event", "assessment_id", assessment.ID, "error", err)
		}
	}

	ref := struct {
		ReportID     string `json:"reportId"`
		AssessmentID string `json:"assessmentId"`
		TenantID     string `json:"tenantId"`
	}{doc.ID, assessment.ID, assessment.TenantID}
	if payload, err := json.Marshal(ref); err == nil {
		if err := p.bus.Publish(ctx, assessment.TenantID, domain.TopicReportGenerated, payload); err != nil {
			p.logger.Warn("failed to publish report event", "report_id", doc.ID, "error", err)
		}
	}
}

// inputHash fingerprints everything the recommendation stage depends on.
func inputHash(input *Input, risk *domain.RiskProfile, catalog []domain.InvestmentProduct) string {
	catalogIDs := make([]string, 0, len(catalog))
	for _, p := range catalog {
		catalogIDs = append(catalogIDs, p.ID)
	}

	payload, _ := json.Marshal(struct {
		Scores  domain.WellnessScore `json:"scores"`
		Profile domain.WealthProfile `json:"profile"`
		Risk    domain.RiskProfile   `json:"risk"`
		Catalog []string             `json:"catalog"`
	}{input.WellnessScores, input.WealthProfile, *risk, catalogIDs})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

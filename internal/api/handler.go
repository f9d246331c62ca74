package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heru-ai/harmony/internal/archetype"
	"github.com/heru-ai/harmony/internal/assessment"
	"github.com/heru-ai/harmony/internal/domain"
	"github.com/heru-ai/harmony/internal/screen"
	"github.com/heru-ai/harmony/internal/wealth"
	"github.com/heru-ai/harmony/internal/wellness"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	repo         domain.Repository
	cache        domain.Cache
	bus          domain.EventBus
	pipeline     *assessment.Pipeline
	screenEngine *screen.Engine
	version      string
}

// NewHandler creates a new API handler.
func NewHandler(repo domain.Repository, cache domain.Cache, bus domain.EventBus, pipeline *assessment.Pipeline, screenEngine *screen.Engine, version string) *Handler {
	return &Handler{
		repo:         repo,
		cache:        cache,
		bus:          bus,
		pipeline:     pipeline,
		screenEngine: screenEngine,
		version:      version,
	}
}

// GlobalTenantID is used for screening rules that apply to all tenants.
const GlobalTenantID = "*"

// AssessRequest is the request body for POST /assess.
type AssessRequest struct {
	ClientID       string                `json:"clientId"`
	ClientProfile  *domain.ClientProfile `json:"clientProfile,omitempty"`
	WellnessScores domain.WellnessScore  `json:"wellnessScores"`
	WealthProfile  domain.WealthProfile  `json:"wealthProfile"`
}

// AssessResponse is the response for POST /assess.
type AssessResponse struct {
	AssessmentID    string                         `json:"assessmentId"`
	ReportID        string                         `json:"reportId"`
	OverallWellness   int                            `json:"overallWellness"`
	WellnessProfile   domain.WellnessProfile         `json:"wellnessProfile"`
	WellnessInsights  []domain.WellnessInsight       `json:"wellnessInsights"`
	RiskProfile       domain.RiskProfile             `json:"riskProfile"`
	PriorityWeighting wealth.PriorityWeighting       `json:"priorityWeighting"`
	WealthInsights    []string                       `json:"wealthInsights"`
	Classification    domain.ArchetypeClassification `json:"classification"`
	Recommendations   []domain.ProductRecommendation `json:"recommendations"`
	Allocation        map[string]float64             `json:"allocation"`
	Exclusions        []domain.ProductExclusion      `json:"exclusions,omitempty"`
	Metadata        struct {
		TraceID  string `json:"traceId"`
		TotalMs  int64  `json:"totalMs"`
		CacheHit bool   `json:"cacheHit"`
		Version  string `json:"version"`
	} `json:"metadata"`
}

// validateAssessRequest applies boundary validation. The engines trust
// their inputs, so malformed submissions must be rejected here.
func validateAssessRequest(req *AssessRequest) error {
	if req.ClientID == "" {
		return fmt.Errorf("clientId is required")
	}

	for _, dim := range domain.Dimensions() {
		score, ok := req.WellnessScores[dim]
		if !ok {
			return fmt.Errorf("wellnessScores.%s is required", dim)
		}
		if score < 0 || score > 100 {
			return fmt.Errorf("wellnessScores.%s must be in [0,100]", dim)
		}
	}

	wp := &req.WealthProfile
	if wp.TotalAssets <= 0 {
		return fmt.Errorf("wealthProfile.totalAssets must be positive")
	}
	if wp.RiskAppetite < 0 || wp.RiskAppetite > 100 {
		return fmt.Errorf("wealthProfile.riskAppetite must be in [0,100]")
	}
	if wp.LiquidityNeeds < 0 || wp.LiquidityNeeds > 100 {
		return fmt.Errorf("wealthProfile.liquidityNeeds must be in [0,100]")
	}
	if !wp.TimeHorizon.Valid() {
		return fmt.Errorf("wealthProfile.timeHorizon must be one of short, medium, long, perpetual")
	}
	if wp.Priorities.Sum() <= 0 {
		return fmt.Errorf("wealthProfile.priorities must include at least one nonzero weight")
	}

	return nil
}

// Assess handles POST /assess requests: the full synchronous pipeline.
func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	traceID := GetTraceID(ctx)

	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if err := validateAssessRequest(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
		return
	}

	input := &assessment.Input{
		TenantID:       tenantID,
		ClientID:       req.ClientID,
		WellnessScores: req.WellnessScores,
		WealthProfile:  req.WealthProfile,
		TraceID:        traceID,
	}

	result, _, err := h.pipeline.Run(ctx, input)
	if err != nil {
		slog.Error("assessment pipeline failed",
			"client_id", req.ClientID,
			"tenant_id", tenantID,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "assessment failed",
		})
		return
	}

	resp := AssessResponse{
		AssessmentID:      result.ID,
		ReportID:          result.ReportID,
		OverallWellness:   result.OverallWellness,
		WellnessProfile:   result.WellnessProfile,
		WellnessInsights:  wellness.CalculateInsights(req.WellnessScores),
		RiskProfile:       result.RiskProfile,
		PriorityWeighting: wealth.CalculatePriorityWeighting(req.WealthProfile.Priorities),
		WealthInsights:    wealth.GenerateInsights(&req.WealthProfile),
		Classification:    result.Classification,
		Recommendations:   result.Recommendations,
		Allocation:        result.Allocation,
		Exclusions:        result.Exclusions,
	}
	resp.Metadata.TraceID = result.Metadata.TraceID
	resp.Metadata.TotalMs = time.Since(start).Milliseconds()
	resp.Metadata.CacheHit = result.Metadata.CacheHit
	resp.Metadata.Version = h.version

	writeJSON(w, http.StatusOK, resp)
}

// Health returns server health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	if h.repo != nil {
		if err := h.repo.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"version": h.version,
	})
}

// Ready returns whether the server is ready to accept traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"ready": "true",
	})
}

// GetAssessment retrieves an assessment by ID.
func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	assessmentID := chi.URLParam(r, "id")

	if assessmentID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "assessment id is required",
		})
		return
	}

	a, err := h.repo.GetAssessment(ctx, tenantID, assessmentID)
	if err != nil {
		slog.Error("failed to get assessment", "id", assessmentID, "error", err)
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "assessment not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// GetAssessmentReport retrieves the report generated for an assessment.
func (h *Handler) GetAssessmentReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	assessmentID := chi.URLParam(r, "id")

	a, err := h.repo.GetAssessment(ctx, tenantID, assessmentID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "assessment not found",
		})
		return
	}

	report, err := h.repo.GetReport(ctx, tenantID, a.ReportID)
	if err != nil {
		slog.Error("failed to get report", "id", a.ReportID, "error", err)
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "report not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ListClientAssessments returns assessment history for a client.
func (h *Handler) ListClientAssessments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	clientID := chi.URLParam(r, "id")

	// Optional history window, RFC3339. Zero time means everything.
	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "since must be RFC3339",
			})
			return
		}
		since = parsed
	}

	assessments, err := h.repo.ListAssessmentsByClient(ctx, tenantID, clientID, since)
	if err != nil {
		slog.Error("failed to list assessments", "client_id", clientID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to list assessments",
		})
		return
	}

	count, err := h.repo.CountAssessments(ctx, tenantID, clientID, since)
	if err != nil {
		count = int64(len(assessments))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clientId":    clientID,
		"count":       count,
		"assessments": assessments,
	})
}

// ListProducts returns the tenant's product catalog.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)

	products, err := h.repo.ListProducts(ctx, tenantID)
	if err != nil {
		slog.Error("failed to list products", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to list products",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
		"source":   "database",
	})
}

// GetProduct retrieves a product by ID.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	productID := chi.URLParam(r, "id")

	product, err := h.repo.GetProduct(ctx, tenantID, productID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// CreateProduct adds or updates a catalog product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)

	var product domain.InvestmentProduct
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if product.ID == "" || product.Name == "" || product.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "id, name, and category are required",
		})
		return
	}
	if product.MinTimeHorizon != "" && !product.MinTimeHorizon.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "minTimeHorizon must be one of short, medium, long, perpetual",
		})
		return
	}

	if err := h.repo.SaveProduct(ctx, tenantID, &product); err != nil {
		slog.Error("failed to save product", "id", product.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to save product",
		})
		return
	}

	slog.Info("product saved", "id", product.ID, "name", product.Name, "tenant_id", tenantID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"product": product,
		"message": "Product saved. The catalog is read per assessment; new submissions pick it up immediately.",
	})
}

// ReloadProducts re-reads the catalog from the database. The pipeline
// loads the catalog per run, so this exists to verify what a tenant's
// next assessment will see.
func (h *Handler) ReloadProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)

	products, err := h.repo.ListProducts(ctx, tenantID)
	if err != nil {
		slog.Error("failed to reload products", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to reload products",
		})
		return
	}

	slog.Info("catalog reloaded", "tenant_id", tenantID, "count", len(products))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "catalog reloaded successfully",
		"count":   len(products),
	})
}

// ArchetypeEntry pairs an archetype record with its formatted insights.
type ArchetypeEntry struct {
	Archetype *domain.WealthArchetype  `json:"archetype"`
	Insights  domain.ArchetypeInsights `json:"insights"`
}

// ListArchetypes returns the five static archetype records.
func (h *Handler) ListArchetypes(w http.ResponseWriter, r *http.Request) {
	all := archetype.All()

	entries := make([]ArchetypeEntry, len(all))
	for i, a := range all {
		entries[i] = ArchetypeEntry{
			Archetype: a,
			Insights:  archetype.Insights(a),
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"archetypes": entries,
		"count":      len(entries),
	})
}

// GetArchetype retrieves a single archetype by ID.
func (h *Handler) GetArchetype(w http.ResponseWriter, r *http.Request) {
	id := domain.ArchetypeID(chi.URLParam(r, "id"))

	a := archetype.Lookup(id)
	if a == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "archetype not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ArchetypeEntry{
		Archetype: a,
		Insights:  archetype.Insights(a),
	})
}

// ListScreenRules returns all loaded screening rules from the engine.
// Rules are loaded from the database at startup and can be reloaded via
// POST /screens/reload.
func (h *Handler) ListScreenRules(w http.ResponseWriter, r *http.Request) {
	if h.screenEngine == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "screening engine not available",
		})
		return
	}

	loaded := h.screenEngine.GetLoadedRules()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules":  loaded,
		"count":  len(loaded),
		"source": "database",
	})
}

// GetScreenRule retrieves a screening rule by ID from the loaded engine rules.
func (h *Handler) GetScreenRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "id")

	if h.screenEngine == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "screening engine not available",
		})
		return
	}

	for _, rule := range h.screenEngine.GetLoadedRules() {
		if rule.ID == ruleID {
			writeJSON(w, http.StatusOK, rule)
			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "screening rule not found",
	})
}

// CreateScreenRuleRequest is the request body for creating a screening rule.
type CreateScreenRuleRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Expression  string `json:"expression"`
	Reason      string `json:"reason"`
	Enabled     bool   `json:"enabled"`
}

// CreateScreenRule validates a CEL expression, loads it, and saves it to
// the database. Rules are saved globally (tenant_id = "*") so they apply
// to all tenants.
func (h *Handler) CreateScreenRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateScreenRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if req.ID == "" || req.Name == "" || req.Expression == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "id, name, and expression are required",
		})
		return
	}

	rule := &domain.ScreenRule{
		ID:          req.ID,
		TenantID:    GlobalTenantID,
		Name:        req.Name,
		Description: req.Description,
		Version:     "1.0.0",
		Expression:  req.Expression,
		Reason:      req.Reason,
		Enabled:     req.Enabled,
	}

	// Validate CEL expression by attempting to load
	if h.screenEngine != nil {
		if err := h.screenEngine.LoadRule(rule); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "invalid CEL expression: " + err.Error(),
			})
			return
		}
	}

	if h.repo != nil {
		if err := h.repo.SaveScreenRule(ctx, GlobalTenantID, rule); err != nil {
			slog.Error("failed to save screening rule", "id", rule.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to save screening rule",
			})
			return
		}
	}

	slog.Info("screening rule created", "id", rule.ID, "name", rule.Name)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"rule":    rule,
		"message": "Rule created. Call POST /screens/reload to apply changes.",
	})
}

// ReloadScreenRules reloads all screening rules from the database into
// the engine. This enables hot-reloading without server restart.
func (h *Handler) ReloadScreenRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.repo == nil || h.screenEngine == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "screening engine not available",
		})
		return
	}

	dbRules, err := h.repo.ListScreenRules(ctx, GlobalTenantID)
	if err != nil {
		slog.Error("failed to list screening rules from database", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load screening rules from database",
		})
		return
	}

	if err := h.screenEngine.ReloadRules(dbRules); err != nil {
		slog.Error("failed to reload screening rules into engine", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to reload screening rules: " + err.Error(),
		})
		return
	}

	slog.Info("screening rules reloaded from database", "count", len(dbRules))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "screening rules reloaded successfully",
		"count":   len(dbRules),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

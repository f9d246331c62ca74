// Package repository provides data persistence implementations.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heru-ai/harmony/internal/domain"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

// SQLRepository implements domain.Repository using database/sql.
// Works with both SQLite and PostgreSQL drivers.
type SQLRepository struct {
	db     *sql.DB
	driver string
}

// New creates a new repository based on configuration.
func New(cfg domain.RepositoryConfig) (domain.Repository, error) {
	var db *sql.DB
	var err error

	switch cfg.Driver {
	case "sqlite":
		db, err = openSQLite(cfg)
	case "postgres":
		db, err = openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	repo := &SQLRepository{
		db:     db,
		driver: cfg.Driver,
	}

	// Run migrations
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *SQLRepository) migrate() error {
	for _, schema := range AllSchemas() {
		if _, err := r.db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// SaveAssessment stores an assessment with tenant isolation.
func (r *SQLRepository) SaveAssessment(ctx context.Context, tenantID string, a *domain.Assessment) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	wellnessScores, _ := json.Marshal(a.WellnessScores)
	wealthProfile, _ := json.Marshal(a.WealthProfile)
	wellnessProfile, _ := json.Marshal(a.WellnessProfile)
	riskProfile, _ := json.Marshal(a.RiskProfile)
	classification, _ := json.Marshal(a.Classification)
	recommendations, _ := json.Marshal(a.Recommendations)
	allocation, _ := json.Marshal(a.Allocation)
	exclusions, _ := json.Marshal(a.Exclusions)
	metadata, _ := json.Marshal(a.Metadata)

	query := `
		INSERT INTO assessments (
			id, tenant_id, client_id, wellness_scores, wealth_profile,
			overall_wellness, wellness_profile, risk_profile, classification,
			recommendations, allocation, exclusions, report_id, created_at, metadata
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, r.rebind(query),
		a.ID, tenantID, a.ClientID,
		string(wellnessScores), string(wealthProfile),
		a.OverallWellness, string(wellnessProfile), string(riskProfile), string(classification),
		string(recommendations), string(allocation), string(exclusions),
		a.ReportID, a.CreatedAt, string(metadata),
	)
	return err
}

// GetAssessment retrieves an assessment by ID with tenant isolation.
func (r *SQLRepository) GetAssessment(ctx context.Context, tenantID string, assessmentID string) (*domain.Assessment, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, client_id, wellness_scores, wealth_profile,
			   overall_wellness, wellness_profile, risk_profile, classification,
			   recommendations, allocation, exclusions, report_id, created_at, metadata
		FROM assessments
		WHERE tenant_id = ? AND id = ?
	`

	row := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, assessmentID)
	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

// ListAssessmentsByClient retrieves a client's assessments with tenant
// isolation, most recent first.
func (r *SQLRepository) ListAssessmentsByClient(ctx context.Context, tenantID string, clientID string, since time.Time) ([]*domain.Assessment, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, client_id, wellness_scores, wealth_profile,
			   overall_wellness, wellness_profile, risk_profile, classification,
			   recommendations, allocation, exclusions, report_id, created_at, metadata
		FROM assessments
		WHERE tenant_id = ? AND client_id = ? AND created_at >= ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, r.rebind(query), tenantID, clientID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []*domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	return assessments, rows.Err()
}

// CountAssessments returns the number of assessments a client submitted
// since the given time. Used for submission-rate visibility.
func (r *SQLRepository) CountAssessments(ctx context.Context, tenantID string, clientID string, since time.Time) (int64, error) {
	if tenantID == "" {
		return 0, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT COUNT(*)
		FROM assessments
		WHERE tenant_id = ? AND client_id = ? AND created_at >= ?
	`

	var count int64
	err := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, clientID, since).Scan(&count)
	return count, err
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(s scanner) (*domain.Assessment, error) {
	var a domain.Assessment
	var wellnessScores, wealthProfile, wellnessProfile, riskProfile string
	var classification, recommendations, allocation, exclusions, metadata string

	err := s.Scan(
		&a.ID, &a.TenantID, &a.ClientID,
		&wellnessScores, &wealthProfile,
		&a.OverallWellness, &wellnessProfile, &riskProfile, &classification,
		&recommendations, &allocation, &exclusions,
		&a.ReportID, &a.CreatedAt, &metadata,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(wellnessScores), &a.WellnessScores)
	json.Unmarshal([]byte(wealthProfile), &a.WealthProfile)
	json.Unmarshal([]byte(wellnessProfile), &a.WellnessProfile)
	json.Unmarshal([]byte(riskProfile), &a.RiskProfile)
	json.Unmarshal([]byte(classification), &a.Classification)
	json.Unmarshal([]byte(recommendations), &a.Recommendations)
	json.Unmarshal([]byte(allocation), &a.Allocation)
	json.Unmarshal([]byte(exclusions), &a.Exclusions)
	json.Unmarshal([]byte(metadata), &a.Metadata)

	return &a, nil
}

// SaveReport stores a report with tenant isolation.
func (r *SQLRepository) SaveReport(ctx context.Context, tenantID string, report *domain.HolisticReport) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	clientProfile, _ := json.Marshal(report.ClientProfile)
	sections, _ := json.Marshal(report.Sections)

	query := `
		INSERT INTO reports (id, tenant_id, generated_at, client_profile, sections)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, r.rebind(query),
		report.ID, tenantID, report.GeneratedAt,
		string(clientProfile), string(sections),
	)
	return err
}

// GetReport retrieves a report by ID with tenant isolation.
func (r *SQLRepository) GetReport(ctx context.Context, tenantID string, reportID string) (*domain.HolisticReport, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, generated_at, client_profile, sections
		FROM reports
		WHERE tenant_id = ? AND id = ?
	`

	var report domain.HolisticReport
	var clientProfile, sections string

	err := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, reportID).Scan(
		&report.ID, &report.TenantID, &report.GeneratedAt,
		&clientProfile, &sections,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal([]byte(clientProfile), &report.ClientProfile)
	json.Unmarshal([]byte(sections), &report.Sections)

	return &report, nil
}

// SaveProduct upserts a catalog product with tenant isolation.
func (r *SQLRepository) SaveProduct(ctx context.Context, tenantID string, product *domain.InvestmentProduct) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	features, _ := json.Marshal(product.Features)
	suitability, _ := json.Marshal(product.SuitabilityFactors)

	var esgScore any
	if product.ESGScore != nil {
		esgScore = *product.ESGScore
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO products (
			id, tenant_id, name, category, subcategory, asset_class, description,
			min_investment, expected_return, risk_rating, liquidity_score, volatility,
			esg_score, min_time_horizon, features, suitability_factors, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, tenant_id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			subcategory = excluded.subcategory,
			asset_class = excluded.asset_class,
			description = excluded.description,
			min_investment = excluded.min_investment,
			expected_return = excluded.expected_return,
			risk_rating = excluded.risk_rating,
			liquidity_score = excluded.liquidity_score,
			volatility = excluded.volatility,
			esg_score = excluded.esg_score,
			min_time_horizon = excluded.min_time_horizon,
			features = excluded.features,
			suitability_factors = excluded.suitability_factors,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, r.rebind(query),
		product.ID, tenantID, product.Name, product.Category, product.Subcategory,
		product.AssetClass, product.Description,
		product.MinInvestment, product.ExpectedReturn, product.RiskRating,
		product.LiquidityScore, product.Volatility,
		esgScore, string(product.MinTimeHorizon),
		string(features), string(suitability),
		now, now,
	)
	return err
}

// GetProduct retrieves a product by ID with tenant isolation.
func (r *SQLRepository) GetProduct(ctx context.Context, tenantID string, productID string) (*domain.InvestmentProduct, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, name, category, subcategory, asset_class, description,
			   min_investment, expected_return, risk_rating, liquidity_score, volatility,
			   esg_score, min_time_horizon, features, suitability_factors
		FROM products
		WHERE tenant_id = ? AND id = ?
	`

	row := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, productID)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return product, err
}

// ListProducts retrieves the tenant's full product catalog ordered by
// category then name.
func (r *SQLRepository) ListProducts(ctx context.Context, tenantID string) ([]*domain.InvestmentProduct, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, name, category, subcategory, asset_class, description,
			   min_investment, expected_return, risk_rating, liquidity_score, volatility,
			   esg_score, min_time_horizon, features, suitability_factors
		FROM products
		WHERE tenant_id = ?
		ORDER BY category, name
	`

	rows, err := r.db.QueryContext(ctx, r.rebind(query), tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.InvestmentProduct
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func scanProduct(s scanner) (*domain.InvestmentProduct, error) {
	var p domain.InvestmentProduct
	var esgScore sql.NullFloat64
	var horizon, features, suitability string

	err := s.Scan(
		&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.AssetClass, &p.Description,
		&p.MinInvestment, &p.ExpectedReturn, &p.RiskRating, &p.LiquidityScore, &p.Volatility,
		&esgScore, &horizon, &features, &suitability,
	)
	if err != nil {
		return nil, err
	}

	if esgScore.Valid {
		v := esgScore.Float64
		p.ESGScore = &v
	}
	p.MinTimeHorizon = domain.TimeHorizon(horizon)
	json.Unmarshal([]byte(features), &p.Features)
	json.Unmarshal([]byte(suitability), &p.SuitabilityFactors)

	return &p, nil
}

// SaveScreenRule upserts a screening rule with tenant isolation.
func (r *SQLRepository) SaveScreenRule(ctx context.Context, tenantID string, rule *domain.ScreenRule) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	enabled := 0
	if rule.Enabled {
		enabled = 1
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO screen_rules (
			id, tenant_id, name, description, version, expression, reason, enabled, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, tenant_id, version) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			expression = excluded.expression,
			reason = excluded.reason,
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, r.rebind(query),
		rule.ID, tenantID, rule.Name, rule.Description,
		rule.Version, rule.Expression, rule.Reason, enabled,
		now, now,
	)
	return err
}

// GetScreenRule retrieves the latest enabled version of a rule with
// tenant isolation.
func (r *SQLRepository) GetScreenRule(ctx context.Context, tenantID string, ruleID string) (*domain.ScreenRule, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, name, description, version, expression, reason, enabled
		FROM screen_rules
		WHERE tenant_id = ? AND id = ? AND enabled = 1
		ORDER BY version DESC
		LIMIT 1
	`

	var rule domain.ScreenRule
	var enabled int

	err := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, ruleID).Scan(
		&rule.ID, &rule.TenantID, &rule.Name, &rule.Description,
		&rule.Version, &rule.Expression, &rule.Reason, &enabled,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rule.Enabled = enabled == 1
	return &rule, nil
}

// ListScreenRules retrieves all enabled screening rules for a tenant.
func (r *SQLRepository) ListScreenRules(ctx context.Context, tenantID string) ([]*domain.ScreenRule, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, name, description, version, expression, reason, enabled
		FROM screen_rules
		WHERE tenant_id = ? AND enabled = 1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, r.rebind(query), tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*domain.ScreenRule
	for rows.Next() {
		var rule domain.ScreenRule
		var enabled int

		if err := rows.Scan(
			&rule.ID, &rule.TenantID, &rule.Name, &rule.Description,
			&rule.Version, &rule.Expression, &rule.Reason, &enabled,
		); err != nil {
			return nil, err
		}

		rule.Enabled = enabled == 1
		rules = append(rules, &rule)
	}

	return rules, rows.Err()
}

// SeedCatalog inserts the given products for a tenant when its catalog is
// empty. Idempotent across restarts.
func (r *SQLRepository) SeedCatalog(ctx context.Context, tenantID string, products []domain.InvestmentProduct) error {
	existing, err := r.ListProducts(ctx, tenantID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range products {
		if err := r.SaveProduct(ctx, tenantID, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].ID, err)
		}
	}
	return nil
}

// Ping checks database connectivity.
func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// rebind converts ? placeholders to $1, $2, etc. for PostgreSQL.
func (r *SQLRepository) rebind(query string) string {
	if r.driver != "postgres" {
		return query
	}

	// Convert ? to $1, $2, etc.
	var result []byte
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result = append(result, '$')
			result = append(result, fmt.Sprintf("%d", n)...)
			n++
		} else {
			result = append(result, query[i])
		}
	}
	return string(result)
}

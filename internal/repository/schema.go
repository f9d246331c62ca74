package repository

// Schema definitions for the Harmony database.
// Compatible with both SQLite and PostgreSQL.

const schemaAssessments = `
CREATE TABLE IF NOT EXISTS assessments (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    client_id TEXT NOT NULL,
    wellness_scores TEXT NOT NULL,
    wealth_profile TEXT NOT NULL,
    overall_wellness INTEGER NOT NULL,
    wellness_profile TEXT NOT NULL,
    risk_profile TEXT NOT NULL,
    classification TEXT NOT NULL,
    recommendations TEXT NOT NULL,
    allocation TEXT NOT NULL,
    exclusions TEXT,
    report_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    metadata TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_tenant ON assessments(tenant_id);
CREATE INDEX IF NOT EXISTS idx_assessments_client ON assessments(tenant_id, client_id);
CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(tenant_id, created_at);
`

const schemaReports = `
CREATE TABLE IF NOT EXISTS reports (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    generated_at TIMESTAMP NOT NULL,
    client_profile TEXT NOT NULL,
    sections TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_tenant ON reports(tenant_id);
CREATE INDEX IF NOT EXISTS idx_reports_generated ON reports(tenant_id, generated_at);
`

const schemaProducts = `
CREATE TABLE IF NOT EXISTS products (
    id TEXT NOT NULL,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT,
    asset_class TEXT NOT NULL,
    description TEXT,
    min_investment REAL NOT NULL,
    expected_return REAL NOT NULL,
    risk_rating REAL NOT NULL,
    liquidity_score REAL NOT NULL,
    volatility REAL NOT NULL,
    esg_score REAL,
    min_time_horizon TEXT NOT NULL,
    features TEXT NOT NULL,
    suitability_factors TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (id, tenant_id)
);

CREATE INDEX IF NOT EXISTS idx_products_tenant ON products(tenant_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(tenant_id, category);
`

const schemaScreenRules = `
CREATE TABLE IF NOT EXISTS screen_rules (
    id TEXT NOT NULL,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    version TEXT NOT NULL,
    expression TEXT NOT NULL,
    reason TEXT NOT NULL,
    enabled INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (id, tenant_id, version)
);

CREATE INDEX IF NOT EXISTS idx_screen_rules_tenant ON screen_rules(tenant_id);
CREATE INDEX IF NOT EXISTS idx_screen_rules_enabled ON screen_rules(tenant_id, enabled);
`

// AllSchemas returns all schema statements in order.
func AllSchemas() []string {
	return []string{
		schemaAssessments,
		schemaReports,
		schemaProducts,
		schemaScreenRules,
	}
}

package domain

import (
	"context"
	"time"
)

// Repository defines the interface for data persistence.
// All methods require tenantID for strict multi-tenancy isolation.
type Repository interface {
	// Assessment operations
	SaveAssessment(ctx context.Context, tenantID string, a *Assessment) error
	GetAssessment(ctx context.Context, tenantID string, assessmentID string) (*Assessment, error)
	ListAssessmentsByClient(ctx context.Context, tenantID string, clientID string, since time.Time) ([]*Assessment, error)
	CountAssessments(ctx context.Context, tenantID string, clientID string, since time.Time) (int64, error)

	// Report operations
	SaveReport(ctx context.Context, tenantID string, report *HolisticReport) error
	GetReport(ctx context.Context, tenantID string, reportID string) (*HolisticReport, error)

	// Product catalog operations
	SaveProduct(ctx context.Context, tenantID string, product *InvestmentProduct) error
	GetProduct(ctx context.Context, tenantID string, productID string) (*InvestmentProduct, error)
	ListProducts(ctx context.Context, tenantID string) ([]*InvestmentProduct, error)

	// Screening rule operations
	SaveScreenRule(ctx context.Context, tenantID string, rule *ScreenRule) error
	GetScreenRule(ctx context.Context, tenantID string, ruleID string) (*ScreenRule, error)
	ListScreenRules(ctx context.Context, tenantID string) ([]*ScreenRule, error)

	// Health check
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	// Driver is the database driver: "sqlite" or "postgres"
	Driver string

	// SQLite specific
	SQLitePath string

	// PostgreSQL specific
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

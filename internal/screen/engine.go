// Package screen provides the CEL-Go based product screening engine.
// A screen rule is a boolean expression over product and profile fields;
// a rule evaluating to true excludes the product from recommendation.
package screen

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/heru-ai/harmony/internal/domain"
)

// Engine compiles and evaluates product screening rules.
type Engine struct {
	mu            sync.RWMutex
	env           *cel.Env
	compiledRules map[string]*CompiledRule
	maxWorkers    int
}

// CompiledRule holds a pre-compiled CEL program.
type CompiledRule struct {
	Rule    *domain.ScreenRule
	Program cel.Program
}

// NewEngine creates a new screening engine.
func NewEngine(maxWorkers int) (*Engine, error) {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	// CEL environment with product and profile variables
	env, err := cel.NewEnv(
		cel.Variable("product", cel.MapType(cel.StringType, cel.DynType)),
		// Product fields
		cel.Variable("risk_rating", cel.DoubleType),
		cel.Variable("liquidity_score", cel.DoubleType),
		cel.Variable("min_investment", cel.DoubleType),
		cel.Variable("expected_return", cel.DoubleType),
		cel.Variable("volatility", cel.DoubleType),
		cel.Variable("esg_score", cel.DoubleType),
		cel.Variable("category", cel.StringType),
		cel.Variable("asset_class", cel.StringType),
		cel.Variable("min_horizon", cel.StringType),
		// Profile fields
		cel.Variable("total_assets", cel.DoubleType),
		cel.Variable("annual_income", cel.DoubleType),
		cel.Variable("risk_appetite", cel.DoubleType),
		cel.Variable("liquidity_needs", cel.DoubleType),
		cel.Variable("horizon", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &Engine{
		env:           env,
		compiledRules: make(map[string]*CompiledRule),
		maxWorkers:    maxWorkers,
	}, nil
}

// ValidateRule compiles a rule without mutating the loaded rule set.
func (e *Engine) ValidateRule(rule *domain.ScreenRule) error {
	if rule == nil {
		return fmt.Errorf("screen rule is required")
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	_, err := e.compileRule(rule)
	return err
}

// LoadRule compiles and loads one rule into the engine.
func (e *Engine) LoadRule(rule *domain.ScreenRule) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	compiled, err := e.compileRule(rule)
	if err != nil {
		return err
	}

	e.compiledRules[rule.ID] = compiled
	return nil
}

// LoadRules compiles and loads the enabled rules.
func (e *Engine) LoadRules(rules []*domain.ScreenRule) error {
	for _, rule := range rules {
		if rule.Enabled {
			if err := e.LoadRule(rule); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReloadRules swaps the loaded rule set atomically. This enables
// hot-reloading of screen rules from the database.
func (e *Engine) ReloadRules(rules []*domain.ScreenRule) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	newRules := make(map[string]*CompiledRule)
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		compiled, err := e.compileRule(rule)
		if err != nil {
			return err
		}
		newRules[rule.ID] = compiled
	}

	e.compiledRules = newRules
	return nil
}

// RulesCount returns the number of loaded rules.
func (e *Engine) RulesCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.compiledRules)
}

// GetLoadedRules returns the currently loaded rule definitions.
func (e *Engine) GetLoadedRules() []*domain.ScreenRule {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules := make([]*domain.ScreenRule, 0, len(e.compiledRules))
	for _, compiled := range e.compiledRules {
		rules = append(rules, compiled.Rule)
	}
	return rules
}

// Screen evaluates the loaded rules against every catalog product in
// parallel and partitions the catalog into kept products and exclusions.
// Rules run in rule-ID order and the first firing rule per product is
// recorded; kept products preserve the input catalog order.
func (e *Engine) Screen(ctx context.Context, catalog []domain.InvestmentProduct, profile *domain.WealthProfile) ([]domain.InvestmentProduct, []domain.ProductExclusion, error) {
	e.mu.RLock()
	rules := make([]*CompiledRule, 0, len(e.compiledRules))
	for _, rule := range e.compiledRules {
		rules = append(rules, rule)
	}
	e.mu.RUnlock()

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Rule.ID < rules[j].Rule.ID
	})

	if len(rules) == 0 || len(catalog) == 0 {
		return catalog, nil, nil
	}

	exclusions := make([]*domain.ProductExclusion, len(catalog))
	var wg sync.WaitGroup

	// Limit concurrency with semaphore
	sem := make(chan struct{}, e.maxWorkers)

	for i := range catalog {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sem <- struct{}{}        // Acquire
			defer func() { <-sem }() // Release

			exclusions[idx] = e.screenProduct(ctx, rules, &catalog[idx], profile)
		}(i)
	}

	wg.Wait()

	kept := make([]domain.InvestmentProduct, 0, len(catalog))
	excluded := make([]domain.ProductExclusion, 0)
	for i, product := range catalog {
		if exclusions[i] != nil {
			excluded = append(excluded, *exclusions[i])
			continue
		}
		kept = append(kept, product)
	}

	return kept, excluded, nil
}

// screenProduct returns the exclusion from the first rule that fires, or
// nil when the product passes every rule.
func (e *Engine) screenProduct(ctx context.Context, rules []*CompiledRule, product *domain.InvestmentProduct, profile *domain.WealthProfile) *domain.ProductExclusion {
	activation := buildActivation(product, profile)

	for _, rule := range rules {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		out, _, err := rule.Program.Eval(activation)
		if err != nil {
			// An erroring rule never excludes; screening fails open.
			continue
		}
		if truthy(out) {
			return &domain.ProductExclusion{
				ProductID: product.ID,
				RuleID:    rule.Rule.ID,
				Reason:    rule.Rule.Reason,
			}
		}
	}
	return nil
}

// buildActivation flattens product and profile fields into CEL variables.
// A product with no ESG score exposes esg_score as -1 so rules can
// distinguish "unrated" from a genuine zero.
func buildActivation(product *domain.InvestmentProduct, profile *domain.WealthProfile) map[string]any {
	esgScore := -1.0
	if product.ESGScore != nil {
		esgScore = *product.ESGScore
	}

	return map[string]any{
		"product": map[string]any{
			"id":          product.ID,
			"name":        product.Name,
			"category":    product.Category,
			"subcategory": product.Subcategory,
			"asset_class": product.AssetClass,
		},
		"risk_rating":     product.RiskRating,
		"liquidity_score": product.LiquidityScore,
		"min_investment":  product.MinInvestment,
		"expected_return": product.ExpectedReturn,
		"volatility":      product.Volatility,
		"esg_score":       esgScore,
		"category":        product.Category,
		"asset_class":     product.AssetClass,
		"min_horizon":     string(product.MinTimeHorizon),
		"total_assets":    profile.TotalAssets,
		"annual_income":   profile.AnnualIncome,
		"risk_appetite":   profile.RiskAppetite,
		"liquidity_needs": profile.LiquidityNeeds,
		"horizon":         string(profile.TimeHorizon),
	}
}

// truthy converts a CEL result to an exclusion decision. Numeric results
// exclude when nonzero.
func truthy(val ref.Val) bool {
	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Double:
		return float64(v) != 0
	case types.Int:
		return int64(v) != 0
	default:
		return false
	}
}

// Close cleans up the engine.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.compiledRules = make(map[string]*CompiledRule)
	return nil
}

func (e *Engine) compileRule(rule *domain.ScreenRule) (*CompiledRule, error) {
	ast, issues := e.env.Compile(rule.Expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile screen rule %s: %w", rule.ID, issues.Err())
	}

	outputType := ast.OutputType()
	if outputType != cel.BoolType && outputType != cel.DoubleType && outputType != cel.IntType {
		return nil, fmt.Errorf("screen rule %s: expression must return bool, int, or double, got %s", rule.ID, outputType)
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create program for screen rule %s: %w", rule.ID, err)
	}

	return &CompiledRule{
		Rule:    rule,
		Program: program,
	}, nil
}

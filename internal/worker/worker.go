// Package worker provides async assessment processing for the Pro tier.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/heru-ai/harmony/internal/assessment"
	"github.com/heru-ai/harmony/internal/domain"
)

// Worker processes submitted assessments asynchronously from the EventBus.
type Worker struct {
	bus      domain.EventBus
	pipeline *assessment.Pipeline

	subscriptions []domain.Subscription
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
}

// Config holds worker configuration.
type Config struct {
	// TenantIDs is the list of tenants to process (empty = all via wildcard if supported)
	TenantIDs []string
}

// NewWorker creates a new async worker.
func NewWorker(bus domain.EventBus, pipeline *assessment.Pipeline) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		bus:      bus,
		pipeline: pipeline,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins processing submissions for the given tenants.
func (w *Worker) Start(cfg Config) error {
	if len(cfg.TenantIDs) == 0 {
		return w.startGlobalWorker()
	}

	for _, tenantID := range cfg.TenantIDs {
		if err := w.startTenantWorker(tenantID); err != nil {
			slog.Error("failed to start worker for tenant",
				"tenant_id", tenantID,
				"error", err,
			)
			continue
		}
	}

	slog.Info("workers started",
		"tenant_count", len(cfg.TenantIDs),
	)

	return nil
}

// startGlobalWorker starts a worker that processes all tenants (for testing/dev).
func (w *Worker) startGlobalWorker() error {
	// Subscribe using a special "global" tenant ID
	// In production, you'd want to subscribe with wildcards or JetStream
	sub, err := w.bus.Subscribe(w.ctx, "_global", domain.TopicAssessmentSubmitted, w.handleMessage)
	if err != nil {
		return err
	}
	w.subscriptions = append(w.subscriptions, sub)

	slog.Info("global worker started")
	return nil
}

// startTenantWorker starts workers for a specific tenant.
func (w *Worker) startTenantWorker(tenantID string) error {
	sub, err := w.bus.Subscribe(w.ctx, tenantID, domain.TopicAssessmentSubmitted, func(ctx context.Context, msg *domain.Message) error {
		return w.processSubmission(ctx, tenantID, msg)
	})
	if err != nil {
		return err
	}
	w.subscriptions = append(w.subscriptions, sub)

	slog.Info("tenant worker started",
		"tenant_id", tenantID,
		"topic", domain.TopicAssessmentSubmitted,
	)

	return nil
}

// handleMessage handles messages from global subscription.
func (w *Worker) handleMessage(ctx context.Context, msg *domain.Message) error {
	return w.processSubmission(ctx, msg.TenantID, msg)
}

// SubmissionMessage is the message payload for async assessment processing.
type SubmissionMessage struct {
	TenantID       string               `json:"tenantId"`
	ClientID       string               `json:"clientId"`
	TraceID        string               `json:"traceId"`
	WellnessScores domain.WellnessScore `json:"wellnessScores"`
	WealthProfile  domain.WealthProfile `json:"wealthProfile"`
}

// processSubmission runs a submitted assessment through the pipeline.
// In-flight handlers are tracked so Stop can wait for them to drain.
func (w *Worker) processSubmission(ctx context.Context, tenantID string, msg *domain.Message) error {
	w.wg.Add(1)
	defer w.wg.Done()

	start := time.Now()

	var subMsg SubmissionMessage
	if err := json.Unmarshal(msg.Payload, &subMsg); err != nil {
		slog.Error("failed to parse submission message",
			"message_id", msg.ID,
			"error", err,
		)
		return err
	}

	// Use message tenant if provided
	if subMsg.TenantID != "" {
		tenantID = subMsg.TenantID
	}

	traceID := subMsg.TraceID
	if traceID == "" {
		traceID = msg.ID
	}

	slog.Debug("processing submission",
		"client_id", subMsg.ClientID,
		"tenant_id", tenantID,
		"trace_id", traceID,
	)

	input := &assessment.Input{
		TenantID:       tenantID,
		ClientID:       subMsg.ClientID,
		WellnessScores: subMsg.WellnessScores,
		WealthProfile:  subMsg.WealthProfile,
		TraceID:        traceID,
	}

	result, _, err := w.pipeline.Run(ctx, input)
	if err != nil {
		slog.Error("assessment pipeline failed",
			"client_id", subMsg.ClientID,
			"tenant_id", tenantID,
			"error", err,
		)
		return err
	}

	slog.Info("submission processed",
		"assessment_id", result.ID,
		"client_id", subMsg.ClientID,
		"tenant_id", tenantID,
		"archetype", result.Classification.Archetype.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

// Stop gracefully stops all workers.
func (w *Worker) Stop() error {
	w.cancel()

	for _, sub := range w.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			slog.Error("failed to unsubscribe",
				"topic", sub.Topic(),
				"error", err,
			)
		}
	}
	w.subscriptions = nil

	w.wg.Wait()

	slog.Info("workers stopped")
	return nil
}

// Stats returns worker statistics.
type Stats struct {
	SubscriptionCount int      `json:"subscriptionCount"`
	Topics            []string `json:"topics"`
}

// GetStats returns current worker statistics.
func (w *Worker) GetStats() Stats {
	topics := make([]string, len(w.subscriptions))
	for i, sub := range w.subscriptions {
		topics[i] = sub.Topic()
	}
	return Stats{
		SubscriptionCount: len(w.subscriptions),
		Topics:            topics,
	}
}

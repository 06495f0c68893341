package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/PloomFi/PloomFi/internal/domain/model"
)

// Recorder implements port.MetricsRecorder on top of an OpenTelemetry meter.
type Recorder struct {
	assessments metric.Int64Counter
	ruleHits    metric.Int64Counter
	scores      metric.Int64Histogram
	duration    metric.Float64Histogram
}

// NewRecorder registers the assessment instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	assessments, err := meter.Int64Counter("assessments",
		metric.WithDescription("Wallet assessments completed, by risk level and decision."))
	if err != nil {
		return nil, fmt.Errorf("failed to create assessments counter: %w", err)
	}

	ruleHits, err := meter.Int64Counter("rule_hits",
		metric.WithDescription("Transactions each scoring rule fired for."))
	if err != nil {
		return nil, fmt.Errorf("failed to create rule hits counter: %w", err)
	}

	scores, err := meter.Int64Histogram("score",
		metric.WithDescription("Clamped wallet risk score."),
		metric.WithExplicitBucketBoundaries(0, 10, 20, 35, 50, 60, 70, 80, 90, 100))
	if err != nil {
		return nil, fmt.Errorf("failed to create score histogram: %w", err)
	}

	duration, err := meter.Float64Histogram("assessment_duration",
		metric.WithDescription("Time spent assessing a wallet."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &Recorder{
		assessments: assessments,
		ruleHits:    ruleHits,
		scores:      scores,
		duration:    duration,
	}, nil
}

// RecordAssessment records one completed assessment.
func (r *Recorder) RecordAssessment(ctx context.Context, a *model.WalletAssessment, elapsed time.Duration) {
	outcome := metric.WithAttributes(
		attribute.String("risk_level", a.RiskLevel().String()),
		attribute.String("decision", a.Decision().String()),
	)
	r.assessments.Add(ctx, 1, outcome)
	r.scores.Record(ctx, int64(a.Score()), outcome)
	r.duration.Record(ctx, elapsed.Seconds())

	for rule, hits := range a.Breakdown().RuleHits() {
		r.ruleHits.Add(ctx, int64(hits), metric.WithAttributes(attribute.String("rule", rule.String())))
	}
}

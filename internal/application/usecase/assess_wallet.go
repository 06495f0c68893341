package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/PloomFi/PloomFi/internal/application/dto"
	"github.com/PloomFi/PloomFi/internal/domain/model"
	"github.com/PloomFi/PloomFi/internal/domain/port"
	"github.com/PloomFi/PloomFi/internal/domain/service"
)

const tracerName = "github.com/PloomFi/PloomFi/internal/application/usecase"

var errScoreMismatch = errors.New("aggregate and detailed scores disagree")

// AssessWallet is the use case for scoring a wallet's transactions.
type AssessWallet struct {
	publisher port.EventPublisher
	metrics   port.MetricsRecorder
	tracer    trace.Tracer
	logger    *slog.Logger
	rules     service.RuleConfig
}

// NewAssessWallet creates a new AssessWallet use case. The rule
// configuration is validated up front so misconfiguration fails at wiring
// time rather than on the first request.
func NewAssessWallet(
	rules service.RuleConfig,
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	logger *slog.Logger,
) (*AssessWallet, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &AssessWallet{
		publisher: publisher,
		metrics:   metrics,
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
		rules:     rules,
	}, nil
}

// Execute scores the wallet, builds the assessment, publishes its events and
// records metrics.
func (uc *AssessWallet) Execute(ctx context.Context, req dto.AssessWalletRequest) (dto.AssessmentResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "AssessWallet.Execute", trace.WithAttributes(
		attribute.String("wallet.id", req.WalletID),
		attribute.Int("wallet.transactions", len(req.Records)),
	))
	defer span.End()

	resp, err := uc.execute(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return dto.AssessmentResponse{}, err
	}

	span.SetAttributes(
		attribute.Int("risk.score", resp.Score),
		attribute.String("risk.level", resp.RiskLevel),
		attribute.String("risk.decision", resp.Decision),
	)
	return resp, nil
}

// ExecuteFromSource loads records from src and assesses them.
func (uc *AssessWallet) ExecuteFromSource(ctx context.Context, src port.TransactionSource) (dto.AssessmentResponse, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	return uc.Execute(ctx, dto.AssessWalletRequest{WalletID: src.WalletID(), Records: records})
}

func (uc *AssessWallet) execute(ctx context.Context, req dto.AssessWalletRequest) (dto.AssessmentResponse, error) {
	start := time.Now()

	// 1. Create the assessment aggregate.
	assessment, err := model.NewWalletAssessment(req.WalletID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	// 2. Score the transactions.
	evaluator, err := service.NewRiskEvaluator(req.Records, uc.rules)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to build evaluator: %w", err)
	}
	breakdown := evaluator.EvaluateDetailed()
	if score := evaluator.Evaluate(); score != breakdown.Total {
		return dto.AssessmentResponse{}, fmt.Errorf("%w: %d != %d", errScoreMismatch, score, breakdown.Total)
	}

	// 3. Apply the breakdown (this determines risk level and decision).
	if err := assessment.Assess(breakdown); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to assess wallet: %w", err)
	}

	// 4. Publish domain events.
	if evts := assessment.ClearEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("failed to publish events: %w", err)
		}
	}

	elapsed := time.Since(start)
	uc.metrics.RecordAssessment(ctx, assessment, elapsed)

	uc.logger.InfoContext(ctx, "wallet assessed",
		"assessment_id", assessment.ID(),
		"wallet_id", assessment.WalletID(),
		"score", assessment.Score(),
		"unclamped_score", breakdown.Unclamped,
		"risk_level", assessment.RiskLevel().String(),
		"decision", assessment.Decision().String(),
		"transactions", len(breakdown.Contributions),
		"elapsed", elapsed,
	)

	return dto.FromModel(assessment), nil
}

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PloomFi/PloomFi/internal/domain/event"
	"github.com/PloomFi/PloomFi/internal/domain/valueobject"
	"github.com/PloomFi/PloomFi/pkg/events"
)

// WalletAssessment is the aggregate root recording the risk verdict for a wallet.
type WalletAssessment struct {
	events.EventCollector

	assessedAt time.Time
	createdAt  time.Time
	walletID   string
	riskLevel  valueobject.RiskLevel
	decision   valueobject.AssessmentDecision
	breakdown  Breakdown
	id         uuid.UUID
}

// NewWalletAssessment creates an unscored assessment for walletID.
// Call Assess to apply an evaluation result.
func NewWalletAssessment(walletID string) (*WalletAssessment, error) {
	if walletID == "" {
		return nil, fmt.Errorf("wallet ID is required")
	}
	return &WalletAssessment{
		id:        uuid.New(),
		walletID:  walletID,
		riskLevel: valueobject.RiskLevelLow,
		createdAt: time.Now().UTC(),
	}, nil
}

// Assess applies a breakdown, deriving risk level and decision, and records
// the resulting domain events.
func (a *WalletAssessment) Assess(b Breakdown) error {
	if b.MaxScore <= 0 {
		return fmt.Errorf("max score must be positive, got %d", b.MaxScore)
	}
	if b.Total < 0 || b.Total > b.MaxScore {
		return fmt.Errorf("risk score must be between 0 and %d, got %d", b.MaxScore, b.Total)
	}

	a.breakdown = b
	a.riskLevel = valueobject.RiskLevelFromScore(b.Total, b.MaxScore)
	a.decision = valueobject.DecisionFromScore(b.Total, b.MaxScore)
	a.assessedAt = time.Now().UTC()

	signals := b.Signals()
	a.Record(event.NewWalletAssessed(
		a.id, a.walletID, b.Total, b.MaxScore, len(b.Contributions),
		a.riskLevel.String(), a.decision.String(), signals, a.assessedAt,
	))

	if a.riskLevel.Equal(valueobject.RiskLevelCritical) {
		a.Record(event.NewHighRiskWalletDetected(
			a.id, a.walletID, b.Total, signals, a.assessedAt,
		))
	}

	return nil
}

// --- Accessors ---

func (a *WalletAssessment) ID() uuid.UUID                            { return a.id }
func (a *WalletAssessment) WalletID() string                         { return a.walletID }
func (a *WalletAssessment) Score() int                               { return a.breakdown.Total }
func (a *WalletAssessment) MaxScore() int                            { return a.breakdown.MaxScore }
func (a *WalletAssessment) RiskLevel() valueobject.RiskLevel         { return a.riskLevel }
func (a *WalletAssessment) Decision() valueobject.AssessmentDecision { return a.decision }
func (a *WalletAssessment) Breakdown() Breakdown                     { return a.breakdown }
func (a *WalletAssessment) AssessedAt() time.Time                    { return a.assessedAt }
func (a *WalletAssessment) CreatedAt() time.Time                     { return a.createdAt }

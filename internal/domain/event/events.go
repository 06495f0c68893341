package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/PloomFi/PloomFi/pkg/events"
)

const (
	// EventTypeWalletAssessed is emitted when a wallet assessment finishes.
	EventTypeWalletAssessed = "walletrisk.wallet.assessed"

	// EventTypeHighRiskWalletDetected is emitted when a CRITICAL risk level is detected.
	EventTypeHighRiskWalletDetected = "walletrisk.high_risk.detected"

	aggregateType = "WalletAssessment"
)

// WalletAssessed is published when a wallet's transactions have been scored.
type WalletAssessed struct {
	events.BaseEvent
	AssessedAt       time.Time `json:"assessed_at"`
	WalletID         string    `json:"wallet_id"`
	RiskLevel        string    `json:"risk_level"`
	Decision         string    `json:"decision"`
	Signals          []string  `json:"signals"`
	RiskScore        int       `json:"risk_score"`
	MaxScore         int       `json:"max_score"`
	TransactionCount int       `json:"transaction_count"`
	AssessmentID     uuid.UUID `json:"assessment_id"`
}

// NewWalletAssessed builds a WalletAssessed event with its JSON payload.
func NewWalletAssessed(
	assessmentID uuid.UUID,
	walletID string,
	score, maxScore, txCount int,
	riskLevel, decision string,
	signals []string,
	assessedAt time.Time,
) WalletAssessed {
	e := WalletAssessed{
		AssessmentID:     assessmentID,
		WalletID:         walletID,
		RiskScore:        score,
		MaxScore:         maxScore,
		TransactionCount: txCount,
		RiskLevel:        riskLevel,
		Decision:         decision,
		Signals:          signals,
		AssessedAt:       assessedAt,
	}
	payload, _ := json.Marshal(e)
	e.BaseEvent = events.NewBaseEvent(EventTypeWalletAssessed, assessmentID, aggregateType, walletID, payload)
	return e
}

// HighRiskWalletDetected is published when a wallet is assessed at CRITICAL
// risk, so downstream consumers can freeze or escalate.
type HighRiskWalletDetected struct {
	events.BaseEvent
	DetectedAt   time.Time `json:"detected_at"`
	WalletID     string    `json:"wallet_id"`
	Signals      []string  `json:"signals"`
	RiskScore    int       `json:"risk_score"`
	AssessmentID uuid.UUID `json:"assessment_id"`
}

// NewHighRiskWalletDetected builds a HighRiskWalletDetected event with its JSON payload.
func NewHighRiskWalletDetected(
	assessmentID uuid.UUID,
	walletID string,
	score int,
	signals []string,
	detectedAt time.Time,
) HighRiskWalletDetected {
	e := HighRiskWalletDetected{
		AssessmentID: assessmentID,
		WalletID:     walletID,
		RiskScore:    score,
		Signals:      signals,
		DetectedAt:   detectedAt,
	}
	payload, _ := json.Marshal(e)
	e.BaseEvent = events.NewBaseEvent(EventTypeHighRiskWalletDetected, assessmentID, aggregateType, walletID, payload)
	return e
}

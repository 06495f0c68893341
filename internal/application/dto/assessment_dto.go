package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/PloomFi/PloomFi/internal/domain/model"
)

// AssessWalletRequest is the input DTO for the AssessWallet use case.
type AssessWalletRequest struct {
	WalletID string         `json:"wallet_id"`
	Records  []model.Record `json:"transactions"`
}

// ContributionResponse is one transaction's line in the audit breakdown.
type ContributionResponse struct {
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Amount      string     `json:"amount"`
	Type        string     `json:"type"`
	Destination string     `json:"destination"`
	Reason      string     `json:"reason"`
	Index       int        `json:"index"`
	Score       int        `json:"score"`
}

// AssessmentResponse is the output DTO returned after an assessment.
type AssessmentResponse struct {
	AssessedAt     time.Time              `json:"assessed_at"`
	WalletID       string                 `json:"wallet_id"`
	RiskLevel      string                 `json:"risk_level"`
	Decision       string                 `json:"decision"`
	Signals        []string               `json:"signals"`
	Transactions   []ContributionResponse `json:"transactions"`
	Score          int                    `json:"score"`
	MaxScore       int                    `json:"max_score"`
	UnclampedScore int                    `json:"unclamped_score"`
	ID             uuid.UUID              `json:"id"`
}

// FromModel maps a domain model to the response DTO.
func FromModel(a *model.WalletAssessment) AssessmentResponse {
	b := a.Breakdown()

	lines := make([]ContributionResponse, len(b.Contributions))
	for i, c := range b.Contributions {
		tx := c.Transaction
		line := ContributionResponse{
			Index:       i,
			Amount:      tx.Amount().String(),
			Type:        tx.Kind(),
			Destination: tx.Destination(),
			Score:       c.Score,
			Reason:      c.Reason.String(),
		}
		if ts, ok := tx.Timestamp(); ok {
			line.Timestamp = &ts
		}
		lines[i] = line
	}

	return AssessmentResponse{
		ID:             a.ID(),
		WalletID:       a.WalletID(),
		Score:          a.Score(),
		MaxScore:       a.MaxScore(),
		UnclampedScore: b.Unclamped,
		RiskLevel:      a.RiskLevel().String(),
		Decision:       a.Decision().String(),
		Signals:        b.Signals(),
		Transactions:   lines,
		AssessedAt:     a.AssessedAt(),
	}
}

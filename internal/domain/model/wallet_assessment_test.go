package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PloomFi/PloomFi/internal/domain/event"
	"github.com/PloomFi/PloomFi/internal/domain/model"
	"github.com/PloomFi/PloomFi/internal/domain/valueobject"
)

func breakdownWith(total int, rules ...valueobject.Reason) model.Breakdown {
	tx := model.NewTransaction(decimal.NewFromInt(100), model.KindOut, "w")
	return model.Breakdown{
		Total:     total,
		Unclamped: total,
		MaxScore:  100,
		Contributions: []model.Contribution{
			{Transaction: tx, Score: total, Reason: valueobject.CompositeReason(rules), Rules: rules},
		},
	}
}

func TestNewWalletAssessment(t *testing.T) {
	a, err := model.NewWalletAssessment("wallet-1")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, "wallet-1", a.WalletID())
	assert.Equal(t, 0, a.Score())
	assert.False(t, a.CreatedAt().IsZero())
	assert.True(t, a.AssessedAt().IsZero())

	_, err = model.NewWalletAssessment("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet ID is required")
}

func TestAssess_LowRiskAllows(t *testing.T) {
	a, err := model.NewWalletAssessment("wallet-1")
	require.NoError(t, err)

	require.NoError(t, a.Assess(breakdownWith(5, valueobject.ReasonBaseline)))

	assert.Equal(t, 5, a.Score())
	assert.True(t, valueobject.RiskLevelLow.Equal(a.RiskLevel()))
	assert.True(t, valueobject.DecisionAllow.Equal(a.Decision()))
	assert.False(t, a.AssessedAt().IsZero())

	evts := a.ClearEvents()
	require.Len(t, evts, 1)
	assessed, ok := evts[0].(event.WalletAssessed)
	require.True(t, ok)
	assert.Equal(t, event.EventTypeWalletAssessed, assessed.EventType())
	assert.Equal(t, a.ID(), assessed.AggregateID())
	assert.Equal(t, "wallet-1", assessed.Subject())
	assert.Equal(t, []string{"baseline"}, assessed.Signals)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(assessed.Payload(), &payload))
	assert.Equal(t, float64(5), payload["risk_score"])
	assert.Equal(t, "ALLOW", payload["decision"])
}

func TestAssess_CriticalEmitsHighRiskEvent(t *testing.T) {
	a, err := model.NewWalletAssessment("wallet-1")
	require.NoError(t, err)

	require.NoError(t, a.Assess(breakdownWith(100, valueobject.ReasonLargeOut, valueobject.ReasonBlacklist)))

	assert.True(t, valueobject.RiskLevelCritical.Equal(a.RiskLevel()))
	assert.True(t, valueobject.DecisionBlock.Equal(a.Decision()))

	evts := a.ClearEvents()
	require.Len(t, evts, 2)
	highRisk, ok := evts[1].(event.HighRiskWalletDetected)
	require.True(t, ok)
	assert.Equal(t, 100, highRisk.RiskScore)
	assert.Equal(t, []string{"large_out", "blacklist"}, highRisk.Signals)
}

func TestAssess_RejectsOutOfRangeScore(t *testing.T) {
	a, err := model.NewWalletAssessment("wallet-1")
	require.NoError(t, err)

	err = a.Assess(model.Breakdown{Total: 101, MaxScore: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "risk score must be between 0 and 100")

	err = a.Assess(model.Breakdown{Total: 0, MaxScore: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max score must be positive")

	assert.Empty(t, a.Events())
}

func TestBreakdown_RuleHitsAndSignals(t *testing.T) {
	tx := model.NewTransaction(decimal.Zero, model.KindIn, "")
	b := model.Breakdown{
		Contributions: []model.Contribution{
			{Transaction: tx, Rules: []valueobject.Reason{valueobject.ReasonBaseline, valueobject.ReasonHighFrequency}},
			{Transaction: tx, Rules: []valueobject.Reason{valueobject.ReasonLargeOut, valueobject.ReasonHighFrequency}},
		},
	}

	hits := b.RuleHits()
	assert.Equal(t, 2, hits[valueobject.ReasonHighFrequency])
	assert.Equal(t, 1, hits[valueobject.ReasonBaseline])
	assert.Equal(t, []string{"baseline", "high_frequency", "large_out"}, b.Signals())
}

package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PloomFi/PloomFi/internal/domain/valueobject"
)

func TestRiskLevel_FromScore(t *testing.T) {
	tests := []struct {
		name     string
		expected valueobject.RiskLevel
		score    int
		max      int
	}{
		{name: "zero is LOW", expected: valueobject.RiskLevelLow, score: 0, max: 100},
		{name: "34 is LOW", expected: valueobject.RiskLevelLow, score: 34, max: 100},
		{name: "35 is MEDIUM", expected: valueobject.RiskLevelMedium, score: 35, max: 100},
		{name: "59 is MEDIUM", expected: valueobject.RiskLevelMedium, score: 59, max: 100},
		{name: "60 is HIGH", expected: valueobject.RiskLevelHigh, score: 60, max: 100},
		{name: "80 is CRITICAL", expected: valueobject.RiskLevelCritical, score: 80, max: 100},
		{name: "max is CRITICAL", expected: valueobject.RiskLevelCritical, score: 100, max: 100},
		{name: "scaled to max 50", expected: valueobject.RiskLevelCritical, score: 40, max: 50},
		{name: "scaled medium", expected: valueobject.RiskLevelMedium, score: 20, max: 50},
		{name: "invalid max", expected: valueobject.RiskLevelLow, score: 10, max: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := valueobject.RiskLevelFromScore(tt.score, tt.max)
			assert.True(t, tt.expected.Equal(result),
				"expected %s for score %d/%d, got %s", tt.expected, tt.score, tt.max, result)
		})
	}
}

func TestDecisionFromScore(t *testing.T) {
	tests := []struct {
		name     string
		decision valueobject.AssessmentDecision
		score    int
	}{
		{name: "score 0 allows", decision: valueobject.DecisionAllow, score: 0},
		{name: "score 29 allows", decision: valueobject.DecisionAllow, score: 29},
		{name: "score 30 reviews", decision: valueobject.DecisionReview, score: 30},
		{name: "score 70 reviews", decision: valueobject.DecisionReview, score: 70},
		{name: "score 71 blocks", decision: valueobject.DecisionBlock, score: 71},
		{name: "score 100 blocks", decision: valueobject.DecisionBlock, score: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := valueobject.DecisionFromScore(tt.score, 100)
			assert.True(t, tt.decision.Equal(got), "expected %s, got %s", tt.decision, got)
		})
	}
}

package valueobject

// AssessmentDecision is the recommended action for a scored wallet.
type AssessmentDecision struct {
	value string
}

var (
	DecisionAllow  = AssessmentDecision{value: "ALLOW"}
	DecisionReview = AssessmentDecision{value: "REVIEW"}
	DecisionBlock  = AssessmentDecision{value: "BLOCK"}
)

// DecisionFromScore determines the decision for a score on a 0..maxScore scale.
func DecisionFromScore(score, maxScore int) AssessmentDecision {
	switch pct := Percent(score, maxScore); {
	case pct > 70:
		return DecisionBlock
	case pct >= 30:
		return DecisionReview
	default:
		return DecisionAllow
	}
}

// String returns the string representation.
func (d AssessmentDecision) String() string {
	return d.value
}

// Equal checks equality with another AssessmentDecision.
func (d AssessmentDecision) Equal(other AssessmentDecision) bool {
	return d.value == other.value
}

package valueobject

// RiskLevel is an immutable value object classifying a wallet's risk score.
type RiskLevel struct {
	value string
}

var (
	RiskLevelLow      = RiskLevel{value: "LOW"}
	RiskLevelMedium   = RiskLevel{value: "MEDIUM"}
	RiskLevelHigh     = RiskLevel{value: "HIGH"}
	RiskLevelCritical = RiskLevel{value: "CRITICAL"}
)

// RiskLevelFromScore derives the RiskLevel for a score on a 0..maxScore scale.
// Bands are expressed as a percentage of maxScore.
func RiskLevelFromScore(score, maxScore int) RiskLevel {
	switch pct := Percent(score, maxScore); {
	case pct >= 80:
		return RiskLevelCritical
	case pct >= 60:
		return RiskLevelHigh
	case pct >= 35:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Percent normalizes score to 0..100 relative to maxScore.
// A non-positive maxScore yields 0.
func Percent(score, maxScore int) int {
	if maxScore <= 0 || score <= 0 {
		return 0
	}
	if score >= maxScore {
		return 100
	}
	return score * 100 / maxScore
}

// String returns the string representation.
func (r RiskLevel) String() string {
	return r.value
}

// Equal checks equality with another RiskLevel.
func (r RiskLevel) Equal(other RiskLevel) bool {
	return r.value == other.value
}

package service

import (
	"github.com/PloomFi/PloomFi/internal/domain/valueobject"
)

// scoreAt scores the transaction at index i and returns the rules that fired
// in order: the cascade rule first, then any stacked bonuses.
func (e *RiskEvaluator) scoreAt(i int) (int, []valueobject.Reason) {
	score, reason := e.cascade(i)
	rules := []valueobject.Reason{reason}

	if !e.cfg.Stacking {
		return score, rules
	}

	if e.isHighFrequency(i) {
		score += e.cfg.ScoreHighFrequency
		rules = append(rules, valueobject.ReasonHighFrequency)
	}
	if e.isBlacklisted(i) {
		score += e.cfg.ScoreBlacklist
		rules = append(rules, valueobject.ReasonBlacklist)
	}
	return score, rules
}

// cascade applies the priority rules; the first match wins.
func (e *RiskEvaluator) cascade(i int) (int, valueobject.Reason) {
	tx := e.transactions[i]

	if tx.IsOutbound() && tx.Amount().GreaterThan(e.cfg.LargeOutThreshold) {
		return e.cfg.ScoreLargeOut, valueobject.ReasonLargeOut
	}
	if unknownDestinationRe.MatchString(tx.Destination()) {
		return e.cfg.ScoreUnknownDest, valueobject.ReasonUnknownDestination
	}
	return e.cfg.ScoreBaseline, valueobject.ReasonBaseline
}

// isHighFrequency reports whether at least FrequencyMinPeers other
// timestamped transactions lie strictly within FrequencyWindow of
// transaction i. This is a pairwise scan, quadratic over a full evaluation;
// batches are expected to stay in the low hundreds.
func (e *RiskEvaluator) isHighFrequency(i int) bool {
	ts, ok := e.transactions[i].Timestamp()
	if !ok {
		return false
	}

	peers := 0
	for j, other := range e.transactions {
		if j == i {
			continue
		}
		otherTS, ok := other.Timestamp()
		if !ok {
			continue
		}
		diff := ts.Sub(otherTS)
		if diff < 0 {
			diff = -diff
		}
		if diff < e.cfg.FrequencyWindow {
			peers++
			if peers >= e.cfg.FrequencyMinPeers {
				return true
			}
		}
	}
	return false
}

func (e *RiskEvaluator) isBlacklisted(i int) bool {
	_, hit := e.blacklist[e.transactions[i].Destination()]
	return hit
}

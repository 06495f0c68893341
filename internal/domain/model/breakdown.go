package model

import "github.com/PloomFi/PloomFi/internal/domain/valueobject"

// Contribution is the score a single transaction added to a wallet total.
type Contribution struct {
	Transaction Transaction
	Reason      valueobject.Reason
	Rules       []valueobject.Reason
	Score       int
}

// Breakdown is the auditable result of a detailed evaluation.
// Total is clamped to the configured maximum; Unclamped is the raw sum of
// every contribution.
type Breakdown struct {
	Contributions []Contribution
	Total         int
	Unclamped     int
	MaxScore      int
}

// RuleHits counts how many transactions each rule fired for.
func (b Breakdown) RuleHits() map[valueobject.Reason]int {
	hits := make(map[valueobject.Reason]int)
	for _, c := range b.Contributions {
		for _, r := range c.Rules {
			hits[r]++
		}
	}
	return hits
}

// Signals returns the distinct rule tags that fired, in first-seen order.
func (b Breakdown) Signals() []string {
	seen := make(map[valueobject.Reason]bool)
	signals := make([]string, 0)
	for _, c := range b.Contributions {
		for _, r := range c.Rules {
			if !seen[r] {
				seen[r] = true
				signals = append(signals, r.String())
			}
		}
	}
	return signals
}

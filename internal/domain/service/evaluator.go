package service

import (
	"regexp"

	"github.com/PloomFi/PloomFi/internal/domain/model"
	"github.com/PloomFi/PloomFi/internal/domain/valueobject"
)

var unknownDestinationRe = regexp.MustCompile(`(?i)^unknown(?:_|$)`)

// RiskEvaluator scores a fixed list of wallet transactions.
//
// The evaluator is immutable after construction: it owns private copies of
// the transactions and of the blacklist, so Evaluate and EvaluateDetailed
// are safe to call concurrently.
type RiskEvaluator struct {
	blacklist    map[string]struct{}
	transactions []model.Transaction
	cfg          RuleConfig
}

// NewRiskEvaluator sanitizes records into transactions and builds an
// evaluator. Malformed records never fail; only an invalid cfg does.
func NewRiskEvaluator(records []model.Record, cfg RuleConfig) (*RiskEvaluator, error) {
	return NewRiskEvaluatorFromTransactions(model.FromRecords(records), cfg)
}

// NewRiskEvaluatorFromTransactions builds an evaluator over already
// constructed transactions.
func NewRiskEvaluatorFromTransactions(txs []model.Transaction, cfg RuleConfig) (*RiskEvaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	blacklist := make(map[string]struct{}, len(cfg.Blacklist))
	for _, dest := range cfg.Blacklist {
		blacklist[dest] = struct{}{}
	}
	cfg.Blacklist = append([]string(nil), cfg.Blacklist...)

	return &RiskEvaluator{
		blacklist:    blacklist,
		transactions: append([]model.Transaction(nil), txs...),
		cfg:          cfg,
	}, nil
}

// Config returns a copy of the evaluator's configuration.
func (e *RiskEvaluator) Config() RuleConfig {
	cfg := e.cfg
	cfg.Blacklist = append([]string(nil), e.cfg.Blacklist...)
	return cfg
}

// Transactions returns a copy of the evaluated transactions.
func (e *RiskEvaluator) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), e.transactions...)
}

// Evaluate returns the wallet score in [0, MaxScore]. Scoring stops as soon
// as the running total reaches MaxScore.
func (e *RiskEvaluator) Evaluate() int {
	total := 0
	for i := range e.transactions {
		score, _ := e.scoreAt(i)
		total += score
		if total >= e.cfg.MaxScore {
			return e.cfg.MaxScore
		}
	}
	return total
}

// EvaluateDetailed scores every transaction and returns the per-transaction
// contributions alongside the clamped total. Unlike Evaluate it never stops
// early, so the breakdown is always complete.
func (e *RiskEvaluator) EvaluateDetailed() model.Breakdown {
	contributions := make([]model.Contribution, len(e.transactions))
	unclamped := 0
	for i, tx := range e.transactions {
		score, rules := e.scoreAt(i)
		contributions[i] = model.Contribution{
			Transaction: tx,
			Score:       score,
			Reason:      valueobject.CompositeReason(rules),
			Rules:       rules,
		}
		unclamped += score
	}

	return model.Breakdown{
		Contributions: contributions,
		Total:         min(unclamped, e.cfg.MaxScore),
		Unclamped:     unclamped,
		MaxScore:      e.cfg.MaxScore,
	}
}

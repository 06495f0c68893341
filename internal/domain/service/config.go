package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidConfiguration is returned when a RuleConfig cannot be used to
// build an evaluator.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Defaults for RuleConfig.
const (
	DefaultScoreLargeOut      = 20
	DefaultScoreUnknownDest   = 15
	DefaultScoreHighFrequency = 10
	DefaultScoreBlacklist     = 25
	DefaultScoreBaseline      = 5
	DefaultMaxScore           = 100
	DefaultFrequencyWindow    = 60 * time.Second
	DefaultFrequencyMinPeers  = 3
)

// DefaultLargeOutThreshold is the amount an outbound transfer must exceed
// to count as large.
var DefaultLargeOutThreshold = decimal.NewFromInt(10000)

// RuleConfig holds the scoring parameters of a RiskEvaluator.
type RuleConfig struct {
	LargeOutThreshold decimal.Decimal

	// Blacklist holds destination identifiers matched exactly and
	// case-sensitively.
	Blacklist []string

	// FrequencyWindow is the exclusive distance within which another
	// timestamped transaction counts as a peer.
	FrequencyWindow   time.Duration
	FrequencyMinPeers int

	ScoreLargeOut      int
	ScoreUnknownDest   int
	ScoreHighFrequency int
	ScoreBlacklist     int
	ScoreBaseline      int
	MaxScore           int

	// Stacking adds the high-frequency and blacklist bonuses on top of the
	// cascade result. When false only the cascade is scored.
	Stacking bool
}

// DefaultRuleConfig returns the stock scoring parameters: cascade-only with
// an empty blacklist.
func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		LargeOutThreshold:  DefaultLargeOutThreshold,
		FrequencyWindow:    DefaultFrequencyWindow,
		FrequencyMinPeers:  DefaultFrequencyMinPeers,
		ScoreLargeOut:      DefaultScoreLargeOut,
		ScoreUnknownDest:   DefaultScoreUnknownDest,
		ScoreHighFrequency: DefaultScoreHighFrequency,
		ScoreBlacklist:     DefaultScoreBlacklist,
		ScoreBaseline:      DefaultScoreBaseline,
		MaxScore:           DefaultMaxScore,
	}
}

// Validate checks the configuration. Every returned error wraps
// ErrInvalidConfiguration.
func (c RuleConfig) Validate() error {
	if c.LargeOutThreshold.IsNegative() {
		return invalid("large-out threshold must not be negative, got %s", c.LargeOutThreshold)
	}
	if c.MaxScore <= 0 {
		return invalid("max score must be positive, got %d", c.MaxScore)
	}

	scores := []struct {
		name  string
		value int
	}{
		{"large-out", c.ScoreLargeOut},
		{"unknown-destination", c.ScoreUnknownDest},
		{"high-frequency", c.ScoreHighFrequency},
		{"blacklist", c.ScoreBlacklist},
		{"baseline", c.ScoreBaseline},
	}
	for _, s := range scores {
		if s.value < 0 {
			return invalid("%s score must not be negative, got %d", s.name, s.value)
		}
	}

	if c.FrequencyWindow <= 0 {
		return invalid("frequency window must be positive, got %s", c.FrequencyWindow)
	}
	if c.FrequencyMinPeers < 1 {
		return invalid("frequency peer count must be at least 1, got %d", c.FrequencyMinPeers)
	}
	for i, dest := range c.Blacklist {
		if strings.TrimSpace(dest) == "" {
			return invalid("blacklist entry %d is blank", i)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

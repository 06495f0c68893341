package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PloomFi/PloomFi/internal/domain/service"
)

// Config holds all configuration for the wallet risk tool.
type Config struct {
	LogLevel        string
	LogFormat       string
	ServiceName     string
	MetricsTextfile string
	Rules           service.RuleConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Unparseable values fall back to their defaults; range checks happen in Validate.
func Load() Config {
	d := service.DefaultRuleConfig()

	return Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ServiceName:     getEnv("SERVICE_NAME", "walletrisk"),
		MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),
		Rules: service.RuleConfig{
			LargeOutThreshold:  getEnvDecimal("RISK_LARGE_OUT_THRESHOLD", d.LargeOutThreshold),
			Blacklist:          getEnvList("RISK_BLACKLIST", d.Blacklist),
			FrequencyWindow:    getEnvDuration("RISK_FREQUENCY_WINDOW", d.FrequencyWindow),
			FrequencyMinPeers:  getEnvInt("RISK_FREQUENCY_MIN_PEERS", d.FrequencyMinPeers),
			ScoreLargeOut:      getEnvInt("RISK_SCORE_LARGE_OUT", d.ScoreLargeOut),
			ScoreUnknownDest:   getEnvInt("RISK_SCORE_UNKNOWN_DEST", d.ScoreUnknownDest),
			ScoreHighFrequency: getEnvInt("RISK_SCORE_HIGH_FREQUENCY", d.ScoreHighFrequency),
			ScoreBlacklist:     getEnvInt("RISK_SCORE_BLACKLIST", d.ScoreBlacklist),
			ScoreBaseline:      getEnvInt("RISK_SCORE_BASELINE", d.ScoreBaseline),
			MaxScore:           getEnvInt("RISK_MAX_SCORE", d.MaxScore),
			Stacking:           getEnvBool("RISK_STACKING", d.Stacking),
		},
	}
}

// Validate checks the loaded rule configuration.
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("risk rules: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvDecimal(key string, defaultVal decimal.Decimal) decimal.Decimal {
	if val := os.Getenv(key); val != "" {
		if d, err := decimal.NewFromString(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// getEnvList splits a comma-separated value, dropping empty items.
func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var items []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

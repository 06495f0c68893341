package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/PloomFi/PloomFi/internal/application/usecase"
	"github.com/PloomFi/PloomFi/internal/infrastructure/config"
	"github.com/PloomFi/PloomFi/internal/infrastructure/ledger"
	"github.com/PloomFi/PloomFi/internal/infrastructure/messaging"
	"github.com/PloomFi/PloomFi/internal/infrastructure/telemetry"
	"github.com/PloomFi/PloomFi/pkg/observability"
)

func main() {
	if err := run(); err != nil {
		slog.Error("walletrisk failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ledgerPath := flag.String("ledger", "-", "path to a JSON ledger export, or - for stdin")
	walletID := flag.String("wallet", "", "wallet id (overrides the ledger's wallet_id; defaults to the ledger file name)")
	scoreOnly := flag.Bool("score-only", false, "print only the clamped score")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	metrics, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		return err
	}
	defer func() {
		if err := metrics.Provider.Shutdown(context.Background()); err != nil {
			logger.Warn("metrics shutdown failed", "error", err)
		}
	}()

	recorder, err := telemetry.NewRecorder(metrics.Provider.Meter(cfg.ServiceName))
	if err != nil {
		return err
	}

	// Wire adapters and the use case.
	publisher := messaging.NewLogPublisher(logger, cfg.ServiceName+".events")
	assessWallet, err := usecase.NewAssessWallet(cfg.Rules, publisher, recorder, logger)
	if err != nil {
		return err
	}

	src := ledger.NewFileSource(*ledgerPath, *walletID)
	logger.Debug("assessing wallet",
		"ledger", *ledgerPath,
		"stacking", cfg.Rules.Stacking,
		"blacklist_size", len(cfg.Rules.Blacklist),
	)

	resp, err := assessWallet.ExecuteFromSource(ctx, src)
	if err != nil {
		return err
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("metrics not written", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	if *scoreOnly {
		fmt.Println(resp.Score)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to write assessment: %w", err)
	}
	return nil
}

package port

import (
	"context"
	"time"

	"github.com/PloomFi/PloomFi/internal/domain/model"
	"github.com/PloomFi/PloomFi/pkg/events"
)

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish hands one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// MetricsRecorder records the outcome of wallet assessments.
type MetricsRecorder interface {
	RecordAssessment(ctx context.Context, assessment *model.WalletAssessment, elapsed time.Duration)
}

// TransactionSource supplies raw transaction records for a wallet, e.g. a
// ledger export. Records must follow the model.Record field contract.
type TransactionSource interface {
	WalletID() string
	Records(ctx context.Context) ([]model.Record, error)
}

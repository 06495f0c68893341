package messaging_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PloomFi/PloomFi/internal/infrastructure/messaging"
	"github.com/PloomFi/PloomFi/pkg/events"
)

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	pub := messaging.NewLogPublisher(logger, "walletrisk.events")

	aggID := uuid.New()
	e1 := events.NewBaseEvent("walletrisk.wallet.assessed", aggID, "WalletAssessment", "wallet-1", []byte(`{"risk_score":20}`))
	e2 := events.NewBaseEvent("walletrisk.high_risk.detected", aggID, "WalletAssessment", "wallet-1", []byte(`{"risk_score":90}`))

	require.NoError(t, pub.Publish(context.Background(), e1, e2))

	var lines []map[string]any
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines = append(lines, rec)
	}
	require.Len(t, lines, 2)

	assert.Equal(t, "walletrisk.events", lines[0]["topic"])
	assert.Equal(t, e1.EventID().String(), lines[0]["event_id"])
	assert.Equal(t, "walletrisk.wallet.assessed", lines[0]["event_type"])
	assert.Equal(t, aggID.String(), lines[0]["aggregate_id"])
	assert.Equal(t, "wallet-1", lines[0]["subject"])
	assert.Equal(t, map[string]any{"risk_score": float64(20)}, lines[0]["payload"])
	assert.Equal(t, "walletrisk.high_risk.detected", lines[1]["event_type"])
}

func TestLogPublisher_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	pub := messaging.NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)), "t")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Publish(ctx, events.NewBaseEvent("x", uuid.New(), "A", "", nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

package broker

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

func TestProducer_DealSyncedMessage(t *testing.T) {
	t.Parallel()

	p := newProducer(slog.Default(), &kafka.Writer{}, "deal-synced")
	p.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	msg, err := p.dealSyncedMessage("J-100", entity.SyncResult{
		DealID:      "9001",
		DealCreated: true,
		CompanyID:   "11",
		ContactID:   "51",
	})
	require.NoError(t, err)
	require.Equal(t, []byte("J-100"), msg.Key)
	require.JSONEq(t, `{
		"type": "deal.synced",
		"dealId": "9001",
		"jobNumber": "J-100",
		"companyId": "11",
		"contactId": "51",
		"created": true,
		"syncedAt": "2024-05-01T10:00:00Z"
	}`, string(msg.Value))
}

func TestProducer_SendDealSynced_WriteErrorLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(slog.NewJSONHandler(&buf, nil))

	// The writer has no topic, so every write is rejected before touching the network.
	p := newProducer(l, &kafka.Writer{Addr: kafka.TCP("127.0.0.1:1")}, "")

	p.SendDealSynced(context.Background(), "J-100", entity.SyncResult{DealID: "9001"})

	require.Contains(t, buf.String(), "write kafka message")
}

func TestWriterLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	writerLogger{l: l, level: slog.LevelDebug}.Printf("writing %d messages", 1)
	writerLogger{l: l, level: slog.LevelError}.Printf("failed: %s", "boom")

	require.Contains(t, buf.String(), `"level":"DEBUG","msg":"writing 1 messages","component":"kafka-writer"`)
	require.Contains(t, buf.String(), `"level":"ERROR","msg":"failed: boom","component":"kafka-writer"`)
}

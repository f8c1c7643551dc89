package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

const EventTypeDealSynced = "deal.synced"

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
	now   func() time.Time
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 writerLogger{l: l, level: slog.LevelDebug},
		ErrorLogger:            writerLogger{l: l, level: slog.LevelError},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topic)
}

func newProducer(l *slog.Logger, w *kafka.Writer, topic string) *Producer {
	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
		now:   time.Now,
	}
}

type DealSyncedEvent struct {
	Type            string    `json:"type"`
	DealID          string    `json:"dealId"`
	JobNumber       string    `json:"jobNumber"`
	CompanyID       string    `json:"companyId,omitempty"`
	ParentCompanyID string    `json:"parentCompanyId,omitempty"`
	ContactID       string    `json:"contactId,omitempty"`
	Created         bool      `json:"created"`
	SyncedAt        time.Time `json:"syncedAt"`
}

// SendDealSynced publishes the result of a reconciliation. Failures are only logged.
func (p *Producer) SendDealSynced(ctx context.Context, jobNumber string, result entity.SyncResult) {
	msg, err := p.dealSyncedMessage(jobNumber, result)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, msg)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) dealSyncedMessage(jobNumber string, result entity.SyncResult) (kafka.Message, error) {
	event := DealSyncedEvent{
		Type:            EventTypeDealSynced,
		DealID:          result.DealID,
		JobNumber:       jobNumber,
		CompanyID:       result.CompanyID,
		ParentCompanyID: result.ParentCompanyID,
		ContactID:       result.ContactID,
		Created:         result.DealCreated,
		SyncedAt:        p.now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(jobNumber),
		Value: b,
	}, nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

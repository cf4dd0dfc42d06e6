package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/commands"

	kafka "github.com/segmentio/kafka-go"
)

// messageWriter is the slice of kafka.Writer the publisher needs; tests swap
// in a recording fake.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher emits notification events to a Kafka topic. Publishing is
// best effort: failures are logged and swallowed so a broker outage never
// fails the command that triggered the event.
type KafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	closer       func() error
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer:       writer,
		writeTimeout: cfg.WriteTimeout,
		closer:       writer.Close,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev commands.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to encode notification event",
			"kind", ev.Kind,
			"error", err)
		return
	}

	// Detach from the caller's deadline: the command is already committed
	// and its context may be about to expire.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(ev.Related.ID.String()),
		Value: payload,
	}
	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		slog.Error("failed to publish notification event",
			"kind", ev.Kind,
			"related_id", ev.Related.ID,
			"error", err)
		return
	}

	slog.Debug("published notification event",
		"kind", ev.Kind,
		"related_id", ev.Related.ID)
}

func (p *KafkaPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

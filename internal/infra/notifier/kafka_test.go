//go:build unit

package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"foodshare/internal/usecase/commands"

	"github.com/google/uuid"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages   []kafka.Message
	err        error
	lastCtxErr error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.lastCtxErr = ctx.Err()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func newTestPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		writer:       writer,
		writeTimeout: time.Second,
	}
}

func TestKafkaPublisherPublish(t *testing.T) {
	t.Run("writes the event keyed by the related entity", func(t *testing.T) {
		writer := &fakeWriter{}
		p := newTestPublisher(writer)

		recipientID := uuid.New()
		orderID := uuid.New()
		p.Publish(context.Background(), commands.Event{
			RecipientID: &recipientID,
			Kind:        commands.EventKindStatusChanged,
			Title:       "Order Confirmed",
			Message:     "Your order has been confirmed and is being processed.",
			Related: commands.RelatedRef{
				Kind: commands.EntityKindOrder,
				ID:   orderID,
			},
		})

		require.Len(t, writer.messages, 1)
		msg := writer.messages[0]
		assert.Equal(t, orderID.String(), string(msg.Key))

		var decoded commands.Event
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		require.NotNil(t, decoded.RecipientID)
		assert.Equal(t, recipientID, *decoded.RecipientID)
		assert.Equal(t, commands.EventKindStatusChanged, decoded.Kind)
		assert.Equal(t, commands.EntityKindOrder, decoded.Related.Kind)
		assert.Equal(t, orderID, decoded.Related.ID)
	})

	t.Run("broadcast event omits the recipient", func(t *testing.T) {
		writer := &fakeWriter{}
		p := newTestPublisher(writer)

		p.Publish(context.Background(), commands.Event{
			Kind:    commands.EventKindNewPerishable,
			Title:   "New Food Donation Available",
			Message: "New food donation available",
			Related: commands.RelatedRef{
				Kind: commands.EntityKindPerishable,
				ID:   uuid.New(),
			},
		})

		require.Len(t, writer.messages, 1)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &raw))
		assert.NotContains(t, raw, "recipient_id")
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		writer := &fakeWriter{err: assert.AnError}
		p := newTestPublisher(writer)

		assert.NotPanics(t, func() {
			p.Publish(context.Background(), commands.Event{
				Kind:    commands.EventKindStatusChanged,
				Related: commands.RelatedRef{Kind: commands.EntityKindOrder, ID: uuid.New()},
			})
		})
	})

	t.Run("write outlives an already-cancelled caller context", func(t *testing.T) {
		writer := &fakeWriter{}
		p := newTestPublisher(writer)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p.Publish(ctx, commands.Event{
			Kind:    commands.EventKindStatusChanged,
			Related: commands.RelatedRef{Kind: commands.EntityKindOrder, ID: uuid.New()},
		})

		require.Len(t, writer.messages, 1)
		assert.NoError(t, writer.lastCtxErr)
	})
}

func TestKafkaPublisherClose(t *testing.T) {
	t.Run("nil closer is a no-op", func(t *testing.T) {
		p := newTestPublisher(&fakeWriter{})
		assert.NoError(t, p.Close())
	})

	t.Run("delegates to the writer closer", func(t *testing.T) {
		closed := false
		p := newTestPublisher(&fakeWriter{})
		p.closer = func() error {
			closed = true
			return nil
		}

		require.NoError(t, p.Close())
		assert.True(t, closed)
	})
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *captureWriter) Close() error {
	w.closed = true
	return nil
}

func Test_KafkaPublisher_Publish(t *testing.T) {
	writer := &captureWriter{}
	p := &KafkaPublisher{writer: writer}

	err := p.Publish(context.Background(), Notification{
		Kind:       KindEventReminder,
		ReceiverID: 9,
		Content:    "Reminder: Your event 'Book Club' is scheduled for tomorrow.",
		Date:       "2026-03-15",
	})
	assert.NoError(t, err)

	if assert.Len(t, writer.messages, 1) {
		msg := writer.messages[0]
		assert.Equal(t, "9", string(msg.Key))

		var decoded Notification
		if err := json.Unmarshal(msg.Value, &decoded); err != nil {
			t.Fatalf("failed to decode message value: %v", err)
		}
		assert.Equal(t, KindEventReminder, decoded.Kind)
		assert.Equal(t, int64(9), decoded.ReceiverID)
		assert.Equal(t, "2026-03-15", decoded.Date)
	}
}

func Test_KafkaPublisher_WriteFailure(t *testing.T) {
	writeErr := errors.New("broker unreachable")
	p := &KafkaPublisher{writer: &captureWriter{err: writeErr}}

	err := p.Publish(context.Background(), Notification{Kind: KindSpaceReminder, ReceiverID: 1})
	assert.ErrorIs(t, err, writeErr)
}

func Test_KafkaPublisher_Close(t *testing.T) {
	writer := &captureWriter{}
	p := &KafkaPublisher{writer: writer}

	assert.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func Test_New_NopWithoutBrokers(t *testing.T) {
	p := New(Config{Brokers: "", Topic: "neighborhood-notifications"})
	assert.IsType(t, Nop{}, p)
	assert.NoError(t, p.Publish(context.Background(), Notification{}))
	assert.NoError(t, p.Close())
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Notification is the record mirrored to the notification topic for each
// system message the reminder sweep produces.
type Notification struct {
	Kind       string `json:"kind"`
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
	Date       string `json:"date"`
}

const (
	KindResourceReminder = "resource_booking_reminder"
	KindSpaceReminder    = "space_booking_reminder"
	KindEventReminder    = "event_reminder"
)

type Publisher interface {
	Publish(ctx context.Context, n Notification) error
	Close() error
}

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers string
	Topic   string
}

type KafkaPublisher struct {
	writer Writer
}

// New returns a kafka-backed publisher, or a no-op one when no brokers
// are configured.
func New(cfg Config) Publisher {
	if cfg.Brokers == "" {
		return Nop{}
	}
	return &KafkaPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: strings.Split(cfg.Brokers, ","),
			Topic:   cfg.Topic,
		}),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, n Notification) error {
	value, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%d", n.ReceiverID)
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "Published notification", "kind", n.Kind, "receiver_id", n.ReceiverID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop drops notifications; reminders still land in the messages table.
type Nop struct{}

func (Nop) Publish(context.Context, Notification) error { return nil }
func (Nop) Close() error                                { return nil }

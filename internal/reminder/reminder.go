package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smart-neighborhood-backend/internal/db"
	"smart-neighborhood-backend/internal/notify"
	"smart-neighborhood-backend/internal/worker"
)

// store is the slice of the db layer the sweep reads and writes.
type store interface {
	ResourceBookingsOn(ctx context.Context, date string) ([]db.ResourceBooking, error)
	SpaceBookingsOn(ctx context.Context, date string) ([]db.SpaceBooking, error)
	EventBookingsOn(ctx context.Context, date string) ([]db.EventBooking, error)
	SendSystemMessage(ctx context.Context, receiverID int64, content string) error
}

type Config struct {
	Interval  time.Duration
	Store     store
	Publisher notify.Publisher
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// Reminder writes a system message for every booking scheduled for
// tomorrow and mirrors each one to the notification publisher.
type Reminder struct {
	worker    *worker.Worker
	store     store
	publisher notify.Publisher
	now       func() time.Time
}

func New(cfg Config) *Reminder {
	r := &Reminder{
		store:     cfg.Store,
		publisher: cfg.Publisher,
		now:       cfg.Now,
	}
	if r.now == nil {
		r.now = time.Now
	}
	r.worker = worker.New(worker.Config{
		Name:      "reminder-worker",
		Interval:  cfg.Interval,
		Processor: r,
	})
	return r
}

func (r *Reminder) Run(ctx context.Context) {
	r.worker.Run(ctx)
}

// Process performs one sweep. A failure in one booking kind does not stop
// the others; the first error is reported after the sweep completes.
func (r *Reminder) Process(ctx context.Context) error {
	tomorrow := r.now().AddDate(0, 0, 1).Format(db.DateLayout)
	var firstErr error

	resources, err := r.store.ResourceBookingsOn(ctx, tomorrow)
	if err != nil {
		firstErr = err
	}
	for _, b := range resources {
		content := fmt.Sprintf("Reminder: Your resource booking '%s' is scheduled for tomorrow.", b.Title)
		r.deliver(ctx, notify.KindResourceReminder, b.UserID, content, b.BookingDate, &firstErr)
	}

	spaces, err := r.store.SpaceBookingsOn(ctx, tomorrow)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	for _, b := range spaces {
		content := fmt.Sprintf("Reminder: Your space booking '%s' is scheduled for tomorrow.", b.Name)
		r.deliver(ctx, notify.KindSpaceReminder, b.UserID, content, b.BookingDate, &firstErr)
	}

	events, err := r.store.EventBookingsOn(ctx, tomorrow)
	if err != nil && firstErr == nil {
		firstErr = err
	}
	for _, b := range events {
		content := fmt.Sprintf("Reminder: Your event '%s' is scheduled for tomorrow.", b.Name)
		r.deliver(ctx, notify.KindEventReminder, b.UserID, content, b.Date, &firstErr)
	}

	return firstErr
}

func (r *Reminder) deliver(ctx context.Context, kind string, receiverID int64, content, date string, firstErr *error) {
	if err := r.store.SendSystemMessage(ctx, receiverID, content); err != nil {
		slog.ErrorContext(ctx, "Failed to store reminder", "receiver_id", receiverID, "error", err)
		if *firstErr == nil {
			*firstErr = err
		}
		return
	}
	if err := r.publisher.Publish(ctx, notify.Notification{
		Kind:       kind,
		ReceiverID: receiverID,
		Content:    content,
		Date:       date,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to publish reminder", "receiver_id", receiverID, "error", err)
		if *firstErr == nil {
			*firstErr = err
		}
	}
}

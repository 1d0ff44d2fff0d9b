package worker

import (
	"context"
	"log/slog"
	"time"
)

type Config struct {
	Name      string
	Interval  time.Duration
	Processor Processor
}

type Processor interface {
	Process(ctx context.Context) error
}

// Worker runs a Processor on a fixed interval until the context is
// cancelled. Processor errors are logged, never fatal.
type Worker struct {
	name      string
	interval  time.Duration
	processor Processor
}

func New(cfg Config) *Worker {
	return &Worker{
		name:      cfg.Name,
		interval:  cfg.Interval,
		processor: cfg.Processor,
	}
}

func (w *Worker) Run(ctx context.Context) {
	if w.interval <= 0 {
		slog.ErrorContext(ctx, "Worker not started, interval must be positive", "worker", w.name, "interval", w.interval)
		return
	}
	slog.InfoContext(ctx, "Worker started...", "worker", w.name, "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name)
			return
		case <-ticker.C:
			if err := w.processor.Process(ctx); err != nil {
				slog.ErrorContext(ctx, "Worker run failed", "worker", w.name, "error", err)
			}
		}
	}
}

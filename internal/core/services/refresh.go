// internal/core/services/refresh.go
package services

import (
	"context"
	"log/slog"
	"sync"
)

type refreshFlight struct {
	done chan struct{}
	err  error
}

// Refresher coalesces concurrent cache reloads: a refresh requested
// while one is in flight joins the running one instead of starting a
// second, so two Initialize calls can never race with snapshots taken
// at different times.
type Refresher struct {
	mu       sync.Mutex
	inflight *refreshFlight
	name     string
	run      func(ctx context.Context) error
	logger   *slog.Logger
}

// NewRefresher builds a refresher around run, which performs one full
// store reload.
func NewRefresher(name string, run func(ctx context.Context) error, logger *slog.Logger) *Refresher {
	return &Refresher{
		name:   name,
		run:    run,
		logger: logger.With(slog.String("refresher", name)),
	}
}

// Refresh performs a reload, or waits for the in-flight one and returns
// its outcome.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if f := r.inflight; f != nil {
		r.mu.Unlock()
		select {
		case <-f.done:
			return f.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f := &refreshFlight{done: make(chan struct{})}
	r.inflight = f
	r.mu.Unlock()

	f.err = r.run(ctx)

	r.mu.Lock()
	r.inflight = nil
	r.mu.Unlock()
	close(f.done)

	return f.err
}

// Trigger starts a refresh on a detached background goroutine without
// blocking the caller. Failures are logged, never propagated: the store
// keeps serving its previous snapshot.
func (r *Refresher) Trigger() {
	go func() {
		if err := r.Refresh(context.Background()); err != nil {
			r.logger.Warn("background cache refresh failed",
				slog.String("error", err.Error()))
			return
		}
		r.logger.Debug("background cache refresh completed")
	}()
}

package subscription

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/domain/repository"
)

// JobLister exposes the subset of store functionality the manager needs.
type JobLister interface {
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
}

// Manager fans filtered job snapshots out to subscribers. Each subscriber
// receives the current snapshot once after a fixed initial delay, then on
// every poll tick, and additionally right after any store write (via the
// change feed). A snapshot is therefore never staler than one poll interval,
// and writes are usually observed immediately.
type Manager struct {
	jobs         JobLister
	feed         repository.ChangeFeed
	initialDelay time.Duration
	pollInterval time.Duration
	logger       *slog.Logger

	runCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager constructs a running subscription manager.
func NewManager(jobs JobLister, feed repository.ChangeFeed, initialDelay, pollInterval time.Duration, logger *slog.Logger) *Manager {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		jobs:         jobs,
		feed:         feed,
		initialDelay: initialDelay,
		pollInterval: pollInterval,
		logger:       logger,
		runCtx:       ctx,
		cancel:       cancel,
	}
}

// Subscribe registers a callback for filtered job snapshots. The returned
// function cancels the subscription: no further callbacks are made, but a
// delivery already in flight is not interrupted.
func (m *Manager) Subscribe(filter model.JobFilter, fn func([]model.Job)) func() {
	subCtx, cancel := context.WithCancel(m.runCtx)
	m.wg.Add(1)
	go m.run(subCtx, filter, fn)
	return cancel
}

// Stop cancels every subscription and waits for their goroutines to finish.
func (m *Manager) Stop() {
	m.cancel()
	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context, filter model.JobFilter, fn func([]model.Job)) {
	defer m.wg.Done()

	initial := time.NewTimer(m.initialDelay)
	defer initial.Stop()
	select {
	case <-ctx.Done():
		return
	case <-initial.C:
	}
	m.deliver(ctx, filter, fn)

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()
	for {
		// Re-arm the watch before selecting so a write between deliveries is
		// never missed.
		watch := m.feed.Watch()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-watch:
		}
		m.deliver(ctx, filter, fn)
	}
}

func (m *Manager) deliver(ctx context.Context, filter model.JobFilter, fn func([]model.Job)) {
	jobs, err := m.jobs.List(ctx, filter)
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Error("subscription snapshot failed", slog.String("error", err.Error()))
		}
		return
	}
	fn(jobs)
}

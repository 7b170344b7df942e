package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Runner is one unit of periodic work.
type Runner interface {
	Name() string
	Run(ctx context.Context) error
}

// ErrAlreadyRunning is returned by Start when the scheduler is running.
var ErrAlreadyRunning = errors.New("scheduler already running")

const (
	stateStopped int32 = iota
	stateRunning
)

// Scheduler drives a Runner on a fixed interval, first run immediately.
// At most one loop exists per instance: Start transitions Stopped to
// Running with a compare-and-swap, so concurrent Starts cannot race a
// second loop into existence. Stop suppresses future ticks and waits for
// an in-flight run to finish; it never preempts one.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger

	// mu serializes Start and Stop so a Stop racing a Start always sees
	// the channels that Start created.
	mu     sync.Mutex
	state  atomic.Int32
	stopCh chan struct{}
	doneCh chan struct{}
}

func New(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger.With("runner", runner.Name()),
	}
}

// Running reports the current lifecycle state.
func (s *Scheduler) Running() bool {
	return s.state.Load() == stateRunning
}

// Start launches the timer loop in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CompareAndSwap(stateStopped, stateRunning) {
		return ErrAlreadyRunning
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.loop(ctx, s.stopCh, s.doneCh)
	return nil
}

// Stop cancels the timer and blocks until the loop has exited. Calling
// Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CompareAndSwap(stateRunning, stateStopped) {
		return
	}
	close(s.stopCh)
	<-s.doneCh
}

func (s *Scheduler) loop(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.state.Store(stateStopped)
			s.logger.Info("scheduler stopped", "reason", ctx.Err())
			return
		case <-stopCh:
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if err := s.runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("run failed", "error", err)
	}
}

package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/pkg/logger"
)

// Worker is one unit of periodic background work
type Worker interface {
	// Name returns worker name for logging
	Name() string
	// Run executes one iteration of work
	Run(ctx context.Context) error
}

// PeriodicWorker runs a Worker on a fixed interval until the context ends
type PeriodicWorker struct {
	worker   Worker
	interval time.Duration
	wg       sync.WaitGroup
}

// NewPeriodicWorker creates new periodic worker
func NewPeriodicWorker(worker Worker, interval time.Duration) *PeriodicWorker {
	return &PeriodicWorker{
		worker:   worker,
		interval: interval,
	}
}

// Start starts the worker loop
func (pw *PeriodicWorker) Start(ctx context.Context) {
	pw.wg.Add(1)
	go pw.run(ctx)
}

// Wait blocks until the worker loop has exited or the timeout elapses
func (pw *PeriodicWorker) Wait(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		pw.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("worker stopped", zap.String("worker", pw.worker.Name()))
	case <-time.After(timeout):
		logger.Warn("worker stop timeout", zap.String("worker", pw.worker.Name()))
	}
}

func (pw *PeriodicWorker) run(ctx context.Context) {
	defer pw.wg.Done()

	logger.Info("worker started",
		zap.String("worker", pw.worker.Name()),
		zap.Duration("interval", pw.interval),
	)

	// First iteration runs immediately, not after one interval
	if err := pw.worker.Run(ctx); err != nil {
		logger.Error("worker execution failed",
			zap.String("worker", pw.worker.Name()),
			zap.Error(err),
		)
	}

	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopping", zap.String("worker", pw.worker.Name()))
			return

		case <-ticker.C:
			if err := pw.worker.Run(ctx); err != nil {
				// Keep the loop alive; one bad iteration must not kill the worker
				logger.Error("worker execution failed",
					zap.String("worker", pw.worker.Name()),
					zap.Error(err),
				)
			}
		}
	}
}

// Group manages a set of periodic workers with a shared shutdown
type Group struct {
	workers []*PeriodicWorker
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
}

// NewGroup creates new worker group
func NewGroup(ctx context.Context) *Group {
	ctx, cancel := context.WithCancel(ctx)
	return &Group{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Add registers a worker with its interval
func (g *Group) Add(worker Worker, interval time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.workers = append(g.workers, NewPeriodicWorker(worker, interval))
}

// Start starts all registered workers
func (g *Group) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, w := range g.workers {
		w.Start(g.ctx)
	}
}

// Stop cancels all workers and waits for them to exit
func (g *Group) Stop(timeout time.Duration) {
	g.cancel()

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, w := range g.workers {
		w.Wait(timeout)
	}
}

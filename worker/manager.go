package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Worker is a long-running collector.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start runs all workers until ctx is cancelled. The first worker error
// cancels the others and is returned once every worker has exited.
func (m *Manager) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range m.workers {
		w := w
		g.Go(func() error {
			return w.Start(gctx)
		})
	}
	return g.Wait()
}

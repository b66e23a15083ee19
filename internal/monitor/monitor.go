// Package monitor polls the submission store and exports its state as
// Prometheus gauges.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/terra-clan/interview-coach/internal/metrics"
	"github.com/terra-clan/interview-coach/internal/storage"
)

// Monitor periodically checks the submission store
type Monitor struct {
	repo     storage.Repository
	interval time.Duration
}

// New creates a store monitor
func New(repo storage.Repository, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &Monitor{
		repo:     repo,
		interval: interval,
	}
}

// Start begins polling in a goroutine until ctx is cancelled
func (m *Monitor) Start(ctx context.Context) {
	go m.run(ctx)
}

func (m *Monitor) run(ctx context.Context) {
	slog.Info("store monitor started", "interval", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Poll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("store monitor stopped")
			return
		case <-ticker.C:
			m.Poll(ctx)
		}
	}
}

// Poll runs one check and updates the gauges
func (m *Monitor) Poll(ctx context.Context) {
	if err := m.repo.Ping(ctx); err != nil {
		metrics.StoreUp.Set(0)
		slog.Warn("submission store unreachable", "error", err)
		return
	}
	metrics.StoreUp.Set(1)

	n, err := m.repo.CountSolutions(ctx)
	if err != nil {
		slog.Error("failed to count solutions", "error", err)
		return
	}
	metrics.SolutionsStored.Set(float64(n))
	slog.Debug("store polled", "solutions", n)
}

// Package collector gathers readings of all tracked pairs into a snapshot.
package collector

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vadiminshakov/btcterm/internal/domain"
)

// ReadingProvider fetches a reading for a single pair. Implementations absorb
// their own failures and return a zero reading instead.
type ReadingProvider interface {
	GetReading(ctx context.Context, pair domain.TrackedPair) domain.Reading
}

// Collector builds a fresh snapshot every call.
type Collector struct {
	provider    ReadingProvider
	concurrency int
	logger      *zap.Logger
}

// NewCollector creates a collector. concurrency <= 1 fetches pairs one by one
// in pair order, larger values fan out to at most that many fetches at a time.
func NewCollector(provider ReadingProvider, concurrency int, logger *zap.Logger) *Collector {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{provider: provider, concurrency: concurrency, logger: logger}
}

// Collect returns a snapshot with exactly one entry per distinct pair, in pair order.
func (c *Collector) Collect(ctx context.Context, pairs []domain.TrackedPair) *domain.Snapshot {
	start := time.Now()
	snapshot := domain.NewSnapshot(pairs)

	readings := make([]domain.Reading, len(pairs))
	if c.concurrency == 1 {
		for i, pair := range pairs {
			readings[i] = c.provider.GetReading(ctx, pair)
		}
	} else {
		// each goroutine owns its slot, no locking needed
		var g errgroup.Group
		g.SetLimit(c.concurrency)
		for i, pair := range pairs {
			i, pair := i, pair
			g.Go(func() error {
				readings[i] = c.provider.GetReading(ctx, pair)
				return nil
			})
		}
		_ = g.Wait()
	}

	failed := 0
	for i, pair := range pairs {
		if !readings[i].OK {
			failed++
		}
		snapshot.Set(pair.ID(), readings[i])
	}

	c.logger.Debug("snapshot collected",
		zap.Int("pairs", snapshot.Len()),
		zap.Int("failed", failed),
		zap.Duration("took", time.Since(start)))

	return snapshot
}

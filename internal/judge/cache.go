package judge

import (
	"context"
	"sync"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

// Snapshot is one normalized upstream capture. Problems and contests
// always come from the same fetch so cross references stay consistent.
type Snapshot struct {
	Problems []domain.Problem
	Contests []domain.Contest
}

// ResultCache populates a Snapshot exactly once per client lifetime.
// Concurrent callers block on the winning fetch instead of racing it,
// and every caller observes the same result, error included.
type ResultCache struct {
	once     sync.Once
	snapshot Snapshot
	err      error
}

// Get returns the cached snapshot, running fetch on first use. A failed
// fetch is cached too; callers wanting a retry build a fresh client.
func (c *ResultCache) Get(ctx context.Context, fetch func(ctx context.Context) (Snapshot, error)) (Snapshot, error) {
	c.once.Do(func() {
		c.snapshot, c.err = fetch(ctx)
	})
	return c.snapshot, c.err
}

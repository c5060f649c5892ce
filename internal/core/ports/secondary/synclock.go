package secondary

import (
	"context"
	"time"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

// SyncLockRepository serializes update cycles per platform so two
// schedulers never sync the same platform at once.
type SyncLockRepository interface {
	// Acquire takes the platform lock for ttl. Returns false when
	// another holder has it.
	Acquire(ctx context.Context, platform domain.Platform, ttl time.Duration) (bool, error)

	// Release drops the platform lock.
	Release(ctx context.Context, platform domain.Platform) error

	// RecordRun stores the outcome of the latest update cycle.
	RecordRun(ctx context.Context, platform domain.Platform, status string, at time.Time) error

	// LastRun retrieves the latest recorded outcome, empty when none.
	LastRun(ctx context.Context, platform domain.Platform) (string, error)
}

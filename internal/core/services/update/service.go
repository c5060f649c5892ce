package update

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

// IUpdateService runs the fetch-normalize-persist cycle.
type IUpdateService interface {
	// SyncAll syncs every known platform. One platform failing does
	// not stop the others; the combined error reports all failures.
	SyncAll(ctx context.Context) error

	// SyncPlatform syncs a single platform under its sync lock.
	SyncPlatform(ctx context.Context, platform domain.Platform) error

	// LastRun reports the recorded outcome of the latest cycle,
	// empty when the platform has never synced.
	LastRun(ctx context.Context, platform domain.Platform) (string, error)
}

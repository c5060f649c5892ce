package contest

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

// IContestService defines the read API over synced contests.
type IContestService interface {
	// GetContest retrieves one contest with its problems, nil when absent.
	GetContest(ctx context.Context, id string) (*domain.Contest, error)

	// ListContests retrieves contests matching the condition.
	ListContests(ctx context.Context, cond secondary.ContestCondition) ([]domain.Contest, error)

	// ListCategories retrieves the distinct category names of a platform.
	ListCategories(ctx context.Context, platform domain.Platform) ([]string, error)
}

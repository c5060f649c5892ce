package secondary

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

type ContestRepository interface {
	// SaveBatches upserts contests in chunks, each chunk in its own
	// transaction, and refreshes contest_problems join rows.
	SaveBatches(ctx context.Context, contests []domain.Contest) error

	// GetContest retrieves a contest by canonical ID with its problems.
	GetContest(ctx context.Context, id string) (*domain.Contest, error)

	// GetContests retrieves contests matching the condition, problems
	// not attached.
	GetContests(ctx context.Context, cond ContestCondition) ([]domain.Contest, error)

	// GetCategories retrieves the distinct categories seen per platform.
	GetCategories(ctx context.Context, platform domain.Platform) ([]string, error)
}

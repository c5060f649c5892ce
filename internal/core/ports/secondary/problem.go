package secondary

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

type ProblemRepository interface {
	// SaveBatches upserts problems in chunks, each chunk in its own
	// transaction. Tag dictionary rows and join rows ride along.
	SaveBatches(ctx context.Context, problems []domain.Problem) error

	// GetProblem retrieves a problem by canonical ID, tags included.
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)

	// GetProblems retrieves problems matching the condition.
	GetProblems(ctx context.Context, cond ProblemCondition) ([]domain.Problem, error)

	// GetTags retrieves the full tag dictionary.
	GetTags(ctx context.Context) ([]domain.TechnicalTag, error)
}

package problem

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

// IProblemService defines the read API over synced problems.
type IProblemService interface {
	// GetProblem retrieves one problem by canonical ID, nil when absent.
	GetProblem(ctx context.Context, id string) (*domain.Problem, error)

	// ListProblems retrieves problems matching the condition.
	ListProblems(ctx context.Context, cond secondary.ProblemCondition) ([]domain.Problem, error)

	// ListTags retrieves the tag dictionary.
	ListTags(ctx context.Context) ([]domain.TechnicalTag, error)
}

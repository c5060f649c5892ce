package secondary

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/domain"
)

// JudgeClient fetches and normalizes one platform's data. Problems and
// contests come from the same upstream snapshot, so implementations
// back both getters with a shared single-flight cache.
//
// Submission getters return domain.ErrUnsupportedOperation on platforms
// without a usable submission API.
type JudgeClient interface {
	Platform() domain.Platform

	GetProblems(ctx context.Context) ([]domain.Problem, error)
	GetContests(ctx context.Context) ([]domain.Contest, error)

	GetRecentSubmissions(ctx context.Context) ([]domain.Submission, error)
	GetUserSubmissions(ctx context.Context, cond SubmissionCondition) ([]domain.Submission, error)
}

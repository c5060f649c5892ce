package problem

import (
	"context"
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

var _ IProblemService = (*ProblemService)(nil)

type ProblemService struct {
	problemRepo secondary.ProblemRepository
	logger      primary.Logger
}

func NewProblemService(problemRepo secondary.ProblemRepository, logger primary.Logger) *ProblemService {
	return &ProblemService{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (s *ProblemService) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	problem, err := s.problemRepo.GetProblem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get problem: %w", err)
	}
	return problem, nil
}

func (s *ProblemService) ListProblems(ctx context.Context, cond secondary.ProblemCondition) ([]domain.Problem, error) {
	problems, err := s.problemRepo.GetProblems(ctx, cond)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}

func (s *ProblemService) ListTags(ctx context.Context) ([]domain.TechnicalTag, error) {
	tags, err := s.problemRepo.GetTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

package contest

import (
	"context"
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

var _ IContestService = (*ContestService)(nil)

type ContestService struct {
	contestRepo secondary.ContestRepository
	logger      primary.Logger
}

func NewContestService(contestRepo secondary.ContestRepository, logger primary.Logger) *ContestService {
	return &ContestService{
		contestRepo: contestRepo,
		logger:      logger,
	}
}

func (s *ContestService) GetContest(ctx context.Context, id string) (*domain.Contest, error) {
	contest, err := s.contestRepo.GetContest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get contest: %w", err)
	}
	return contest, nil
}

func (s *ContestService) ListContests(ctx context.Context, cond secondary.ContestCondition) ([]domain.Contest, error) {
	contests, err := s.contestRepo.GetContests(ctx, cond)
	if err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}
	return contests, nil
}

func (s *ContestService) ListCategories(ctx context.Context, platform domain.Platform) ([]string, error) {
	if !platform.IsKnown() {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
	categories, err := s.contestRepo.GetCategories(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

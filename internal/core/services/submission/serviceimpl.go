package submission

import (
	"context"
	"fmt"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

// ClientProvider hands out a judge client per platform.
type ClientProvider interface {
	Client(platform domain.Platform) (secondary.JudgeClient, error)
}

var _ ISubmissionService = (*SubmissionService)(nil)

type SubmissionService struct {
	clients ClientProvider
	logger  primary.Logger
}

func NewSubmissionService(clients ClientProvider, logger primary.Logger) *SubmissionService {
	return &SubmissionService{
		clients: clients,
		logger:  logger,
	}
}

func (s *SubmissionService) GetRecentSubmissions(ctx context.Context, platform domain.Platform) ([]domain.Submission, error) {
	client, err := s.clients.Client(platform)
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}

	submissions, err := client.GetRecentSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recent submissions: %w", err)
	}
	return submissions, nil
}

func (s *SubmissionService) GetUserSubmissions(ctx context.Context, platform domain.Platform, cond secondary.SubmissionCondition) ([]domain.Submission, error) {
	if cond.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	client, err := s.clients.Client(platform)
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}

	submissions, err := client.GetUserSubmissions(ctx, cond)
	if err != nil {
		return nil, fmt.Errorf("fetch user submissions: %w", err)
	}
	return submissions, nil
}

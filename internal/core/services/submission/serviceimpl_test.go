package submission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Warn(msg string, args ...interface{})  {}

type stubClient struct {
	platform    domain.Platform
	recent      []domain.Submission
	byUser      []domain.Submission
	lastCond    secondary.SubmissionCondition
	unsupported bool
}

func (c *stubClient) Platform() domain.Platform { return c.platform }

func (c *stubClient) GetProblems(ctx context.Context) ([]domain.Problem, error) { return nil, nil }

func (c *stubClient) GetContests(ctx context.Context) ([]domain.Contest, error) { return nil, nil }

func (c *stubClient) GetRecentSubmissions(ctx context.Context) ([]domain.Submission, error) {
	if c.unsupported {
		return nil, domain.ErrUnsupportedOperation
	}
	return c.recent, nil
}

func (c *stubClient) GetUserSubmissions(ctx context.Context, cond secondary.SubmissionCondition) ([]domain.Submission, error) {
	if c.unsupported {
		return nil, domain.ErrUnsupportedOperation
	}
	c.lastCond = cond
	return c.byUser, nil
}

type stubProvider struct {
	client *stubClient
}

func (p *stubProvider) Client(platform domain.Platform) (secondary.JudgeClient, error) {
	return p.client, nil
}

func TestGetUserSubmissions_PassesCondition(t *testing.T) {
	client := &stubClient{
		platform: domain.PlatformAtcoder,
		byUser: []domain.Submission{
			domain.ReconstructSubmission(domain.PlatformAtcoder, "42", "tourist", "C++ (GCC 9.2.1)",
				domain.VerdictAccepted, nil, nil, nil, 1_600_000_000, domain.SubmissionProblem{}),
		},
	}
	svc := NewSubmissionService(&stubProvider{client: client}, noopLogger{})

	got, err := svc.GetUserSubmissions(context.Background(), domain.PlatformAtcoder, secondary.SubmissionCondition{
		UserID:     "tourist",
		FromSecond: 1_500_000_000,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "atcoder_42", got[0].ID)
	assert.Equal(t, "tourist", client.lastCond.UserID)
	assert.Equal(t, int64(1_500_000_000), client.lastCond.FromSecond)
}

func TestGetUserSubmissions_RequiresUserID(t *testing.T) {
	svc := NewSubmissionService(&stubProvider{client: &stubClient{}}, noopLogger{})

	_, err := svc.GetUserSubmissions(context.Background(), domain.PlatformAtcoder, secondary.SubmissionCondition{})
	require.Error(t, err)
}

func TestGetRecentSubmissions_UnsupportedPlatformSurfaces(t *testing.T) {
	svc := NewSubmissionService(&stubProvider{client: &stubClient{unsupported: true}}, noopLogger{})

	_, err := svc.GetRecentSubmissions(context.Background(), domain.PlatformYukicoder)
	require.ErrorIs(t, err, domain.ErrUnsupportedOperation)
}

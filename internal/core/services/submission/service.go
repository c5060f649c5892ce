package submission

import (
	"context"

	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

// ISubmissionService reads submissions straight from the platforms.
// Nothing is persisted; every call hits the upstream API.
type ISubmissionService interface {
	// GetRecentSubmissions retrieves the platform's recent public
	// submissions. domain.ErrUnsupportedOperation when the platform
	// has no such API.
	GetRecentSubmissions(ctx context.Context, platform domain.Platform) ([]domain.Submission, error)

	// GetUserSubmissions retrieves one user's submissions. Page
	// semantics are platform specific.
	GetUserSubmissions(ctx context.Context, platform domain.Platform, cond secondary.SubmissionCondition) ([]domain.Submission, error)
}

package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/judgehub-2025.net/internal/config"
	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

const (
	runStatusSuccess = "success"
	runStatusFailed  = "failed"
	runStatusSkipped = "skipped"
)

// ErrSyncInProgress reports that another holder owns the platform lock.
var ErrSyncInProgress = errors.New("sync already in progress")

// ClientProvider hands out a fresh judge client per platform. Fresh
// means a new populate-once cache, so every cycle refetches upstream.
type ClientProvider interface {
	Client(platform domain.Platform) (secondary.JudgeClient, error)
}

var _ IUpdateService = (*UpdateService)(nil)

// UpdateService implements the IUpdateService interface.
type UpdateService struct {
	clients     ClientProvider
	problemRepo secondary.ProblemRepository
	contestRepo secondary.ContestRepository
	syncLock    secondary.SyncLockRepository
	logger      primary.Logger
	lockTTL     time.Duration
}

// NewUpdateService creates a new update service.
func NewUpdateService(
	clients ClientProvider,
	problemRepo secondary.ProblemRepository,
	contestRepo secondary.ContestRepository,
	syncLock secondary.SyncLockRepository,
	logger primary.Logger,
	cfg *config.SyncSvcCfg,
) *UpdateService {
	lockTTL := 30 * time.Minute
	if cfg != nil && cfg.LockTTL > 0 {
		lockTTL = cfg.LockTTL
	}
	return &UpdateService{
		clients:     clients,
		problemRepo: problemRepo,
		contestRepo: contestRepo,
		syncLock:    syncLock,
		logger:      logger,
		lockTTL:     lockTTL,
	}
}

// SyncAll runs every platform in sequence. Platforms are isolated: a
// failing platform is recorded and the cycle moves on.
func (s *UpdateService) SyncAll(ctx context.Context) error {
	var errsAll []error
	for _, platform := range domain.AllPlatforms() {
		if err := s.SyncPlatform(ctx, platform); err != nil {
			if errors.Is(err, ErrSyncInProgress) {
				continue
			}
			errsAll = append(errsAll, fmt.Errorf("%s: %w", platform, err))
		}
	}
	return errors.Join(errsAll...)
}

func (s *UpdateService) SyncPlatform(ctx context.Context, platform domain.Platform) error {
	acquired, err := s.syncLock.Acquire(ctx, platform, s.lockTTL)
	if err != nil {
		return fmt.Errorf("acquire sync lock: %w", err)
	}
	if !acquired {
		s.logger.Info("Sync already in progress, skipping", "platform", platform)
		_ = s.syncLock.RecordRun(ctx, platform, runStatusSkipped, time.Now())
		return ErrSyncInProgress
	}
	defer func() {
		if err := s.syncLock.Release(ctx, platform); err != nil {
			s.logger.Error("Failed to release sync lock", "platform", platform, "error", err)
		}
	}()

	if err := s.syncPlatform(ctx, platform); err != nil {
		s.logger.Error("Platform sync failed", "platform", platform, "error", err)
		_ = s.syncLock.RecordRun(ctx, platform, runStatusFailed, time.Now())
		return err
	}

	if err := s.syncLock.RecordRun(ctx, platform, runStatusSuccess, time.Now()); err != nil {
		s.logger.Error("Failed to record sync run", "platform", platform, "error", err)
	}
	return nil
}

// syncPlatform fetches one platform snapshot and persists it. Contests
// go first so problem rows never reference a missing contest.
func (s *UpdateService) syncPlatform(ctx context.Context, platform domain.Platform) error {
	client, err := s.clients.Client(platform)
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	s.logger.Info("Starting platform sync", "platform", platform)

	contests, err := client.GetContests(ctx)
	if err != nil {
		return fmt.Errorf("fetch contests: %w", err)
	}
	problems, err := client.GetProblems(ctx)
	if err != nil {
		return fmt.Errorf("fetch problems: %w", err)
	}

	if err := s.contestRepo.SaveBatches(ctx, contests); err != nil {
		return fmt.Errorf("save contests: %w", err)
	}
	if err := s.problemRepo.SaveBatches(ctx, problems); err != nil {
		return fmt.Errorf("save problems: %w", err)
	}

	s.logger.Info("Platform sync finished",
		"platform", platform,
		"contests", len(contests),
		"problems", len(problems))
	return nil
}

func (s *UpdateService) LastRun(ctx context.Context, platform domain.Platform) (string, error) {
	return s.syncLock.LastRun(ctx, platform)
}

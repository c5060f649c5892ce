package synclockport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/core/ports/secondary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

const (
	lockKeyPrefix    = "sync:lock:"
	lastRunKeyPrefix = "sync:lastrun:"
	lastRunRetention = 30 * 24 * time.Hour
)

// runRecord is the stored shape of one update cycle outcome.
type runRecord struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// SyncLockRepository implements the SyncLockRepository interface with Redis.
// Locks rely on SET NX with a TTL, so a crashed holder frees the
// platform once the TTL lapses.
type SyncLockRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

var _ secondary.SyncLockRepository = (*SyncLockRepository)(nil)

func NewSyncLockRepository(redisClient *redis.Client, logger primary.Logger) *SyncLockRepository {
	return &SyncLockRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (r *SyncLockRepository) Acquire(ctx context.Context, platform domain.Platform, ttl time.Duration) (bool, error) {
	lockKey := fmt.Sprintf("%s%s", lockKeyPrefix, platform)
	acquired, err := r.redisClient.SetNX(ctx, lockKey, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		r.logger.Error("Failed to acquire sync lock", "platform", platform, "error", err)
		return false, fmt.Errorf("failed to acquire sync lock for %s: %w", platform, err)
	}
	return acquired, nil
}

func (r *SyncLockRepository) Release(ctx context.Context, platform domain.Platform) error {
	lockKey := fmt.Sprintf("%s%s", lockKeyPrefix, platform)
	if err := r.redisClient.Del(ctx, lockKey).Err(); err != nil {
		r.logger.Error("Failed to release sync lock", "platform", platform, "error", err)
		return fmt.Errorf("failed to release sync lock for %s: %w", platform, err)
	}
	return nil
}

func (r *SyncLockRepository) RecordRun(ctx context.Context, platform domain.Platform, status string, at time.Time) error {
	record, err := json.Marshal(runRecord{Status: status, At: at.UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}

	runKey := fmt.Sprintf("%s%s", lastRunKeyPrefix, platform)
	if err := r.redisClient.Set(ctx, runKey, record, lastRunRetention).Err(); err != nil {
		r.logger.Error("Failed to record sync run", "platform", platform, "error", err)
		return fmt.Errorf("failed to record sync run for %s: %w", platform, err)
	}
	return nil
}

func (r *SyncLockRepository) LastRun(ctx context.Context, platform domain.Platform) (string, error) {
	runKey := fmt.Sprintf("%s%s", lastRunKeyPrefix, platform)
	raw, err := r.redisClient.Get(ctx, runKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		r.logger.Error("Failed to get last sync run", "platform", platform, "error", err)
		return "", fmt.Errorf("failed to get last sync run for %s: %w", platform, err)
	}

	var record runRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return "", fmt.Errorf("failed to unmarshal run record: %w", err)
	}
	return fmt.Sprintf("%s at %s", record.Status, record.At.Format(time.RFC3339)), nil
}

package dailystatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dailystatuserrors "go-academy/internal/dailystatus/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultBoardCacheTTL = 10 * time.Minute

var ErrCacheMiss = errors.New("cache miss")

// KVStore is the subset of Redis the board cache needs.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

type RedisKVStore struct {
	client *redis.Client
}

func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

func (r *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

func (r *RedisKVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func BoardKey(tenantID, dayKey string) string {
	return fmt.Sprintf("attendance:board:%s:%s", tenantID, dayKey)
}

// BoardCache stores rendered boards for readers that should not hit the database.
// It is a read model only; the attendance table stays the source of truth.
type BoardCache struct {
	kv     KVStore
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewBoardCache(kv KVStore, ttl time.Duration, logger *zap.Logger) *BoardCache {
	if ttl <= 0 {
		ttl = DefaultBoardCacheTTL
	}
	if logger == nil {
		logger = zap.L()
	}
	return &BoardCache{
		kv:     kv,
		ttl:    ttl,
		logger: logger.Named("dailystatus.cache"),
		now:    time.Now,
	}
}

func (c *BoardCache) Put(ctx context.Context, tenantID string, board BoardResponse) error {
	board.GeneratedAt = c.now().UTC().Format(time.RFC3339)
	key := BoardKey(tenantID, board.Date)

	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}
	if err := c.kv.Set(ctx, key, string(data), c.ttl); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	c.logger.Debug("board cache updated",
		zap.String("tenant_id", tenantID),
		zap.String("key", key),
		zap.Int("students", board.TotalStudents),
	)
	return nil
}

func (c *BoardCache) Get(ctx context.Context, tenantID, dayKey string) (BoardResponse, error) {
	raw, err := c.kv.Get(ctx, BoardKey(tenantID, dayKey))
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return BoardResponse{}, dailystatuserrors.ErrSnapshotNotFound
		}
		return BoardResponse{}, err
	}

	var board BoardResponse
	if err := json.Unmarshal([]byte(raw), &board); err != nil {
		return BoardResponse{}, fmt.Errorf("failed to unmarshal board: %w", err)
	}
	return board, nil
}

// BoardRefresher rebuilds a tenant's board for one day from the store and caches it.
type BoardRefresher struct {
	source EventSource
	roster Roster
	cache  *BoardCache
	loc    *time.Location
}

func NewBoardRefresher(source EventSource, roster Roster, cache *BoardCache, loc *time.Location) *BoardRefresher {
	return &BoardRefresher{source: source, roster: roster, cache: cache, loc: loc}
}

func (r *BoardRefresher) Refresh(ctx context.Context, tenantID, dayKey string) error {
	snap, err := Compute(ctx, r.source, r.roster, tenantID, dayKey)
	if err != nil {
		return err
	}
	return r.cache.Put(ctx, tenantID, MapSnapshot(snap, r.loc))
}

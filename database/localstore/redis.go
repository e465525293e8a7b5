package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"hobyhub/models"
	"hobyhub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore persists values in the store Redis DB.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) error {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read key %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to decode key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Set(ctx context.Context, key string, val any) error {
	return s.SetTTL(ctx, key, val, 0)
}

func (s *RedisStore) SetTTL(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Migrate upgrades persisted data to the current schema version. Version 0
// stored favorites as a bare activity array; version 1 keys them by id.
func (s *RedisStore) Migrate(ctx context.Context) error {
	logger := utils.GetLogger()

	version := 0
	raw, err := s.client.Get(ctx, SchemaVersionKey).Result()
	if err == nil {
		version, _ = strconv.Atoi(raw)
	} else if err != redis.Nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if err := ensureSupportedSchema(version); err != nil {
		return err
	}
	if version == CurrentSchemaVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateFavoritesToMap(ctx); err != nil {
			return err
		}
	}

	if err := s.client.Set(ctx, SchemaVersionKey, strconv.Itoa(CurrentSchemaVersion), 0).Err(); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	logger.Sugar().Infof("localstore migrated from schema v%d to v%d", version, CurrentSchemaVersion)
	return nil
}

func (s *RedisStore) migrateFavoritesToMap(ctx context.Context) error {
	logger := utils.GetLogger()
	iter := s.client.Scan(ctx, 0, KeyFavorites+":*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.client.Get(ctx, key).Result()
		if err != nil {
			continue
		}

		var legacy []models.Activity
		if err := json.Unmarshal([]byte(data), &legacy); err != nil {
			// Already in map form.
			continue
		}
		favorites := make(models.FavoritesMap, len(legacy))
		for _, act := range legacy {
			favorites[act.ID] = act
		}
		if err := s.Set(ctx, key, favorites); err != nil {
			logger.Error("Failed to migrate favorites key", zap.String("key", key), zap.Error(err))
			return err
		}
	}
	return iter.Err()
}

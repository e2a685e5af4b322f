package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps each collection blob in a single Redis string key.
type RedisStore struct {
	client *redis.Client
	log    *logrus.Logger
	prefix string
	quota  int
}

func NewRedisStore(client *redis.Client, log *logrus.Logger, prefix string, quota int) *RedisStore {
	return &RedisStore{
		client: client,
		log:    log,
		prefix: prefix,
		quota:  quota,
	}
}

func (s *RedisStore) Read(ctx context.Context, key string) (string, bool, error) {
	blob, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		s.log.Warnf("Failed to read %s from Redis: %+v", key, err)
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}

	s.log.Debugf("Read %s from Redis: %d bytes", key, len(blob))
	return blob, true, nil
}

func (s *RedisStore) Write(ctx context.Context, key string, blob string) error {
	if err := checkQuota(key, blob, s.quota); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.prefix+key, blob, 0).Err(); err != nil {
		s.log.Warnf("Failed to write %s to Redis: %+v", key, err)
		// maxmemory reached with a noeviction policy
		if strings.HasPrefix(err.Error(), "OOM") {
			return fmt.Errorf("redis set %s: %v: %w", key, err, ErrQuotaExceeded)
		}
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	s.log.Debugf("Wrote %s to Redis: %d bytes", key, len(blob))
	return nil
}

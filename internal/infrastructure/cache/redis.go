package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"matchmaker/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultKeyPrefix = "matchmaker:limiter:"

// RedisStorage is a fiber.Storage over Redis shared by every server instance.
// When Redis is unreachable it behaves as an empty store: reads miss and
// writes are dropped, so callers degrade instead of failing.
type RedisStorage struct {
	client *redis.Client
	prefix string
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedisStorage(cfg config.RedisConfig, logger *zap.Logger) *RedisStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &RedisStorage{prefix: defaultKeyPrefix, logger: logger}
	if !cfg.Enabled() {
		logger.Info("redis disabled, limiter state is per instance")
		return s
	}

	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing shared limiter storage", zap.Error(err))
		_ = client.Close()
		return s
	}

	s.client = client
	return s
}

// Available reports whether a live Redis client backs the storage.
func (s *RedisStorage) Available() bool {
	return s != nil && s.client != nil
}

func (s *RedisStorage) warnUnavailableOnce(err error) {
	if s.warnedUnavailable.CompareAndSwap(false, true) {
		s.logger.Warn("redis unavailable, bypassing shared limiter storage", zap.Error(err))
	}
}

func (s *RedisStorage) key(k string) string {
	return s.prefix + k
}

func (s *RedisStorage) Ping(ctx context.Context) error {
	if !s.Available() {
		return errors.New("redis unavailable")
	}
	return s.client.Ping(ctx).Err()
}

func (s *RedisStorage) GetWithContext(ctx context.Context, key string) ([]byte, error) {
	if !s.Available() || key == "" {
		return nil, nil
	}
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.warnUnavailableOnce(err)
		}
		return nil, nil
	}
	return b, nil
}

func (s *RedisStorage) Get(key string) ([]byte, error) {
	return s.GetWithContext(context.Background(), key)
}

func (s *RedisStorage) SetWithContext(ctx context.Context, key string, val []byte, exp time.Duration) error {
	if !s.Available() || key == "" || len(val) == 0 {
		return nil
	}
	if exp < 0 {
		exp = 0
	}
	if err := s.client.Set(ctx, s.key(key), val, exp).Err(); err != nil {
		s.warnUnavailableOnce(err)
	}
	return nil
}

func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.SetWithContext(context.Background(), key, val, exp)
}

func (s *RedisStorage) DeleteWithContext(ctx context.Context, key string) error {
	if !s.Available() || key == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.warnUnavailableOnce(err)
	}
	return nil
}

func (s *RedisStorage) Delete(key string) error {
	return s.DeleteWithContext(context.Background(), key)
}

// ResetWithContext removes every key under the storage prefix.
func (s *RedisStorage) ResetWithContext(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := s.client.Del(ctx, k).Err(); err != nil {
			s.logger.Warn("redis delete failed", zap.String("key", k), zap.Error(err))
		}
	}
	return iter.Err()
}

func (s *RedisStorage) Reset() error {
	return s.ResetWithContext(context.Background())
}

func (s *RedisStorage) Close() error {
	if !s.Available() {
		return nil
	}
	return s.client.Close()
}

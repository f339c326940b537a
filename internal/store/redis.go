package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tahcohcat/puravida-web/config"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisStore writes each key under "<prefix>:<key>" with no expiry.
type RedisStore struct {
	cmd     cmdable
	raw     *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisStore connects and verifies the server answers a PING.
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address is required")
	}
	raw := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	s := newRedisStore(raw, cfg.Prefix, time.Duration(cfg.Timeout)*time.Second)
	s.raw = raw

	ctx, cancel := s.ctx()
	defer cancel()
	if err := raw.Ping(ctx).Err(); err != nil {
		raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return s, nil
}

func newRedisStore(cmd cmdable, prefix string, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &RedisStore{cmd: cmd, prefix: prefix, timeout: timeout}
}

func (s *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *RedisStore) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

func (s *RedisStore) Get(key string) ([]byte, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	v, err := s.cmd.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Put(key string, value []byte) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if err := s.cmd.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := s.ctx()
	defer cancel()
	keys := make([]string, 0, len(Keys))
	for _, k := range Keys {
		keys = append(keys, s.key(k))
	}
	if err := s.cmd.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis clear: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}

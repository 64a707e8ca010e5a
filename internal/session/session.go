// Package session keeps authenticated users in Redis, keyed by an opaque id
// that travels in the session cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"synergy/internal/config"
	"synergy/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var ErrNotFound = errors.New("session not found")

// NewClient accepts either a redis:// URL or a bare host:port address.
func NewClient(ctx context.Context, cfg *config.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Address)
	if err != nil {
		opts = &redis.Options{
			Addr: cfg.Address,
		}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	opts.PoolSize = 50
	opts.MinIdleConns = 5
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

type Store struct {
	client *redis.Client
	ttl    time.Duration
	newID  func() string
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		newID:  uuid.NewString,
	}
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) Create(ctx context.Context, user models.User) (string, error) {
	const op = "session.Create"

	data, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id := s.newID()
	if err = s.client.Set(ctx, keyPrefix+id, string(data), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*models.User, error) {
	const op = "session.Get"

	if id == "" {
		return nil, ErrNotFound
	}

	data, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("%s: corrupted session: %w", op, err)
	}

	return &user, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	const op = "session.Delete"

	if id == "" {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

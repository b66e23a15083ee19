package storage

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/terra-clan/interview-coach/internal/models"
)

// DefaultRedisKey is the list key used when none is configured
const DefaultRedisKey = "interview-coach:solutions"

// RedisRepository stores solutions as JSON entries of a single Redis
// list. RPUSH is atomic, so appends need no client-side locking.
type RedisRepository struct {
	client *redis.Client
	key    string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	Key      string
}

// NewRedisRepository connects to Redis and verifies the connection
func NewRedisRepository(ctx context.Context, cfg RedisConfig) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	return &RedisRepository{client: client, key: key}, nil
}

// AppendSolution pushes the encoded solution onto the tail of the list
func (r *RedisRepository) AppendSolution(ctx context.Context, s *models.Solution) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal solution: %w", err)
	}

	if err := r.client.RPush(ctx, r.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append solution: %w", err)
	}
	return nil
}

// ListSolutions reads the whole list in insertion order
func (r *RedisRepository) ListSolutions(ctx context.Context) ([]models.Solution, error) {
	entries, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}

	solutions := make([]models.Solution, 0, len(entries))
	for i, entry := range entries {
		var s models.Solution
		if err := json.Unmarshal([]byte(entry), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal solution %d: %w", i, err)
		}
		solutions = append(solutions, s)
	}

	return solutions, nil
}

// CountSolutions returns the list length
func (r *RedisRepository) CountSolutions(ctx context.Context) (int, error) {
	n, err := r.client.LLen(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}
	return int(n), nil
}

// Ping verifies Redis connectivity
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

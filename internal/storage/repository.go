package storage

import (
	"context"
	"fmt"

	"github.com/terra-clan/interview-coach/internal/models"
)

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Repository is the append-only submission store. Implementations must
// make AppendSolution atomic with respect to other appends and reads: a
// reader sees the store either before or after an append, never between.
type Repository interface {
	// AppendSolution records a solution. There is no update or delete.
	AppendSolution(ctx context.Context, s *models.Solution) error

	// ListSolutions returns every recorded solution in insertion order
	ListSolutions(ctx context.Context) ([]models.Solution, error)

	// CountSolutions returns the number of recorded solutions
	CountSolutions(ctx context.Context) (int, error)

	// Health
	Ping(ctx context.Context) error
	Close() error
}

// Options selects and configures a backend
type Options struct {
	Backend string

	PostgresDSN  string
	MaxOpenConns int32
	MaxIdleConns int32

	RedisAddress  string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

// Open creates the repository named by opts.Backend. An empty backend
// selects the in-memory store.
func Open(ctx context.Context, opts Options) (Repository, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryRepository(), nil
	case BackendPostgres:
		if err := MigrateFromDSN(ctx, opts.PostgresDSN); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewPostgresRepository(ctx, PostgresConfig{
			DSN:          opts.PostgresDSN,
			MaxOpenConns: opts.MaxOpenConns,
			MaxIdleConns: opts.MaxIdleConns,
		})
	case BackendRedis:
		return NewRedisRepository(ctx, RedisConfig{
			Address:  opts.RedisAddress,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
			Key:      opts.RedisKey,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %q", opts.Backend)
	}
}

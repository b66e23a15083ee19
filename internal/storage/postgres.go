package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/terra-clan/interview-coach/internal/models"
)

// PostgresRepository implements Repository using PostgreSQL
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int32
	MaxIdleConns int32
	MaxLifetime  time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	} else {
		poolConfig.MaxConns = 10
	}

	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	} else {
		poolConfig.MinConns = 1
	}

	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	} else {
		poolConfig.MaxConnLifetime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the connection pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// AppendSolution inserts a solution row. The BIGSERIAL seq column fixes
// insertion order.
func (r *PostgresRepository) AppendSolution(ctx context.Context, s *models.Solution) error {
	query := `
		INSERT INTO solutions (submission_id, question_id, solution, time_taken, correct, hint1_used, hint2_used, hint3_used, submitted_at)
		VALUES (CAST($1::text AS uuid), $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		s.SubmissionID,
		s.ID,
		s.Solution,
		s.Time,
		s.Correct,
		s.Hint1Used,
		s.Hint2Used,
		s.Hint3Used,
		s.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert solution: %w", err)
	}

	return nil
}

// ListSolutions returns all solutions ordered by insertion
func (r *PostgresRepository) ListSolutions(ctx context.Context) ([]models.Solution, error) {
	query := `
		SELECT submission_id::text, question_id, solution, time_taken, correct, hint1_used, hint2_used, hint3_used, submitted_at
		FROM solutions
		ORDER BY seq ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	defer rows.Close()

	solutions, err := pgx.CollectRows(rows, scanSolution)
	if err != nil {
		return nil, fmt.Errorf("failed to scan solutions: %w", err)
	}
	if solutions == nil {
		solutions = []models.Solution{}
	}

	return solutions, nil
}

// CountSolutions returns the number of rows in the solutions table
func (r *PostgresRepository) CountSolutions(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count solutions: %w", err)
	}
	return n, nil
}

func scanSolution(row pgx.CollectableRow) (models.Solution, error) {
	var s models.Solution
	err := row.Scan(
		&s.SubmissionID,
		&s.ID,
		&s.Solution,
		&s.Time,
		&s.Correct,
		&s.Hint1Used,
		&s.Hint2Used,
		&s.Hint3Used,
		&s.SubmittedAt,
	)
	return s, err
}

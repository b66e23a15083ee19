// Package questions serves catalog lookups and records submitted solutions.
package questions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/terra-clan/interview-coach/internal/catalog"
	"github.com/terra-clan/interview-coach/internal/metrics"
	"github.com/terra-clan/interview-coach/internal/models"
	"github.com/terra-clan/interview-coach/internal/storage"
)

// Common errors
var (
	ErrInvalidID        = errors.New("invalid question id")
	ErrQuestionNotFound = errors.New("question not found")
)

// Service is the question lookup and submission surface used by the API
type Service struct {
	catalog *catalog.Catalog
	repo    storage.Repository
	now     func() time.Time
	newID   func() string
}

// NewService creates a Service bound to the SWE catalog for its lifetime
func NewService(repo storage.Repository) (*Service, error) {
	cat, err := catalog.ForRole(models.RoleSWE)
	if err != nil {
		return nil, fmt.Errorf("failed to load SWE catalog: %w", err)
	}
	return &Service{
		catalog: cat,
		repo:    repo,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}, nil
}

// GetQuestionByID returns the SWE question at the zero-based position id.
// The id is a position, not a match against question ids.
func (s *Service) GetQuestionByID(id string) (models.Question, error) {
	index, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	q, ok := s.catalog.At(index)
	if !ok {
		return models.Question{}, fmt.Errorf("%w: index %d of %d", ErrQuestionNotFound, index, s.catalog.Len())
	}
	return q, nil
}

// SubmitAnswer appends a solution to the store and returns it as
// recorded. Nothing about the solution is validated; the question id is
// taken from pathID only when the body carries none.
func (s *Service) SubmitAnswer(ctx context.Context, pathID string, solution models.Solution) (models.Solution, error) {
	accepted := solution.Clone()
	if accepted.ID == "" {
		accepted.ID = pathID
	}
	accepted.SubmissionID = s.newID()
	accepted.SubmittedAt = s.now().UTC()

	if err := s.repo.AppendSolution(ctx, &accepted); err != nil {
		metrics.SubmissionErrors.Inc()
		return models.Solution{}, fmt.Errorf("failed to record solution: %w", err)
	}
	metrics.RecordSubmission(accepted.HintsUsed())

	slog.Info("solution recorded",
		"submission_id", accepted.SubmissionID,
		"question_id", accepted.ID,
		"hints_used", accepted.HintsUsed(),
	)

	return accepted, nil
}

// GetSolutions returns every recorded solution in submission order
func (s *Service) GetSolutions(ctx context.Context) ([]models.Solution, error) {
	solutions, err := s.repo.ListSolutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	if solutions == nil {
		solutions = []models.Solution{}
	}
	return solutions, nil
}

// ListByRole returns the catalog of role in catalog order
func (s *Service) ListByRole(role models.Role) ([]models.Question, error) {
	cat, err := catalog.ForRole(role)
	if err != nil {
		return nil, err
	}
	return cat.Questions(), nil
}

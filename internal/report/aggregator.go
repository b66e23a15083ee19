// Package report assembles performance reports from the submission store.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/terra-clan/interview-coach/internal/models"
	"github.com/terra-clan/interview-coach/internal/storage"
)

// DefaultRole is used when the caller names no role or an unknown one
const DefaultRole = models.RoleSWE

// Aggregator builds reports. It only reads the store.
type Aggregator struct {
	repo storage.Repository
}

// NewAggregator creates an Aggregator over repo
func NewAggregator(repo storage.Repository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Build returns a report for roleParam carrying every recorded solution.
// Weak concepts and suggested difficulty are left empty; callers fill
// them in before asking for recommendations.
func (a *Aggregator) Build(ctx context.Context, roleParam string) (models.Report, error) {
	role := models.ParseRoleOrDefault(roleParam, DefaultRole)
	if roleParam != "" && role.String() != roleParam {
		slog.Debug("report role normalized", "requested", roleParam, "role", role.String())
	}

	solutions, err := a.repo.ListSolutions(ctx)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to read solutions: %w", err)
	}
	if solutions == nil {
		solutions = []models.Solution{}
	}

	return models.Report{
		Role:         role,
		WeakConcepts: []models.Concept{},
		Solutions:    solutions,
	}, nil
}

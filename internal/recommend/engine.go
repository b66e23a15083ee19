// Package recommend picks follow-up questions from a performance report.
//
// Candidates are the catalog questions of the report's role that have not
// been answered yet and share at least one concept with the report's weak
// concepts. They are ranked by two keys: an exact difficulty match first,
// then the number of overlapping weak concepts, highest first. Questions
// with equal keys keep their catalog order. At most MaxFollowUps are
// returned.
//
// The engine never fails. A report without a usable role or without weak
// concepts yields an empty list.
package recommend

import (
	"log/slog"
	"slices"

	"github.com/terra-clan/interview-coach/internal/catalog"
	"github.com/terra-clan/interview-coach/internal/metrics"
	"github.com/terra-clan/interview-coach/internal/models"
)

// MaxFollowUps bounds the length of every recommendation
const MaxFollowUps = 5

// CatalogFunc returns the catalog for a role
type CatalogFunc func(models.Role) (*catalog.Catalog, error)

// Engine produces follow-up recommendations. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	catalogFor CatalogFunc
	logger     *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithCatalog overrides where catalogs are loaded from
func WithCatalog(fn CatalogFunc) Option {
	return func(e *Engine) {
		e.catalogFor = fn
	}
}

// WithLogger sets the engine logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine backed by the built-in catalogs
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		catalogFor: catalog.ForRole,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "recommend")
	return e
}

type candidate struct {
	question models.Question
	exact    bool
	overlap  int
}

// Recommend returns up to MaxFollowUps unanswered questions that target
// the report's weak concepts, best match first. The report is not modified.
func (e *Engine) Recommend(report models.Report) []models.Question {
	weak := report.WeakConceptSet()
	if len(weak) == 0 {
		e.logger.Debug("no weak concepts in report, nothing to recommend", "role", report.Role.String())
		metrics.RecordRecommendation(report.Role.String(), "empty", 0)
		return []models.Question{}
	}

	cat, err := e.catalogFor(report.Role)
	if err != nil {
		e.logger.Debug("no catalog for report role", "role", report.Role.String(), "error", err)
		metrics.RecordRecommendation(report.Role.String(), "degraded", 0)
		return []models.Question{}
	}

	answered := report.AnsweredIDs()
	var pool []candidate
	for _, q := range cat.Questions() {
		if _, done := answered[q.ID]; done {
			continue
		}
		overlap := weak.Overlap(q.Concepts)
		if overlap == 0 {
			continue
		}
		pool = append(pool, candidate{
			question: q,
			exact:    q.Difficulty == report.SuggestedDifficulty,
			overlap:  overlap,
		})
	}

	slices.SortStableFunc(pool, compareCandidates)

	n := min(len(pool), MaxFollowUps)
	out := make([]models.Question, n)
	for i := 0; i < n; i++ {
		out[i] = pool[i].question
	}

	outcome := "served"
	if n == 0 {
		outcome = "empty"
	}
	metrics.RecordRecommendation(report.Role.String(), outcome, n)
	e.logger.Debug("recommendation complete",
		"role", report.Role.String(),
		"weak_concepts", len(weak),
		"answered", len(answered),
		"candidates", len(pool),
		"returned", n,
	)

	return out
}

// compareCandidates orders exact difficulty matches first, then by
// descending concept overlap
func compareCandidates(a, b candidate) int {
	if a.exact != b.exact {
		if a.exact {
			return -1
		}
		return 1
	}
	return b.overlap - a.overlap
}

package storage

import (
	"context"
	"sync"

	"github.com/terra-clan/interview-coach/internal/models"
)

// MemoryRepository keeps solutions in process memory. Contents are lost
// on restart.
type MemoryRepository struct {
	mu        sync.RWMutex
	solutions []models.Solution
}

// NewMemoryRepository creates an empty in-memory store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// AppendSolution stores a copy of s
func (r *MemoryRepository) AppendSolution(_ context.Context, s *models.Solution) error {
	entry := s.Clone()

	r.mu.Lock()
	r.solutions = append(r.solutions, entry)
	r.mu.Unlock()
	return nil
}

// ListSolutions returns a snapshot in insertion order
func (r *MemoryRepository) ListSolutions(_ context.Context) ([]models.Solution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Solution, len(r.solutions))
	for i := range r.solutions {
		out[i] = r.solutions[i].Clone()
	}
	return out, nil
}

// CountSolutions returns the number of stored solutions
func (r *MemoryRepository) CountSolutions(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.solutions), nil
}

// Ping always succeeds
func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op
func (r *MemoryRepository) Close() error {
	return nil
}

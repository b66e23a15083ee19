package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/interview-coach/internal/models"
	"github.com/terra-clan/interview-coach/internal/storage"
)

func TestBuild_Role(t *testing.T) {
	agg := NewAggregator(storage.NewMemoryRepository())

	tests := []struct {
		param string
		want  models.Role
	}{
		{"", models.RoleSWE},
		{"SWE", models.RoleSWE},
		{"cloud", models.RoleCloud},
		{" ML ", models.RoleML},
		{"DATA", models.RoleSWE},
		{"12", models.RoleSWE},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			r, err := agg.Build(context.Background(), tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Role)
			assert.Empty(t, r.WeakConcepts)
			assert.Equal(t, models.DifficultyUnset, r.SuggestedDifficulty)
		})
	}
}

func TestBuild_CarriesStoreContents(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	agg := NewAggregator(repo)

	empty, err := agg.Build(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, empty.Solutions)
	assert.Empty(t, empty.Solutions)

	for _, id := range []string{"0", "5", "0"} {
		require.NoError(t, repo.AppendSolution(ctx, &models.Solution{ID: id}))
	}

	r, err := agg.Build(ctx, "ML")
	require.NoError(t, err)
	require.Len(t, r.Solutions, 3)
	assert.Equal(t, "5", r.Solutions[1].ID)
	assert.Len(t, r.AnsweredIDs(), 2)

	// Mutating the report leaves the store untouched.
	r.Solutions[0].ID = "changed"
	again, err := agg.Build(ctx, "ML")
	require.NoError(t, err)
	assert.Equal(t, "0", again.Solutions[0].ID)
}

type brokenRepo struct {
	storage.Repository
}

func (brokenRepo) ListSolutions(context.Context) ([]models.Solution, error) {
	return nil, errors.New("connection refused")
}

func TestBuild_StoreError(t *testing.T) {
	_, err := NewAggregator(brokenRepo{}).Build(context.Background(), "SWE")
	assert.ErrorContains(t, err, "connection refused")
}

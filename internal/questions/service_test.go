package questions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/interview-coach/internal/models"
	"github.com/terra-clan/interview-coach/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.MemoryRepository) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestGetQuestionByID(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		id      string
		wantID  string
		wantErr error
	}{
		{id: "0", wantID: "0"},
		{id: "11", wantID: "11"},
		{id: " 4 ", wantID: "4"},
		{id: "12", wantErr: ErrQuestionNotFound},
		{id: "-1", wantErr: ErrQuestionNotFound},
		{id: "abc", wantErr: ErrInvalidID},
		{id: "", wantErr: ErrInvalidID},
		{id: "1.5", wantErr: ErrInvalidID},
		{id: "99999999999999999999", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("id=%q", tt.id), func(t *testing.T) {
			q, err := svc.GetQuestionByID(tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, q.ID)
		})
	}
}

func TestGetQuestionByID_TwoSum(t *testing.T) {
	svc, _ := newTestService(t)

	q, err := svc.GetQuestionByID("0")
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", q.Title)
	assert.Equal(t, models.DifficultyEasy, q.Difficulty)
	assert.Equal(t, []models.Concept{models.ConceptArrays, models.ConceptHashTable}, q.Concepts)
}

func TestSubmitAnswer(t *testing.T) {
	svc, repo := newTestService(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	svc.newID = func() string { return "4f1c2b8e-0000-4000-8000-000000000001" }

	correct := true
	got, err := svc.SubmitAnswer(context.Background(), "3", models.Solution{
		Solution:  "flood fill",
		Time:      "12:30",
		Correct:   &correct,
		Hint1Used: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "3", got.ID, "path id fills an empty body id")
	assert.Equal(t, "4f1c2b8e-0000-4000-8000-000000000001", got.SubmissionID)
	assert.Equal(t, fixed, got.SubmittedAt)
	assert.True(t, got.IsCorrect())

	stored, err := repo.ListSolutions(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, got, stored[0])
}

func TestSubmitAnswer_KeepsBodyIDAndSkipsValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got, err := svc.SubmitAnswer(ctx, "1", models.Solution{ID: "not-a-question"})
	require.NoError(t, err)
	assert.Equal(t, "not-a-question", got.ID)

	// Duplicate submissions are both kept.
	_, err = svc.SubmitAnswer(ctx, "1", models.Solution{ID: "1"})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, "1", models.Solution{ID: "1"})
	require.NoError(t, err)

	all, err := svc.GetSolutions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.NotEqual(t, all[1].SubmissionID, all[2].SubmissionID)
}

func TestSubmitAnswer_PreservesCallOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const n = 20
	for i := 0; i < n; i++ {
		_, err := svc.SubmitAnswer(ctx, "", models.Solution{ID: fmt.Sprint(i % 12), Solution: fmt.Sprint(i)})
		require.NoError(t, err)
	}

	all, err := svc.GetSolutions(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)
	for i, s := range all {
		assert.Equal(t, fmt.Sprint(i), s.Solution)
	}
}

func TestSubmitAnswer_Concurrent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const workers, each = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				if _, err := svc.SubmitAnswer(ctx, "2", models.Solution{}); err != nil {
					t.Errorf("SubmitAnswer: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	all, err := svc.GetSolutions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*each)
}

type failingRepo struct {
	storage.Repository
}

func (failingRepo) AppendSolution(context.Context, *models.Solution) error {
	return errors.New("disk full")
}

func (failingRepo) ListSolutions(context.Context) ([]models.Solution, error) {
	return nil, errors.New("disk full")
}

func TestStoreFailuresAreWrapped(t *testing.T) {
	svc, err := NewService(failingRepo{})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.SubmitAnswer(ctx, "0", models.Solution{})
	assert.ErrorContains(t, err, "failed to record solution")

	_, err = svc.GetSolutions(ctx)
	assert.ErrorContains(t, err, "failed to list solutions")
}

func TestGetSolutions_EmptyIsNotNil(t *testing.T) {
	svc, _ := newTestService(t)

	all, err := svc.GetSolutions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestListByRole(t *testing.T) {
	svc, _ := newTestService(t)

	for _, role := range models.AllRoles() {
		qs, err := svc.ListByRole(role)
		require.NoError(t, err)
		assert.Len(t, qs, 12, role.String())
	}

	_, err := svc.ListByRole(models.RoleUnset)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

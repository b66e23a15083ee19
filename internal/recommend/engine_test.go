package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/interview-coach/internal/catalog"
	"github.com/terra-clan/interview-coach/internal/models"
)

func ids(questions []models.Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func question(id string, d models.Difficulty, concepts ...models.Concept) models.Question {
	return models.Question{
		ID:          id,
		Title:       "Q" + id,
		Description: "description " + id,
		Text:        "Q" + id + ": description " + id,
		Difficulty:  d,
		Concepts:    concepts,
	}
}

func engineWith(t *testing.T, questions ...models.Question) *Engine {
	t.Helper()
	cat, err := catalog.New(models.RoleSWE, questions)
	require.NoError(t, err)
	return NewEngine(WithCatalog(func(role models.Role) (*catalog.Catalog, error) {
		if role != models.RoleSWE {
			return nil, models.ErrUnknownRole
		}
		return cat, nil
	}))
}

func TestRecommend_TwoSumScenario(t *testing.T) {
	e := NewEngine()
	report := models.Report{
		Role:                models.RoleSWE,
		WeakConcepts:        []models.Concept{models.ConceptArrays},
		SuggestedDifficulty: models.DifficultyEasy,
	}

	got := e.Recommend(report)
	require.NotEmpty(t, got)
	assert.Equal(t, "0", got[0].ID)
	assert.Equal(t, []string{"0", "3", "6"}, ids(got))

	report.Solutions = []models.Solution{{ID: "0", Solution: "two pass hash map"}}
	got = e.Recommend(report)
	assert.NotContains(t, ids(got), "0")
	assert.Equal(t, []string{"3", "6"}, ids(got))
}

func TestRecommend_RankingKeys(t *testing.T) {
	e := engineWith(t,
		question("a", models.DifficultyMedium, models.ConceptGraph, models.ConceptDFS, models.ConceptBFS),
		question("b", models.DifficultyEasy, models.ConceptGraph),
		question("c", models.DifficultyEasy, models.ConceptGraph, models.ConceptDFS),
		question("d", models.DifficultyHard, models.ConceptArrays),
		question("e", models.DifficultyMedium, models.ConceptBFS),
	)

	got := e.Recommend(models.Report{
		Role:                models.RoleSWE,
		WeakConcepts:        []models.Concept{models.ConceptGraph, models.ConceptDFS, models.ConceptBFS},
		SuggestedDifficulty: models.DifficultyEasy,
	})

	// Exact difficulty beats overlap: "a" has the most overlap but sorts after b and c.
	assert.Equal(t, []string{"c", "b", "a", "e"}, ids(got))
}

func TestRecommend_TiesKeepCatalogOrderAndTruncate(t *testing.T) {
	var qs []models.Question
	for i := 0; i < 8; i++ {
		qs = append(qs, question(fmt.Sprint(i), models.DifficultyMedium, models.ConceptStack))
	}
	e := engineWith(t, qs...)

	got := e.Recommend(models.Report{
		Role:                models.RoleSWE,
		WeakConcepts:        []models.Concept{models.ConceptStack},
		SuggestedDifficulty: models.DifficultyMedium,
	})
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, ids(got))
}

func TestRecommend_DegradesToEmpty(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name   string
		report models.Report
	}{
		{"zero report", models.Report{}},
		{"nil weak concepts", models.Report{Role: models.RoleSWE, SuggestedDifficulty: models.DifficultyEasy}},
		{"empty weak concepts", models.Report{Role: models.RoleML, WeakConcepts: []models.Concept{}}},
		{"only invalid concepts", models.Report{Role: models.RoleML, WeakConcepts: []models.Concept{models.ConceptUnset}}},
		{"role unset", models.Report{WeakConcepts: []models.Concept{models.ConceptArrays}}},
		{"role out of range", models.Report{Role: models.Role(99), WeakConcepts: []models.Concept{models.ConceptArrays}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Recommend(tt.report)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestRecommend_NoDifficultyStillRanksByOverlap(t *testing.T) {
	e := engineWith(t,
		question("one", models.DifficultyEasy, models.ConceptTrie),
		question("two", models.DifficultyHard, models.ConceptTrie, models.ConceptDesign),
	)
	got := e.Recommend(models.Report{
		Role:         models.RoleSWE,
		WeakConcepts: []models.Concept{models.ConceptTrie, models.ConceptDesign},
	})
	assert.Equal(t, []string{"two", "one"}, ids(got))
}

func TestRecommend_Properties(t *testing.T) {
	e := NewEngine()

	for _, role := range models.AllRoles() {
		cat, err := catalog.ForRole(role)
		require.NoError(t, err)
		all := cat.Questions()

		for _, d := range models.AllDifficulties() {
			for _, concept := range models.AllConcepts() {
				weak := []models.Concept{concept, models.ConceptArrays}
				report := models.Report{
					Role:                role,
					WeakConcepts:        weak,
					SuggestedDifficulty: d,
					Solutions:           []models.Solution{{ID: all[0].ID}, {ID: all[len(all)-1].ID}},
				}
				weakSet := models.NewConceptSet(weak...)

				got := e.Recommend(report)
				require.LessOrEqual(t, len(got), MaxFollowUps)

				seenInexact := false
				for _, q := range got {
					assert.Positive(t, weakSet.Overlap(q.Concepts), "%s/%s shares no weak concept", role, q.ID)
					assert.NotEqual(t, all[0].ID, q.ID)
					assert.NotEqual(t, all[len(all)-1].ID, q.ID)

					if q.Difficulty != d {
						seenInexact = true
					} else {
						assert.False(t, seenInexact, "exact difficulty match %s sorted after a mismatch", q.ID)
					}
				}

				again := e.Recommend(report)
				assert.Equal(t, ids(got), ids(again), "recommend is not idempotent")
			}
		}
	}
}

func TestRecommend_DoesNotMutateReport(t *testing.T) {
	e := NewEngine()
	weak := []models.Concept{models.ConceptDynamicProgramming, models.ConceptArrays}
	solutions := []models.Solution{{ID: "6"}}
	report := models.Report{
		Role:                models.RoleSWE,
		WeakConcepts:        weak,
		SuggestedDifficulty: models.DifficultyHard,
		Solutions:           solutions,
	}

	got := e.Recommend(report)
	require.NotEmpty(t, got)
	got[0].Concepts[0] = models.ConceptDesign

	assert.Equal(t, []models.Concept{models.ConceptDynamicProgramming, models.ConceptArrays}, report.WeakConcepts)
	assert.Equal(t, []models.Solution{{ID: "6"}}, report.Solutions)

	again := e.Recommend(report)
	assert.NotEqual(t, models.ConceptDesign, again[0].Concepts[0])
}

package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/terra-clan/interview-coach/internal/models"
)

func TestForRole_AllRolesPopulated(t *testing.T) {
	for _, role := range models.AllRoles() {
		c, err := ForRole(role)
		if err != nil {
			t.Fatalf("ForRole(%s) failed: %v", role, err)
		}
		if c.Role() != role {
			t.Errorf("expected role %s, got %s", role, c.Role())
		}
		if c.Len() == 0 {
			t.Errorf("catalog %s is empty", role)
		}
		for _, q := range c.Questions() {
			if !q.Difficulty.IsValid() {
				t.Errorf("%s/%s: difficulty not set", role, q.ID)
			}
			if len(q.Concepts) == 0 {
				t.Errorf("%s/%s: no concept tags", role, q.ID)
			}
			if !strings.HasPrefix(q.Text, q.Title+": ") {
				t.Errorf("%s/%s: text %q does not start with title", role, q.ID, q.Text)
			}
		}
	}
}

func TestForRole_UnknownRole(t *testing.T) {
	for _, role := range []models.Role{models.RoleUnset, models.Role(42)} {
		if _, err := ForRole(role); !errors.Is(err, models.ErrUnknownRole) {
			t.Errorf("ForRole(%d): expected ErrUnknownRole, got %v", int(role), err)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	for _, role := range models.AllRoles() {
		first, err := Build(role)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", role, err)
		}
		second, err := Build(role)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", role, err)
		}
		if !reflect.DeepEqual(first.Questions(), second.Questions()) {
			t.Errorf("Build(%s) is not deterministic", role)
		}

		cached, _ := ForRole(role)
		if !reflect.DeepEqual(first.Questions(), cached.Questions()) {
			t.Errorf("cached catalog for %s differs from a fresh build", role)
		}
	}
}

func TestCatalog_IDsUniqueAndIndexed(t *testing.T) {
	for _, role := range models.AllRoles() {
		c, _ := ForRole(role)
		seen := make(map[string]bool)
		for i, q := range c.Questions() {
			if seen[q.ID] {
				t.Errorf("%s: duplicate id %q", role, q.ID)
			}
			seen[q.ID] = true

			got, ok := c.Get(q.ID)
			if !ok || got.Title != q.Title {
				t.Errorf("%s: Get(%q) = %v, %v", role, q.ID, got.Title, ok)
			}
			at, ok := c.At(i)
			if !ok || at.ID != q.ID {
				t.Errorf("%s: At(%d) = %q, want %q", role, i, at.ID, q.ID)
			}
		}
	}
}

func TestCatalog_At_OutOfRange(t *testing.T) {
	c, _ := ForRole(models.RoleSWE)
	for _, i := range []int{-1, c.Len(), c.Len() + 10} {
		if _, ok := c.At(i); ok {
			t.Errorf("At(%d) should be out of range", i)
		}
	}
}

func TestCatalog_QuestionsAreCopies(t *testing.T) {
	c, _ := ForRole(models.RoleSWE)
	qs := c.Questions()
	qs[0].Concepts[0] = models.ConceptDesign
	qs[0].Title = "changed"

	again, _ := c.At(0)
	if again.Title == "changed" || again.Concepts[0] == models.ConceptDesign {
		t.Error("mutating a returned question changed the catalog")
	}
}

func TestSWE_TwoSum(t *testing.T) {
	c, _ := ForRole(models.RoleSWE)
	q, ok := c.Get("0")
	if !ok {
		t.Fatal("question 0 not found")
	}
	if q.Title != "Two Sum" {
		t.Errorf("expected Two Sum, got %q", q.Title)
	}
	if q.Difficulty != models.DifficultyEasy {
		t.Errorf("expected EASY, got %s", q.Difficulty)
	}
	want := []models.Concept{models.ConceptArrays, models.ConceptHashTable}
	if !reflect.DeepEqual(q.Concepts, want) {
		t.Errorf("expected concepts %v, got %v", want, q.Concepts)
	}
	if len(q.Hints()) != 3 {
		t.Errorf("expected 3 hints, got %d", len(q.Hints()))
	}
	if q.Complexity != "O(n)" {
		t.Errorf("expected complexity O(n), got %q", q.Complexity)
	}
}

func TestValidate(t *testing.T) {
	good := q("0", "T", models.DifficultyEasy, "D", tags(models.ConceptArrays), "h1", "", "", "")

	tests := []struct {
		name    string
		mutate  func(*models.Question)
		wantErr string
	}{
		{"valid", func(*models.Question) {}, ""},
		{"no difficulty", func(q *models.Question) { q.Difficulty = models.DifficultyUnset }, "no difficulty"},
		{"no concepts", func(q *models.Question) { q.Concepts = nil }, "no concept tags"},
		{"unknown concept", func(q *models.Question) { q.Concepts = []models.Concept{models.Concept(999)} }, "unknown concept"},
		{"no id", func(q *models.Question) { q.ID = "" }, "has no id"},
		{"no text", func(q *models.Question) { q.Description = "" }, "missing its text"},
		{"hint gap", func(q *models.Question) { q.Hint1 = ""; q.Hint2 = "h2" }, "gap in its hints"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := good.Clone()
			tt.mutate(&question)
			err := validate([]models.Question{question})
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if err := validate([]models.Question{good, good}); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
	if err := validate(nil); err == nil {
		t.Error("expected error for empty catalog")
	}
}

// Package catalog holds the fixed question sets for every role.
//
// Catalogs are built from Go source at package initialization and
// validated once; a malformed entry panics before the server starts.
// After that they are read-only and safe to share between goroutines.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terra-clan/interview-coach/internal/models"
)

// Catalog is the ordered question set of one role
type Catalog struct {
	role      models.Role
	questions []models.Question
	byID      map[string]int
}

var catalogs = mustBuildAll()

// ForRole returns the catalog for role. An unset or unknown role
// returns models.ErrUnknownRole.
func ForRole(role models.Role) (*Catalog, error) {
	c, ok := catalogs[role]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownRole, role)
	}
	return c, nil
}

// Role returns the role this catalog was built for
func (c *Catalog) Role() models.Role {
	return c.role
}

// Len returns the number of questions
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns a copy of all questions in catalog order
func (c *Catalog) Questions() []models.Question {
	out := make([]models.Question, len(c.questions))
	for i := range c.questions {
		out[i] = c.questions[i].Clone()
	}
	return out
}

// At returns the question at a zero-based position
func (c *Catalog) At(index int) (models.Question, bool) {
	if index < 0 || index >= len(c.questions) {
		return models.Question{}, false
	}
	return c.questions[index].Clone(), true
}

// Get returns the question with the given identifier
func (c *Catalog) Get(id string) (models.Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Question{}, false
	}
	return c.questions[i].Clone(), true
}

// Build constructs the catalog for role from scratch. It is a pure
// function of role; ForRole serves the cached result of the same call.
func Build(role models.Role) (*Catalog, error) {
	var questions []models.Question
	switch role {
	case models.RoleSWE:
		questions = sweQuestions()
	case models.RoleCloud:
		questions = cloudQuestions()
	case models.RoleML:
		questions = mlQuestions()
	case models.RoleUnset:
		return nil, fmt.Errorf("%w: role is not set", models.ErrUnknownRole)
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownRole, role)
	}

	return New(role, questions)
}

// New validates questions and wraps them in a catalog for role. The
// catalog takes ownership of the slice.
func New(role models.Role, questions []models.Question) (*Catalog, error) {
	if err := validate(questions); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", role, err)
	}

	c := &Catalog{
		role:      role,
		questions: questions,
		byID:      make(map[string]int, len(questions)),
	}
	for i := range questions {
		c.byID[questions[i].ID] = i
	}
	return c, nil
}

func mustBuildAll() map[models.Role]*Catalog {
	all := make(map[models.Role]*Catalog, len(models.AllRoles()))
	for _, role := range models.AllRoles() {
		c, err := Build(role)
		if err != nil {
			panic(err)
		}
		all[role] = c
	}
	return all
}

// validate checks every question for the fields the recommendation
// engine depends on. All problems are reported together.
func validate(questions []models.Question) error {
	if len(questions) == 0 {
		return errors.New("no questions")
	}

	var errs []string
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		qu := &questions[i]
		if qu.ID == "" {
			errs = append(errs, fmt.Sprintf("question at position %d has no id", i))
		} else if seen[qu.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id %q", qu.ID))
		}
		seen[qu.ID] = true

		if qu.Title == "" || qu.Description == "" {
			errs = append(errs, fmt.Sprintf("question %q is missing its text", qu.ID))
		}
		if !qu.Difficulty.IsValid() {
			errs = append(errs, fmt.Sprintf("question %q has no difficulty", qu.ID))
		}
		if len(qu.Concepts) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no concept tags", qu.ID))
		}
		for _, c := range qu.Concepts {
			if !c.IsValid() {
				errs = append(errs, fmt.Sprintf("question %q has unknown concept %d", qu.ID, int(c)))
			}
		}
		if (qu.Hint2 != "" && qu.Hint1 == "") || (qu.Hint3 != "" && qu.Hint2 == "") {
			errs = append(errs, fmt.Sprintf("question %q has a gap in its hints", qu.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// q builds one catalog question. The prompt text keeps the
// "Title: description" form clients split on.
func q(id, title string, difficulty models.Difficulty, description string,
	concepts []models.Concept, hint1, hint2, hint3, complexity string) models.Question {
	return models.Question{
		ID:          id,
		Title:       title,
		Description: description,
		Text:        title + ": " + description,
		Difficulty:  difficulty,
		Concepts:    concepts,
		Hint1:       hint1,
		Hint2:       hint2,
		Hint3:       hint3,
		Complexity:  complexity,
	}
}

func tags(concepts ...models.Concept) []models.Concept {
	return concepts
}

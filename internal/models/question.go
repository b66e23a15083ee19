package models

// Question is a single catalog entry. Questions are built once by the
// catalog and never modified afterwards.
type Question struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Text        string     `json:"question"` // "Title: description"
	Difficulty  Difficulty `json:"difficulty"`
	Concepts    []Concept  `json:"concepts"`
	Hint1       string     `json:"hint1,omitempty"`
	Hint2       string     `json:"hint2,omitempty"`
	Hint3       string     `json:"hint3,omitempty"`
	Complexity  string     `json:"complexity,omitempty"` // expected time complexity
}

// Hints returns the non-empty hints in the order they are revealed
func (q *Question) Hints() []string {
	hints := make([]string, 0, 3)
	for _, h := range []string{q.Hint1, q.Hint2, q.Hint3} {
		if h != "" {
			hints = append(hints, h)
		}
	}
	return hints
}

// HasConcept reports whether the question is tagged with c
func (q *Question) HasConcept(c Concept) bool {
	for _, tag := range q.Concepts {
		if tag == c {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with q
func (q Question) Clone() Question {
	q.Concepts = append([]Concept(nil), q.Concepts...)
	return q
}

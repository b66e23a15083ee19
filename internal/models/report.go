package models

// Report is a request-scoped performance summary. It is built per request
// and consumed once by the recommendation engine; it is never stored.
type Report struct {
	Role                Role       `json:"role"`
	WeakConcepts        []Concept  `json:"weakConcepts"`
	SuggestedDifficulty Difficulty `json:"suggestedDifficulty"`
	Solutions           []Solution `json:"solutions"`
}

// AnsweredIDs returns the set of question ids present in the solutions
func (r *Report) AnsweredIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(r.Solutions))
	for i := range r.Solutions {
		ids[r.Solutions[i].ID] = struct{}{}
	}
	return ids
}

// WeakConceptSet returns the weak concepts as a set
func (r *Report) WeakConceptSet() ConceptSet {
	return NewConceptSet(r.WeakConcepts...)
}

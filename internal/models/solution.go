package models

import "time"

// Solution is a user's submission for one question. Solutions are never
// modified once the store accepts them.
type Solution struct {
	SubmissionID string    `json:"submissionId,omitempty"`
	ID           string    `json:"id"` // question id
	Solution     string    `json:"solution"`
	Time         string    `json:"time,omitempty"` // time taken, as reported by the client
	Correct      *bool     `json:"correct,omitempty"`
	Hint1Used    bool      `json:"hint1used"`
	Hint2Used    bool      `json:"hint2used"`
	Hint3Used    bool      `json:"hint3used"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// HintsUsed returns how many hints were consumed before submitting
func (s *Solution) HintsUsed() int {
	n := 0
	for _, used := range []bool{s.Hint1Used, s.Hint2Used, s.Hint3Used} {
		if used {
			n++
		}
	}
	return n
}

// IsCorrect reports whether the solution was marked correct
func (s *Solution) IsCorrect() bool {
	return s.Correct != nil && *s.Correct
}

// Clone returns a copy that shares no pointers with s
func (s Solution) Clone() Solution {
	if s.Correct != nil {
		correct := *s.Correct
		s.Correct = &correct
	}
	return s
}

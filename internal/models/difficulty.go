package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name is not recognized
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty represents how hard a question is. The zero value is unset
// and never valid on a catalog question.
type Difficulty int

const (
	DifficultyUnset Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// AllDifficulties returns the valid difficulties from easiest to hardest
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the enum name (EASY, MEDIUM, HARD)
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyMedium:
		return "MEDIUM"
	case DifficultyHard:
		return "HARD"
	case DifficultyUnset:
		return ""
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// IsValid reports whether d is one of EASY, MEDIUM or HARD
func (d Difficulty) IsValid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty parses a difficulty name, ignoring case and surrounding space
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range AllDifficulties() {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return DifficultyUnset, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// MarshalText encodes the difficulty as its enum name
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes an enum name; an empty string leaves the value unset
func (d *Difficulty) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = DifficultyUnset
		return nil
	}
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

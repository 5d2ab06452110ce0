// Package quiz runs a single pass through a question set: option shuffling,
// single and select-all-that-apply answering, scoring and completion.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuestion is returned by Validate for malformed questions.
var ErrInvalidQuestion = errors.New("invalid question")

// Type is the answering mode of a question.
type Type string

const (
	// Single questions have exactly one correct option.
	Single Type = "single"
	// Multi questions are select-all-that-apply (SATA) and are scored by exact set match.
	Multi Type = "multi"
)

// ParseType accepts both the stored names and the labels shown to students.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "multiple choice", "mc":
		return Single, true
	case "multi", "select all that apply", "sata":
		return Multi, true
	default:
		return "", false
	}
}

// Label returns the student-facing name of the type.
func (t Type) Label() string {
	if t == Multi {
		return "Select All That Apply"
	}
	return "Multiple Choice"
}

// Question is one quiz item. Correct holds one entry for Single questions and
// one or more for Multi questions.
type Question struct {
	ID          string
	Type        Type
	Text        string
	Correct     []string
	Incorrect   []string
	Explanation string
}

// Validate checks the structural rules for a question.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question text is required", ErrInvalidQuestion)
	}
	switch q.Type {
	case Single:
		if len(q.Correct) != 1 {
			return fmt.Errorf("%w: multiple choice questions need exactly one correct answer, got %d", ErrInvalidQuestion, len(q.Correct))
		}
	case Multi:
		if len(q.Correct) == 0 {
			return fmt.Errorf("%w: select-all questions need at least one correct answer", ErrInvalidQuestion)
		}
	default:
		return fmt.Errorf("%w: unknown question type %q", ErrInvalidQuestion, q.Type)
	}
	if len(q.Incorrect) == 0 {
		return fmt.Errorf("%w: at least one incorrect answer is required", ErrInvalidQuestion)
	}

	seen := make(map[string]bool, len(q.Correct)+len(q.Incorrect))
	for _, a := range append(append([]string{}, q.Correct...), q.Incorrect...) {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: answers must not be blank", ErrInvalidQuestion)
		}
		if seen[a] {
			return fmt.Errorf("%w: duplicate answer %q", ErrInvalidQuestion, a)
		}
		seen[a] = true
	}
	return nil
}

// IsCorrectOption reports whether option is in the correct set.
func (q Question) IsCorrectOption(option string) bool {
	for _, c := range q.Correct {
		if c == option {
			return true
		}
	}
	return false
}

// Options returns correct and incorrect answers in stored order.
func (q Question) Options() []string {
	out := make([]string, 0, len(q.Correct)+len(q.Incorrect))
	out = append(out, q.Correct...)
	return append(out, q.Incorrect...)
}

package quizgen

import (
	"fmt"

	"github.com/abhisek/quizmate/internal/quiz"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "distinct-options".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// Returns a ValidationError if the question fails the check.
	Validate(q *quiz.Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present and the
// correct index is within range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question, _ GenerateInput) *ValidationError {
	if err := q.Validate(); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	return nil
}

// DistinctOptionsValidator rejects questions where two options share the
// same text, which makes the correct index ambiguous.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q *quiz.Question, _ GenerateInput) *ValidationError {
	seen := make(map[string]int, len(q.Options))
	for i, opt := range q.Options {
		if j, ok := seen[opt]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %d and %d have the same text", j, i),
				Retryable: true,
			}
		}
		seen[opt] = i
	}
	return nil
}

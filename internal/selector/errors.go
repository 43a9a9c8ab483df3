package selector

import (
	"errors"
	"fmt"

	"github.com/abhisek/quizmate/internal/llm"
	"github.com/abhisek/quizmate/internal/quizgen"
)

// Sentinel errors for terminal request outcomes.
var (
	// ErrNoQuestions means every source in the fallback chain came up empty.
	ErrNoQuestions = errors.New("no questions available")

	// ErrInvalidQuestionID means an answer was submitted against a stale
	// or unknown question.
	ErrInvalidQuestionID = errors.New("unknown or stale question id")
)

// ProviderAuthError means the AI provider rejected our credentials.
type ProviderAuthError struct {
	Err error
}

func (e *ProviderAuthError) Error() string {
	return fmt.Sprintf("provider authentication failed: %v", e.Err)
}

func (e *ProviderAuthError) Unwrap() error { return e.Err }

// ProviderQuotaError means the AI provider account is out of quota.
type ProviderQuotaError struct {
	Err error
}

func (e *ProviderQuotaError) Error() string {
	return fmt.Sprintf("provider quota exhausted: %v", e.Err)
}

func (e *ProviderQuotaError) Unwrap() error { return e.Err }

// ProviderNetworkError covers transport failures, rate limits, and
// provider outages.
type ProviderNetworkError struct {
	Err error
}

func (e *ProviderNetworkError) Error() string {
	return fmt.Sprintf("provider unreachable: %v", e.Err)
}

func (e *ProviderNetworkError) Unwrap() error { return e.Err }

// ProviderFormatError means the provider answered but the output was not
// a usable question.
type ProviderFormatError struct {
	Err error
}

func (e *ProviderFormatError) Error() string {
	return fmt.Sprintf("provider returned malformed question: %v", e.Err)
}

func (e *ProviderFormatError) Unwrap() error { return e.Err }

// classifyProviderError maps generation failures onto the selector's
// error taxonomy.
func classifyProviderError(err error) error {
	var auth *llm.ErrAuth
	if errors.As(err, &auth) {
		return &ProviderAuthError{Err: err}
	}
	var quota *llm.ErrQuota
	if errors.As(err, &quota) {
		return &ProviderQuotaError{Err: err}
	}
	var invResp *llm.ErrInvalidResponse
	if errors.As(err, &invResp) {
		return &ProviderFormatError{Err: err}
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &ProviderFormatError{Err: err}
	}
	var valErr *quizgen.ValidationError
	if errors.As(err, &valErr) {
		return &ProviderFormatError{Err: err}
	}
	return &ProviderNetworkError{Err: err}
}

package store

import (
	"context"
	"time"
)

// StateRepo is a durable key→JSON map. Domain services persist their state
// as JSON documents under well-known keys (last-write-wins, no transactions
// spanning keys).
type StateRepo interface {
	// Get unmarshals the value stored under key into dest.
	// Returns false if the key does not exist or holds malformed JSON
	// (malformed data is treated as absence, not an error).
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set marshals value to JSON and stores it under key, replacing any
	// previous value.
	Set(ctx context.Context, key string, value any) error

	// Delete removes the value stored under key. Missing keys are a no-op.
	Delete(ctx context.Context, key string) error
}

// State keys used by the domain services.
const (
	StateKeyAnalytics   = "analytics"
	StateKeyCache       = "question-cache"
	StateKeySettings    = "settings"
	StateKeyWeakness    = "weakness-analysis"
	StateKeyAssessments = "skill-assessments"
	StateKeyInterviews  = "interview-history"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a persisted LLM request record.
type LLMRequestEvent struct {
	ID        int64
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMModelUsage aggregates call counts and token totals for one model.
type LLMModelUsage struct {
	Provider     string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the most recent limit events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// LLMUsageByModel returns aggregate usage grouped by provider and model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// Package settings holds the user's preferences: question topics and
// levels, AI toggle and provider choice, and the scheduling interval.
// Persisted through the durable store as one JSON document.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/quizmate/internal/store"
)

// KnownLevels are the accepted difficulty levels, in ascending order.
var KnownLevels = []string{"beginner", "intermediate", "advanced"}

// QuestionSettings controls what gets asked.
type QuestionSettings struct {
	PreferredTopics []string `json:"preferredTopics"`
	PreferredLevels []string `json:"preferredLevels"`
	UseAI           bool     `json:"useAI"`
	MixStaticAndAI  bool     `json:"mixStaticAndAI"`
}

// TimingSettings controls when questions appear. Intervals are stored in
// milliseconds to keep the persisted document stable across versions.
type TimingSettings struct {
	MinIntervalMs int64 `json:"minInterval"`
	MaxIntervalMs int64 `json:"maxInterval"`
}

// MinInterval returns the lower interval bound as a duration.
func (t TimingSettings) MinInterval() time.Duration {
	return time.Duration(t.MinIntervalMs) * time.Millisecond
}

// MaxInterval returns the upper interval bound as a duration.
func (t TimingSettings) MaxInterval() time.Duration {
	return time.Duration(t.MaxIntervalMs) * time.Millisecond
}

// Settings is the full preferences document.
type Settings struct {
	AIProvider   string           `json:"aiProvider"`
	OpenAIAPIKey string           `json:"openaiApiKey"`
	GeminiAPIKey string           `json:"geminiApiKey"`
	CustomPrompt string           `json:"customPrompt"`
	Question     QuestionSettings `json:"questionSettings"`
	Timing       TimingSettings   `json:"timingSettings"`
}

// Defaults returns the out-of-the-box settings: five topics, all levels,
// AI off, questions every 2-10 minutes.
func Defaults() Settings {
	return Settings{
		AIProvider: "openai",
		Question: QuestionSettings{
			PreferredTopics: []string{"oops", "java", "python", "ai", "databases"},
			PreferredLevels: slices.Clone(KnownLevels),
			UseAI:           false,
			MixStaticAndAI:  true,
		},
		Timing: TimingSettings{
			MinIntervalMs: (2 * time.Minute).Milliseconds(),
			MaxIntervalMs: (10 * time.Minute).Milliseconds(),
		},
	}
}

// Validate reports the first problem with the settings, or nil.
func (s *Settings) Validate() error {
	if s.Timing.MinIntervalMs <= 0 {
		return fmt.Errorf("min interval must be positive, got %dms", s.Timing.MinIntervalMs)
	}
	if s.Timing.MaxIntervalMs < s.Timing.MinIntervalMs {
		return fmt.Errorf("max interval %dms is below min interval %dms", s.Timing.MaxIntervalMs, s.Timing.MinIntervalMs)
	}
	for _, level := range s.Question.PreferredLevels {
		if !slices.Contains(KnownLevels, level) {
			return fmt.Errorf("unknown level %q", level)
		}
	}
	for _, topic := range s.Question.PreferredTopics {
		if topic == "" {
			return fmt.Errorf("preferred topics must not be empty strings")
		}
	}
	return nil
}

// APIKeyFor returns the stored key for the active provider, or "".
func (s *Settings) APIKeyFor(provider string) string {
	switch provider {
	case "gemini":
		return s.GeminiAPIKey
	default:
		return s.OpenAIAPIKey
	}
}

// Manager loads, mutates, and persists the settings document.
type Manager struct {
	stateRepo store.StateRepo

	mu      sync.Mutex
	current Settings
}

// NewManager restores settings from the store, falling back to defaults
// when nothing (or malformed data) is stored.
func NewManager(ctx context.Context, stateRepo store.StateRepo) (*Manager, error) {
	m := &Manager{stateRepo: stateRepo, current: Defaults()}

	var saved Settings
	found, err := stateRepo.Get(ctx, store.StateKeySettings, &saved)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if found {
		if verr := saved.Validate(); verr == nil {
			m.current = saved
		}
	}
	return m, nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyLocked()
}

// Update applies fn to the settings, validates the result, and persists
// it. The settings are unchanged when validation or persistence fails.
func (m *Manager) Update(ctx context.Context, fn func(*Settings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.copyLocked()
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	if err := m.stateRepo.Set(ctx, store.StateKeySettings, next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	m.current = next
	return nil
}

// SetQuestionInterval updates the scheduling bounds.
func (m *Manager) SetQuestionInterval(ctx context.Context, min, max time.Duration) error {
	return m.Update(ctx, func(s *Settings) {
		s.Timing.MinIntervalMs = min.Milliseconds()
		s.Timing.MaxIntervalMs = max.Milliseconds()
	})
}

// Reset restores the defaults and persists them.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	defaults := Defaults()
	if err := m.stateRepo.Set(ctx, store.StateKeySettings, defaults); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	m.current = defaults
	return nil
}

// Export returns the settings as indented JSON with the API keys
// stripped, safe to share or check in.
func (m *Manager) Export() ([]byte, error) {
	s := m.Get()
	s.OpenAIAPIKey = ""
	s.GeminiAPIKey = ""
	return json.MarshalIndent(s, "", "  ")
}

// Import applies an exported document. Only the prompt, question, and
// timing sections are taken; API keys and provider choice are never
// imported.
func (m *Manager) Import(ctx context.Context, data []byte) error {
	var in Settings
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}

	return m.Update(ctx, func(s *Settings) {
		s.CustomPrompt = in.CustomPrompt
		if len(in.Question.PreferredTopics) > 0 || len(in.Question.PreferredLevels) > 0 {
			s.Question = in.Question
		}
		if in.Timing.MinIntervalMs > 0 {
			s.Timing = in.Timing
		}
	})
}

func (m *Manager) copyLocked() Settings {
	s := m.current
	s.Question.PreferredTopics = slices.Clone(s.Question.PreferredTopics)
	s.Question.PreferredLevels = slices.Clone(s.Question.PreferredLevels)
	return s
}

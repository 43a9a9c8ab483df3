// Package selector decides where the next question comes from: a fresh
// AI generation, the cache of past generations, or the static bank. It
// holds the single active question and grades answers against it.
package selector

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/abhisek/quizmate/internal/qcache"
	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/quizgen"
	"github.com/abhisek/quizmate/internal/weakness"
)

// State names one step of a question request. The full path is recorded
// on the Result for observability.
type State string

const (
	StateIdle           State = "idle"
	StateChoosingSource State = "choosing-source"
	StateGenerating     State = "generating"
	StateCacheLookup    State = "cache-lookup"
	StateBankLookup     State = "bank-lookup"
	StateDelivered      State = "delivered"
	StateFailed         State = "failed"
)

const (
	// targetedLimit caps how many weakness targets are considered.
	targetedLimit = 3

	// targetedPinProbability is the chance of pinning the request to the
	// top weakness instead of sampling the user's preferences.
	targetedPinProbability = 0.7
)

// Prefs carries the user's question preferences for one request.
type Prefs struct {
	Topics    []string
	Levels    []string
	AIEnabled bool
}

// Result is a delivered (or failed) question request. States is the path
// the request took through the state machine; the last entry is the
// outcome.
type Result struct {
	Question  *quiz.Question
	States    []State
	AIEnabled bool
}

// State returns the final state of the request.
func (r *Result) State() State {
	if len(r.States) == 0 {
		return StateIdle
	}
	return r.States[len(r.States)-1]
}

// Source reports where the question was actually served from, derived
// from the delivery path. A cached question keeps its generation source
// on the Question itself, so the path is the authority here.
func (r *Result) Source() string {
	if r.State() != StateDelivered || len(r.States) < 2 {
		return ""
	}
	switch r.States[len(r.States)-2] {
	case StateGenerating:
		return quiz.SourceAI
	case StateCacheLookup:
		return quiz.SourceCache
	default:
		if r.Question != nil && r.Question.Source == quiz.SourceStaticFallback {
			return quiz.SourceStaticFallback
		}
		return quiz.SourceStatic
	}
}

// Targeter supplies weakness-driven topic targets.
type Targeter interface {
	TargetedTopics(limit int) []weakness.TargetedTopic
}

// Generator produces fresh AI questions.
type Generator interface {
	Generate(ctx context.Context, input quizgen.GenerateInput) (*quiz.Question, error)
}

// Cache serves and persists generated questions.
type Cache interface {
	Add(ctx context.Context, q quiz.Question) (bool, error)
	Random(filter qcache.Filter) *quiz.Question
}

// Bank serves static questions.
type Bank interface {
	Random(topics, levels []string) *quiz.Question
}

// Selector picks the next question and tracks the active one. Only one
// question is active at a time; a second request while one is pending
// returns the pending one untouched.
type Selector struct {
	targeter Targeter
	gen      Generator
	cache    Cache
	bank     Bank
	rng      *rand.Rand

	mu      sync.Mutex
	current *Result
}

// New creates a Selector. targeter and gen may be nil; the selector then
// skips targeting and the AI path respectively.
func New(targeter Targeter, gen Generator, cache Cache, bank Bank) *Selector {
	return &Selector{
		targeter: targeter,
		gen:      gen,
		cache:    cache,
		bank:     bank,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the next question for the given preferences, or the
// pending question if one is already active.
func (s *Selector) Next(ctx context.Context, prefs Prefs) (*Result, error) {
	s.mu.Lock()
	if s.current != nil {
		cur := s.current
		s.mu.Unlock()
		return cur, nil
	}
	s.mu.Unlock()

	result, err := s.selectQuestion(ctx, prefs)
	if err != nil {
		return result, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		// Lost a race with a concurrent request; keep the first one.
		return s.current, nil
	}
	s.current = result
	return result, nil
}

// Current returns the active question request, or nil.
func (s *Selector) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Abandon drops the active question without grading it, e.g. when the
// question window is dismissed.
func (s *Selector) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// CheckAnswer grades an answer against the active question and clears
// it. Returns ErrInvalidQuestionID when the id does not match the active
// question.
func (s *Selector) CheckAnswer(questionID string, answer int) (*quiz.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Question == nil || s.current.Question.ID != questionID {
		return nil, ErrInvalidQuestionID
	}

	fb := s.current.Question.Grade(answer)
	s.current = nil
	return &fb, nil
}

func (s *Selector) selectQuestion(ctx context.Context, prefs Prefs) (*Result, error) {
	result := &Result{
		States:    []State{StateIdle, StateChoosingSource},
		AIEnabled: prefs.AIEnabled,
	}

	topic, level := s.chooseTarget(prefs)

	if prefs.AIEnabled && s.gen != nil {
		if topic != "" {
			return s.aiPath(ctx, result, prefs, topic, level)
		}
		// AI was requested but no topic could be resolved (no weakness
		// targets and empty preferences); the bank question that follows
		// is a fallback, not a deliberate static choice.
		result.States = append(result.States, StateBankLookup)
		q := s.bank.Random(prefs.Topics, prefs.Levels)
		if q == nil {
			result.States = append(result.States, StateFailed)
			return result, ErrNoQuestions
		}
		fallback := *q
		fallback.Source = quiz.SourceStaticFallback
		result.States = append(result.States, StateDelivered)
		result.Question = &fallback
		return result, nil
	}

	result.States = append(result.States, StateBankLookup)
	q := s.bank.Random(prefs.Topics, prefs.Levels)
	if q == nil {
		result.States = append(result.States, StateFailed)
		return result, ErrNoQuestions
	}
	result.States = append(result.States, StateDelivered)
	result.Question = q
	return result, nil
}

// aiPath tries a fresh generation, then progressively looser cache
// lookups, then the static bank. Provider errors are consumed by the
// chain; only total exhaustion surfaces.
func (s *Selector) aiPath(ctx context.Context, result *Result, prefs Prefs, topic, level string) (*Result, error) {
	result.States = append(result.States, StateGenerating)

	q, genErr := s.gen.Generate(ctx, quizgen.GenerateInput{Topic: topic, Level: level})
	if genErr == nil {
		// Persist for offline fallback; a cache write failure doesn't
		// block delivery.
		_, _ = s.cache.Add(ctx, *q)
		result.States = append(result.States, StateDelivered)
		result.Question = q
		return result, nil
	}
	provErr := classifyProviderError(genErr)

	result.States = append(result.States, StateCacheLookup)
	filters := []qcache.Filter{
		{Topic: topic, Level: level},
		{Topic: topic},
		{Level: level},
		{},
	}
	for _, f := range filters {
		if cached := s.cache.Random(f); cached != nil {
			result.States = append(result.States, StateDelivered)
			result.Question = cached
			return result, nil
		}
	}

	result.States = append(result.States, StateBankLookup)
	if banked := s.bank.Random(prefs.Topics, prefs.Levels); banked != nil {
		fallback := *banked
		fallback.Source = quiz.SourceStaticFallback
		result.States = append(result.States, StateDelivered)
		result.Question = &fallback
		return result, nil
	}

	result.States = append(result.States, StateFailed)
	return result, errors.Join(ErrNoQuestions, provErr)
}

// chooseTarget picks the (topic, level) for this request. With
// targetedPinProbability it pins to the top weakness target when any
// exist; otherwise it samples the user's preferences uniformly.
func (s *Selector) chooseTarget(prefs Prefs) (topic, level string) {
	if s.targeter != nil {
		if targets := s.targeter.TargetedTopics(targetedLimit); len(targets) > 0 {
			if s.rng.Float64() < targetedPinProbability {
				return targets[0].Topic, string(targets[0].Difficulty)
			}
		}
	}

	if len(prefs.Topics) > 0 {
		topic = prefs.Topics[s.rng.Intn(len(prefs.Topics))]
	}
	if len(prefs.Levels) > 0 {
		level = prefs.Levels[s.rng.Intn(len(prefs.Levels))]
	}
	return topic, level
}

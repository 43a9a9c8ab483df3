package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/store"
)

// Session phases, advanced as the candidate works through the questions.
const (
	PhaseWarmup     = "warmup"
	PhaseTechnical  = "technical"
	PhaseAdvanced   = "advanced"
	PhaseBehavioral = "behavioral"
)

const maxHistory = 50

// ErrNoActiveSession is returned by operations that need a running session.
var ErrNoActiveSession = errors.New("no active interview session")

// QuestionSource supplies bank questions for session building.
type QuestionSource interface {
	Topics() []string
	ByTopicLevel(topic, level string) []quiz.Question
}

// SessionQuestion is a bank question scheduled within a session.
type SessionQuestion struct {
	quiz.Question
	TimeAllotted time.Duration
	Phase        string
}

// Answer records one submission within a session.
type Answer struct {
	QuestionID     string    `json:"questionId"`
	UserAnswer     int       `json:"userAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	Timestamp      time.Time `json:"timestamp"`
}

// Session is a running mock interview.
type Session struct {
	ID                string
	TypeID            string
	StartedAt         time.Time
	Duration          time.Duration
	Phase             string
	QuestionsAnswered int
	CorrectAnswers    int
}

// Record is a completed interview kept in history.
type Record struct {
	ID                string    `json:"id"`
	TypeID            string    `json:"type"`
	CompletedAt       time.Time `json:"completedAt"`
	Score             int       `json:"score"`
	AccuracyScore     int       `json:"accuracyScore"`
	TimeScore         int       `json:"timeScore"`
	CompletionScore   int       `json:"completionScore"`
	QuestionsAnswered int       `json:"questionsAnswered"`
	CorrectAnswers    int       `json:"correctAnswers"`
	TotalTimeMs       int64     `json:"totalTimeMs"`
}

// Stats aggregates the retained history.
type Stats struct {
	TotalInterviews int
	AverageScore    float64
	BestScore       int
	TotalTimeMs     int64
}

// Progress is a snapshot of the running session.
type Progress struct {
	CurrentQuestion int
	TotalQuestions  int
	TimeElapsed     time.Duration
	TimeRemaining   time.Duration
	Phase           string
	Accuracy        float64
}

type savedHistory struct {
	History []Record `json:"interviews"`
}

// Manager owns the session lifecycle and the persisted history.
type Manager struct {
	mu        sync.Mutex
	stateRepo store.StateRepo
	source    QuestionSource
	rng       *rand.Rand
	now       func() time.Time

	history   []Record
	session   *Session
	questions []SessionQuestion
	answers   []Answer
	idx       int
	pausedAt  time.Time
}

// NewManager creates a manager, restoring persisted history.
func NewManager(ctx context.Context, stateRepo store.StateRepo, source QuestionSource) *Manager {
	m := &Manager{
		stateRepo: stateRepo,
		source:    source,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
	if stateRepo != nil {
		var saved savedHistory
		if found, err := stateRepo.Get(ctx, store.StateKeyInterviews, &saved); err == nil && found {
			m.history = saved.History
		}
	}
	return m
}

// Start begins a session of the given type. A session already in progress
// is discarded.
func (m *Manager) Start(typeID string) (*Session, error) {
	t, ok := TypeByID(typeID)
	if !ok {
		return nil, fmt.Errorf("unknown interview type: %q", typeID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	questions := m.buildQuestions(t)
	if len(questions) == 0 {
		return nil, errors.New("no bank questions match this interview type")
	}

	now := m.now()
	m.session = &Session{
		ID:        fmt.Sprintf("interview_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		TypeID:    t.ID,
		StartedAt: now,
		Duration:  t.Duration,
		Phase:     PhaseWarmup,
	}
	m.questions = questions
	m.answers = nil
	m.idx = 0
	m.pausedAt = time.Time{}

	session := *m.session
	return &session, nil
}

// buildQuestions draws the per-level counts from the bank and shuffles
// so the levels interleave.
func (m *Manager) buildQuestions(t Type) []SessionQuestion {
	topics := t.Topics
	if len(topics) == 0 {
		topics = m.source.Topics()
	}

	total := t.Questions()
	easy := total * t.Distribution["beginner"] / 100
	medium := total * t.Distribution["intermediate"] / 100
	hard := total - easy - medium

	var out []SessionQuestion
	for _, want := range []struct {
		level string
		count int
	}{
		{"beginner", easy},
		{"intermediate", medium},
		{"advanced", hard},
	} {
		pool := m.poolFor(topics, want.level)
		n := want.count
		if n > len(pool) {
			n = len(pool)
		}
		for i, q := range pool[:n] {
			phase := phaseForLevel(want.level, i)
			out = append(out, SessionQuestion{
				Question:     q,
				TimeAllotted: t.TimePerQuestion,
				Phase:        phase,
			})
		}
	}

	m.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// poolFor gathers and shuffles every bank question at one level across
// the given topics.
func (m *Manager) poolFor(topics []string, level string) []quiz.Question {
	var pool []quiz.Question
	for _, topic := range topics {
		pool = append(pool, m.source.ByTopicLevel(topic, level)...)
	}
	m.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool
}

func phaseForLevel(level string, i int) string {
	switch level {
	case "beginner":
		if i < 2 {
			return PhaseWarmup
		}
		return PhaseTechnical
	case "advanced":
		return PhaseAdvanced
	default:
		return PhaseTechnical
	}
}

// Current returns the question waiting for an answer, or nil when the
// session is over or absent.
func (m *Manager) Current() *SessionQuestion {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.idx >= len(m.questions) {
		return nil
	}
	q := m.questions[m.idx]
	return &q
}

// Submit grades the current question, advances the session, and updates
// the phase.
func (m *Manager) Submit(answer int, responseTime time.Duration) (*Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, ErrNoActiveSession
	}
	if m.idx >= len(m.questions) {
		return nil, errors.New("all session questions are answered")
	}

	q := m.questions[m.idx]
	a := Answer{
		QuestionID:     q.ID,
		UserAnswer:     answer,
		IsCorrect:      answer == q.Correct,
		ResponseTimeMs: responseTime.Milliseconds(),
		Timestamp:      m.now(),
	}
	m.answers = append(m.answers, a)
	m.session.QuestionsAnswered++
	if a.IsCorrect {
		m.session.CorrectAnswers++
	}

	// Phase shifts with progress through the question list.
	progress := float64(m.idx) / float64(len(m.questions))
	switch {
	case progress < 0.2:
		m.session.Phase = PhaseWarmup
	case progress < 0.7:
		m.session.Phase = PhaseTechnical
	case progress < 0.9:
		m.session.Phase = PhaseAdvanced
	default:
		m.session.Phase = PhaseBehavioral
	}

	m.idx++
	return &a, nil
}

// Progress reports how far along the running session is.
func (m *Manager) Progress() *Progress {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	elapsed := m.now().Sub(m.session.StartedAt)
	remaining := m.session.Duration - elapsed
	if remaining < 0 {
		remaining = 0
	}
	var accuracy float64
	if m.session.QuestionsAnswered > 0 {
		accuracy = float64(m.session.CorrectAnswers) / float64(m.session.QuestionsAnswered) * 100
	}
	return &Progress{
		CurrentQuestion: m.idx + 1,
		TotalQuestions:  len(m.questions),
		TimeElapsed:     elapsed,
		TimeRemaining:   remaining,
		Phase:           m.session.Phase,
		Accuracy:        accuracy,
	}
}

// Pause stops the session clock.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil && m.pausedAt.IsZero() {
		m.pausedAt = m.now()
	}
}

// Resume restarts the clock, shifting the start time so paused time does
// not count against the candidate.
func (m *Manager) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil && !m.pausedAt.IsZero() {
		m.session.StartedAt = m.session.StartedAt.Add(m.now().Sub(m.pausedAt))
		m.pausedAt = time.Time{}
	}
}

// Complete scores the session, appends it to history, and persists.
// Sessions ended early still complete; the completion score reflects the
// unanswered remainder.
func (m *Manager) Complete(ctx context.Context) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, ErrNoActiveSession
	}

	now := m.now()
	totalTime := now.Sub(m.session.StartedAt)

	answered := m.session.QuestionsAnswered
	if answered == 0 {
		answered = 1
	}
	accuracy := float64(m.session.CorrectAnswers) / float64(answered) * 100
	timeScore := timeScore(totalTime, m.session.Duration)
	completion := float64(m.idx) / float64(len(m.questions)) * 100

	rec := Record{
		ID:                m.session.ID,
		TypeID:            m.session.TypeID,
		CompletedAt:       now,
		Score:             int(math.Round(accuracy*0.5 + timeScore*0.3 + completion*0.2)),
		AccuracyScore:     int(math.Round(accuracy)),
		TimeScore:         int(math.Round(timeScore)),
		CompletionScore:   int(math.Round(completion)),
		QuestionsAnswered: m.session.QuestionsAnswered,
		CorrectAnswers:    m.session.CorrectAnswers,
		TotalTimeMs:       totalTime.Milliseconds(),
	}

	m.history = append(m.history, rec)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}

	m.session = nil
	m.questions = nil
	m.answers = nil
	m.idx = 0
	m.pausedAt = time.Time{}

	if m.stateRepo != nil {
		if err := m.stateRepo.Set(ctx, store.StateKeyInterviews, savedHistory{History: m.history}); err != nil {
			return &rec, fmt.Errorf("persist interview history: %w", err)
		}
	}
	return &rec, nil
}

// Abort drops the running session without scoring it.
func (m *Manager) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	m.questions = nil
	m.answers = nil
	m.idx = 0
	m.pausedAt = time.Time{}
}

// timeScore rewards finishing within the allotted duration.
func timeScore(actual, expected time.Duration) float64 {
	ratio := float64(actual) / float64(expected)
	switch {
	case ratio <= 0.8:
		return 100
	case ratio <= 1.0:
		return 90
	case ratio <= 1.2:
		return 70
	default:
		return 50
	}
}

// History returns the most recent interviews, newest first.
func (m *Manager) History(limit int) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.history)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Record, 0, n)
	for i := len(m.history) - 1; i >= len(m.history)-n; i-- {
		out = append(out, m.history[i])
	}
	return out
}

// Scores returns every retained interview score, oldest first. The skill
// assessor weighs the recent ones into its success-rate estimate.
func (m *Manager) Scores() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	scores := make([]int, len(m.history))
	for i, rec := range m.history {
		scores[i] = rec.Score
	}
	return scores
}

// Stats aggregates the retained history.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Stats{TotalInterviews: len(m.history)}
	if len(m.history) == 0 {
		return s
	}
	var sum int
	for _, rec := range m.history {
		sum += rec.Score
		if rec.Score > s.BestScore {
			s.BestScore = rec.Score
		}
		s.TotalTimeMs += rec.TotalTimeMs
	}
	s.AverageScore = float64(sum) / float64(len(m.history))
	return s
}

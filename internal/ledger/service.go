package ledger

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizmate/internal/store"
)

// state is the persisted shape of the ledger.
type state struct {
	Attempts     []Attempt            `json:"attempts"`
	DailyStats   map[string]DailyStat `json:"dailyStats"`
	TopicStats   map[string]TopicStat `json:"topicStats"`
	LevelStats   map[string]Stat      `json:"levelStats"`
	SourceStats  map[string]Stat      `json:"sourceStats"`
	Totals       totals               `json:"totals"`
	Achievements []Achievement        `json:"achievements"`
}

type totals struct {
	QuestionsAnswered     int    `json:"questionsAnswered"`
	CorrectAnswers        int    `json:"correctAnswers"`
	IncorrectAnswers      int    `json:"incorrectAnswers"`
	CurrentStreak         int    `json:"currentStreak"`
	LongestStreak         int    `json:"longestStreak"`
	LastAnswerDate        string `json:"lastAnswerDate"`
	AverageResponseTimeMs int64  `json:"averageResponseTimeMs"`
}

// Service owns the answer log and all derived aggregates.
// It is the single writer; one attempt is recorded at a time.
type Service struct {
	state     state
	stateRepo store.StateRepo
	now       func() time.Time
}

// NewService creates a ledger service, loading persisted state if present.
func NewService(ctx context.Context, stateRepo store.StateRepo) (*Service, error) {
	s := &Service{
		state:     emptyState(),
		stateRepo: stateRepo,
		now:       time.Now,
	}

	if stateRepo != nil {
		var saved state
		found, err := stateRepo.Get(ctx, store.StateKeyAnalytics, &saved)
		if err != nil {
			return nil, fmt.Errorf("load analytics state: %w", err)
		}
		if found {
			normalizeState(&saved)
			s.state = saved
		}
	}

	return s, nil
}

func emptyState() state {
	return state{
		DailyStats:  make(map[string]DailyStat),
		TopicStats:  make(map[string]TopicStat),
		LevelStats:  make(map[string]Stat),
		SourceStats: make(map[string]Stat),
	}
}

// normalizeState fills nil maps from older or partial persisted data.
func normalizeState(st *state) {
	if st.DailyStats == nil {
		st.DailyStats = make(map[string]DailyStat)
	}
	if st.TopicStats == nil {
		st.TopicStats = make(map[string]TopicStat)
	}
	if st.LevelStats == nil {
		st.LevelStats = make(map[string]Stat)
	}
	if st.SourceStats == nil {
		st.SourceStats = make(map[string]Stat)
	}
}

// RecordAttempt appends an answer attempt and updates every derived
// aggregate. Empty metadata fields get defaults; negative response times
// are treated as 0.
func (s *Service) RecordAttempt(ctx context.Context, topic, level, source string, userAnswer, correctAnswer int, responseTimeMs int64) (Attempt, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	if level == "" {
		level = DefaultLevel
	}
	if source == "" {
		source = DefaultSource
	}
	if responseTimeMs < 0 {
		responseTimeMs = 0
	}

	now := s.now()
	date := now.Format("2006-01-02")

	attempt := Attempt{
		ID:             fmt.Sprintf("attempt_%d_%s", now.UnixMilli(), uuid.NewString()[:8]),
		Timestamp:      now,
		Date:           date,
		Topic:          topic,
		Level:          level,
		Source:         source,
		UserAnswer:     userAnswer,
		CorrectAnswer:  correctAnswer,
		IsCorrect:      userAnswer == correctAnswer,
		ResponseTimeMs: responseTimeMs,
	}

	s.state.Attempts = append(s.state.Attempts, attempt)
	if len(s.state.Attempts) > maxAttempts {
		s.state.Attempts = s.state.Attempts[len(s.state.Attempts)-maxAttempts:]
	}

	s.updateDailyStats(date, attempt.IsCorrect)
	s.updateTotals(attempt)
	s.evaluateAchievements(now)

	return attempt, s.persist(ctx)
}

func (s *Service) updateDailyStats(date string, isCorrect bool) {
	day := s.state.DailyStats[date]
	day.QuestionsAnswered++
	if isCorrect {
		day.CorrectAnswers++
	} else {
		day.IncorrectAnswers++
	}
	day.Accuracy = roundPercent(day.CorrectAnswers, day.QuestionsAnswered)
	s.state.DailyStats[date] = day
}

func (s *Service) updateTotals(attempt Attempt) {
	t := &s.state.Totals
	t.QuestionsAnswered++

	if attempt.IsCorrect {
		t.CorrectAnswers++
		if t.LastAnswerDate == attempt.Date || isConsecutiveDay(t.LastAnswerDate, attempt.Date) {
			t.CurrentStreak++
		} else {
			t.CurrentStreak = 1
		}
		if t.CurrentStreak > t.LongestStreak {
			t.LongestStreak = t.CurrentStreak
		}
	} else {
		t.IncorrectAnswers++
		t.CurrentStreak = 0
	}
	t.LastAnswerDate = attempt.Date

	topic := s.state.TopicStats[attempt.Topic]
	topic.Total++
	if attempt.IsCorrect {
		topic.Correct++
	}
	topic.TotalTimeMs += attempt.ResponseTimeMs
	topic.Accuracy = roundPercent(topic.Correct, topic.Total)
	s.state.TopicStats[attempt.Topic] = topic

	level := s.state.LevelStats[attempt.Level]
	level.Total++
	if attempt.IsCorrect {
		level.Correct++
	}
	level.Accuracy = roundPercent(level.Correct, level.Total)
	s.state.LevelStats[attempt.Level] = level

	source := s.state.SourceStats[attempt.Source]
	source.Total++
	if attempt.IsCorrect {
		source.Correct++
	}
	source.Accuracy = roundPercent(source.Correct, source.Total)
	s.state.SourceStats[attempt.Source] = source

	if attempt.ResponseTimeMs > 0 {
		var sum int64
		var count int64
		for _, a := range s.state.Attempts {
			if a.ResponseTimeMs > 0 {
				sum += a.ResponseTimeMs
				count++
			}
		}
		if count > 0 {
			t.AverageResponseTimeMs = int64(math.Round(float64(sum) / float64(count)))
		}
	}
}

// isConsecutiveDay reports whether current is exactly one calendar day
// after last.
func isConsecutiveDay(last, current string) bool {
	if last == "" {
		return false
	}
	lastT, err := time.Parse("2006-01-02", last)
	if err != nil {
		return false
	}
	currentT, err := time.Parse("2006-01-02", current)
	if err != nil {
		return false
	}
	return currentT.Sub(lastT) == 24*time.Hour
}

// Aggregates returns a by-value snapshot of all derived counters.
func (s *Service) Aggregates() Aggregates {
	t := s.state.Totals
	return Aggregates{
		TotalQuestions:        t.QuestionsAnswered,
		CorrectAnswers:        t.CorrectAnswers,
		IncorrectAnswers:      t.IncorrectAnswers,
		OverallAccuracy:       roundPercent(t.CorrectAnswers, t.QuestionsAnswered),
		AverageResponseTimeMs: t.AverageResponseTimeMs,
		Streak: Streak{
			Current:        t.CurrentStreak,
			Longest:        t.LongestStreak,
			LastAnswerDate: t.LastAnswerDate,
		},
		DailyStats:  cloneMap(s.state.DailyStats),
		TopicStats:  cloneMap(s.state.TopicStats),
		LevelStats:  cloneMap(s.state.LevelStats),
		SourceStats: cloneMap(s.state.SourceStats),
	}
}

// WeeklyStats sums the last 7 calendar days including today,
// oldest first.
func (s *Service) WeeklyStats() WeeklyStats {
	now := s.now()

	var week WeeklyStats
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")
		stats := s.state.DailyStats[dateStr]

		week.TotalQuestions += stats.QuestionsAnswered
		week.TotalCorrect += stats.CorrectAnswers
		week.Days = append(week.Days, DayStats{
			Date:      dateStr,
			Weekday:   day.Format("Mon"),
			Questions: stats.QuestionsAnswered,
			Correct:   stats.CorrectAnswers,
			Accuracy:  stats.Accuracy,
		})
	}
	week.Accuracy = roundPercent(week.TotalCorrect, week.TotalQuestions)
	return week
}

// RecentTrend compares the first and second half of the last 20 attempts.
// A swing of more than 10 points flags the trend as improving or declining.
func (s *Service) RecentTrend() RecentTrend {
	recent := s.state.Attempts
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	if len(recent) == 0 {
		return RecentTrend{Trend: TrendNeutral}
	}

	correct := 0
	for _, a := range recent {
		if a.IsCorrect {
			correct++
		}
	}

	half := len(recent) / 2
	firstAcc := accuracyPercent(recent[:half])
	secondAcc := accuracyPercent(recent[half:])

	trend := TrendNeutral
	if secondAcc > firstAcc+10 {
		trend = TrendImproving
	} else if secondAcc < firstAcc-10 {
		trend = TrendDeclining
	}

	return RecentTrend{
		Trend:    trend,
		Accuracy: roundPercent(correct, len(recent)),
	}
}

func accuracyPercent(attempts []Attempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	correct := 0
	for _, a := range attempts {
		if a.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(attempts)) * 100
}

// TopicPerformances returns per-topic summaries sorted by most practiced.
func (s *Service) TopicPerformances() []TopicPerformance {
	out := make([]TopicPerformance, 0, len(s.state.TopicStats))
	for topic, stats := range s.state.TopicStats {
		strength := "weak"
		if stats.Accuracy >= 80 {
			strength = "strong"
		} else if stats.Accuracy >= 60 {
			strength = "moderate"
		}
		out = append(out, TopicPerformance{
			Topic:    topic,
			Correct:  stats.Correct,
			Total:    stats.Total,
			Accuracy: stats.Accuracy,
			Strength: strength,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// Achievements returns all earned achievements in earn order.
func (s *Service) Achievements() []Achievement {
	out := make([]Achievement, len(s.state.Achievements))
	copy(out, s.state.Achievements)
	return out
}

// RecentAttempts returns up to limit most recent attempts, oldest first.
func (s *Service) RecentAttempts(limit int) []Attempt {
	attempts := s.state.Attempts
	if limit > 0 && len(attempts) > limit {
		attempts = attempts[len(attempts)-limit:]
	}
	out := make([]Attempt, len(attempts))
	copy(out, attempts)
	return out
}

// Export returns the full ledger state for backup.
func (s *Service) Export() ExportData {
	return ExportData{
		ExportDate: s.now(),
		State:      s.state,
	}
}

// Import replaces the ledger state from an export.
func (s *Service) Import(ctx context.Context, data ExportData) error {
	st := data.State
	normalizeState(&st)
	s.state = st
	return s.persist(ctx)
}

// ExportData wraps the ledger state with export metadata.
type ExportData struct {
	ExportDate time.Time `json:"exportDate"`
	State      state     `json:"data"`
}

// Reset discards all recorded data.
func (s *Service) Reset(ctx context.Context) error {
	s.state = emptyState()
	if s.stateRepo == nil {
		return nil
	}
	return s.stateRepo.Delete(ctx, store.StateKeyAnalytics)
}

func (s *Service) persist(ctx context.Context) error {
	if s.stateRepo == nil {
		return nil
	}
	if err := s.stateRepo.Set(ctx, store.StateKeyAnalytics, s.state); err != nil {
		return fmt.Errorf("persist analytics state: %w", err)
	}
	return nil
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

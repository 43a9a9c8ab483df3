package ledger

import (
	"context"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService(context.Background(), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return s
}

// setDay pins the service clock to noon on the given day.
func setDay(s *Service, day string) {
	t, _ := time.Parse("2006-01-02", day)
	fixed := t.Add(12 * time.Hour)
	s.now = func() time.Time { return fixed }
}

func record(t *testing.T, s *Service, topic, level, source string, correct bool) Attempt {
	t.Helper()
	answer := 0
	if !correct {
		answer = 1
	}
	a, err := s.RecordAttempt(context.Background(), topic, level, source, answer, 0, 5000)
	if err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	return a
}

func TestTotalsInvariant(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < 12; i++ {
		record(t, s, "arrays", "beginner", "static", i%3 != 0)
	}

	agg := s.Aggregates()
	if agg.TotalQuestions != agg.CorrectAnswers+agg.IncorrectAnswers {
		t.Errorf("total %d != correct %d + incorrect %d",
			agg.TotalQuestions, agg.CorrectAnswers, agg.IncorrectAnswers)
	}
	if agg.TopicStats["arrays"].Total != 12 {
		t.Errorf("topic total = %d, want 12", agg.TopicStats["arrays"].Total)
	}
}

func TestDefaultsApplied(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	a, err := s.RecordAttempt(context.Background(), "", "", "", 0, 0, -50)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if a.Topic != DefaultTopic || a.Level != DefaultLevel || a.Source != DefaultSource {
		t.Errorf("defaults not applied: %+v", a)
	}
	if a.ResponseTimeMs != 0 {
		t.Errorf("negative response time = %d, want 0", a.ResponseTimeMs)
	}
}

func TestStreakAcrossConsecutiveDays(t *testing.T) {
	s := newTestService(t)

	// Two correct on day D, one correct on D+1.
	setDay(s, "2026-08-01")
	record(t, s, "arrays", "beginner", "static", true)
	record(t, s, "arrays", "beginner", "static", true)
	setDay(s, "2026-08-02")
	record(t, s, "arrays", "beginner", "static", true)

	agg := s.Aggregates()
	if agg.Streak.Current != 3 {
		t.Errorf("current streak = %d, want 3", agg.Streak.Current)
	}
	if agg.Streak.Longest != 3 {
		t.Errorf("longest streak = %d, want 3", agg.Streak.Longest)
	}
}

func TestStreakResetOnIncorrect(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < 4; i++ {
		record(t, s, "arrays", "beginner", "static", true)
	}
	record(t, s, "arrays", "beginner", "static", false)

	agg := s.Aggregates()
	if agg.Streak.Current != 0 {
		t.Errorf("current streak = %d, want 0", agg.Streak.Current)
	}
	if agg.Streak.Longest != 4 {
		t.Errorf("longest streak = %d, want 4 (never decreases)", agg.Streak.Longest)
	}
}

func TestStreakResetsAfterGap(t *testing.T) {
	s := newTestService(t)

	setDay(s, "2026-08-01")
	record(t, s, "arrays", "beginner", "static", true)
	record(t, s, "arrays", "beginner", "static", true)

	// Skip a day; streak restarts at 1.
	setDay(s, "2026-08-03")
	record(t, s, "arrays", "beginner", "static", true)

	agg := s.Aggregates()
	if agg.Streak.Current != 1 {
		t.Errorf("current streak = %d, want 1", agg.Streak.Current)
	}
}

func TestFiveAndFiveIsFiftyPercent(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < 5; i++ {
		record(t, s, "arrays", "beginner", "static", true)
	}
	for i := 0; i < 5; i++ {
		record(t, s, "arrays", "beginner", "static", false)
	}

	stat := s.Aggregates().TopicStats["arrays"]
	if stat.Accuracy != 50 {
		t.Errorf("accuracy = %d, want 50", stat.Accuracy)
	}
	if stat.Total != 10 {
		t.Errorf("total = %d, want 10", stat.Total)
	}
}

func TestAverageResponseTimeIgnoresZero(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")
	ctx := context.Background()

	s.RecordAttempt(ctx, "arrays", "beginner", "static", 0, 0, 4000)
	s.RecordAttempt(ctx, "arrays", "beginner", "static", 0, 0, 0)
	s.RecordAttempt(ctx, "arrays", "beginner", "static", 0, 0, 8000)

	agg := s.Aggregates()
	if agg.AverageResponseTimeMs != 6000 {
		t.Errorf("average response time = %d, want 6000", agg.AverageResponseTimeMs)
	}
}

func TestAttemptLogTrimmedToCap(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < maxAttempts+25; i++ {
		record(t, s, "arrays", "beginner", "static", true)
	}

	if got := len(s.state.Attempts); got != maxAttempts {
		t.Errorf("retained attempts = %d, want %d", got, maxAttempts)
	}
	// Counters keep full history.
	if got := s.Aggregates().TotalQuestions; got != maxAttempts+25 {
		t.Errorf("total questions = %d, want %d", got, maxAttempts+25)
	}
}

func TestWeeklyStats(t *testing.T) {
	s := newTestService(t)

	setDay(s, "2026-08-20")
	record(t, s, "arrays", "beginner", "static", true)
	record(t, s, "arrays", "beginner", "static", false)

	setDay(s, "2026-08-22")
	record(t, s, "arrays", "beginner", "static", true)

	// Outside the 7-day window relative to the 22nd.
	week := s.WeeklyStats()
	if len(week.Days) != 7 {
		t.Fatalf("len(days) = %d, want 7", len(week.Days))
	}
	if week.Days[0].Date != "2026-08-16" || week.Days[6].Date != "2026-08-22" {
		t.Errorf("window = %s..%s, want 2026-08-16..2026-08-22",
			week.Days[0].Date, week.Days[6].Date)
	}
	if week.TotalQuestions != 3 || week.TotalCorrect != 2 {
		t.Errorf("totals = %d/%d, want 3/2", week.TotalQuestions, week.TotalCorrect)
	}
	if week.Accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", week.Accuracy)
	}
}

func TestRecentTrend(t *testing.T) {
	tests := []struct {
		name    string
		results []bool
		want    Trend
	}{
		{
			name:    "improving",
			results: []bool{false, false, false, false, false, true, true, true, true, true},
			want:    TrendImproving,
		},
		{
			name:    "declining",
			results: []bool{true, true, true, true, true, false, false, false, false, false},
			want:    TrendDeclining,
		},
		{
			name:    "neutral",
			results: []bool{true, false, true, false, true, true, false, true, false, true},
			want:    TrendNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)
			setDay(s, "2026-08-01")
			for _, correct := range tt.results {
				record(t, s, "arrays", "beginner", "static", correct)
			}
			if got := s.RecentTrend().Trend; got != tt.want {
				t.Errorf("trend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecentTrendEmpty(t *testing.T) {
	s := newTestService(t)
	got := s.RecentTrend()
	if got.Trend != TrendNeutral || got.Accuracy != 0 {
		t.Errorf("empty trend = %+v, want neutral/0", got)
	}
}

func TestTopicPerformancesSorted(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")

	for i := 0; i < 5; i++ {
		record(t, s, "arrays", "beginner", "static", true)
	}
	for i := 0; i < 2; i++ {
		record(t, s, "sql-basics", "beginner", "static", false)
	}

	perf := s.TopicPerformances()
	if len(perf) != 2 {
		t.Fatalf("len(perf) = %d, want 2", len(perf))
	}
	if perf[0].Topic != "arrays" {
		t.Errorf("most practiced = %q, want arrays", perf[0].Topic)
	}
	if perf[0].Strength != "strong" {
		t.Errorf("arrays strength = %q, want strong", perf[0].Strength)
	}
	if perf[1].Strength != "weak" {
		t.Errorf("sql-basics strength = %q, want weak", perf[1].Strength)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestService(t)
	setDay(s, "2026-08-01")
	record(t, s, "arrays", "beginner", "static", true)
	record(t, s, "joins", "advanced", "ai", false)

	exported := s.Export()

	fresh := newTestService(t)
	if err := fresh.Import(context.Background(), exported); err != nil {
		t.Fatalf("import: %v", err)
	}

	want := s.Aggregates()
	got := fresh.Aggregates()
	if got.TotalQuestions != want.TotalQuestions {
		t.Errorf("total = %d, want %d", got.TotalQuestions, want.TotalQuestions)
	}
	if got.TopicStats["joins"] != want.TopicStats["joins"] {
		t.Errorf("joins stat = %+v, want %+v", got.TopicStats["joins"], want.TopicStats["joins"])
	}
	if got.Streak != want.Streak {
		t.Errorf("streak = %+v, want %+v", got.Streak, want.Streak)
	}
}

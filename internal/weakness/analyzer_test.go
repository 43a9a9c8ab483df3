package weakness

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/quizmate/internal/ledger"
)

func aggregatesWithTopics(topics map[string]ledger.TopicStat) ledger.Aggregates {
	total, correct := 0, 0
	for _, s := range topics {
		total += s.Total
		correct += s.Correct
	}
	acc := 0
	if total > 0 {
		acc = correct * 100 / total
	}
	return ledger.Aggregates{
		TotalQuestions:  total,
		CorrectAnswers:  correct,
		OverallAccuracy: acc,
		TopicStats:      topics,
		LevelStats:      map[string]ledger.Stat{},
		SourceStats:     map[string]ledger.Stat{},
		DailyStats:      map[string]ledger.DailyStat{},
	}
}

func TestWeaknessScoreFormula(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		avgRT    float64
		total    int
		want     float64
	}{
		{"perfect with sample", 1.0, 0, 10, 0},
		{"all wrong no sample", 0, 0, 0, 150},            // 100 + 0 + 50
		{"half accuracy slow", 0.5, 30000, 10, 70},       // 50 + 20 + 0
		{"half accuracy very slow", 0.5, 90000, 10, 70},  // time penalty capped
		{"low sample penalty", 1.0, 0, 4, 30},            // (10-4)*5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weaknessScore(tt.accuracy, tt.avgRT, tt.total)
			if got != tt.want {
				t.Errorf("weaknessScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFiftyPercentOverFiveIsWeak(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays": {Correct: 5, Total: 10, Accuracy: 50, TotalTimeMs: 50000},
	})

	report := a.Analyze(context.Background(), aggr, ledger.WeeklyStats{})
	cw, ok := report.ConceptWeaknesses["arrays"]
	if !ok {
		t.Fatal("expected arrays concept entry")
	}
	if !cw.IsWeak {
		t.Error("50% accuracy over 10 questions should be weak")
	}
	if cw.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", cw.Accuracy)
	}
}

func TestHighAccuracySmallSampleNotWeak(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays": {Correct: 2, Total: 3, TotalTimeMs: 9000},
	})

	report := a.Analyze(context.Background(), aggr, ledger.WeeklyStats{})
	// 66.7% with under 5 samples: above the 60% floor and the sampled
	// rule doesn't apply yet.
	if report.ConceptWeaknesses["arrays"].IsWeak {
		t.Error("2/3 should not be weak")
	}
}

func TestTopicNormalizationMergesCounters(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)
	// python and javascript both normalize to programming-fundamentals.
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"python":     {Correct: 3, Total: 4, TotalTimeMs: 8000},
		"javascript": {Correct: 1, Total: 4, TotalTimeMs: 8000},
	})

	report := a.Analyze(context.Background(), aggr, ledger.WeeklyStats{})
	cw, ok := report.ConceptWeaknesses["programming-fundamentals"]
	if !ok {
		t.Fatal("expected merged programming-fundamentals entry")
	}
	if cw.TotalQuestions != 8 || cw.CorrectAnswers != 4 {
		t.Errorf("merged counters = %d/%d, want 4/8", cw.CorrectAnswers, cw.TotalQuestions)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays":    {Correct: 2, Total: 10, TotalTimeMs: 120000},
		"recursion": {Correct: 1, Total: 8, TotalTimeMs: 200000},
		"joins":     {Correct: 3, Total: 6, TotalTimeMs: 30000},
		"java":      {Correct: 9, Total: 10, TotalTimeMs: 40000},
	})

	a := NewAnalyzer(context.Background(), nil)
	ctx := context.Background()
	first, _ := json.Marshal(stripTimestamp(a.Analyze(ctx, aggr, ledger.WeeklyStats{})))
	second, _ := json.Marshal(stripTimestamp(a.Analyze(ctx, aggr, ledger.WeeklyStats{})))

	if string(first) != string(second) {
		t.Error("repeated analysis of unchanged aggregates differs")
	}
}

func stripTimestamp(r *Report) *Report {
	c := *r
	c.Timestamp = time.Time{}
	return &c
}

func TestMasteryLevelsFromThresholds(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     MasteryLevel
	}{
		{0.30, MasteryNovice},
		{0.40, MasteryBeginner},
		{0.69, MasteryBeginner},
		{0.70, MasteryIntermediate},
		{0.85, MasteryAdvanced},
		{0.95, MasteryExpert},
		{1.00, MasteryExpert},
	}

	for _, tt := range tests {
		levels := masteryLevels(map[string]ConceptWeakness{
			"x": {Accuracy: tt.accuracy, TotalQuestions: 10},
		})
		if got := levels["x"].Level; got != tt.want {
			t.Errorf("accuracy %v: level = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestMasteryMonotonic(t *testing.T) {
	rank := map[MasteryLevel]int{
		MasteryNovice: 0, MasteryBeginner: 1, MasteryIntermediate: 2,
		MasteryAdvanced: 3, MasteryExpert: 4,
	}

	prev := -1
	for acc := 0.0; acc <= 1.0; acc += 0.01 {
		levels := masteryLevels(map[string]ConceptWeakness{
			"x": {Accuracy: acc, TotalQuestions: 10},
		})
		cur := rank[levels["x"].Level]
		if cur < prev {
			t.Fatalf("mastery decreased at accuracy %v", acc)
		}
		prev = cur
	}
}

func TestQuestionsNeeded(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     int
	}{
		{0.30, 2},  // to 0.40: ceil(0.10*20)
		{0.50, 4},  // to 0.70
		{0.80, 1},  // to 0.85
		{0.90, 1},  // to 0.95
		{0.96, 0},  // expert
	}
	for _, tt := range tests {
		if got := questionsNeeded(tt.accuracy); got != tt.want {
			t.Errorf("questionsNeeded(%v) = %d, want %d", tt.accuracy, got, tt.want)
		}
	}
}

func TestSeverityBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  Severity
	}{
		{85, SeverityCritical},
		{80, SeverityCritical},
		{65, SeverityHigh},
		{45, SeverityMedium},
		{10, SeverityLow},
	}
	for _, tt := range tests {
		if got := severityOf(tt.score); got != tt.want {
			t.Errorf("severityOf(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestWeaknessesSortedByPriority(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays":    {Correct: 1, Total: 10, TotalTimeMs: 150000},
		"searching": {Correct: 5, Total: 10, TotalTimeMs: 60000},
	})

	report := a.Analyze(context.Background(), aggr, ledger.WeeklyStats{})
	ws := report.OverallWeaknesses
	if len(ws) < 2 {
		t.Fatalf("expected at least 2 weaknesses, got %d", len(ws))
	}
	for i := 1; i < len(ws); i++ {
		if ws[i-1].Priority < ws[i].Priority {
			t.Errorf("weaknesses not sorted: %v before %v", ws[i-1].Priority, ws[i].Priority)
		}
	}
}

func TestTargetedTopics(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)

	if got := a.TargetedTopics(3); got != nil {
		t.Errorf("expected nil targets before analysis, got %v", got)
	}

	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays":    {Correct: 1, Total: 10, TotalTimeMs: 150000},
		"recursion": {Correct: 2, Total: 10, TotalTimeMs: 150000},
		"joins":     {Correct: 3, Total: 10, TotalTimeMs: 150000},
		"sorting":   {Correct: 4, Total: 10, TotalTimeMs: 150000},
	})
	a.Analyze(context.Background(), aggr, ledger.WeeklyStats{})

	targets := a.TargetedTopics(3)
	if len(targets) != 3 {
		t.Fatalf("len(targets) = %d, want 3", len(targets))
	}
	for i := 1; i < len(targets); i++ {
		if targets[i-1].Priority < targets[i].Priority {
			t.Error("targets not in priority order")
		}
	}
	if targets[0].Difficulty == "" {
		t.Error("target difficulty missing")
	}
}

func TestRecommendedActionsDeduplicated(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays":  {Correct: 1, Total: 10, TotalTimeMs: 120000},
		"sorting": {Correct: 2, Total: 10, TotalTimeMs: 120000},
		"stacks":  {Correct: 2, Total: 10, TotalTimeMs: 120000},
	})

	report := a.Analyze(context.Background(), aggr, ledger.WeeklyStats{})

	seen := make(map[string]bool)
	for _, action := range report.RecommendedActions {
		target := action.Concept
		if target == "" {
			target = action.Category
		}
		key := action.Type + "-" + target
		if seen[key] {
			t.Errorf("duplicate action %q", key)
		}
		seen[key] = true
	}

	// arrays is weak and is a prerequisite of weak sorting and stacks,
	// so a review action must be present.
	foundReview := false
	for _, action := range report.RecommendedActions {
		if action.Type == "review" && action.Concept == "arrays" {
			foundReview = true
		}
	}
	if !foundReview {
		t.Error("expected prerequisite review action for arrays")
	}
}

func TestLearningPathCapped(t *testing.T) {
	topics := map[string]ledger.TopicStat{
		"arrays": {Correct: 1, Total: 10, TotalTimeMs: 100000}, "recursion": {Correct: 1, Total: 10, TotalTimeMs: 100000},
		"sorting": {Correct: 1, Total: 10, TotalTimeMs: 100000}, "stacks": {Correct: 1, Total: 10, TotalTimeMs: 100000},
		"queues": {Correct: 1, Total: 10, TotalTimeMs: 100000}, "trees": {Correct: 1, Total: 10, TotalTimeMs: 100000},
		"joins": {Correct: 1, Total: 10, TotalTimeMs: 100000}, "indexing": {Correct: 1, Total: 10, TotalTimeMs: 100000},
		"classes": {Correct: 1, Total: 10, TotalTimeMs: 100000}, "inheritance": {Correct: 1, Total: 10, TotalTimeMs: 100000},
		"caching": {Correct: 1, Total: 10, TotalTimeMs: 100000}, "searching": {Correct: 1, Total: 10, TotalTimeMs: 100000},
	}

	a := NewAnalyzer(context.Background(), nil)
	report := a.Analyze(context.Background(), aggregatesWithTopics(topics), ledger.WeeklyStats{})
	if len(report.LearningPath) > 10 {
		t.Errorf("learning path length = %d, want <= 10", len(report.LearningPath))
	}
	if len(report.LearningPath) == 0 {
		t.Error("expected non-empty learning path")
	}
}

func TestConfidenceTrend(t *testing.T) {
	a := NewAnalyzer(context.Background(), nil)
	aggr := aggregatesWithTopics(map[string]ledger.TopicStat{
		"arrays": {Correct: 5, Total: 10, TotalTimeMs: 50000},
	})

	report := a.Analyze(context.Background(), aggr, ledger.WeeklyStats{Accuracy: 80})
	if report.ConfidenceScores.Trend != "improving" {
		t.Errorf("trend = %q, want improving", report.ConfidenceScores.Trend)
	}

	report = a.Analyze(context.Background(), aggr, ledger.WeeklyStats{Accuracy: 20})
	if report.ConfidenceScores.Trend != "declining" {
		t.Errorf("trend = %q, want declining", report.ConfidenceScores.Trend)
	}
}

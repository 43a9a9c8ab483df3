package ledger

import "time"

// Default attempt metadata when the caller leaves a field empty.
const (
	DefaultTopic  = "general"
	DefaultLevel  = "intermediate"
	DefaultSource = "static"
)

// maxAttempts caps the retained attempt log to prevent unbounded growth.
// Older attempts are trimmed; the aggregate counters keep their history.
const maxAttempts = 1000

// Attempt is a single answered question. Immutable once recorded.
type Attempt struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Date           string    `json:"date"` // local calendar day, YYYY-MM-DD
	Topic          string    `json:"topic"`
	Level          string    `json:"level"`
	Source         string    `json:"source"`
	UserAnswer     int       `json:"userAnswer"`
	CorrectAnswer  int       `json:"correctAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
}

// DailyStat aggregates one calendar day of attempts.
type DailyStat struct {
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`
	IncorrectAnswers  int `json:"incorrectAnswers"`
	Accuracy          int `json:"accuracy"` // rounded percent
}

// Stat aggregates attempts by level or source.
type Stat struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"` // rounded percent
}

// TopicStat aggregates attempts by topic. Unlike Stat it also accumulates
// total response time, which the weakness analyzer needs for its
// response-time penalty.
type TopicStat struct {
	Correct     int   `json:"correct"`
	Total       int   `json:"total"`
	Accuracy    int   `json:"accuracy"` // rounded percent
	TotalTimeMs int64 `json:"totalTimeMs"`
}

// Streak tracks consecutive correct answers.
type Streak struct {
	Current        int    `json:"current"`
	Longest        int    `json:"longest"`
	LastAnswerDate string `json:"lastAnswerDate"`
}

// Achievement is an earned milestone. Each fires at most once.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Aggregates is a by-value snapshot of all derived counters.
type Aggregates struct {
	TotalQuestions        int
	CorrectAnswers        int
	IncorrectAnswers      int
	OverallAccuracy       int // rounded percent
	AverageResponseTimeMs int64
	Streak                Streak
	DailyStats            map[string]DailyStat
	TopicStats            map[string]TopicStat
	LevelStats            map[string]Stat
	SourceStats           map[string]Stat
}

// DayStats is one day's entry in the weekly breakdown.
type DayStats struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Questions int    `json:"questions"`
	Correct   int    `json:"correct"`
	Accuracy  int    `json:"accuracy"`
}

// WeeklyStats covers the last 7 calendar days including today.
type WeeklyStats struct {
	TotalQuestions int        `json:"totalQuestions"`
	TotalCorrect   int        `json:"totalCorrect"`
	Accuracy       int        `json:"accuracy"`
	Days           []DayStats `json:"days"` // oldest → newest
}

// Trend direction over the recent attempt window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendNeutral   Trend = "neutral"
)

// RecentTrend summarizes the last 20 attempts.
type RecentTrend struct {
	Trend    Trend `json:"trend"`
	Accuracy int   `json:"accuracy"`
}

// TopicPerformance is a ranked per-topic summary for display.
type TopicPerformance struct {
	Topic    string `json:"topic"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
	Accuracy int    `json:"accuracy"`
	Strength string `json:"strength"` // strong | moderate | weak
}

package weakness

import (
	"time"

	"github.com/abhisek/quizmate/internal/conceptgraph"
)

// Severity buckets a weakness score for display and prioritization.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// severityMultiplier feeds the priority formula.
var severityMultiplier = map[Severity]float64{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// MasteryLevel is the accuracy-derived competency tier for a concept.
type MasteryLevel string

const (
	MasteryNovice       MasteryLevel = "novice"
	MasteryBeginner     MasteryLevel = "beginner"
	MasteryIntermediate MasteryLevel = "intermediate"
	MasteryAdvanced     MasteryLevel = "advanced"
	MasteryExpert       MasteryLevel = "expert"
)

// Accuracy cut points for mastery levels.
const (
	ThresholdBeginner     = 0.40
	ThresholdIntermediate = 0.70
	ThresholdAdvanced     = 0.85
	ThresholdExpert       = 0.95
)

// Confidence reflects how much data backs a score.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ConceptWeakness is the per-concept performance analysis.
type ConceptWeakness struct {
	Accuracy          float64               `json:"accuracy"`
	TotalQuestions    int                   `json:"totalQuestions"`
	CorrectAnswers    int                   `json:"correctAnswers"`
	AvgResponseTimeMs float64               `json:"avgResponseTimeMs"`
	WeaknessScore     float64               `json:"weaknessScore"`
	IsWeak            bool                  `json:"isWeak"`
	Category          conceptgraph.Category `json:"category"`
	Difficulty        conceptgraph.Difficulty `json:"difficulty"`
	Weight            float64               `json:"weight"`
}

// CategoryWeakness aggregates concept performance per category.
type CategoryWeakness struct {
	Accuracy          float64  `json:"accuracy"`
	TotalQuestions    int      `json:"totalQuestions"`
	CorrectAnswers    int      `json:"correctAnswers"`
	AvgResponseTimeMs float64  `json:"avgResponseTimeMs"`
	ConceptCount      int      `json:"conceptCount"`
	IsWeak            bool     `json:"isWeak"`
	WeaknessScore     float64  `json:"weaknessScore"`
	Concepts          []string `json:"concepts"`
}

// Mastery is a concept's mastery level with progression info.
type Mastery struct {
	Level           MasteryLevel `json:"level"`
	Score           float64      `json:"score"`
	Confidence      Confidence   `json:"confidence"`
	QuestionsNeeded int          `json:"questionsNeeded"`
}

// Weakness is one prioritized entry in the overall weakness list.
type Weakness struct {
	Type        string   `json:"type"` // concept | category
	Name        string   `json:"name"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"` // high | medium | low
	Priority    float64  `json:"priority"`
}

// Action is a recommended remediation step.
type Action struct {
	Type          string                  `json:"type"` // practice | review | category-focus
	Concept       string                  `json:"concept,omitempty"`
	Category      string                  `json:"category,omitempty"`
	Action        string                  `json:"action"`
	EstimatedTime string                  `json:"estimatedTime"`
	Difficulty    conceptgraph.Difficulty `json:"difficulty"`
	Priority      float64                 `json:"priority"`
	Reason        string                  `json:"reason,omitempty"`
	Resources     []string                `json:"resources,omitempty"`
	Concepts      []string                `json:"concepts,omitempty"`
}

// PathItem is one step of the personalized learning path.
type PathItem struct {
	Concept         string                  `json:"concept"`
	Type            string                  `json:"type"` // weakness-focus | mastery-progression
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	EstimatedTime   string                  `json:"estimatedTime"`
	Difficulty      conceptgraph.Difficulty `json:"difficulty"`
	Priority        float64                 `json:"priority"`
	QuestionsNeeded int                     `json:"questionsNeeded,omitempty"`
	CurrentLevel    MasteryLevel            `json:"currentLevel,omitempty"`
	Milestones      []string                `json:"milestones"`
}

// ConfidenceScores summarize overall confidence and trend.
type ConfidenceScores struct {
	Overall      float64        `json:"overall"`
	Trend        string         `json:"trend"` // improving | declining | stable
	ByDifficulty map[string]int `json:"byDifficulty"`
}

// Report is the full output of one analysis run.
type Report struct {
	Timestamp          time.Time                   `json:"timestamp"`
	ConceptWeaknesses  map[string]ConceptWeakness  `json:"conceptWeaknesses"`
	CategoryWeaknesses map[string]CategoryWeakness `json:"categoryWeaknesses"`
	MasteryLevels      map[string]Mastery          `json:"masteryLevels"`
	ConfidenceScores   ConfidenceScores            `json:"confidenceScores"`
	OverallWeaknesses  []Weakness                  `json:"overallWeaknesses"`
	RecommendedActions []Action                    `json:"recommendedActions"`
	LearningPath       []PathItem                  `json:"learningPath"`
}

// TargetedTopic is a (topic, difficulty) pair for biasing question selection.
type TargetedTopic struct {
	Topic      string                  `json:"topic"`
	Priority   float64                 `json:"priority"`
	Difficulty conceptgraph.Difficulty `json:"difficulty"`
	Reason     string                  `json:"reason"`
}

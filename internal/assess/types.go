package assess

import (
	"time"

	"github.com/abhisek/quizmate/internal/weakness"
)

// SkillScore is the per-skill rollup built from topic statistics. Score is
// kept as a float because weakness damping can make it fractional.
type SkillScore struct {
	Accuracy          float64             `json:"accuracy"`
	Confidence        weakness.Confidence `json:"confidence"`
	AvgResponseTimeMs float64             `json:"avgResponseTimeMs"`
	QuestionsAnswered int                 `json:"questionsAnswered"`
	Score             float64             `json:"score"`
	Sources           []string            `json:"sources"`
}

// SubcategoryScore averages the skill scores under one subcategory.
type SubcategoryScore struct {
	Score          float64             `json:"score"`
	SkillCount     int                 `json:"skillCount"`
	TotalQuestions int                 `json:"totalQuestions"`
	Confidence     weakness.Confidence `json:"confidence"`
}

// CategoryScore is the weight-normalized subcategory rollup.
type CategoryScore struct {
	Score            float64             `json:"score"`
	SubcategoryCount int                 `json:"subcategoryCount"`
	Confidence       weakness.Confidence `json:"confidence"`
}

// ExperienceLevel is the highest benchmark tier whose requirements are met.
type ExperienceLevel struct {
	Level      string              `json:"level"`
	Name       string              `json:"name"`
	Confidence weakness.Confidence `json:"confidence"`
}

// Readiness estimates interview performance overall and per context.
type Readiness struct {
	Overall              float64        `json:"overall"`
	ByCompany            map[string]int `json:"byCompany"`
	ByRole               map[string]int `json:"byRole"`
	Recommendations      []string       `json:"recommendations"`
	EstimatedSuccessRate int            `json:"estimatedSuccessRate"`
}

// Strength is one high-scoring area at category, subcategory, or skill level.
type Strength struct {
	Type        string  `json:"type"` // category | subcategory | skill
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Level       string  `json:"level"` // high | expert
	Description string  `json:"description"`
}

// WeakSpot is one low-scoring area needing attention.
type WeakSpot struct {
	Type        string            `json:"type"` // category | subcategory | skill
	Name        string            `json:"name"`
	Score       float64           `json:"score"`
	Severity    weakness.Severity `json:"severity"`
	Description string            `json:"description"`
	Impact      string            `json:"impact"` // high | medium | low
}

// Recommendation is one suggested improvement track.
type Recommendation struct {
	Type          string   `json:"type"` // improvement | progression | interview-prep
	Priority      string   `json:"priority"`
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	EstimatedTime string   `json:"estimatedTime"`
	Actions       []string `json:"actions"`
}

// Certification is a qualification tier the current scores satisfy.
type Certification struct {
	Level       string    `json:"level"`
	Name        string    `json:"name"`
	Badge       string    `json:"badge"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
	Score       int       `json:"score"`
}

// SalaryRange in USD per year, indicative only.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BenchmarkGap compares one category score against a tier requirement.
type BenchmarkGap struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Gap      float64 `json:"gap"`
	Meets    bool    `json:"meets"`
}

// BenchmarkComparison measures distance to one experience tier.
type BenchmarkComparison struct {
	Name            string                  `json:"name"`
	SalaryRange     SalaryRange             `json:"salaryRange"`
	CommonRoles     []string                `json:"commonRoles"`
	Gaps            map[string]BenchmarkGap `json:"gaps"`
	OverallGap      float64                 `json:"overallGap"`
	CategoriesMet   int                     `json:"categoriesMet"`
	TotalCategories int                     `json:"totalCategories"`
	Readiness       float64                 `json:"readiness"`
}

// Assessment is the full output of one assessment run.
type Assessment struct {
	ID                  string                         `json:"id"`
	Timestamp           time.Time                      `json:"timestamp"`
	CategoryScores      map[string]CategoryScore       `json:"categoryScores"`
	SubcategoryScores   map[string]SubcategoryScore    `json:"subcategoryScores"`
	SkillScores         map[string]SkillScore          `json:"skillScores"`
	OverallScore        int                            `json:"overallScore"`
	ExperienceLevel     ExperienceLevel                `json:"experienceLevel"`
	InterviewReadiness  Readiness                      `json:"interviewReadiness"`
	Strengths           []Strength                     `json:"strengths"`
	Weaknesses          []WeakSpot                     `json:"weaknesses"`
	Recommendations     []Recommendation               `json:"recommendations"`
	Certifications      []Certification                `json:"certifications"`
	BenchmarkComparison map[string]BenchmarkComparison `json:"benchmarkComparison"`
	ConfidenceLevel     weakness.Confidence            `json:"confidenceLevel"`
	DataQuality         weakness.Confidence            `json:"dataQuality"`
}

// Package interview runs timed mock-interview sessions over the question
// bank and keeps a scored history that feeds the skill assessment.
package interview

import "time"

// Type describes one mock-interview format: how long it runs, which
// topics it draws from, and how questions spread across levels.
type Type struct {
	ID              string
	Name            string
	Description     string
	Duration        time.Duration
	TimePerQuestion time.Duration
	// Topics restricts the question pool; empty means every bank topic.
	Topics []string
	// Distribution maps level to the percentage of session questions at
	// that level. Percentages sum to 100.
	Distribution map[string]int
}

// Questions returns how many questions a session of this type asks.
func (t Type) Questions() int {
	if t.TimePerQuestion <= 0 {
		return 0
	}
	return int(t.Duration / t.TimePerQuestion)
}

var interviewTypes = []Type{
	{
		ID:              "technical-general",
		Name:            "General Technical Interview",
		Description:     "Broad assessment across every topic in the bank",
		Duration:        45 * time.Minute,
		TimePerQuestion: 5 * time.Minute,
		Distribution:    map[string]int{"beginner": 30, "intermediate": 50, "advanced": 20},
	},
	{
		ID:              "backend-focused",
		Name:            "Backend Developer Interview",
		Description:     "Databases, Java, and object-oriented design",
		Duration:        60 * time.Minute,
		TimePerQuestion: 6 * time.Minute,
		Topics:          []string{"databases", "java", "oops"},
		Distribution:    map[string]int{"beginner": 20, "intermediate": 50, "advanced": 30},
	},
	{
		ID:              "language-fundamentals",
		Name:            "Language Fundamentals Interview",
		Description:     "Core language and object-oriented questions",
		Duration:        45 * time.Minute,
		TimePerQuestion: 4 * time.Minute,
		Topics:          []string{"java", "python", "oops"},
		Distribution:    map[string]int{"beginner": 25, "intermediate": 55, "advanced": 20},
	},
	{
		ID:              "data-science",
		Name:            "Data Science Interview",
		Description:     "Python and AI/ML focused questions",
		Duration:        50 * time.Minute,
		TimePerQuestion: 6 * time.Minute,
		Topics:          []string{"python", "ai"},
		Distribution:    map[string]int{"beginner": 30, "intermediate": 45, "advanced": 25},
	},
	{
		ID:              "quick-practice",
		Name:            "Quick Practice Session",
		Description:     "Short session for a fast skill check",
		Duration:        15 * time.Minute,
		TimePerQuestion: 3 * time.Minute,
		Distribution:    map[string]int{"beginner": 40, "intermediate": 40, "advanced": 20},
	},
}

// Types returns the available interview formats.
func Types() []Type {
	out := make([]Type, len(interviewTypes))
	copy(out, interviewTypes)
	return out
}

// TypeByID looks up an interview format.
func TypeByID(id string) (Type, bool) {
	for _, t := range interviewTypes {
		if t.ID == id {
			return t, true
		}
	}
	return Type{}, false
}

package quizgen

import "github.com/abhisek/quizmate/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice quiz question with per-option explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options, in display order",
			},
			"correct": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right, with practical applications",
			},
			"explanations": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"0": map[string]any{"type": "string"},
					"1": map[string]any{"type": "string"},
					"2": map[string]any{"type": "string"},
					"3": map[string]any{"type": "string"},
				},
				"description": "Per-option explanations keyed by option index",
			},
		},
		"required":             []any{"question", "options", "correct", "explanation"},
		"additionalProperties": false,
	},
}

package quiz

import (
	"fmt"
	"strconv"
	"time"
)

// Question sources.
const (
	SourceStatic         = "static"
	SourceAI             = "ai"
	SourceCache          = "cache"
	SourceStaticFallback = "static-fallback"
)

// OptionCount is fixed: every question has exactly four options.
const OptionCount = 4

// Question is a single multiple-choice question. Explanations, when
// present, maps the option index (as a decimal string, matching the
// generator's JSON) to a per-option explanation.
type Question struct {
	ID           string            `json:"id"`
	Question     string            `json:"question"`
	Options      []string          `json:"options"`
	Correct      int               `json:"correct"`
	Explanation  string            `json:"explanation"`
	Explanations map[string]string `json:"explanations,omitempty"`
	Topic        string            `json:"topic"`
	Level        string            `json:"level"`
	Source       string            `json:"source"`
	GeneratedAt  time.Time         `json:"generatedAt,omitzero"`
}

// Validate reports the first structural problem with the question, or nil.
func (q *Question) Validate() error {
	switch {
	case q.ID == "":
		return fmt.Errorf("question has no id")
	case q.Question == "":
		return fmt.Errorf("question %s has no text", q.ID)
	case len(q.Options) != OptionCount:
		return fmt.Errorf("question %s has %d options, want %d", q.ID, len(q.Options), OptionCount)
	case q.Correct < 0 || q.Correct >= OptionCount:
		return fmt.Errorf("question %s has correct index %d out of range", q.ID, q.Correct)
	case q.Explanation == "":
		return fmt.Errorf("question %s has no explanation", q.ID)
	case q.Topic == "":
		return fmt.Errorf("question %s has no topic", q.ID)
	case q.Level == "":
		return fmt.Errorf("question %s has no level", q.ID)
	case q.Source == "":
		return fmt.Errorf("question %s has no source", q.ID)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %s has empty option %d", q.ID, i)
		}
	}
	return nil
}

// EnsureExplanations back-fills missing per-option explanations so grading
// can always produce enhanced feedback. The correct option inherits the
// main explanation; incorrect options get a generic note.
func (q *Question) EnsureExplanations() {
	if q.Explanations == nil {
		q.Explanations = make(map[string]string, OptionCount)
		for i := 0; i < OptionCount; i++ {
			if i == q.Correct {
				q.Explanations[strconv.Itoa(i)] = q.Explanation
			} else {
				q.Explanations[strconv.Itoa(i)] = "This option is incorrect. " + q.Explanation
			}
		}
		return
	}
	for i := 0; i < OptionCount; i++ {
		key := strconv.Itoa(i)
		if q.Explanations[key] != "" {
			continue
		}
		if i == q.Correct {
			q.Explanations[key] = q.Explanation
		} else {
			q.Explanations[key] = fmt.Sprintf("This option is incorrect. The correct answer is option %c.", 'A'+q.Correct)
		}
	}
}

// Feedback is the result of grading one answer. Enhanced is true when
// per-option explanations were available.
type Feedback struct {
	Correct                  bool   `json:"correct"`
	CorrectAnswer            string `json:"correctAnswer"`
	UserAnswer               string `json:"userAnswer"`
	Explanation              string `json:"explanation"`
	Enhanced                 bool   `json:"enhanced"`
	UserChoiceExplanation    string `json:"userChoiceExplanation,omitempty"`
	CorrectChoiceExplanation string `json:"correctChoiceExplanation,omitempty"`
}

// Grade checks an answer index against the question and builds feedback.
func (q *Question) Grade(answer int) Feedback {
	fb := Feedback{
		Correct:       answer == q.Correct,
		CorrectAnswer: q.Options[q.Correct],
	}
	if answer >= 0 && answer < len(q.Options) {
		fb.UserAnswer = q.Options[answer]
	}

	userExpl := q.Explanations[strconv.Itoa(answer)]
	correctExpl := q.Explanations[strconv.Itoa(q.Correct)]
	if userExpl == "" {
		fb.Explanation = q.Explanation
		if fb.Explanation == "" {
			fb.Explanation = "Answer explanation not available."
		}
		return fb
	}

	fb.Enhanced = true
	fb.UserChoiceExplanation = userExpl
	fb.CorrectChoiceExplanation = correctExpl
	if fb.Correct {
		fb.Explanation = "🎉 Correct! " + userExpl
	} else {
		fb.Explanation = fmt.Sprintf("❌ Incorrect. Your choice: %s\n\n✅ Correct answer: %s", userExpl, correctExpl)
	}
	return fb
}

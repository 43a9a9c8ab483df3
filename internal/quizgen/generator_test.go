package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quizmate/internal/llm"
	"github.com/abhisek/quizmate/internal/quiz"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "Which collection preserves insertion order?",
		"options": ["HashMap", "LinkedHashMap", "TreeMap", "HashSet"],
		"correct": 1,
		"explanation": "LinkedHashMap maintains a doubly-linked list across entries, preserving insertion order.",
		"explanations": {
			"0": "HashMap makes no ordering guarantees.",
			"1": "LinkedHashMap maintains insertion order via a linked list.",
			"2": "TreeMap orders by key comparison, not insertion.",
			"3": "HashSet is a set, and makes no ordering guarantees."
		}
	}`)
}

func noExplanationsJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "Which collection preserves insertion order?",
		"options": ["HashMap", "LinkedHashMap", "TreeMap", "HashSet"],
		"correct": 1,
		"explanation": "LinkedHashMap maintains insertion order."
	}`)
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())
	gen.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	q, err := gen.Generate(context.Background(), GenerateInput{Topic: "java", Level: "intermediate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(q.ID, "ai_") {
		t.Errorf("expected ai_ ID prefix, got %q", q.ID)
	}
	if q.Question != "Which collection preserves insertion order?" {
		t.Errorf("unexpected question: %q", q.Question)
	}
	if q.Correct != 1 {
		t.Errorf("expected correct index 1, got %d", q.Correct)
	}
	if q.Topic != "java" || q.Level != "intermediate" {
		t.Errorf("unexpected topic/level: %q/%q", q.Topic, q.Level)
	}
	if q.Source != quiz.SourceAI {
		t.Errorf("expected source %q, got %q", quiz.SourceAI, q.Source)
	}
	if q.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if len(q.Explanations) != quiz.OptionCount {
		t.Errorf("expected %d explanations, got %d", quiz.OptionCount, len(q.Explanations))
	}
}

func TestGenerate_DefaultLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Topic: "python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Level != "intermediate" {
		t.Errorf("expected default level intermediate, got %q", q.Level)
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "Difficulty Level: intermediate") {
		t.Error("expected prompt to carry the default level")
	}
}

func TestGenerate_MissingExplanationsBackfilled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: noExplanationsJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Topic: "java", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Explanations["1"] != "LinkedHashMap maintains insertion order." {
		t.Errorf("expected correct option to inherit main explanation, got %q", q.Explanations["1"])
	}
	if q.Explanations["0"] != "This option is incorrect. LinkedHashMap maintains insertion order." {
		t.Errorf("unexpected backfill for wrong option: %q", q.Explanations["0"])
	}
}

func TestGenerate_CodeFencesStripped(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(validQuestionJSON()) + "\n```")
	mock := llm.NewMockProvider(llm.MockResponse{Content: fenced})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Topic: "java", Level: "advanced"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Correct != 1 {
		t.Errorf("expected correct index 1, got %d", q.Correct)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "java"})
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *llm.ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestGenerate_TopicAndDetailsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:        "java",
		Level:        "advanced",
		TopicDetails: "streams and lambdas",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "Topic: java (streams and lambdas)") {
		t.Errorf("expected topic with details in prompt, got:\n%s", userMsg)
	}
	if !strings.Contains(userMsg, "Difficulty Level: advanced") {
		t.Error("expected level in prompt")
	}
}

func TestGenerate_CustomPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.CustomPrompt = "Ask one question about {topic} at {level} level."
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "databases", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if userMsg != "Ask one question about databases at beginner level." {
		t.Errorf("unexpected prompt: %q", userMsg)
	}
}

func TestGenerate_StructuralFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Pick one.",
		"options": ["A", "B", "C"],
		"correct": 0,
		"explanation": "A is right."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "java"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
}

func TestGenerate_DuplicateOptionsRejected(t *testing.T) {
	raw := json.RawMessage(`{
		"question": "Pick one.",
		"options": ["A", "B", "A", "D"],
		"correct": 0,
		"explanation": "A is right."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "java"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "distinct-options" {
		t.Errorf("expected distinct-options validator, got %q", valErr.Validator)
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.4
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "ai"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.4 {
		t.Errorf("expected Temperature 0.4, got %f", mock.Calls[0].Temperature)
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("expected question schema on the request")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrAuth{Err: errors.New("bad key")}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "java"})
	if err == nil {
		t.Fatal("expected error from provider")
	}
	var auth *llm.ErrAuth
	if !errors.As(err, &auth) {
		t.Fatalf("expected wrapped ErrAuth, got %T", err)
	}
}

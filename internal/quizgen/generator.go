package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizmate/internal/llm"
	"github.com/abhisek/quizmate/internal/quiz"
)

// Generator produces quiz questions using an LLM provider.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated Question or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*quiz.Question, error)
}

// GenerateInput describes the question to generate.
type GenerateInput struct {
	// Topic is the subject area, e.g. "java" or "databases".
	Topic string

	// Level is the difficulty level. Defaults to "intermediate" when empty.
	Level string

	// TopicDetails optionally narrows the topic, e.g. "streams and lambdas"
	// for the "java" topic. Appended to the topic in the prompt.
	TopicDetails string
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	now      func() time.Time
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, now: time.Now}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question     string            `json:"question"`
	Options      []string          `json:"options"`
	Correct      int               `json:"correct"`
	Explanation  string            `json:"explanation"`
	Explanations map[string]string `json:"explanations"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	if input.Level == "" {
		input.Level = "intermediate"
	}

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	content := stripCodeFences(resp.Content)

	var raw questionOutput
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	q := &quiz.Question{
		ID:           fmt.Sprintf("ai_%d_%s", g.now().UnixMilli(), uuid.NewString()[:8]),
		Question:     raw.Question,
		Options:      raw.Options,
		Correct:      raw.Correct,
		Explanation:  raw.Explanation,
		Explanations: raw.Explanations,
		Topic:        input.Topic,
		Level:        input.Level,
		Source:       quiz.SourceAI,
		GeneratedAt:  g.now().UTC(),
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	q.EnsureExplanations()

	return q, nil
}

// stripCodeFences removes a markdown code fence wrapper, which some
// models emit around JSON despite instructions not to.
func stripCodeFences(content json.RawMessage) json.RawMessage {
	s := strings.TrimSpace(string(content))
	if !strings.HasPrefix(s, "```") {
		return content
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return json.RawMessage(strings.TrimSpace(s))
}

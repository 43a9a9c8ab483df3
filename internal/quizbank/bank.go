// Package quizbank holds the built-in question bank used when no AI
// provider is configured and as the last-resort fallback for delivery.
package quizbank

import (
	"math/rand"
	"sort"
	"time"

	"github.com/abhisek/quizmate/internal/quiz"
)

// Levels every topic in the bank is organized under.
var Levels = []string{"beginner", "intermediate", "advanced"}

// Bank is an immutable in-memory question collection: a general pool plus
// per-topic, per-level buckets.
type Bank struct {
	rng     *rand.Rand
	general []quiz.Question
	byTopic map[string]map[string][]quiz.Question
}

// New builds the bank from the seed data.
func New() *Bank {
	b := &Bank{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		general: generalQuestions(),
		byTopic: make(map[string]map[string][]quiz.Question),
	}
	for _, q := range leveledQuestions() {
		byLevel, ok := b.byTopic[q.Topic]
		if !ok {
			byLevel = make(map[string][]quiz.Question)
			b.byTopic[q.Topic] = byLevel
		}
		byLevel[q.Level] = append(byLevel[q.Level], q)
	}
	return b
}

// Topics returns the topics with leveled questions, sorted.
func (b *Bank) Topics() []string {
	topics := make([]string, 0, len(b.byTopic))
	for topic := range b.byTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// ByTopicLevel returns the questions for one (topic, level) bucket.
func (b *Bank) ByTopicLevel(topic, level string) []quiz.Question {
	return b.byTopic[topic][level]
}

// ByTopic returns all questions for a topic across levels.
func (b *Bank) ByTopic(topic string) []quiz.Question {
	byLevel, ok := b.byTopic[topic]
	if !ok {
		return nil
	}
	var out []quiz.Question
	for _, level := range Levels {
		out = append(out, byLevel[level]...)
	}
	return out
}

// All returns every question in the bank, general pool included.
func (b *Bank) All() []quiz.Question {
	out := make([]quiz.Question, 0, len(b.general))
	out = append(out, b.general...)
	for _, topic := range b.Topics() {
		out = append(out, b.ByTopic(topic)...)
	}
	return out
}

// Random picks a random question matching any of the given topics and
// levels. Empty filters match everything. When no leveled question
// matches, the whole bank serves as the pool; a nil return means the bank
// is empty, which does not happen with the built-in seed.
func (b *Bank) Random(topics, levels []string) *quiz.Question {
	pool := b.matching(topics, levels)
	if len(pool) == 0 {
		pool = b.All()
	}
	if len(pool) == 0 {
		return nil
	}
	q := pool[b.rng.Intn(len(pool))]
	return &q
}

func (b *Bank) matching(topics, levels []string) []quiz.Question {
	var pool []quiz.Question
	for _, topic := range b.Topics() {
		if len(topics) > 0 && !containsString(topics, topic) {
			continue
		}
		for _, level := range Levels {
			if len(levels) > 0 && !containsString(levels, level) {
				continue
			}
			pool = append(pool, b.byTopic[topic][level]...)
		}
	}
	return pool
}

func containsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

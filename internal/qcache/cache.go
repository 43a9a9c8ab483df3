// Package qcache is the durable cache of generated questions. Every AI
// generation lands here so past questions survive restarts and remain
// usable when no provider is reachable.
package qcache

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/store"
)

// Filter narrows cache queries. Topic matches as a case-insensitive
// substring; Level and Source match exactly. Empty fields match everything.
type Filter struct {
	Topic  string
	Level  string
	Source string
}

// Stats summarizes cache contents.
type Stats struct {
	Total    int            `json:"total"`
	BySource map[string]int `json:"bySource"`
	ByTopic  map[string]int `json:"byTopic"`
	ByLevel  map[string]int `json:"byLevel"`
}

type state struct {
	Questions []quiz.Question `json:"questions"`
}

// Cache holds the question collection in memory and writes through to the
// store on every mutation.
type Cache struct {
	stateRepo store.StateRepo
	questions []quiz.Question
	rng       *rand.Rand
	now       func() time.Time
}

// NewCache creates a cache, restoring persisted questions.
func NewCache(ctx context.Context, stateRepo store.StateRepo) *Cache {
	c := &Cache{
		stateRepo: stateRepo,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
	if stateRepo != nil {
		var saved state
		if found, err := stateRepo.Get(ctx, store.StateKeyCache, &saved); err == nil && found {
			c.questions = saved.Questions
		}
	}
	return c
}

// Add validates and stores a question. Returns false without error when
// the question is invalid or a duplicate (same text, topic, and level).
func (c *Cache) Add(ctx context.Context, q quiz.Question) (bool, error) {
	if err := q.Validate(); err != nil {
		return false, nil
	}
	for _, existing := range c.questions {
		if existing.Question == q.Question && existing.Topic == q.Topic && existing.Level == q.Level {
			return false, nil
		}
	}
	if q.GeneratedAt.IsZero() {
		q.GeneratedAt = c.now()
	}
	c.questions = append(c.questions, q)
	return true, c.persist(ctx)
}

// Random returns a random question matching the filter, or nil.
func (c *Cache) Random(filter Filter) *quiz.Question {
	matches := c.matching(filter)
	if len(matches) == 0 {
		return nil
	}
	q := matches[c.rng.Intn(len(matches))]
	return &q
}

func (c *Cache) matching(filter Filter) []quiz.Question {
	var out []quiz.Question
	for _, q := range c.questions {
		if filter.Topic != "" && !strings.Contains(strings.ToLower(q.Topic), strings.ToLower(filter.Topic)) {
			continue
		}
		if filter.Level != "" && q.Level != filter.Level {
			continue
		}
		if filter.Source != "" && q.Source != filter.Source {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ByTopic returns cached questions whose topic contains the given string,
// case-insensitively.
func (c *Cache) ByTopic(topic string) []quiz.Question {
	return c.matching(Filter{Topic: topic})
}

// ByLevel returns cached questions at exactly the given level.
func (c *Cache) ByLevel(level string) []quiz.Question {
	return c.matching(Filter{Level: level})
}

// Topics returns the distinct topics in the cache, sorted.
func (c *Cache) Topics() []string {
	return c.distinct(func(q quiz.Question) string { return q.Topic })
}

// Levels returns the distinct levels in the cache, sorted.
func (c *Cache) Levels() []string {
	return c.distinct(func(q quiz.Question) string { return q.Level })
}

func (c *Cache) distinct(key func(quiz.Question) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range c.questions {
		if k := key(q); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Len reports the number of cached questions.
func (c *Cache) Len() int {
	return len(c.questions)
}

// Stats counts questions by source, topic, and level.
func (c *Cache) Stats() Stats {
	stats := Stats{
		Total:    len(c.questions),
		BySource: make(map[string]int),
		ByTopic:  make(map[string]int),
		ByLevel:  make(map[string]int),
	}
	for _, q := range c.questions {
		stats.BySource[q.Source]++
		stats.ByTopic[q.Topic]++
		stats.ByLevel[q.Level]++
	}
	return stats
}

// Clear drops all cached questions.
func (c *Cache) Clear(ctx context.Context) error {
	c.questions = nil
	return c.persist(ctx)
}

// RemoveDuplicates drops later occurrences of (text, topic, level)
// duplicates and reports how many were removed.
func (c *Cache) RemoveDuplicates(ctx context.Context) (int, error) {
	seen := make(map[string]bool, len(c.questions))
	kept := c.questions[:0]
	for _, q := range c.questions {
		key := q.Question + "\x00" + q.Topic + "\x00" + q.Level
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, q)
	}
	removed := len(c.questions) - len(kept)
	c.questions = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, c.persist(ctx)
}

// Export returns a copy of all cached questions for backup.
func (c *Cache) Export() []quiz.Question {
	out := make([]quiz.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Import adds questions in bulk, skipping invalid entries and duplicates.
// Returns how many were actually added.
func (c *Cache) Import(ctx context.Context, questions []quiz.Question) (int, error) {
	imported := 0
	for _, q := range questions {
		added, err := c.Add(ctx, q)
		if err != nil {
			return imported, err
		}
		if added {
			imported++
		}
	}
	return imported, nil
}

func (c *Cache) persist(ctx context.Context) error {
	if c.stateRepo == nil {
		return nil
	}
	return c.stateRepo.Set(ctx, store.StateKeyCache, state{Questions: c.questions})
}

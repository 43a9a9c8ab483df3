package quizbank

import (
	"testing"
)

func TestSeedIsValid(t *testing.T) {
	b := New()
	seen := make(map[string]bool)
	for _, q := range b.All() {
		if err := q.Validate(); err != nil {
			t.Errorf("seed question invalid: %v", err)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestTopics(t *testing.T) {
	b := New()
	want := []string{"ai", "databases", "java", "oops", "python"}
	got := b.Topics()
	if len(got) != len(want) {
		t.Fatalf("topics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topics = %v, want %v", got, want)
		}
	}
}

func TestByTopicLevel(t *testing.T) {
	b := New()

	qs := b.ByTopicLevel("java", "beginner")
	if len(qs) != 2 {
		t.Fatalf("java/beginner has %d questions, want 2", len(qs))
	}
	for _, q := range qs {
		if q.Topic != "java" || q.Level != "beginner" {
			t.Errorf("question %s tagged %s/%s", q.ID, q.Topic, q.Level)
		}
	}

	if qs := b.ByTopicLevel("java", "expert"); qs != nil {
		t.Errorf("unknown level returned %d questions", len(qs))
	}
	if qs := b.ByTopicLevel("rust", "beginner"); qs != nil {
		t.Errorf("unknown topic returned %d questions", len(qs))
	}
}

func TestByTopicSpansLevels(t *testing.T) {
	b := New()
	qs := b.ByTopic("oops")
	if len(qs) != 5 {
		t.Fatalf("oops has %d questions, want 5", len(qs))
	}
	levels := make(map[string]int)
	for _, q := range qs {
		levels[q.Level]++
	}
	if levels["beginner"] != 2 || levels["intermediate"] != 2 || levels["advanced"] != 1 {
		t.Errorf("oops level distribution = %v", levels)
	}
}

func TestRandomHonorsFilters(t *testing.T) {
	b := New()
	for i := 0; i < 50; i++ {
		q := b.Random([]string{"python"}, []string{"advanced"})
		if q == nil {
			t.Fatal("nil question from seeded bank")
		}
		if q.Topic != "python" || q.Level != "advanced" {
			t.Fatalf("filtered pick = %s (%s/%s)", q.ID, q.Topic, q.Level)
		}
	}
}

func TestRandomFallsBackToWholeBank(t *testing.T) {
	b := New()
	// No leveled question matches; the pick comes from the full bank.
	q := b.Random([]string{"cooking"}, nil)
	if q == nil {
		t.Fatal("expected a fallback question")
	}
	if err := q.Validate(); err != nil {
		t.Errorf("fallback question invalid: %v", err)
	}
}

func TestRandomUnfiltered(t *testing.T) {
	b := New()
	topics := make(map[string]bool)
	for i := 0; i < 200; i++ {
		q := b.Random(nil, nil)
		if q == nil {
			t.Fatal("nil question from seeded bank")
		}
		topics[q.Topic] = true
	}
	if len(topics) < 2 {
		t.Errorf("200 unfiltered picks covered only %d topics", len(topics))
	}
}

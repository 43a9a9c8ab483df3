package conceptgraph

import "testing"

func TestGetKnownConcept(t *testing.T) {
	c, ok := Get("recursion")
	if !ok {
		t.Fatal("expected recursion to exist")
	}
	if c.Category != CategoryAlgorithms {
		t.Errorf("category = %q, want algorithms", c.Category)
	}
	if c.Weight != 1.9 {
		t.Errorf("weight = %v, want 1.9", c.Weight)
	}
	if c.Difficulty != DifficultyIntermediate {
		t.Errorf("difficulty = %q, want intermediate", c.Difficulty)
	}
}

func TestGetUnknownConcept(t *testing.T) {
	if _, ok := Get("quantum-computing"); ok {
		t.Error("expected unknown concept to report not found")
	}
}

func TestDefaultsForUnknownConcepts(t *testing.T) {
	if got := CategoryOf("nope"); got != CategoryGeneral {
		t.Errorf("CategoryOf = %q, want general", got)
	}
	if got := DifficultyOf("nope"); got != DifficultyIntermediate {
		t.Errorf("DifficultyOf = %q, want intermediate", got)
	}
	if got := WeightOf("nope"); got != 1.0 {
		t.Errorf("WeightOf = %v, want 1.0", got)
	}
}

func TestByCategory(t *testing.T) {
	oop := ByCategory(CategoryOOP)
	if len(oop) != 4 {
		t.Fatalf("len(oop) = %d, want 4", len(oop))
	}
	// Ordered by id.
	for i := 1; i < len(oop); i++ {
		if oop[i-1].ID >= oop[i].ID {
			t.Errorf("categories not sorted by id: %q before %q", oop[i-1].ID, oop[i].ID)
		}
	}
}

func TestDanglingEdgesTolerated(t *testing.T) {
	// linked-lists requires "pointers", which has no node of its own.
	prereqs := Prerequisites("linked-lists")
	if len(prereqs) != 2 {
		t.Fatalf("len(prereqs) = %d, want 2", len(prereqs))
	}
	if _, ok := Get("pointers"); ok {
		t.Fatal("test premise broken: pointers should be a dangling id")
	}
	if got := WeightOf("pointers"); got != 1.0 {
		t.Errorf("dangling concept weight = %v, want default 1.0", got)
	}
}

func TestNormalizeTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"java", "oop"},
		{"Java", "oop"},
		{"python", "programming-fundamentals"},
		{"oop", "classes"},
		{"database", "sql-basics"},
		{"algorithms", "sorting"},
		{"ai", "machine-learning"},
		{"web-development", "frontend"},
		{"system-design", "scalability"},
		{"arrays", "arrays"},
		{"Dynamic Programming", "dynamic-programming"},
		{"  spaced   out  ", "spaced-out"},
	}

	for _, tt := range tests {
		if got := NormalizeTopic(tt.topic); got != tt.want {
			t.Errorf("NormalizeTopic(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestAllConceptsHavePositiveWeight(t *testing.T) {
	for _, c := range All() {
		if c.Weight < 1.0 {
			t.Errorf("concept %q weight = %v, want >= 1.0", c.ID, c.Weight)
		}
		if c.Category == "" {
			t.Errorf("concept %q has no category", c.ID)
		}
	}
}

package conceptgraph

import "strings"

// Category groups concepts by knowledge area.
type Category string

const (
	CategoryFundamentals   Category = "fundamentals"
	CategoryDataStructures Category = "data-structures"
	CategoryAlgorithms     Category = "algorithms"
	CategoryOOP            Category = "oop"
	CategoryDatabase       Category = "database"
	CategorySystemDesign   Category = "system-design"
	CategoryGeneral        Category = "general"
)

// AllCategories returns the known categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFundamentals,
		CategoryDataStructures,
		CategoryAlgorithms,
		CategoryOOP,
		CategoryDatabase,
		CategorySystemDesign,
	}
}

// Difficulty is a concept's inherent difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Concept is a single node in the knowledge graph. The prerequisite and
// dependent relations are directed edges by id; the reference data is not
// guaranteed acyclic and some edges point at concepts outside the seed set,
// so lookups must tolerate dangling ids.
type Concept struct {
	ID            string
	Category      Category
	Difficulty    Difficulty
	Weight        float64
	Prerequisites []string
	Dependents    []string
}

// topicMap maps raw quiz topic names to canonical concept ids.
var topicMap = map[string]string{
	"java":            "oop",
	"python":          "programming-fundamentals",
	"javascript":      "programming-fundamentals",
	"oop":             "classes",
	"database":        "sql-basics",
	"algorithms":      "sorting",
	"ai":              "machine-learning",
	"web-development": "frontend",
	"system-design":   "scalability",
}

// NormalizeTopic maps a raw topic string to a canonical concept id.
// Unmapped topics are slugified (lowercase, whitespace runs become dashes).
func NormalizeTopic(topic string) string {
	lower := strings.ToLower(topic)
	if id, ok := topicMap[lower]; ok {
		return id
	}
	return strings.Join(strings.Fields(lower), "-")
}

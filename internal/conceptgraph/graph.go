package conceptgraph

import (
	"slices"
	"sort"
)

// graph holds the concept set with precomputed indices.
type graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	byCategory map[Category][]Concept
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of concepts.
// No topological ordering is computed; the reference data contains cycles
// and edges to concepts that have no node of their own.
func buildGraph(concepts []Concept) *graph {
	gr := &graph{
		concepts:   concepts,
		byID:       make(map[string]*Concept, len(concepts)),
		byCategory: make(map[Category][]Concept),
	}

	for i := range gr.concepts {
		gr.byID[gr.concepts[i].ID] = &gr.concepts[i]
	}

	for i := range gr.concepts {
		c := gr.concepts[i]
		gr.byCategory[c.Category] = append(gr.byCategory[c.Category], c)
	}
	for cat, group := range gr.byCategory {
		sorted := make([]Concept, len(group))
		copy(sorted, group)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].ID < sorted[j].ID
		})
		gr.byCategory[cat] = sorted
	}

	return gr
}

// Get returns a concept by id and whether it exists.
func Get(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// All returns all concepts in the graph.
func All() []Concept {
	return slices.Clone(g.concepts)
}

// ByCategory returns all concepts in a given category, ordered by id.
func ByCategory(cat Category) []Concept {
	return slices.Clone(g.byCategory[cat])
}

// CategoryOf returns the category for a concept id.
// Unknown concepts fall into the general category.
func CategoryOf(id string) Category {
	if c, ok := g.byID[id]; ok {
		return c.Category
	}
	return CategoryGeneral
}

// DifficultyOf returns the difficulty for a concept id.
// Unknown concepts default to intermediate.
func DifficultyOf(id string) Difficulty {
	if c, ok := g.byID[id]; ok {
		return c.Difficulty
	}
	return DifficultyIntermediate
}

// WeightOf returns the weight for a concept id. Unknown concepts weigh 1.0.
func WeightOf(id string) float64 {
	if c, ok := g.byID[id]; ok {
		return c.Weight
	}
	return 1.0
}

// Prerequisites returns the direct prerequisite ids for a concept.
// Returned ids may not have a node of their own in the seed data.
func Prerequisites(id string) []string {
	if c, ok := g.byID[id]; ok {
		return slices.Clone(c.Prerequisites)
	}
	return nil
}

// Dependents returns the ids of concepts that directly build on the given one.
func Dependents(id string) []string {
	if c, ok := g.byID[id]; ok {
		return slices.Clone(c.Dependents)
	}
	return nil
}

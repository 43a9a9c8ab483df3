package weakness

import (
	"fmt"
	"sort"

	"github.com/abhisek/quizmate/internal/conceptgraph"
)

// conceptResources names practice material per concept; unknown concepts
// get generic placeholders.
var conceptResources = map[string][]string{
	"arrays":              {"Array manipulation exercises", "Sorting algorithms practice"},
	"recursion":           {"Base case identification", "Recursive thinking patterns"},
	"binary-trees":        {"Tree traversal methods", "Binary tree properties"},
	"dynamic-programming": {"Memoization techniques", "Bottom-up approaches"},
	"sql-basics":          {"SELECT statement practice", "WHERE clause exercises"},
	"joins":               {"INNER JOIN examples", "LEFT/RIGHT JOIN differences"},
}

func resourcesFor(concept string) []string {
	if r, ok := conceptResources[concept]; ok {
		return r
	}
	return []string{
		concept + " fundamentals",
		concept + " practice problems",
	}
}

// recommendedActions builds the prioritized, deduplicated action list:
// a practice action per weak concept, a prerequisite review when the
// prerequisite is itself weak, and a focus session per weak category.
func recommendedActions(report *Report) []Action {
	var actions []Action

	for _, w := range report.OverallWeaknesses {
		if w.Type != "concept" {
			continue
		}
		actions = append(actions, Action{
			Type:          "practice",
			Concept:       w.Name,
			Action:        fmt.Sprintf("Focus on %s with targeted practice", w.Name),
			EstimatedTime: "15-30 minutes daily",
			Difficulty:    conceptgraph.DifficultyOf(w.Name),
			Priority:      w.Priority,
			Resources:     resourcesFor(w.Name),
		})

		for _, prereq := range conceptgraph.Prerequisites(w.Name) {
			data, ok := report.ConceptWeaknesses[prereq]
			if !ok || !data.IsWeak {
				continue
			}
			actions = append(actions, Action{
				Type:          "review",
				Concept:       prereq,
				Action:        fmt.Sprintf("Review %s fundamentals before advancing to %s", prereq, w.Name),
				EstimatedTime: "10-20 minutes",
				Difficulty:    conceptgraph.DifficultyOf(prereq),
				Priority:      w.Priority + 1,
				Reason:        fmt.Sprintf("Prerequisite for %s", w.Name),
			})
		}
	}

	for _, category := range sortedKeys(report.CategoryWeaknesses) {
		data := report.CategoryWeaknesses[category]
		if !data.IsWeak {
			continue
		}
		focus := data.Concepts
		if len(focus) > 3 {
			focus = focus[:3]
		}
		actions = append(actions, Action{
			Type:          "category-focus",
			Category:      category,
			Action:        fmt.Sprintf("Intensive %s practice session", category),
			EstimatedTime: "45-60 minutes",
			Difficulty:    "mixed",
			Priority:      categoryPriority(category, data),
			Concepts:      focus,
		})
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority > actions[j].Priority
	})
	return deduplicateActions(actions)
}

// deduplicateActions keeps the first (highest-priority) occurrence of each
// (type, concept-or-category) key.
func deduplicateActions(actions []Action) []Action {
	seen := make(map[string]bool, len(actions))
	out := actions[:0]
	for _, a := range actions {
		target := a.Concept
		if target == "" {
			target = a.Category
		}
		key := a.Type + "-" + target
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

// learningPath orders weakness-focus items first, then progression items
// for concepts within 10 questions of their next level, capped at 10.
func learningPath(report *Report) []PathItem {
	var path []PathItem
	processed := make(map[string]bool)

	for _, w := range report.OverallWeaknesses {
		if w.Type != "concept" || processed[w.Name] {
			continue
		}
		data, ok := report.ConceptWeaknesses[w.Name]
		if !ok {
			continue
		}
		path = append(path, PathItem{
			Concept:       w.Name,
			Type:          "weakness-focus",
			Title:         fmt.Sprintf("Master %s", w.Name),
			Description:   fmt.Sprintf("Improve your %s skills from %d%% to 80%%+", w.Name, int(data.Accuracy*100)),
			EstimatedTime: "2-3 weeks",
			Difficulty:    conceptgraph.DifficultyOf(w.Name),
			Priority:      conceptPriority(w.Name, data),
			Milestones: []string{
				fmt.Sprintf("Understand %s fundamentals", w.Name),
				fmt.Sprintf("Practice basic %s problems", w.Name),
				fmt.Sprintf("Apply %s in complex scenarios", w.Name),
				"Achieve 80%+ accuracy",
			},
		})
		processed[w.Name] = true
	}

	for _, concept := range sortedKeys(report.MasteryLevels) {
		mastery := report.MasteryLevels[concept]
		if processed[concept] || mastery.QuestionsNeeded > 10 || mastery.QuestionsNeeded == 0 {
			continue
		}
		path = append(path, PathItem{
			Concept:         concept,
			Type:            "mastery-progression",
			Title:           fmt.Sprintf("Advance in %s", concept),
			Description:     fmt.Sprintf("Progress from %s to next level", mastery.Level),
			EstimatedTime:   "1-2 weeks",
			Difficulty:      conceptgraph.DifficultyOf(concept),
			Priority:        5,
			QuestionsNeeded: mastery.QuestionsNeeded,
			CurrentLevel:    mastery.Level,
			Milestones: []string{
				fmt.Sprintf("Complete %d practice questions", mastery.QuestionsNeeded),
				"Maintain 85%+ accuracy",
				"Advance to next mastery level",
			},
		})
		processed[concept] = true
	}

	if len(path) > 10 {
		path = path[:10]
	}
	return path
}

package assess

import "github.com/abhisek/quizmate/internal/weakness"

// The skill taxonomy, benchmark tiers, and certification requirements are
// fixed tables. Slices rather than maps so every rollup iterates in a
// stable order.

type subcategoryDef struct {
	key    string
	name   string
	weight float64
	skills []string
}

type categoryDef struct {
	key           string
	name          string
	weight        float64
	subcategories []subcategoryDef
}

var skillCategories = []categoryDef{
	{
		key: "technical-skills", name: "Technical Skills", weight: 0.40,
		subcategories: []subcategoryDef{
			{key: "programming-fundamentals", name: "Programming Fundamentals", weight: 0.25,
				skills: []string{"variables", "data-types", "control-flow", "functions", "error-handling"}},
			{key: "data-structures", name: "Data Structures", weight: 0.25,
				skills: []string{"arrays", "linked-lists", "stacks", "queues", "trees", "graphs", "hash-tables"}},
			{key: "algorithms", name: "Algorithms", weight: 0.25,
				skills: []string{"sorting", "searching", "recursion", "dynamic-programming", "greedy", "graph-algorithms"}},
			{key: "system-design", name: "System Design", weight: 0.25,
				skills: []string{"scalability", "load-balancing", "caching", "databases", "microservices", "apis"}},
		},
	},
	{
		key: "problem-solving", name: "Problem Solving", weight: 0.25,
		subcategories: []subcategoryDef{
			{key: "analytical-thinking", name: "Analytical Thinking", weight: 0.4,
				skills: []string{"problem-decomposition", "pattern-recognition", "logical-reasoning"}},
			{key: "optimization", name: "Optimization", weight: 0.3,
				skills: []string{"time-complexity", "space-complexity", "performance-tuning"}},
			{key: "debugging", name: "Debugging", weight: 0.3,
				skills: []string{"error-identification", "root-cause-analysis", "testing-strategies"}},
		},
	},
	{
		key: "coding-proficiency", name: "Coding Proficiency", weight: 0.20,
		subcategories: []subcategoryDef{
			{key: "code-quality", name: "Code Quality", weight: 0.4,
				skills: []string{"clean-code", "readability", "maintainability", "documentation"}},
			{key: "best-practices", name: "Best Practices", weight: 0.3,
				skills: []string{"design-patterns", "solid-principles", "code-review", "version-control"}},
			{key: "testing", name: "Testing", weight: 0.3,
				skills: []string{"unit-testing", "integration-testing", "test-driven-development"}},
		},
	},
	{
		key: "communication", name: "Communication", weight: 0.15,
		subcategories: []subcategoryDef{
			{key: "technical-communication", name: "Technical Communication", weight: 0.6,
				skills: []string{"explaining-solutions", "code-walkthrough", "technical-writing"}},
			{key: "collaboration", name: "Collaboration", weight: 0.4,
				skills: []string{"teamwork", "code-review-participation", "knowledge-sharing"}},
		},
	},
}

func categoryByKey(key string) (categoryDef, bool) {
	for _, c := range skillCategories {
		if c.key == key {
			return c, true
		}
	}
	return categoryDef{}, false
}

func subcategoryByKey(key string) (categoryDef, subcategoryDef, bool) {
	for _, c := range skillCategories {
		for _, s := range c.subcategories {
			if s.key == key {
				return c, s, true
			}
		}
	}
	return categoryDef{}, subcategoryDef{}, false
}

type benchmarkDef struct {
	key          string
	name         string
	requirements map[string]float64
	salaryRange  SalaryRange
	commonRoles  []string
}

// industryBenchmarks are ordered lowest to highest tier.
var industryBenchmarks = []benchmarkDef{
	{
		key: "entry-level", name: "Entry Level (0-2 years)",
		requirements: map[string]float64{
			"technical-skills": 60, "problem-solving": 55, "coding-proficiency": 50, "communication": 45,
		},
		salaryRange: SalaryRange{Min: 50000, Max: 75000},
		commonRoles: []string{"Junior Developer", "Software Engineer I", "Associate Developer"},
	},
	{
		key: "mid-level", name: "Mid Level (2-5 years)",
		requirements: map[string]float64{
			"technical-skills": 75, "problem-solving": 70, "coding-proficiency": 70, "communication": 65,
		},
		salaryRange: SalaryRange{Min: 75000, Max: 120000},
		commonRoles: []string{"Software Engineer II", "Full Stack Developer", "Backend Developer"},
	},
	{
		key: "senior-level", name: "Senior Level (5-8 years)",
		requirements: map[string]float64{
			"technical-skills": 85, "problem-solving": 80, "coding-proficiency": 80, "communication": 75,
		},
		salaryRange: SalaryRange{Min: 120000, Max: 180000},
		commonRoles: []string{"Senior Software Engineer", "Tech Lead", "Principal Engineer"},
	},
	{
		key: "expert-level", name: "Expert Level (8+ years)",
		requirements: map[string]float64{
			"technical-skills": 90, "problem-solving": 85, "coding-proficiency": 85, "communication": 80,
		},
		salaryRange: SalaryRange{Min: 180000, Max: 300000},
		commonRoles: []string{"Staff Engineer", "Principal Engineer", "Engineering Manager"},
	},
}

func benchmarkByKey(key string) (benchmarkDef, bool) {
	for _, b := range industryBenchmarks {
		if b.key == key {
			return b, true
		}
	}
	return benchmarkDef{}, false
}

type certificationDef struct {
	key         string
	name        string
	badge       string
	description string
	overall     int
	categories  map[string]float64
}

// certificationLevels are ordered bronze to platinum; every tier whose
// requirements are met is awarded.
var certificationLevels = []certificationDef{
	{
		key: "bronze", name: "Bronze Certification", badge: "🥉",
		description: "Demonstrates basic programming competency",
		overall:     60,
		categories:  map[string]float64{"technical-skills": 55},
	},
	{
		key: "silver", name: "Silver Certification", badge: "🥈",
		description: "Shows solid intermediate programming skills",
		overall:     75,
		categories:  map[string]float64{"technical-skills": 70, "problem-solving": 65},
	},
	{
		key: "gold", name: "Gold Certification", badge: "🥇",
		description: "Indicates advanced programming expertise",
		overall:     85,
		categories:  map[string]float64{"technical-skills": 80, "problem-solving": 75, "coding-proficiency": 75},
	},
	{
		key: "platinum", name: "Platinum Certification", badge: "💎",
		description: "Represents expert-level programming mastery",
		overall:     90,
		categories:  map[string]float64{"technical-skills": 85, "problem-solving": 80, "coding-proficiency": 80, "communication": 75},
	},
}

// topicSkillMap translates quiz topics into the skills they exercise.
// Unknown topics map to a single dashed skill of the same name.
var topicSkillMap = map[string][]string{
	"java":          {"programming-fundamentals", "oop", "classes", "inheritance"},
	"python":        {"programming-fundamentals", "data-types", "functions"},
	"javascript":    {"programming-fundamentals", "functions", "closures"},
	"oop":           {"classes", "inheritance", "polymorphism", "encapsulation"},
	"database":      {"sql-basics", "joins", "normalization", "indexing"},
	"algorithms":    {"sorting", "searching", "recursion", "dynamic-programming"},
	"ai":            {"machine-learning", "data-analysis", "statistics"},
	"system-design": {"scalability", "load-balancing", "caching", "microservices"},
}

// improvementActions suggests concrete steps per skill category.
var improvementActions = map[string][]string{
	"technical-skills": {
		"Practice coding problems daily",
		"Study data structures and algorithms",
		"Build projects to apply concepts",
	},
	"problem-solving": {
		"Solve algorithmic challenges",
		"Practice breaking down complex problems",
		"Learn problem-solving patterns",
	},
	"coding-proficiency": {
		"Focus on code quality and best practices",
		"Practice code reviews",
		"Learn design patterns",
	},
	"communication": {
		"Practice explaining technical concepts",
		"Join coding communities",
		"Present your projects",
	},
}

// improvementTime estimates effort per weakness severity.
var improvementTime = map[weakness.Severity]string{
	weakness.SeverityCritical: "4-8 weeks",
	weakness.SeverityHigh:     "2-4 weeks",
	weakness.SeverityMedium:   "1-3 weeks",
	weakness.SeverityLow:      "1-2 weeks",
}

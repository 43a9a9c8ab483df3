package conceptgraph

func init() {
	g = buildGraph(seedConcepts())
}

// seedConcepts returns the hand-authored knowledge graph.
func seedConcepts() []Concept {
	return []Concept{
		// Programming fundamentals
		{
			ID: "variables", Category: CategoryFundamentals,
			Difficulty: DifficultyBeginner, Weight: 1.0,
			Dependents: []string{"data-types", "operators", "control-flow"},
		},
		{
			ID: "data-types", Category: CategoryFundamentals,
			Difficulty: DifficultyBeginner, Weight: 1.2,
			Prerequisites: []string{"variables"},
			Dependents:    []string{"arrays", "strings", "objects"},
		},
		{
			ID: "control-flow", Category: CategoryFundamentals,
			Difficulty: DifficultyBeginner, Weight: 1.3,
			Prerequisites: []string{"variables", "operators"},
			Dependents:    []string{"loops", "conditionals", "functions"},
		},
		{
			ID: "functions", Category: CategoryFundamentals,
			Difficulty: DifficultyIntermediate, Weight: 1.5,
			Prerequisites: []string{"control-flow"},
			Dependents:    []string{"recursion", "higher-order-functions", "closures"},
		},

		// Data structures
		{
			ID: "arrays", Category: CategoryDataStructures,
			Difficulty: DifficultyBeginner, Weight: 1.4,
			Prerequisites: []string{"data-types"},
			Dependents:    []string{"sorting", "searching", "dynamic-arrays"},
		},
		{
			ID: "linked-lists", Category: CategoryDataStructures,
			Difficulty: DifficultyIntermediate, Weight: 1.6,
			Prerequisites: []string{"pointers", "objects"},
			Dependents:    []string{"stacks", "queues", "trees"},
		},
		{
			ID: "stacks", Category: CategoryDataStructures,
			Difficulty: DifficultyIntermediate, Weight: 1.5,
			Prerequisites: []string{"arrays", "linked-lists"},
			Dependents:    []string{"recursion", "expression-evaluation"},
		},
		{
			ID: "queues", Category: CategoryDataStructures,
			Difficulty: DifficultyIntermediate, Weight: 1.5,
			Prerequisites: []string{"arrays", "linked-lists"},
			Dependents:    []string{"bfs", "scheduling"},
		},
		{
			ID: "trees", Category: CategoryDataStructures,
			Difficulty: DifficultyIntermediate, Weight: 1.7,
			Prerequisites: []string{"linked-lists", "recursion"},
			Dependents:    []string{"binary-trees", "bst", "heaps"},
		},
		{
			ID: "binary-trees", Category: CategoryDataStructures,
			Difficulty: DifficultyIntermediate, Weight: 1.6,
			Prerequisites: []string{"trees"},
			Dependents:    []string{"tree-traversal", "bst"},
		},
		{
			ID: "hash-tables", Category: CategoryDataStructures,
			Difficulty: DifficultyIntermediate, Weight: 1.8,
			Prerequisites: []string{"arrays", "functions"},
			Dependents:    []string{"sets", "maps", "caching"},
		},

		// Algorithms
		{
			ID: "sorting", Category: CategoryAlgorithms,
			Difficulty: DifficultyIntermediate, Weight: 1.6,
			Prerequisites: []string{"arrays", "comparison"},
			Dependents:    []string{"merge-sort", "quick-sort", "heap-sort"},
		},
		{
			ID: "searching", Category: CategoryAlgorithms,
			Difficulty: DifficultyBeginner, Weight: 1.3,
			Prerequisites: []string{"arrays"},
			Dependents:    []string{"binary-search", "hash-search"},
		},
		{
			ID: "recursion", Category: CategoryAlgorithms,
			Difficulty: DifficultyIntermediate, Weight: 1.9,
			Prerequisites: []string{"functions", "base-cases"},
			Dependents:    []string{"divide-conquer", "dynamic-programming", "backtracking"},
		},
		{
			ID: "dynamic-programming", Category: CategoryAlgorithms,
			Difficulty: DifficultyAdvanced, Weight: 2.2,
			Prerequisites: []string{"recursion", "memoization"},
			Dependents:    []string{"optimization", "longest-subsequence"},
		},
		{
			ID: "graph-algorithms", Category: CategoryAlgorithms,
			Difficulty: DifficultyAdvanced, Weight: 2.0,
			Prerequisites: []string{"graphs", "queues", "stacks"},
			Dependents:    []string{"dfs", "bfs", "shortest-path"},
		},

		// Object-oriented programming
		{
			ID: "classes", Category: CategoryOOP,
			Difficulty: DifficultyIntermediate, Weight: 1.5,
			Prerequisites: []string{"objects", "functions"},
			Dependents:    []string{"inheritance", "encapsulation", "polymorphism"},
		},
		{
			ID: "inheritance", Category: CategoryOOP,
			Difficulty: DifficultyIntermediate, Weight: 1.6,
			Prerequisites: []string{"classes"},
			Dependents:    []string{"polymorphism", "abstract-classes"},
		},
		{
			ID: "polymorphism", Category: CategoryOOP,
			Difficulty: DifficultyAdvanced, Weight: 1.8,
			Prerequisites: []string{"inheritance"},
			Dependents:    []string{"interfaces", "method-overriding"},
		},
		{
			ID: "encapsulation", Category: CategoryOOP,
			Difficulty: DifficultyIntermediate, Weight: 1.4,
			Prerequisites: []string{"classes"},
			Dependents:    []string{"access-modifiers", "getters-setters"},
		},

		// Database concepts
		{
			ID: "sql-basics", Category: CategoryDatabase,
			Difficulty: DifficultyBeginner, Weight: 1.3,
			Prerequisites: []string{"tables", "queries"},
			Dependents:    []string{"joins", "subqueries", "indexing"},
		},
		{
			ID: "joins", Category: CategoryDatabase,
			Difficulty: DifficultyIntermediate, Weight: 1.7,
			Prerequisites: []string{"sql-basics", "relationships"},
			Dependents:    []string{"complex-queries", "optimization"},
		},
		{
			ID: "normalization", Category: CategoryDatabase,
			Difficulty: DifficultyIntermediate, Weight: 1.6,
			Prerequisites: []string{"tables", "relationships"},
			Dependents:    []string{"database-design", "performance"},
		},
		{
			ID: "indexing", Category: CategoryDatabase,
			Difficulty: DifficultyIntermediate, Weight: 1.5,
			Prerequisites: []string{"sql-basics"},
			Dependents:    []string{"query-optimization", "performance"},
		},

		// System design
		{
			ID: "scalability", Category: CategorySystemDesign,
			Difficulty: DifficultyAdvanced, Weight: 2.1,
			Prerequisites: []string{"architecture", "performance"},
			Dependents:    []string{"load-balancing", "caching", "microservices"},
		},
		{
			ID: "caching", Category: CategorySystemDesign,
			Difficulty: DifficultyIntermediate, Weight: 1.7,
			Prerequisites: []string{"performance", "memory"},
			Dependents:    []string{"redis", "cdn", "database-caching"},
		},
		{
			ID: "load-balancing", Category: CategorySystemDesign,
			Difficulty: DifficultyAdvanced, Weight: 1.9,
			Prerequisites: []string{"scalability", "networking"},
			Dependents:    []string{"high-availability", "fault-tolerance"},
		},
		{
			ID: "microservices", Category: CategorySystemDesign,
			Difficulty: DifficultyAdvanced, Weight: 2.0,
			Prerequisites: []string{"apis", "distributed-systems"},
			Dependents:    []string{"service-mesh", "containerization"},
		},
	}
}

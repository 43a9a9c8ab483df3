package quizbank

import "github.com/abhisek/quizmate/internal/quiz"

// generalQuestions is the topic-agnostic pool served when nothing more
// specific matches.
func generalQuestions() []quiz.Question {
	qs := []quiz.Question{
		{
			ID:          "bank_1",
			Question:    "What does HTML stand for?",
			Options:     []string{"Hyper Text Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"},
			Correct:     0,
			Explanation: "HTML stands for Hyper Text Markup Language. It's the standard markup language used to create web pages and web applications.",
		},
		{
			ID:          "bank_2",
			Question:    "Which of the following is NOT a JavaScript data type?",
			Options:     []string{"String", "Boolean", "Float", "Undefined"},
			Correct:     2,
			Explanation: "JavaScript doesn't have a 'Float' data type. It uses 'Number' for both integers and floating-point numbers. The primitive data types in JavaScript are: String, Number, Boolean, Undefined, Null, Symbol, and BigInt.",
		},
		{
			ID:          "bank_3",
			Question:    "What is the time complexity of binary search?",
			Options:     []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
			Correct:     1,
			Explanation: "Binary search has O(log n) time complexity because it eliminates half of the remaining elements in each step, making it very efficient for sorted arrays.",
		},
		{
			ID:          "bank_4",
			Question:    "Which CSS property is used to change the text color?",
			Options:     []string{"text-color", "font-color", "color", "text-style"},
			Correct:     2,
			Explanation: "The 'color' property in CSS is used to set the color of text. For example: color: red; or color: #FF0000;",
		},
		{
			ID:          "bank_5",
			Question:    "What does API stand for?",
			Options:     []string{"Application Programming Interface", "Automated Programming Interface", "Advanced Programming Interface", "Application Process Interface"},
			Correct:     0,
			Explanation: "API stands for Application Programming Interface. It's a set of protocols and tools that allows different software applications to communicate with each other.",
		},
		{
			ID:          "bank_6",
			Question:    "Which of these is a NoSQL database?",
			Options:     []string{"MySQL", "PostgreSQL", "MongoDB", "SQLite"},
			Correct:     2,
			Explanation: "MongoDB is a NoSQL (document-oriented) database. MySQL, PostgreSQL, and SQLite are all relational (SQL) databases.",
		},
		{
			ID:          "bank_7",
			Question:    "What is the main purpose of Git?",
			Options:     []string{"Web development", "Version control", "Database management", "Code compilation"},
			Correct:     1,
			Explanation: "Git is a distributed version control system used to track changes in source code during software development. It helps developers collaborate and maintain a history of their code changes.",
		},
		{
			ID:          "bank_8",
			Question:    "Which HTTP status code indicates 'Not Found'?",
			Options:     []string{"200", "301", "404", "500"},
			Correct:     2,
			Explanation: "HTTP status code 404 means 'Not Found'. It indicates that the server cannot find the requested resource. Other codes: 200 (OK), 301 (Moved Permanently), 500 (Internal Server Error).",
		},
		{
			ID:          "bank_9",
			Question:    "What does CPU stand for?",
			Options:     []string{"Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit"},
			Correct:     0,
			Explanation: "CPU stands for Central Processing Unit. It's often called the 'brain' of the computer as it executes instructions and performs calculations.",
		},
		{
			ID:          "bank_10",
			Question:    "Which programming paradigm does JavaScript primarily support?",
			Options:     []string{"Only Object-Oriented", "Only Functional", "Multi-paradigm", "Only Procedural"},
			Correct:     2,
			Explanation: "JavaScript is a multi-paradigm language that supports object-oriented, functional, and procedural programming styles, making it very flexible for different coding approaches.",
		},
		{
			ID:          "bank_11",
			Question:    "What is the purpose of the 'alt' attribute in HTML img tags?",
			Options:     []string{"To resize the image", "To provide alternative text", "To set image alignment", "To add image borders"},
			Correct:     1,
			Explanation: "The 'alt' attribute provides alternative text for images, which is displayed when the image cannot be loaded and is crucial for accessibility, helping screen readers describe images to visually impaired users.",
		},
		{
			ID:          "bank_12",
			Question:    "Which of these is NOT a valid CSS selector?",
			Options:     []string{".class", "#id", "element", "@media"},
			Correct:     3,
			Explanation: "@media is not a selector but a CSS at-rule used for media queries. Valid selectors include class selectors (.class), ID selectors (#id), and element selectors (element).",
		},
	}
	for i := range qs {
		qs[i].Topic = "general"
		qs[i].Level = "mixed"
		qs[i].Source = quiz.SourceStatic
	}
	return qs
}

// leveledQuestions is the per-topic, per-level pool.
func leveledQuestions() []quiz.Question {
	qs := []quiz.Question{
		{
			ID:          "bank_201",
			Topic:       "oops",
			Level:       "beginner",
			Question:    "What does OOP stand for?",
			Options:     []string{"Object-Oriented Programming", "Only One Program", "Organized Object Process", "Optimal Operation Procedure"},
			Correct:     0,
			Explanation: "OOP stands for Object-Oriented Programming, a programming paradigm based on the concept of objects containing data and code.",
		},
		{
			ID:          "bank_202",
			Topic:       "oops",
			Level:       "beginner",
			Question:    "Which of the following is NOT a pillar of OOP?",
			Options:     []string{"Encapsulation", "Inheritance", "Polymorphism", "Compilation"},
			Correct:     3,
			Explanation: "The four pillars of OOP are Encapsulation, Inheritance, Polymorphism, and Abstraction. Compilation is not a pillar of OOP.",
		},
		{
			ID:          "bank_203",
			Topic:       "oops",
			Level:       "intermediate",
			Question:    "What is method overloading?",
			Options:     []string{"Having multiple methods with same name but different parameters", "Overriding a parent class method", "Using too many methods", "Loading methods dynamically"},
			Correct:     0,
			Explanation: "Method overloading allows multiple methods with the same name but different parameter lists (different number or types of parameters).",
		},
		{
			ID:          "bank_204",
			Topic:       "oops",
			Level:       "intermediate",
			Question:    "Which relationship is represented by 'IS-A'?",
			Options:     []string{"Composition", "Aggregation", "Inheritance", "Association"},
			Correct:     2,
			Explanation: "The 'IS-A' relationship represents inheritance, where a subclass is a type of its superclass (e.g., Car IS-A Vehicle).",
		},
		{
			ID:          "bank_205",
			Topic:       "oops",
			Level:       "advanced",
			Question:    "What is the difference between composition and inheritance?",
			Options:     []string{"No difference", "Composition is 'HAS-A', Inheritance is 'IS-A'", "Composition is faster", "Inheritance is newer"},
			Correct:     1,
			Explanation: "Composition represents 'HAS-A' relationship (object contains other objects), while Inheritance represents 'IS-A' relationship (subclass is a type of superclass). Composition provides better flexibility and loose coupling.",
		},
		{
			ID:          "bank_301",
			Topic:       "java",
			Level:       "beginner",
			Question:    "Who developed Java?",
			Options:     []string{"Microsoft", "Sun Microsystems", "Oracle", "Google"},
			Correct:     1,
			Explanation: "Java was originally developed by Sun Microsystems in 1995 by James Gosling and his team. Oracle acquired Sun Microsystems in 2010.",
		},
		{
			ID:          "bank_302",
			Topic:       "java",
			Level:       "beginner",
			Question:    "What is JVM?",
			Options:     []string{"Java Virtual Machine", "Java Variable Method", "Java Version Manager", "Java Vendor Module"},
			Correct:     0,
			Explanation: "JVM stands for Java Virtual Machine. It's a runtime environment that executes Java bytecode and provides platform independence.",
		},
		{
			ID:          "bank_303",
			Topic:       "java",
			Level:       "intermediate",
			Question:    "What is the difference between '==' and '.equals()' in Java?",
			Options:     []string{"No difference", "'==' compares references, '.equals()' compares values", "'.equals()' is faster", "'==' is deprecated"},
			Correct:     1,
			Explanation: "'==' compares object references (memory addresses), while '.equals()' compares the actual content/values of objects. For strings, use '.equals()' for content comparison.",
		},
		{
			ID:          "bank_304",
			Topic:       "java",
			Level:       "intermediate",
			Question:    "What is a checked exception in Java?",
			Options:     []string{"Exception checked at runtime", "Exception that must be caught or declared", "Exception in check() method", "Boolean exception"},
			Correct:     1,
			Explanation: "Checked exceptions must be either caught using try-catch or declared in the method signature using 'throws'. Examples include IOException, SQLException.",
		},
		{
			ID:          "bank_305",
			Topic:       "java",
			Level:       "advanced",
			Question:    "What is the purpose of the 'volatile' keyword in Java?",
			Options:     []string{"Makes variables temporary", "Ensures thread-safe access to variables", "Speeds up variable access", "Makes variables constant"},
			Correct:     1,
			Explanation: "The 'volatile' keyword ensures that changes to a variable are immediately visible to all threads. It prevents caching of the variable and ensures atomic read/write operations.",
		},
		{
			ID:          "bank_401",
			Topic:       "python",
			Level:       "beginner",
			Question:    "What is the correct way to create a list in Python?",
			Options:     []string{"list = {1, 2, 3}", "list = [1, 2, 3]", "list = (1, 2, 3)", "list = <1, 2, 3>"},
			Correct:     1,
			Explanation: "Lists in Python are created using square brackets []. Curly braces {} create sets, parentheses () create tuples.",
		},
		{
			ID:          "bank_402",
			Topic:       "python",
			Level:       "beginner",
			Question:    "Which of these is NOT a Python data type?",
			Options:     []string{"int", "float", "string", "char"},
			Correct:     3,
			Explanation: "Python doesn't have a separate 'char' data type. Individual characters are just strings of length 1. Python's basic data types include int, float, str, bool, list, tuple, dict, and set.",
		},
		{
			ID:          "bank_403",
			Topic:       "python",
			Level:       "intermediate",
			Question:    "What is a list comprehension in Python?",
			Options:     []string{"A way to compress lists", "A concise way to create lists", "A list documentation", "A list comparison method"},
			Correct:     1,
			Explanation: "List comprehension is a concise way to create lists. For example: [x*2 for x in range(5)] creates [0, 2, 4, 6, 8]. It's more readable and often faster than traditional loops.",
		},
		{
			ID:          "bank_404",
			Topic:       "python",
			Level:       "intermediate",
			Question:    "What does the '*args' parameter do in Python functions?",
			Options:     []string{"Multiplies arguments", "Accepts variable number of arguments", "Creates argument arrays", "Passes arguments by reference"},
			Correct:     1,
			Explanation: "*args allows a function to accept any number of positional arguments. The arguments are accessible as a tuple within the function.",
		},
		{
			ID:          "bank_405",
			Topic:       "python",
			Level:       "advanced",
			Question:    "What is the Global Interpreter Lock (GIL) in Python?",
			Options:     []string{"A security feature", "A mechanism that prevents multiple threads from executing Python code simultaneously", "A global variable lock", "A file locking system"},
			Correct:     1,
			Explanation: "The GIL is a mutex that protects access to Python objects, preventing multiple native threads from executing Python bytecodes simultaneously. This can limit performance in CPU-bound multi-threaded programs.",
		},
		{
			ID:          "bank_501",
			Topic:       "ai",
			Level:       "beginner",
			Question:    "What does AI stand for?",
			Options:     []string{"Automated Intelligence", "Artificial Intelligence", "Advanced Intelligence", "Augmented Intelligence"},
			Correct:     1,
			Explanation: "AI stands for Artificial Intelligence - the simulation of human intelligence in machines that are programmed to think and learn like humans.",
		},
		{
			ID:          "bank_502",
			Topic:       "ai",
			Level:       "beginner",
			Question:    "Which of these is an example of supervised learning?",
			Options:     []string{"Clustering", "Email spam detection", "Anomaly detection", "Dimensionality reduction"},
			Correct:     1,
			Explanation: "Email spam detection is supervised learning because the model is trained on labeled data (emails marked as spam or not spam) to predict future classifications.",
		},
		{
			ID:          "bank_503",
			Topic:       "ai",
			Level:       "intermediate",
			Question:    "What is overfitting in machine learning?",
			Options:     []string{"Model performs well on training data but poorly on new data", "Model is too simple", "Model trains too fast", "Model uses too much memory"},
			Correct:     0,
			Explanation: "Overfitting occurs when a model learns the training data too specifically, including noise and details that don't generalize to new data, resulting in poor performance on unseen data.",
		},
		{
			ID:          "bank_504",
			Topic:       "ai",
			Level:       "intermediate",
			Question:    "What is the purpose of a validation set?",
			Options:     []string{"To train the model", "To test final performance", "To tune hyperparameters and prevent overfitting", "To store backup data"},
			Correct:     2,
			Explanation: "A validation set is used during training to tune hyperparameters and monitor for overfitting. It helps select the best model configuration before final testing.",
		},
		{
			ID:          "bank_505",
			Topic:       "ai",
			Level:       "advanced",
			Question:    "What is the vanishing gradient problem in deep neural networks?",
			Options:     []string{"Gradients become too large", "Gradients become very small in early layers during backpropagation", "Gradients disappear from memory", "Gradients change randomly"},
			Correct:     1,
			Explanation: "The vanishing gradient problem occurs when gradients become exponentially smaller as they propagate back through layers, making it difficult to train deep networks effectively. This is often addressed using techniques like residual connections or better activation functions.",
		},
		{
			ID:          "bank_601",
			Topic:       "databases",
			Level:       "beginner",
			Question:    "What does SQL stand for?",
			Options:     []string{"Structured Query Language", "Simple Query Language", "Standard Query Language", "Sequential Query Language"},
			Correct:     0,
			Explanation: "SQL stands for Structured Query Language. It's a standard language for managing and manipulating relational databases.",
		},
		{
			ID:          "bank_602",
			Topic:       "databases",
			Level:       "beginner",
			Question:    "What is a primary key?",
			Options:     []string{"The first key in a table", "A unique identifier for each record", "The most important column", "A password for the database"},
			Correct:     1,
			Explanation: "A primary key is a column (or combination of columns) that uniquely identifies each record in a table. It cannot contain NULL values and must be unique.",
		},
		{
			ID:          "bank_603",
			Topic:       "databases",
			Level:       "intermediate",
			Question:    "What is database normalization?",
			Options:     []string{"Making databases normal", "Organizing data to reduce redundancy", "Backing up databases", "Encrypting database data"},
			Correct:     1,
			Explanation: "Database normalization is the process of organizing data in a database to reduce redundancy and improve data integrity by dividing large tables into smaller, related tables.",
		},
		{
			ID:          "bank_604",
			Topic:       "databases",
			Level:       "intermediate",
			Question:    "What is the difference between INNER JOIN and LEFT JOIN?",
			Options:     []string{"No difference", "INNER JOIN returns matching records, LEFT JOIN returns all left table records", "LEFT JOIN is faster", "INNER JOIN is deprecated"},
			Correct:     1,
			Explanation: "INNER JOIN returns only records that have matching values in both tables. LEFT JOIN returns all records from the left table and matching records from the right table (NULL for non-matching).",
		},
		{
			ID:          "bank_605",
			Topic:       "databases",
			Level:       "advanced",
			Question:    "What is ACID in database transactions?",
			Options:     []string{"A database acid test", "Atomicity, Consistency, Isolation, Durability", "A type of database", "A query optimization technique"},
			Correct:     1,
			Explanation: "ACID represents the four key properties of database transactions: Atomicity (all or nothing), Consistency (valid state), Isolation (concurrent transactions don't interfere), and Durability (committed changes persist).",
		},
	}
	for i := range qs {
		qs[i].Source = quiz.SourceStatic
	}
	return qs
}

package skillgraph

// seedSkills returns the built-in skill catalog. Enables lists may name
// skills outside this catalog; only Prerequisites form graph edges.
func seedSkills() []Skill {
	return []Skill{
		// Programming fundamentals
		{
			ID:            "programming_basics",
			Name:          "Programming Basics",
			Category:      CategoryFoundational,
			Difficulty:    Beginner,
			Prerequisites: []string{},
			Enables:       []string{"python_basics", "javascript_basics", "algorithms_basics"},
		},
		{
			ID:            "python_basics",
			Name:          "Python Basics",
			Category:      CategoryLanguage,
			Difficulty:    Beginner,
			Prerequisites: []string{"programming_basics"},
			Enables:       []string{"data_analysis", "web_backend", "machine_learning"},
		},
		{
			ID:            "javascript_basics",
			Name:          "JavaScript Basics",
			Category:      CategoryLanguage,
			Difficulty:    Beginner,
			Prerequisites: []string{"programming_basics"},
			Enables:       []string{"web_frontend", "full_stack_development", "node_js"},
		},

		// Data science & AI
		{
			ID:            "statistics",
			Name:          "Statistics",
			Category:      CategoryMathematics,
			Difficulty:    Intermediate,
			Prerequisites: []string{},
			Enables:       []string{"data_analysis", "machine_learning", "data_visualization"},
		},
		{
			ID:            "data_analysis",
			Name:          "Data Analysis",
			Category:      CategoryDataScience,
			Difficulty:    Intermediate,
			Prerequisites: []string{"python_basics", "statistics"},
			Enables:       []string{"machine_learning", "data_engineering", "business_intelligence"},
		},
		{
			ID:            "machine_learning",
			Name:          "Machine Learning",
			Category:      CategoryAIML,
			Difficulty:    Advanced,
			Prerequisites: []string{"data_analysis", "statistics"},
			Enables:       []string{"deep_learning", "ai_engineering", "mlops"},
		},
		{
			ID:            "deep_learning",
			Name:          "Deep Learning",
			Category:      CategoryAIML,
			Difficulty:    Advanced,
			Prerequisites: []string{"machine_learning"},
			Enables:       []string{"computer_vision", "nlp", "generative_ai"},
		},

		// Web development
		{
			ID:            "html_css",
			Name:          "HTML & CSS",
			Category:      CategoryWebFrontend,
			Difficulty:    Beginner,
			Prerequisites: []string{},
			Enables:       []string{"web_frontend", "responsive_design", "ui_design"},
		},
		{
			ID:            "web_frontend",
			Name:          "Web Frontend",
			Category:      CategoryWebFrontend,
			Difficulty:    Intermediate,
			Prerequisites: []string{"html_css", "javascript_basics"},
			Enables:       []string{"react", "vue", "angular", "full_stack_development"},
		},
		{
			ID:            "web_backend",
			Name:          "Web Backend",
			Category:      CategoryWebBackend,
			Difficulty:    Intermediate,
			Prerequisites: []string{"python_basics"},
			Enables:       []string{"api_development", "database_design", "full_stack_development"},
		},

		// Computer science
		{
			ID:            "algorithms_basics",
			Name:          "Algorithms Basics",
			Category:      CategoryComputerScience,
			Difficulty:    Intermediate,
			Prerequisites: []string{"programming_basics"},
			Enables:       []string{"data_structures", "system_design", "competitive_programming"},
		},
		{
			ID:            "data_structures",
			Name:          "Data Structures",
			Category:      CategoryComputerScience,
			Difficulty:    Intermediate,
			Prerequisites: []string{"algorithms_basics"},
			Enables:       []string{"system_design", "performance_optimization"},
		},
		{
			ID:            "system_design",
			Name:          "System Design",
			Category:      CategoryArchitecture,
			Difficulty:    Advanced,
			Prerequisites: []string{"data_structures", "web_backend"},
			Enables:       []string{"distributed_systems", "microservices", "cloud_architecture"},
		},

		// DevOps & infrastructure
		{
			ID:            "linux_basics",
			Name:          "Linux Basics",
			Category:      CategoryInfrastructure,
			Difficulty:    Beginner,
			Prerequisites: []string{},
			Enables:       []string{"devops", "cloud_computing", "system_administration"},
		},
		{
			ID:            "devops",
			Name:          "DevOps",
			Category:      CategoryInfrastructure,
			Difficulty:    Advanced,
			Prerequisites: []string{"linux_basics", "web_backend"},
			Enables:       []string{"ci_cd", "containerization", "cloud_architecture"},
		},

		// Security
		{
			ID:            "cybersecurity_basics",
			Name:          "Cybersecurity Basics",
			Category:      CategorySecurity,
			Difficulty:    Intermediate,
			Prerequisites: []string{"programming_basics"},
			Enables:       []string{"ethical_hacking", "security_architecture", "incident_response"},
		},
	}
}

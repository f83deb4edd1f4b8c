package careers

func seedRoles() map[string]Profile {
	return map[string]Profile{
		"Software Developer": {
			CoreSkills:            []string{"programming_basics", "algorithms_basics", "data_structures"},
			LanguageSkills:        []string{"python_basics", "javascript_basics"},
			SpecializationOptions: []string{"web_frontend", "web_backend", "full_stack_development"},
			AdvancedSkills:        []string{"system_design", "performance_optimization"},
			SoftSkills:            []string{"problem_solving", "code_review", "debugging"},
		},
		"Data Scientist": {
			CoreSkills:            []string{"statistics", "data_analysis", "python_basics"},
			SpecializationOptions: []string{"machine_learning", "data_visualization", "business_intelligence"},
			AdvancedSkills:        []string{"deep_learning", "big_data", "mlops"},
			SoftSkills:            []string{"business_acumen", "communication", "hypothesis_testing"},
		},
		"AI/ML Engineer": {
			CoreSkills:            []string{"machine_learning", "python_basics", "statistics"},
			SpecializationOptions: []string{"deep_learning", "computer_vision", "nlp"},
			AdvancedSkills:        []string{"mlops", "model_deployment", "distributed_training"},
			SoftSkills:            []string{"research_methodology", "experimentation", "technical_writing"},
		},
		"Full Stack Developer": {
			CoreSkills:            []string{"programming_basics", "web_frontend", "web_backend"},
			LanguageSkills:        []string{"javascript_basics", "python_basics"},
			SpecializationOptions: []string{"react", "node_js", "database_design"},
			AdvancedSkills:        []string{"system_design", "devops", "performance_optimization"},
			SoftSkills:            []string{"project_management", "ui_ux_basics", "api_design"},
		},
		"DevOps Engineer": {
			CoreSkills:            []string{"linux_basics", "devops", "programming_basics"},
			SpecializationOptions: []string{"containerization", "ci_cd", "cloud_computing"},
			AdvancedSkills:        []string{"kubernetes", "infrastructure_as_code", "monitoring"},
			SoftSkills:            []string{"automation_mindset", "troubleshooting", "collaboration"},
		},
		"Cybersecurity Specialist": {
			CoreSkills:            []string{"cybersecurity_basics", "programming_basics", "linux_basics"},
			SpecializationOptions: []string{"ethical_hacking", "security_architecture", "incident_response"},
			AdvancedSkills:        []string{"malware_analysis", "cryptography", "threat_hunting"},
			SoftSkills:            []string{"risk_assessment", "compliance", "communication"},
		},
	}
}

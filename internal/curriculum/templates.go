package curriculum

import (
	"strings"
	"unicode"
)

// TopicTemplate describes one topic generated for a skill.
type TopicTemplate struct {
	Name        string
	Description string
	Hours       float64
}

// DefaultTemplates returns the per-skill topic table. Skills without an
// entry get genericTemplates.
func DefaultTemplates() map[string][]TopicTemplate {
	return map[string][]TopicTemplate{
		"programming_basics": {
			{"Variables and Data Types", "Learn fundamental programming concepts", 8},
			{"Control Structures", "Master loops, conditionals, and functions", 12},
			{"Problem Solving", "Apply programming to solve real problems", 10},
		},
		"python_basics": {
			{"Python Syntax", "Learn Python language fundamentals", 8},
			{"Data Structures", "Work with lists, dictionaries, and sets", 10},
			{"File Handling", "Read and write files in Python", 6},
			{"Libraries and Modules", "Use Python standard library", 8},
		},
		"data_analysis": {
			{"Pandas Fundamentals", "Data manipulation with Pandas", 12},
			{"Data Visualization", "Create charts and graphs", 10},
			{"Statistical Analysis", "Descriptive and inferential statistics", 15},
			{"Real-world Projects", "Analyze actual datasets", 8},
		},
		"machine_learning": {
			{"ML Fundamentals", "Understanding machine learning concepts", 10},
			{"Supervised Learning", "Classification and regression algorithms", 15},
			{"Unsupervised Learning", "Clustering and dimensionality reduction", 12},
			{"Model Evaluation", "Validation and performance metrics", 8},
			{"MLOps Basics", "Deploying and monitoring ML models", 10},
		},
	}
}

func genericTemplates(name string) []TopicTemplate {
	return []TopicTemplate{
		{name + " Fundamentals", "Learn the basics of " + name, 10},
		{name + " Practice", "Hands-on practice with " + name, 12},
		{name + " Projects", "Apply " + name + " to real projects", 8},
	}
}

// Humanize turns a skill ID such as "web_backend" into "Web Backend".
func Humanize(id string) string {
	words := strings.Fields(strings.ReplaceAll(id, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

package resources

import (
	"regexp"
	"strings"
)

// SkillKeywords pairs a skill stem with related search phrases.
type SkillKeywords struct {
	Skill    string
	Keywords []string
}

// DefaultSkillKeywords is the term-expansion table. The first entry whose
// skill stem or any keyword appears in the topic wins.
func DefaultSkillKeywords() []SkillKeywords {
	return []SkillKeywords{
		{"programming", []string{"programming", "coding", "software development", "computer science"}},
		{"python", []string{"python programming", "python tutorial", "python course"}},
		{"javascript", []string{"javascript", "js programming", "web development"}},
		{"data_analysis", []string{"data analysis", "pandas", "data science", "statistics"}},
		{"machine_learning", []string{"machine learning", "ML", "artificial intelligence", "deep learning"}},
		{"web_development", []string{"web development", "frontend", "backend", "full stack"}},
		{"algorithms", []string{"algorithms", "data structures", "computer science fundamentals"}},
		{"databases", []string{"database", "SQL", "NoSQL", "data modeling"}},
		{"system_design", []string{"system design", "architecture", "scalability", "distributed systems"}},
		{"cybersecurity", []string{"cybersecurity", "information security", "ethical hacking", "network security"}},
	}
}

// RelevanceRule lists words that confirm or reject a candidate for topics
// containing Key.
type RelevanceRule struct {
	Key      string
	Positive []string
	Negative []string
}

// DefaultRelevanceRules is the topic-key keyword table used by the
// relevance filter. Keys are lowercase substrings of topic names.
func DefaultRelevanceRules() []RelevanceRule {
	return []RelevanceRule{
		{
			Key:      "data structures",
			Positive: []string{"data structure", "array", "linked list", "tree", "graph", "hash", "stack", "queue", "heap", "algorithm"},
			Negative: []string{"pandas", "dataframe", "spreadsheet", "excel", "tableau"},
		},
		{
			Key:      "data visualization",
			Positive: []string{"visualization", "chart", "plot", "matplotlib", "seaborn", "dashboard"},
			Negative: []string{"linked list", "binary tree"},
		},
		{
			Key:      "pandas",
			Positive: []string{"pandas", "dataframe", "data analysis", "data manipulation"},
			Negative: []string{"red panda", "wildlife"},
		},
		{
			Key:      "statistical analysis",
			Positive: []string{"statistics", "statistical", "probability", "regression", "hypothesis"},
			Negative: []string{"sports statistics"},
		},
		{
			Key:      "control structures",
			Positive: []string{"loop", "conditional", "if statement", "function", "control flow"},
			Negative: []string{"building construction", "civil engineering"},
		},
		{
			Key:      "python syntax",
			Positive: []string{"python"},
			Negative: []string{"monty python", "snake"},
		},
		{
			Key:      "file handling",
			Positive: []string{"file", "read", "write", "csv", "i/o"},
			Negative: []string{"tax filing", "nail file"},
		},
		{
			Key:      "supervised learning",
			Positive: []string{"classification", "regression", "supervised", "labeled data"},
			Negative: []string{"supervised visitation", "child care"},
		},
		{
			Key:      "unsupervised learning",
			Positive: []string{"clustering", "dimensionality reduction", "unsupervised", "k-means", "pca"},
		},
		{
			Key:      "model evaluation",
			Positive: []string{"cross-validation", "metrics", "precision", "recall", "evaluation"},
			Negative: []string{"fashion model", "modeling agency"},
		},
	}
}

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true, "for": true,
	"to": true, "in": true, "on": true, "with": true, "by": true, "at": true,
}

var tokenRE = regexp.MustCompile(`[a-z0-9+#]+`)

// tokens splits text into lowercase words, dropping stopwords and
// single-character tokens.
func tokens(text string) []string {
	var out []string
	for _, t := range tokenRE.FindAllString(strings.ToLower(text), -1) {
		if len(t) < 2 || stopwords[t] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// containsWord reports whether text contains phrase. Single words must
// match a whole token; multi-word phrases match as substrings.
func containsWord(text, phrase string) bool {
	text = strings.ToLower(text)
	phrase = strings.ToLower(phrase)
	if strings.ContainsAny(phrase, " -/") {
		return strings.Contains(text, phrase)
	}
	for _, t := range tokenRE.FindAllString(text, -1) {
		if t == phrase || strings.TrimSuffix(t, "s") == phrase {
			return true
		}
	}
	return false
}

package resources

import (
	"strings"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// CuratedEntry is a hand-picked resource list for topics whose lowercase
// name contains Key.
type CuratedEntry struct {
	Key       string
	Resources []Resource
}

// Curated is an immutable table of hand-picked resources.
type Curated struct {
	entries []CuratedEntry
}

// NewCurated builds a table from entries. Resources without an ID get one
// derived from their key and position.
func NewCurated(entries []CuratedEntry) *Curated {
	c := &Curated{entries: make([]CuratedEntry, len(entries))}
	for i, e := range entries {
		rs := make([]Resource, len(e.Resources))
		for j, r := range e.Resources {
			if r.ID == "" {
				r.ID = NewID("curated", e.Key, j)
			}
			rs[j] = r.normalize()
		}
		c.entries[i] = CuratedEntry{Key: strings.ToLower(e.Key), Resources: rs}
	}
	return c
}

// For returns the curated resources for topic, in table order, across every
// matching key.
func (c *Curated) For(topic string) []Resource {
	if c == nil {
		return nil
	}
	lower := strings.ToLower(topic)
	var out []Resource
	for _, e := range c.entries {
		if strings.Contains(lower, e.Key) {
			out = append(out, e.Resources...)
		}
	}
	return out
}

// DefaultCurated returns the built-in curated table.
func DefaultCurated() *Curated {
	return NewCurated([]CuratedEntry{
		{Key: "python", Resources: []Resource{
			{
				Title:       "The Python Tutorial (official documentation)",
				Description: "The official Python tutorial covering syntax, data types, control flow and modules",
				URL:         "https://docs.python.org/3/tutorial/",
				Platform:    PlatformWeb,
				Type:        TypeArticle,
				Difficulty:  skillgraph.Beginner,
				Rating:      ptr(4.8),
				Tags:        []string{"python", "official", "documentation"},
			},
		}},
		{Key: "data structures", Resources: []Resource{
			{
				Title:       "MIT 6.006 Introduction to Algorithms",
				Description: "Lectures on arrays, linked lists, hash tables, trees, heaps and graph algorithms",
				URL:         "https://ocw.mit.edu/courses/6-006-introduction-to-algorithms-spring-2020/",
				Platform:    PlatformMITOCW,
				Type:        TypeCourse,
				Difficulty:  skillgraph.Intermediate,
				Rating:      ptr(4.9),
				Tags:        []string{"data structures", "algorithms", "university"},
			},
		}},
		{Key: "pandas", Resources: []Resource{
			{
				Title:       "pandas Getting Started Tutorials",
				Description: "Official pandas tutorials on DataFrame creation, selection and aggregation",
				URL:         "https://pandas.pydata.org/docs/getting_started/intro_tutorials/",
				Platform:    PlatformWeb,
				Type:        TypeArticle,
				Difficulty:  skillgraph.Beginner,
				Rating:      ptr(4.7),
				Tags:        []string{"pandas", "dataframe", "data analysis"},
			},
		}},
		{Key: "statistic", Resources: []Resource{
			{
				Title:       "Khan Academy Statistics and Probability",
				Description: "Interactive lessons on descriptive statistics, probability and inference",
				URL:         "https://www.khanacademy.org/math/statistics-probability",
				Platform:    PlatformKhanAcademy,
				Type:        TypeInteractive,
				Difficulty:  skillgraph.Beginner,
				Rating:      ptr(4.8),
				Tags:        []string{"statistics", "probability"},
			},
		}},
		{Key: "machine learning", Resources: []Resource{
			{
				Title:       "Machine Learning Crash Course",
				Description: "Fast-paced introduction to machine learning with video lectures and exercises",
				URL:         "https://developers.google.com/machine-learning/crash-course",
				Platform:    PlatformWeb,
				Type:        TypeCourse,
				Difficulty:  skillgraph.Intermediate,
				Rating:      ptr(4.7),
				Tags:        []string{"machine learning", "supervised learning"},
			},
		}},
		{Key: "html", Resources: []Resource{
			{
				Title:       "MDN Learn Web Development: HTML",
				Description: "Structured guides to HTML document structure, forms and semantics",
				URL:         "https://developer.mozilla.org/en-US/docs/Learn/HTML",
				Platform:    PlatformWeb,
				Type:        TypeArticle,
				Difficulty:  skillgraph.Beginner,
				Rating:      ptr(4.8),
				Tags:        []string{"html", "css", "web development"},
			},
		}},
		{Key: "linux", Resources: []Resource{
			{
				Title:       "The Linux Command Line (free book)",
				Description: "Complete introduction to the shell, file system and command line tools",
				URL:         "https://linuxcommand.org/tlcl.php",
				Platform:    PlatformWeb,
				Type:        TypeBook,
				Difficulty:  skillgraph.Beginner,
				Rating:      ptr(4.7),
				Tags:        []string{"linux", "shell", "command line"},
			},
		}},
	})
}

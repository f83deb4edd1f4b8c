package resources

import (
	"context"
	"net/url"
	"strings"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// Static providers answer from fixed catalogs derived from the search term.
// They never touch the network and are deterministic for a given request.

// StaticProviders returns one catalog provider per supported platform,
// in default query order.
func StaticProviders() []Provider {
	return []Provider{
		YouTube(), Coursera(), EdX(), KhanAcademy(), MITOCW(),
		FreeCodeCamp(), GitHub(), Medium(), Podcast(),
	}
}

// DefaultRegistry returns a registry of the static providers.
func DefaultRegistry() *Registry {
	return NewRegistry(StaticProviders()...)
}

// staticProvider adapts a catalog function to the Provider interface.
type staticProvider struct {
	name    string
	catalog func(req SearchRequest) []Resource
}

func (p staticProvider) Name() string { return p.name }

func (p staticProvider) Search(ctx context.Context, req SearchRequest) ([]Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Resource
	for _, r := range p.catalog(req) {
		if !req.wants(r.Type) {
			continue
		}
		if req.MaxResults > 0 && len(out) >= req.MaxResults {
			break
		}
		out = append(out, r.normalize())
	}
	return out, nil
}

func slug(term string) string {
	return strings.ToLower(strings.ReplaceAll(term, " ", "-"))
}

func containsAny(s string, words ...string) bool {
	s = strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func difficultyOr(d skillgraph.Difficulty) skillgraph.Difficulty {
	if d.Valid() {
		return d
	}
	return skillgraph.Intermediate
}

// inferDifficulty reads a level hint from a video title.
func inferDifficulty(title string, fallback skillgraph.Difficulty) skillgraph.Difficulty {
	switch {
	case containsAny(title, "beginner", "basics", "intro"):
		return skillgraph.Beginner
	case containsAny(title, "advanced", "expert", "master"):
		return skillgraph.Advanced
	default:
		return fallback
	}
}

// YouTube returns the video catalog provider.
func YouTube() Provider {
	return staticProvider{name: PlatformYouTube, catalog: func(req SearchRequest) []Resource {
		videos := []struct {
			title, url, channel string
			seconds, views      int
			rating              float64
		}{
			{"Complete " + req.Term + " Tutorial for Beginners", "https://youtube.com/watch?v=example1", "Tech Education", 3600, 500000, 4.5},
			{"Advanced " + req.Term + " Concepts Explained", "https://youtube.com/watch?v=example2", "Programming Guru", 2400, 200000, 4.7},
		}
		out := make([]Resource, 0, len(videos))
		for i, v := range videos {
			out = append(out, Resource{
				ID:              NewID(PlatformYouTube, req.Term, i),
				Title:           v.title,
				Description:     "Comprehensive " + req.Term + " tutorial covering key concepts",
				URL:             v.url,
				Platform:        PlatformYouTube,
				Type:            TypeVideo,
				DurationMinutes: ptr(v.seconds / 60),
				Difficulty:      inferDifficulty(v.title, difficultyOr(req.Difficulty)),
				Rating:          ptr(v.rating),
				EnrollmentCount: ptr(v.views),
				Instructor:      ptr(v.channel),
				Tags:            []string{req.Term, "tutorial", "programming"},
			})
		}
		return out
	}}
}

// Coursera returns the university course catalog provider.
func Coursera() Provider {
	return staticProvider{name: PlatformCoursera, catalog: func(req SearchRequest) []Resource {
		return []Resource{{
			ID:              NewID(PlatformCoursera, req.Term, 0),
			Title:           "Introduction to " + req.Term,
			Description:     "University-level course on " + req.Term,
			URL:             "https://coursera.org/learn/" + slug(req.Term),
			Platform:        PlatformCoursera,
			Type:            TypeCourse,
			DurationMinutes: ptr(6 * 7 * 60),
			Difficulty:      difficultyOr(req.Difficulty),
			Rating:          ptr(4.6),
			EnrollmentCount: ptr(50000),
			Instructor:      ptr("University Professor"),
			Tags:            []string{req.Term, "university", "certification"},
		}}
	}}
}

// EdX returns the edX course catalog provider.
func EdX() Provider {
	return staticProvider{name: PlatformEdX, catalog: func(req SearchRequest) []Resource {
		return []Resource{{
			ID:              NewID(PlatformEdX, req.Term, 0),
			Title:           req.Term + " Fundamentals",
			Description:     "Free course on " + req.Term + " from MIT",
			URL:             "https://edx.org/course/" + slug(req.Term),
			Platform:        PlatformEdX,
			Type:            TypeCourse,
			Difficulty:      difficultyOr(req.Difficulty),
			Rating:          ptr(4.4),
			EnrollmentCount: ptr(30000),
			Instructor:      ptr("MIT"),
			Tags:            []string{req.Term, "university", "free"},
		}}
	}}
}

// KhanAcademy returns the interactive lesson provider. It only answers
// for fundamentals-style subjects.
func KhanAcademy() Provider {
	return staticProvider{name: PlatformKhanAcademy, catalog: func(req SearchRequest) []Resource {
		if !containsAny(req.Term, "math", "statistics", "computer science", "programming") {
			return nil
		}
		return []Resource{{
			ID:          NewID(PlatformKhanAcademy, req.Term, 0),
			Title:       req.Term + " - Khan Academy",
			Description: "Interactive lessons and exercises for " + req.Term,
			URL:         "https://khanacademy.org/computing/" + slug(req.Term),
			Platform:    PlatformKhanAcademy,
			Type:        TypeInteractive,
			Difficulty:  skillgraph.Beginner,
			Rating:      ptr(4.3),
			Tags:        []string{req.Term, "interactive", "exercises"},
		}}
	}}
}

// MITOCW returns the MIT OpenCourseWare provider for computing subjects.
func MITOCW() Provider {
	return staticProvider{name: PlatformMITOCW, catalog: func(req SearchRequest) []Resource {
		if !containsAny(req.Term, "computer science", "programming", "algorithms", "ai", "machine learning") {
			return nil
		}
		return []Resource{{
			ID:          NewID(PlatformMITOCW, req.Term, 0),
			Title:       "MIT: " + req.Term,
			Description: "MIT course materials for " + req.Term,
			URL:         "https://ocw.mit.edu/search/?q=" + url.QueryEscape(req.Term),
			Platform:    PlatformMITOCW,
			Type:        TypeCourse,
			Difficulty:  skillgraph.Advanced,
			Rating:      ptr(4.8),
			Instructor:  ptr("MIT Faculty"),
			Tags:        []string{req.Term, "mit", "academic"},
		}}
	}}
}

// FreeCodeCamp returns the project-based curriculum provider for web and
// programming subjects.
func FreeCodeCamp() Provider {
	return staticProvider{name: PlatformFreeCodeCamp, catalog: func(req SearchRequest) []Resource {
		if !containsAny(req.Term, "web", "javascript", "html", "css", "programming", "coding") {
			return nil
		}
		return []Resource{{
			ID:          NewID(PlatformFreeCodeCamp, req.Term, 0),
			Title:       "freeCodeCamp: " + req.Term,
			Description: "Learn " + req.Term + " with hands-on projects",
			URL:         "https://freecodecamp.org/learn",
			Platform:    PlatformFreeCodeCamp,
			Type:        TypeInteractive,
			Difficulty:  skillgraph.Beginner,
			Rating:      ptr(4.5),
			Tags:        []string{req.Term, "projects", "certification"},
		}}
	}}
}

// GitHub returns the repository provider: curated lists and tutorials.
func GitHub() Provider {
	return staticProvider{name: PlatformGitHub, catalog: func(req SearchRequest) []Resource {
		s := slug(req.Term)
		repos := []struct {
			name, desc, url string
			stars           int
		}{
			{"awesome-" + s, "Curated list of " + req.Term + " resources", "https://github.com/awesome/" + s, 15000},
			{s + "-tutorial", "Complete " + req.Term + " tutorial with examples", "https://github.com/tutorial/" + s, 8000},
		}
		out := make([]Resource, 0, len(repos))
		for i, r := range repos {
			out = append(out, Resource{
				ID:              NewID(PlatformGitHub, req.Term, i),
				Title:           r.name,
				Description:     r.desc,
				URL:             r.url,
				Platform:        PlatformGitHub,
				Type:            TypeArticle,
				Difficulty:      difficultyOr(req.Difficulty),
				EnrollmentCount: ptr(r.stars),
				Tags:            []string{req.Term, "open-source", "tutorial"},
			})
		}
		return out
	}}
}

// Medium returns the long-form article provider.
func Medium() Provider {
	return staticProvider{name: PlatformMedium, catalog: func(req SearchRequest) []Resource {
		return []Resource{{
			ID:          NewID(PlatformMedium, req.Term, 0),
			Title:       "Deep Dive into " + req.Term,
			Description: "Comprehensive article explaining " + req.Term + " concepts",
			URL:         "https://medium.com/topic/" + slug(req.Term),
			Platform:    PlatformMedium,
			Type:        TypeArticle,
			Difficulty:  difficultyOr(req.Difficulty),
			Rating:      ptr(4.2),
			Tags:        []string{req.Term, "article", "explanation"},
		}}
	}}
}

// Podcast returns the discussion-episode provider. Episodes are only
// offered when the request asks for podcasts.
func Podcast() Provider {
	return staticProvider{name: PlatformPodcast, catalog: func(req SearchRequest) []Resource {
		return []Resource{{
			ID:              NewID(PlatformPodcast, req.Term, 0),
			Title:           "Tech Talk: " + req.Term,
			Description:     "Expert discussion on " + req.Term,
			URL:             "https://podcast.example.com/" + slug(req.Term),
			Platform:        PlatformPodcast,
			Type:            TypePodcast,
			DurationMinutes: ptr(45),
			Difficulty:      difficultyOr(req.Difficulty),
			Rating:          ptr(4.1),
			Tags:            []string{req.Term, "discussion", "experts"},
		}}
	}}
}

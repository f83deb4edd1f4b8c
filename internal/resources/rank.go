package resources

import (
	"math"
	"slices"
	"strings"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

// DefaultPlatformTrust scores platforms by general content quality.
// Platforms not listed score DefaultTrust.
func DefaultPlatformTrust() map[string]float64 {
	return map[string]float64{
		PlatformYouTube:      15,
		PlatformCoursera:     25,
		PlatformEdX:          25,
		PlatformKhanAcademy:  20,
		PlatformMITOCW:       30,
		PlatformFreeCodeCamp: 20,
		PlatformGitHub:       10,
		PlatformMedium:       10,
	}
}

// DefaultTrust is the trust score of an unlisted platform.
const DefaultTrust = 5.0

var typeMultiplier = map[Type]float64{
	TypeCourse:      1.2,
	TypeInteractive: 1.15,
	TypeVideo:       1.1,
	TypeArticle:     1.0,
}

// scorer computes ranking scores for one query.
type scorer struct {
	topicWords []string
	roleWords  []string
	difficulty skillgraph.Difficulty
	trust      map[string]float64
}

func newScorer(q Query, trust map[string]float64) scorer {
	return scorer{
		topicWords: strings.Fields(strings.ToLower(q.Topic)),
		roleWords:  tokens(q.Role),
		difficulty: q.Difficulty,
		trust:      trust,
	}
}

// Score returns the ranking score of r. Higher is better.
func (s scorer) Score(r Resource) float64 {
	var score float64

	if len(s.topicWords) > 0 {
		title := map[string]bool{}
		for _, w := range strings.Fields(strings.ToLower(r.Title)) {
			title[w] = true
		}
		overlap := 0
		for _, w := range uniq(s.topicWords) {
			if title[w] {
				overlap++
			}
		}
		score += float64(overlap) / float64(len(s.topicWords)) * 30
	}

	hits := 0
	text := r.Title + " " + r.Description
	for _, w := range s.roleWords {
		if containsWord(text, w) {
			hits++
		}
	}
	score += math.Min(float64(hits*5), 10)

	score += difficultyBonus(s.difficulty, r.Difficulty)

	if t, ok := s.trust[r.Platform]; ok {
		score += t
	} else {
		score += DefaultTrust
	}

	if r.Rating != nil {
		score += *r.Rating / 5.0 * 15
	}
	if r.EnrollmentCount != nil {
		score += math.Min(float64(*r.EnrollmentCount)/10000, 10)
	}

	if m, ok := typeMultiplier[r.Type]; ok {
		score *= m
	}
	return score
}

// difficultyBonus favors an exact level. Intermediate material is a partial
// match for beginner and advanced requests only.
func difficultyBonus(want, got skillgraph.Difficulty) float64 {
	if !want.Valid() || !got.Valid() {
		return 0
	}
	switch {
	case want == got:
		return 20
	case got == skillgraph.Intermediate && (want == skillgraph.Beginner || want == skillgraph.Advanced):
		return 10
	}
	return 0
}

// rank returns rs sorted by descending score. Equal scores keep input order.
func rank(rs []Resource, s scorer) []Resource {
	type scored struct {
		r     Resource
		score float64
	}
	tmp := make([]scored, len(rs))
	for i, r := range rs {
		tmp[i] = scored{r, s.Score(r)}
	}
	slices.SortStableFunc(tmp, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})
	out := make([]Resource, len(tmp))
	for i, t := range tmp {
		out[i] = t.r
	}
	return out
}

func uniq(words []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

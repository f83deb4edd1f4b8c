package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

func article(title, url, description string) Resource {
	return Resource{
		ID:          NewID("test", title, 0),
		Title:       title,
		Description: description,
		URL:         url,
		Platform:    PlatformMedium,
		Type:        TypeArticle,
		Difficulty:  skillgraph.Intermediate,
		Tags:        []string{},
	}
}

func numbered(n int) []Resource {
	rs := make([]Resource, n)
	for i := range rs {
		rs[i] = article(
			fmt.Sprintf("Graph Traversal Lesson Number %02d", i),
			fmt.Sprintf("https://example.com/graphs/lesson-%02d", i),
			"Breadth-first and depth-first search walkthrough",
		)
	}
	return rs
}

func newTestRanker(ps ...Provider) *Ranker {
	return NewRanker(NewRegistry(ps...), DefaultConfig(), nil)
}

func TestFindResources_CanonicalDuplicatesCollapse(t *testing.T) {
	p := NewMockProvider("mock",
		article("Graph Traversal Explained Part One", "https://example.com/graphs?utm_source=a", ""),
		article("Graph Traversal Explained Part Two", "https://EXAMPLE.com/graphs/?utm_source=b#top", ""),
	)

	got := newTestRanker(p).FindResources(context.Background(), Query{Topic: "Graph Traversal"}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "Graph Traversal Explained Part One", got[0].Title)
}

func TestFindResources_DropsShortTitles(t *testing.T) {
	p := NewMockProvider("mock",
		article("Graphs", "https://example.com/short", ""),
		article("Graph Traversal in Practice", "https://example.com/long", ""),
	)

	got := newTestRanker(p).FindResources(context.Background(), Query{Topic: "Graph Traversal"}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "Graph Traversal in Practice", got[0].Title)
}

func TestFindResources_DataStructuresNeverIncludesDataframes(t *testing.T) {
	p := NewMockProvider("mock",
		article("Pandas DataFrame Crash Course for Analysts", "https://example.com/pandas", "Learn dataframe operations"),
		article("Working with Tabular Data in Python", "https://example.com/tabular", "Hands-on dataframe basics"),
		article("Linked Lists and Trees in Depth", "https://example.com/lists", "Core data structures"),
		article("Hash Tables from Scratch", "https://example.com/hash", "Implement a hash map"),
	)

	got := newTestRanker(p).FindResources(context.Background(), Query{
		Topic:      "Data Structures",
		Difficulty: skillgraph.Intermediate,
		Limit:      10,
	}, nil)

	require.Len(t, got, 2)
	for _, r := range got {
		assert.NotContains(t, strings.ToLower(r.Description), "dataframe")
		assert.NotContains(t, strings.ToLower(r.Title), "dataframe")
	}
}

func TestFindResources_NeverPads(t *testing.T) {
	p := NewMockProvider("mock", numbered(4)...)

	got := newTestRanker(p).FindResources(context.Background(), Query{Topic: "Graph Traversal", Limit: 10}, nil)

	assert.Len(t, got, 4)
}

func TestFindResources_FillsToLimit(t *testing.T) {
	p := NewMockProvider("mock", numbered(15)...)

	got := newTestRanker(p).FindResources(context.Background(), Query{Topic: "Graph Traversal", Limit: 10}, nil)

	assert.Len(t, got, 10)
}

func TestFindResources_ProviderFailureIsSkipped(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	broken := &MockProvider{ProviderName: "broken", Err: errors.New("boom")}
	good := NewMockProvider("good", numbered(3)...)

	rk := NewRanker(NewRegistry(broken, good), DefaultConfig(), zap.New(core))
	got := rk.FindResources(context.Background(), Query{Topic: "Graph Traversal"}, nil)

	assert.Len(t, got, 3)
	failures := logs.FilterMessage("resource provider failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "broken", failures[0].ContextMap()["provider"])
	assert.Equal(t, "Graph Traversal", failures[0].ContextMap()["term"])
}

func TestFindResources_RecordsIntoSeen(t *testing.T) {
	p := NewMockProvider("mock", numbered(3)...)
	rk := newTestRanker(p)
	seen := NewSeenSet()

	first := rk.FindResources(context.Background(), Query{Topic: "Graph Traversal"}, seen)
	require.Len(t, first, 3)
	for _, r := range first {
		assert.True(t, seen.Seen(r), "returned resource %q not recorded", r.Title)
	}

	second := rk.FindResources(context.Background(), Query{Topic: "Graph Traversal"}, seen)
	assert.Empty(t, second)
	assert.NotNil(t, second)
}

func TestFindResources_HealsMissingURL(t *testing.T) {
	r := article("Graph Traversal Video Walkthrough", "", "")
	r.Platform = PlatformYouTube
	r.Rating = ptr(4.5)

	got := newTestRanker(NewMockProvider("mock", r)).
		FindResources(context.Background(), Query{Topic: "Graph Traversal"}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "https://www.youtube.com/results?search_query=Graph+Traversal", got[0].URL)
	require.NotNil(t, got[0].Rating)
	assert.InDelta(t, 4.3, *got[0].Rating, 1e-9)
}

type proberFunc func(ctx context.Context, rawURL string) bool

func (f proberFunc) Reachable(ctx context.Context, rawURL string) bool { return f(ctx, rawURL) }

func TestFindResources_StrictModeProbes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictURLs = true
	cfg.Prober = proberFunc(func(_ context.Context, rawURL string) bool {
		return !strings.Contains(rawURL, "dead")
	})
	rs := []Resource{
		article("Graph Traversal Live Article", "https://example.com/live", ""),
		article("Graph Traversal Dead Article", "https://example.com/dead", ""),
	}

	got := NewRanker(NewRegistry(NewMockProvider("mock", rs...)), cfg, nil).
		FindResources(context.Background(), Query{Topic: "Graph Traversal"}, nil)

	require.Len(t, got, 2)
	urls := []string{got[0].URL, got[1].URL}
	assert.Contains(t, urls, "https://example.com/live")
	assert.Contains(t, urls, "https://medium.com/search?q=Graph+Traversal")
}

func TestFindResources_AffinityFirst(t *testing.T) {
	plain := article("Graph Traversal Algorithms Overview", "https://example.com/a", "")
	plain.Platform = PlatformMITOCW
	backend := article("Graph Traversal in Backend Services", "https://example.com/b", "")

	ranked := []Resource{plain, backend}
	rel := newRelevance("Graph Traversal", DefaultRelevanceRules())
	got := selectResources(ranked, rel, affinityWords("Backend Engineer", nil), 10)

	require.Len(t, got, 2)
	assert.Equal(t, backend.Title, got[0].Title)
	assert.Equal(t, plain.Title, got[1].Title)
}

func TestSelectResources_IrrelevantOnlyAsBackfill(t *testing.T) {
	onTopic := article("Graph Traversal Step by Step", "https://example.com/on", "")
	offTopic := article("Weekly Productivity Habits", "https://example.com/off", "")

	rel := newRelevance("Graph Traversal", DefaultRelevanceRules())
	got := selectResources([]Resource{offTopic, onTopic}, rel, nil, 10)

	require.Len(t, got, 2)
	assert.Equal(t, onTopic.Title, got[0].Title)

	got = selectResources([]Resource{offTopic, onTopic}, rel, nil, 1)
	require.Len(t, got, 1)
	assert.Equal(t, onTopic.Title, got[0].Title)
}

func TestFindResources_PerCallLimit(t *testing.T) {
	p := NewMockProvider("mock", numbered(2)...)
	rk := newTestRanker(p)

	rk.FindResources(context.Background(), Query{Topic: "Python Syntax", Limit: 6}, nil)

	require.Equal(t, 3, p.CallCount())
	for _, c := range p.Calls {
		assert.Equal(t, 2, c.MaxResults)
		assert.Equal(t, DefaultContentTypes(), c.ContentTypes)
	}
}

func TestFindResources_StaticRegistry(t *testing.T) {
	rk := NewRanker(DefaultRegistry(), DefaultConfig(), nil)

	got := rk.FindResources(context.Background(), Query{
		Topic:      "Python Syntax",
		Difficulty: skillgraph.Beginner,
		Role:       "Data Scientist",
		Limit:      6,
	}, nil)

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 6)
	canon := map[string]bool{}
	for _, r := range got {
		assert.True(t, wellFormed(r.URL), "bad url %q", r.URL)
		assert.False(t, canon[Canonical(r.URL)], "duplicate url %q", r.URL)
		canon[Canonical(r.URL)] = true
		assert.NotNil(t, r.Tags)
	}
}

func TestFindResources_BlankTopic(t *testing.T) {
	rk := newTestRanker(NewMockProvider("mock", numbered(3)...))
	for _, topic := range []string{"", "   "} {
		got := rk.FindResources(context.Background(), Query{Topic: topic}, nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestExpandTerms(t *testing.T) {
	rk := newTestRanker()
	tests := []struct {
		topic, role string
		want        []string
	}{
		{"Python Syntax", "Data Scientist", []string{"Python Syntax", "python programming", "python tutorial"}},
		{"Graph Traversal", "Backend Engineer", []string{"Graph Traversal", "Graph Traversal for Backend Engineer", "Graph Traversal backend"}},
		{"Graph Traversal", "", []string{"Graph Traversal"}},
		{"Data Structures", "", []string{"Data Structures", "algorithms"}},
		{"HTML & CSS Fundamentals", "", []string{"HTML & CSS Fundamentals"}},
		{"Intro to ML", "", []string{"Intro to ML", "machine learning", "ML"}},
		{"SQL Joins", "", []string{"SQL Joins", "database", "SQL"}},
		{"   ", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.topic+"/"+tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, rk.expandTerms(tt.topic, tt.role))
		})
	}
}

func TestScore_DifficultyMatchNeverLowers(t *testing.T) {
	s := newScorer(Query{Topic: "Graph Traversal", Difficulty: skillgraph.Intermediate}, DefaultPlatformTrust())
	for _, d := range skillgraph.AllDifficulties() {
		exact := article("Graph Traversal Deep Dive", "https://example.com/x", "")
		exact.Difficulty = skillgraph.Intermediate
		other := exact
		other.Difficulty = d
		assert.GreaterOrEqual(t, s.Score(exact), s.Score(other), "difficulty %s", d)
	}
}

func TestDifficultyBonus(t *testing.T) {
	assert.Equal(t, 20.0, difficultyBonus(skillgraph.Beginner, skillgraph.Beginner))
	assert.Equal(t, 10.0, difficultyBonus(skillgraph.Beginner, skillgraph.Intermediate))
	assert.Equal(t, 10.0, difficultyBonus(skillgraph.Advanced, skillgraph.Intermediate))
	assert.Equal(t, 20.0, difficultyBonus(skillgraph.Intermediate, skillgraph.Intermediate))
	assert.Equal(t, 0.0, difficultyBonus(skillgraph.Intermediate, skillgraph.Advanced))
	assert.Equal(t, 0.0, difficultyBonus(skillgraph.Intermediate, skillgraph.Beginner))
	assert.Equal(t, 0.0, difficultyBonus(skillgraph.Beginner, skillgraph.Advanced))
	assert.Equal(t, 0.0, difficultyBonus("", skillgraph.Advanced))
}

func TestScore_PlatformTrust(t *testing.T) {
	s := newScorer(Query{Topic: "Graph Traversal"}, DefaultPlatformTrust())
	mit := article("Graph Traversal Lecture Notes", "https://example.com/x", "")
	mit.Platform = PlatformMITOCW
	unknown := mit
	unknown.Platform = "somewhere"

	assert.InDelta(t, 30-DefaultTrust, s.Score(mit)-s.Score(unknown), 1e-9)
}

func TestRank_StableForEqualScores(t *testing.T) {
	a := article("Graph Traversal Notes Alpha", "https://example.com/a", "")
	b := article("Graph Traversal Notes Bravo", "https://example.com/b", "")
	s := newScorer(Query{Topic: "unrelated"}, DefaultPlatformTrust())

	got := rank([]Resource{a, b}, s)
	assert.Equal(t, []string{a.Title, b.Title}, []string{got[0].Title, got[1].Title})
}

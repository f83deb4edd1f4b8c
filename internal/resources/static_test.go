package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/skillgraph"
)

func TestStaticProviders_Deterministic(t *testing.T) {
	req := SearchRequest{Term: "python basics", Difficulty: skillgraph.Beginner, ContentTypes: DefaultContentTypes(), MaxResults: 5}
	for _, p := range StaticProviders() {
		a, err := p.Search(context.Background(), req)
		require.NoError(t, err, p.Name())
		b, err := p.Search(context.Background(), req)
		require.NoError(t, err, p.Name())
		assert.Equal(t, a, b, "provider %s not deterministic", p.Name())
		for _, r := range a {
			assert.Equal(t, p.Name(), r.Platform)
			assert.NotNil(t, r.Tags)
			assert.Contains(t, DefaultContentTypes(), r.Type)
		}
	}
}

func TestStaticProviders_HonorMaxResults(t *testing.T) {
	for _, p := range StaticProviders() {
		rs, err := p.Search(context.Background(), SearchRequest{Term: "programming", MaxResults: 1})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(rs), 1, p.Name())
	}
}

func TestStaticProviders_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := YouTube().Search(ctx, SearchRequest{Term: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultRegistry_Order(t *testing.T) {
	assert.Equal(t, []string{
		PlatformYouTube, PlatformCoursera, PlatformEdX, PlatformKhanAcademy, PlatformMITOCW,
		PlatformFreeCodeCamp, PlatformGitHub, PlatformMedium, PlatformPodcast,
	}, DefaultRegistry().Names())
}

func TestCurated_For(t *testing.T) {
	c := DefaultCurated()

	got := c.For("Python Syntax and Semantics")
	require.Len(t, got, 1)
	assert.Equal(t, "https://docs.python.org/3/tutorial/", got[0].URL)
	assert.Equal(t, NewID("curated", "python", 0), got[0].ID)

	assert.Empty(t, c.For("Graph Traversal"))
	assert.Len(t, c.For("Statistics for Data Structures"), 2)

	var nilTable *Curated
	assert.Nil(t, nilTable.For("python"))
}

func TestNewID_Stable(t *testing.T) {
	assert.Equal(t, NewID("youtube", "graphs", 0), NewID("youtube", "graphs", 0))
	assert.NotEqual(t, NewID("youtube", "graphs", 0), NewID("youtube", "graphs", 1))
	assert.NotEqual(t, NewID("youtube", "graphs", 0), NewID("coursera", "graphs", 0))
}

package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://Example.COM/path/?a=1#frag", "https://example.com/path"},
		{"HTTPS://example.com/", "https://example.com"},
		{"https://example.com/path?x=1", "https://example.com/path"},
		{"  https://example.com/a/b/  ", "https://example.com/a/b"},
		{"", ""},
		{"Not A URL/", "not a url"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.in), "Canonical(%q)", tt.in)
	}
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "python for everyone", NormalizeTitle("Python, for Everyone!"))
	assert.Equal(t, "c tutorial", NormalizeTitle("  C++ Tutorial  "))
}

func TestSeenSet_MatchesAnyIdentity(t *testing.T) {
	s := NewSeenSet()
	s.Add(Resource{ID: "a", Title: "Intro to Graphs!", URL: "https://example.com/graphs?ref=1"})

	assert.True(t, s.Seen(Resource{ID: "a"}))
	assert.True(t, s.Seen(Resource{Title: "intro to graphs"}))
	assert.True(t, s.Seen(Resource{URL: "https://example.com/graphs?ref=1"}))
	assert.True(t, s.Seen(Resource{URL: "https://example.com/graphs?ref=2"}))
	assert.False(t, s.Seen(Resource{ID: "b", Title: "Other", URL: "https://example.com/other"}))
	assert.Equal(t, 1, s.Len())
}

func TestSeenSet_CloneIsIndependent(t *testing.T) {
	s := NewSeenSet()
	s.Add(Resource{ID: "a", URL: "https://example.com/a"})
	c := s.Clone()
	c.Add(Resource{ID: "b", URL: "https://example.com/b"})

	assert.True(t, c.Seen(Resource{ID: "a"}))
	assert.False(t, s.Seen(Resource{ID: "b"}))
}

func TestDedupe_DoesNotGrowCallerSet(t *testing.T) {
	seen := NewSeenSet()
	rs := []Resource{
		{ID: "1", Title: "Graph Traversal One", URL: "https://example.com/1"},
		{ID: "2", Title: "Graph Traversal One", URL: "https://example.com/2"},
		{ID: "3", Title: "Short", URL: "https://example.com/3"},
	}

	got := dedupe(rs, seen)

	assert.Len(t, got, 1)
	assert.Equal(t, 0, seen.Len())
}

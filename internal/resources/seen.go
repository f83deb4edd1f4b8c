package resources

import (
	"net/url"
	"regexp"
	"strings"
)

// MinTitleLength is the shortest title kept; anything at or below it is
// treated as noise.
const MinTitleLength = 10

// SeenSet tracks resources already attached within one enrichment pass.
// It is owned by a single call and is not safe for concurrent use.
type SeenSet struct {
	ids       map[string]bool
	titles    map[string]bool
	urls      map[string]bool
	canonical map[string]bool
}

// NewSeenSet returns an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{
		ids:       map[string]bool{},
		titles:    map[string]bool{},
		urls:      map[string]bool{},
		canonical: map[string]bool{},
	}
}

// Add records r.
func (s *SeenSet) Add(r Resource) {
	if r.ID != "" {
		s.ids[r.ID] = true
	}
	if t := NormalizeTitle(r.Title); t != "" {
		s.titles[t] = true
	}
	if r.URL != "" {
		s.urls[r.URL] = true
		if c := Canonical(r.URL); c != "" {
			s.canonical[c] = true
		}
	}
}

// Seen reports whether r duplicates anything already recorded by ID,
// normalized title, raw URL or canonical URL.
func (s *SeenSet) Seen(r Resource) bool {
	if r.ID != "" && s.ids[r.ID] {
		return true
	}
	if s.titles[NormalizeTitle(r.Title)] {
		return true
	}
	if r.URL == "" {
		return false
	}
	return s.urls[r.URL] || s.canonical[Canonical(r.URL)]
}

// addIdentity records only r's ID and title. Used for resources whose URL
// was replaced by a shared search page.
func (s *SeenSet) addIdentity(r Resource) {
	if r.ID != "" {
		s.ids[r.ID] = true
	}
	if t := NormalizeTitle(r.Title); t != "" {
		s.titles[t] = true
	}
}

func (s *SeenSet) seenIdentity(r Resource) bool {
	return (r.ID != "" && s.ids[r.ID]) || s.titles[NormalizeTitle(r.Title)]
}

// Len returns the number of distinct canonical URLs recorded.
func (s *SeenSet) Len() int { return len(s.canonical) }

// Clone returns an independent copy.
func (s *SeenSet) Clone() *SeenSet {
	c := NewSeenSet()
	for k := range s.ids {
		c.ids[k] = true
	}
	for k := range s.titles {
		c.titles[k] = true
	}
	for k := range s.urls {
		c.urls[k] = true
	}
	for k := range s.canonical {
		c.canonical[k] = true
	}
	return c
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// NormalizeTitle lowercases a title and strips punctuation.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(nonWord.ReplaceAllString(strings.ToLower(title), ""))
}

// Canonical strips the query string and fragment from a URL, lowercases
// the scheme and host, and trims a trailing slash. Unparseable input is
// returned lowercased and trimmed.
func Canonical(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimRight(strings.ToLower(raw), "/")
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return strings.TrimRight(u.String(), "/")
}

// dedupe drops resources already in seen or earlier in rs, and titles that
// are too short. Survivors are recorded into a scratch copy of seen so the
// caller's set only grows with resources actually returned.
func dedupe(rs []Resource, seen *SeenSet) []Resource {
	scratch := seen.Clone()
	out := make([]Resource, 0, len(rs))
	for _, r := range rs {
		if len([]rune(r.Title)) <= MinTitleLength {
			continue
		}
		if scratch.Seen(r) {
			continue
		}
		scratch.Add(r)
		out = append(out, r)
	}
	return out
}

package resources

import (
	"context"
	"net/url"
	"strings"
)

// FallbackRatingCeiling caps the rating of a resource whose link had to
// be replaced by a search page.
const FallbackRatingCeiling = 3.8

var searchEndpoints = map[string]string{
	PlatformYouTube:      "https://www.youtube.com/results?search_query=",
	PlatformCoursera:     "https://www.coursera.org/search?query=",
	PlatformEdX:          "https://www.edx.org/search?q=",
	PlatformKhanAcademy:  "https://www.khanacademy.org/search?page_search_query=",
	PlatformMITOCW:       "https://ocw.mit.edu/search/?q=",
	PlatformFreeCodeCamp: "https://www.freecodecamp.org/news/search/?query=",
	PlatformGitHub:       "https://github.com/search?type=repositories&q=",
	PlatformMedium:       "https://medium.com/search?q=",
}

const defaultSearchEndpoint = "https://duckduckgo.com/?q="

// FallbackURL returns a platform search page for query. The result is a
// pure function of its inputs.
func FallbackURL(platform, query string) string {
	base, ok := searchEndpoints[platform]
	if !ok {
		base = defaultSearchEndpoint
	}
	return base + url.QueryEscape(strings.TrimSpace(query))
}

// wellFormed reports whether raw is an absolute http(s) URL with a host.
func wellFormed(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// URLProber checks whether a link is reachable.
type URLProber interface {
	Reachable(ctx context.Context, rawURL string) bool
}

// heal replaces an unusable link with a platform search page and lowers
// the rating. healed reports whether r was changed.
func heal(ctx context.Context, r Resource, query string, strict bool, prober URLProber) (out Resource, healed bool) {
	ok := wellFormed(r.URL)
	if ok && strict && prober != nil {
		ok = prober.Reachable(ctx, r.URL)
	}
	if ok {
		return r, false
	}

	r.URL = FallbackURL(r.Platform, query)
	if r.Rating != nil {
		lowered := *r.Rating - 0.2
		if lowered < FallbackRatingCeiling {
			lowered = min(*r.Rating, FallbackRatingCeiling)
		}
		r.Rating = ptr(lowered)
	}
	return r, true
}

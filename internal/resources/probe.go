package resources

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 5 * time.Second

// maxProbeBody is how much of a page is read when looking for its title.
const maxProbeBody = 512 << 10

const probeUserAgent = "Mozilla/5.0 (compatible; pathwise/1.0)"

var softNotFound = []string{"page not found", "404", "not found"}

// Prober checks links over HTTP. A HEAD request rules out hard failures;
// a GET then reads the page title to catch pages that answer 200 but
// render a not-found page.
type Prober struct {
	client *http.Client
}

// NewProber returns a Prober with the given per-request timeout.
// A zero timeout uses DefaultProbeTimeout.
func NewProber(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{client: &http.Client{Timeout: timeout}}
}

// Reachable reports whether rawURL serves a real page.
func (p *Prober) Reachable(ctx context.Context, rawURL string) bool {
	if status, err := p.do(ctx, http.MethodHead, rawURL, nil); err == nil {
		if status == http.StatusNotFound || status == http.StatusGone {
			return false
		}
	}

	var title string
	status, err := p.do(ctx, http.MethodGet, rawURL, func(body io.Reader) {
		doc, err := goquery.NewDocumentFromReader(io.LimitReader(body, maxProbeBody))
		if err != nil {
			return
		}
		title = strings.ToLower(strings.TrimSpace(doc.Find("title").First().Text()))
	})
	if err != nil || status >= 400 {
		return false
	}
	for _, marker := range softNotFound {
		if strings.Contains(title, marker) {
			return false
		}
	}
	return true
}

func (p *Prober) do(ctx context.Context, method, rawURL string, read func(io.Reader)) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if read != nil && resp.StatusCode < 400 {
		read(resp.Body)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxProbeBody))
	return resp.StatusCode, nil
}

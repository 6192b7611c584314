package scrape

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

// Discoverer finds keyword-matched links on a seed page.
type Discoverer struct {
	httpConfig
	keywords []string
}

// NewDiscoverer creates a Discoverer that matches hrefs against the given
// keyword list.
func NewDiscoverer(keywords []string, opts ...Option) *Discoverer {
	d := &Discoverer{
		httpConfig: defaultHTTPConfig(),
		keywords:   keywords,
	}
	for _, opt := range opts {
		opt(&d.httpConfig)
	}
	d.finish()
	return d
}

// Discover fetches seedURL and returns every anchor href containing one of
// the keywords (case-insensitive), resolved to absolute form. Each resolved
// URL appears once, in first-seen document order.
func (d *Discoverer) Discover(ctx context.Context, seedURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, seedURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "discover: create request")
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "discover: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBody))
	if err != nil {
		return nil, eris.Wrap(err, "discover: read body")
	}

	if bt := DetectBlock(resp, body); bt != BlockNone {
		return nil, eris.Errorf("discover: blocked (%s)", bt)
	}
	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("discover: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "discover: parse html")
	}

	// Redirects may have moved the page; resolve hrefs against where the
	// request actually landed.
	base := resp.Request.URL

	seen := make(map[string]struct{})
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		if !d.matches(href) {
			return
		}
		resolved, err := base.Parse(href)
		if err != nil {
			return
		}
		abs := resolved.String()
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
	})

	return links, nil
}

// matches reports whether the href contains any keyword, comparing
// case-insensitively on both sides.
func (d *Discoverer) matches(href string) bool {
	lower := strings.ToLower(href)
	for _, kw := range d.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

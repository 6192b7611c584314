package scrape

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sells-group/sitefacts/internal/model"
)

// stripSelectors name the elements whose text never describes the company.
var stripSelectors = []string{"script", "style", "header", "footer", "nav"}

// PageScraper fetches a page and reduces it to bounded plain text.
type PageScraper struct {
	httpConfig
	charLimit int
}

// NewPageScraper creates a PageScraper that truncates cleaned text to
// charLimit characters.
func NewPageScraper(charLimit int, opts ...Option) *PageScraper {
	p := &PageScraper{
		httpConfig: defaultHTTPConfig(),
		charLimit:  charLimit,
	}
	for _, opt := range opts {
		opt(&p.httpConfig)
	}
	p.finish()
	return p
}

// Scrape fetches targetURL and returns its cleaned visible text. The
// returned Page always carries a status; fetch problems land in FailReason
// instead of panicking or aborting the caller.
func (p *PageScraper) Scrape(ctx context.Context, targetURL string) model.Page {
	page := model.Page{URL: targetURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		page.Status = model.PageStatusFailed
		page.FailReason = model.FailRequestFailed
		return page
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		page.Status = model.PageStatusFailed
		page.FailReason = model.FailRequestFailed
		return page
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody))
	if err != nil {
		page.Status = model.PageStatusFailed
		page.FailReason = model.FailReadFailed
		return page
	}
	page.StatusCode = resp.StatusCode

	if bt := DetectBlock(resp, body); bt != BlockNone {
		page.Status = model.PageStatusFailed
		page.FailReason = model.FailBlocked
		return page
	}
	if resp.StatusCode >= 400 {
		page.Status = model.PageStatusFailed
		page.FailReason = model.FailHTTPStatus
		return page
	}

	text, err := p.cleanText(body)
	if err != nil {
		page.Status = model.PageStatusFailed
		page.FailReason = model.FailParseFailed
		return page
	}
	if text == "" {
		page.Status = model.PageStatusEmpty
		return page
	}

	page.Status = model.PageStatusOK
	page.Text = text
	return page
}

// cleanText strips non-content elements, joins the remaining text nodes
// with single spaces, and truncates to the page character limit.
func (p *PageScraper) cleanText(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	for _, sel := range stripSelectors {
		doc.Find(sel).Remove()
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return truncate(strings.Join(parts, " "), p.charLimit), nil
}

// truncate cuts s to the first limit characters, counting runes so a
// multi-byte character is never split.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

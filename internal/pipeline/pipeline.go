// Package pipeline runs the sequential discover → scrape → extract →
// aggregate loop over the seed URLs.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/sitefacts/internal/model"
)

// LinkDiscoverer finds keyword-matched links on a seed homepage.
type LinkDiscoverer interface {
	Discover(ctx context.Context, seedURL string) ([]string, error)
}

// PageScraper fetches one page and reduces it to bounded plain text.
type PageScraper interface {
	Scrape(ctx context.Context, targetURL string) model.Page
}

// DetailExtractor answers the six business questions over combined text.
type DetailExtractor interface {
	Extract(ctx context.Context, text string) (*model.Extraction, error)
}

// Runner drives the four stages for each seed in order, one site at a time.
type Runner struct {
	discoverer LinkDiscoverer
	scraper    PageScraper
	extractor  DetailExtractor
	siteDelay  time.Duration
}

// New creates a Runner. siteDelay is the unconditional pause after each
// site, the only pacing mechanism in the pipeline.
func New(d LinkDiscoverer, s PageScraper, e DetailExtractor, siteDelay time.Duration) *Runner {
	return &Runner{
		discoverer: d,
		scraper:    s,
		extractor:  e,
		siteDelay:  siteDelay,
	}
}

// Run processes every seed sequentially and returns one SiteResult per
// seed. Fetch and extraction failures degrade to empty details; only a
// cancelled context ends the run early, and then the summary carries the
// results accumulated so far together with ctx.Err().
func (r *Runner) Run(ctx context.Context, seeds []string) (*model.RunSummary, error) {
	summary := &model.RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Sites:     len(seeds),
	}

	zap.L().Info("run started",
		zap.String("run_id", summary.RunID),
		zap.Int("sites", len(seeds)),
	)

	for i, seed := range seeds {
		zap.L().Info(fmt.Sprintf("======== site %d/%d: %s ========", i+1, len(seeds), seed))

		result := r.processSite(ctx, seed)
		summary.Results = append(summary.Results, result)

		switch result.Extraction.Status {
		case model.ExtractionStatusOK:
			summary.Extracted++
		case model.ExtractionStatusFailed:
			summary.Failed++
		}
		summary.TotalTokens += result.Extraction.Usage.InputTokens + result.Extraction.Usage.OutputTokens
		summary.TotalCost += result.Extraction.Usage.Cost

		if ctx.Err() != nil {
			summary.FinishedAt = time.Now()
			zap.L().Warn("run cancelled",
				zap.String("run_id", summary.RunID),
				zap.Int("processed", len(summary.Results)),
			)
			return summary, ctx.Err()
		}

		if err := r.pause(ctx); err != nil {
			summary.FinishedAt = time.Now()
			return summary, err
		}
	}

	summary.FinishedAt = time.Now()
	zap.L().Info("run finished",
		zap.String("run_id", summary.RunID),
		zap.Int("extracted", summary.Extracted),
		zap.Int("failed", summary.Failed),
		zap.Int("total_tokens", summary.TotalTokens),
		zap.Float64("total_cost_usd", summary.TotalCost),
	)
	return summary, nil
}

// processSite runs the three work stages for one seed. It always returns a
// SiteResult so the output keeps one row per seed no matter what failed.
func (r *Runner) processSite(ctx context.Context, seed string) model.SiteResult {
	start := time.Now()
	result := model.SiteResult{URL: seed}

	links, err := r.discoverer.Discover(ctx, seed)
	if err != nil {
		zap.L().Error("link discovery failed",
			zap.String("seed", seed),
			zap.Error(err),
		)
	}
	result.Links = links
	zap.L().Info("links discovered",
		zap.String("seed", seed),
		zap.Int("count", len(links)),
	)

	for _, link := range links {
		page := r.scraper.Scrape(ctx, link)
		result.Pages = append(result.Pages, page)
		if page.Status == model.PageStatusFailed {
			zap.L().Warn("page scrape failed",
				zap.String("url", link),
				zap.String("reason", string(page.FailReason)),
			)
		}
	}

	if ctx.Err() != nil {
		result.Extraction = model.Extraction{Status: model.ExtractionStatusSkipped}
		result.Duration = time.Since(start).Milliseconds()
		return result
	}

	combined := combineText(result.Pages)
	extraction, err := r.extractor.Extract(ctx, combined)
	if err != nil {
		zap.L().Error("extraction failed",
			zap.String("seed", seed),
			zap.Error(err),
		)
		result.Extraction = model.Extraction{
			Status: model.ExtractionStatusFailed,
			Error:  err.Error(),
		}
	} else {
		result.Extraction = *extraction
	}

	result.Duration = time.Since(start).Milliseconds()
	return result
}

// pause sleeps the fixed site delay, or returns early when ctx is done.
func (r *Runner) pause(ctx context.Context) error {
	if r.siteDelay <= 0 {
		return nil
	}
	t := time.NewTimer(r.siteDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// combineText joins the text of every usable page with single spaces.
func combineText(pages []model.Page) string {
	var parts []string
	for _, p := range pages {
		if p.Usable() {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, " ")
}

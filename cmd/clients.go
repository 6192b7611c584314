package main

import (
	"time"

	"github.com/sells-group/sitefacts/internal/scrape"
)

// newDiscoverer builds the link discoverer from the loaded config.
func newDiscoverer() *scrape.Discoverer {
	return scrape.NewDiscoverer(cfg.Discover.Keywords, scrapeOptions()...)
}

// newPageScraper builds the page scraper from the loaded config.
func newPageScraper() *scrape.PageScraper {
	return scrape.NewPageScraper(cfg.Scrape.PageCharLimit, scrapeOptions()...)
}

// randomSeed seeds the model picker when no --seed was pinned.
func randomSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

func scrapeOptions() []scrape.Option {
	return []scrape.Option{
		scrape.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs) * time.Second),
		scrape.WithUserAgent(cfg.Scrape.UserAgent),
		scrape.WithMaxBodyKB(cfg.Scrape.MaxBodyKB),
	}
}

package model

import "time"

// SiteResult is everything the pipeline produced for one seed URL.
type SiteResult struct {
	URL        string     `json:"url"`
	Links      []string   `json:"links,omitempty"`
	Pages      []Page     `json:"pages,omitempty"`
	Extraction Extraction `json:"extraction"`
	Duration   int64      `json:"duration_ms"`
}

// Record returns the CSV row for this site: URL plus extracted details.
// Failed sites produce a row with empty details, never a missing row.
func (r SiteResult) Record() []string {
	return []string{r.URL, r.Extraction.Details}
}

// RunSummary aggregates the results of a full pipeline run.
type RunSummary struct {
	RunID       string       `json:"run_id"`
	Results     []SiteResult `json:"results"`
	StartedAt   time.Time    `json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at"`
	Sites       int          `json:"sites"`
	Extracted   int          `json:"extracted"`
	Failed      int          `json:"failed"`
	TotalTokens int          `json:"total_tokens"`
	TotalCost   float64      `json:"total_cost"`
}

package model

// PageStatus represents the outcome of scraping a single page.
type PageStatus string

const (
	PageStatusOK     PageStatus = "ok"
	PageStatusFailed PageStatus = "failed"
	PageStatusEmpty  PageStatus = "empty"
)

// FailReason classifies why a fetch produced no usable text.
type FailReason string

const (
	FailNone          FailReason = ""
	FailRequestFailed FailReason = "request_failed"
	FailHTTPStatus    FailReason = "http_status"
	FailBlocked       FailReason = "blocked"
	FailReadFailed    FailReason = "read_failed"
	FailParseFailed   FailReason = "parse_failed"
)

// Page is the scraped text of one URL, or the reason there is none.
type Page struct {
	URL        string     `json:"url"`
	Text       string     `json:"text,omitempty"`
	Status     PageStatus `json:"status"`
	FailReason FailReason `json:"fail_reason,omitempty"`
	StatusCode int        `json:"status_code,omitempty"`
}

// Usable returns true if the page carries text worth sending to a model.
func (p Page) Usable() bool {
	return p.Status == PageStatusOK && p.Text != ""
}

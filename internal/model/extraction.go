package model

// ExtractionStatus represents the outcome of the model call for one site.
type ExtractionStatus string

const (
	ExtractionStatusOK      ExtractionStatus = "ok"
	ExtractionStatusFailed  ExtractionStatus = "failed"
	ExtractionStatusSkipped ExtractionStatus = "skipped"
)

// Extraction holds the raw details returned by the model for one site.
// Details is stored exactly as the model produced it (after trimming);
// downstream consumers decide how much to trust the CSV shape.
type Extraction struct {
	Details string           `json:"details,omitempty"`
	Model   string           `json:"model,omitempty"`
	Status  ExtractionStatus `json:"status"`
	Error   string           `json:"error,omitempty"`
	Usage   TokenUsage       `json:"usage"`
}

// TokenUsage tracks token consumption.
type TokenUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Cost         float64 `json:"cost"`
}

// Add merges token usage from another instance.
func (t *TokenUsage) Add(other TokenUsage) {
	t.InputTokens += other.InputTokens
	t.OutputTokens += other.OutputTokens
	t.Cost += other.Cost
}

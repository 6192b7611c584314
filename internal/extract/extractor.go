package extract

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sitefacts/internal/model"
	"github.com/sells-group/sitefacts/pkg/anthropic"
)

const defaultMaxTokens = 1024

// Extractor runs the six-question extraction against an Anthropic model.
type Extractor struct {
	client    anthropic.Client
	picker    ModelPicker
	maxTokens int64
}

// New creates an Extractor. The picker decides which model each call uses.
func New(client anthropic.Client, picker ModelPicker, maxTokens int64) *Extractor {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Extractor{
		client:    client,
		picker:    picker,
		maxTokens: maxTokens,
	}
}

// Extract sends the combined site text to a picked model and returns the
// trimmed response as an Extraction. Empty input text is allowed and is not
// an error by itself; the model is still asked and will answer
// "Not Available" throughout.
func (e *Extractor) Extract(ctx context.Context, text string) (*model.Extraction, error) {
	picked := e.picker()
	if picked == "" {
		return nil, eris.New("extract: no model available")
	}

	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     picked,
		MaxTokens: e.maxTokens,
		Messages: []anthropic.Message{
			{Role: "user", Content: BuildPrompt(text)},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "extract: create message")
	}

	details := strings.TrimSpace(resp.Text())
	if details == "" {
		return nil, eris.Errorf("extract: model %s returned no text content", picked)
	}

	resp.Usage.LogCost(picked, "extract")

	// The details are stored as the model produced them; the shape check
	// only makes drift from the requested CSV format visible in the logs.
	if !CheckCSVShape(details) {
		zap.L().Warn("extraction does not look like two-row CSV",
			zap.String("model", picked),
			zap.Int("length", len(details)),
		)
	}

	return &model.Extraction{
		Details: details,
		Model:   picked,
		Status:  model.ExtractionStatusOK,
		Usage: model.TokenUsage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
			Cost:         resp.Usage.EstimateCost(picked),
		},
	}, nil
}

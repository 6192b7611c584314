package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/sitefacts/internal/model"
)

// --- Discoverer mock ---

type mockDiscoverer struct {
	mock.Mock
}

func (m *mockDiscoverer) Discover(ctx context.Context, seedURL string) ([]string, error) {
	args := m.Called(ctx, seedURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Scraper mock ---

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Scrape(ctx context.Context, targetURL string) model.Page {
	args := m.Called(ctx, targetURL)
	return args.Get(0).(model.Page)
}

// --- Extractor mock ---

type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) Extract(ctx context.Context, text string) (*model.Extraction, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Extraction), args.Error(1)
}

func okPage(url, text string) model.Page {
	return model.Page{URL: url, Text: text, Status: model.PageStatusOK}
}

func failedPage(url string, reason model.FailReason) model.Page {
	return model.Page{URL: url, Status: model.PageStatusFailed, FailReason: reason}
}

func okExtraction(details, modelID string) *model.Extraction {
	return &model.Extraction{
		Details: details,
		Model:   modelID,
		Status:  model.ExtractionStatusOK,
		Usage:   model.TokenUsage{InputTokens: 100, OutputTokens: 50, Cost: 0.001},
	}
}

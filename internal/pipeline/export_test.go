package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitefacts/internal/model"
)

func TestWriteCSV_OneRowPerSite(t *testing.T) {
	results := []model.SiteResult{
		{
			URL: "https://example.com",
			Extraction: model.Extraction{
				Details: "\"Q1\",\"Q2\"\n\"A1\",\"A2\"",
				Status:  model.ExtractionStatusOK,
			},
		},
		{
			URL:        "https://down.example",
			Extraction: model.Extraction{Status: model.ExtractionStatusFailed, Error: "overloaded"},
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(results, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3) // header + one row per site
	assert.Equal(t, []string{"URL", "Extracted Details"}, rows[0])
	assert.Equal(t, "https://example.com", rows[1][0])
	assert.Contains(t, rows[1][1], "\"A1\"")
	// Failed extraction still yields a row, with empty details.
	assert.Equal(t, []string{"https://down.example", ""}, rows[2])
}

func TestWriteCSV_EmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "URL,Extracted Details\n", string(data))
}

func TestWriteCSV_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	require.NoError(t, WriteCSV([]model.SiteResult{{URL: "https://a.example"}}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.True(t, strings.HasPrefix(string(data), "URL,Extracted Details\n"))
}

func TestWriteJSON(t *testing.T) {
	summary := &model.RunSummary{
		RunID:      "run-1",
		StartedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
		Sites:      1,
		Extracted:  1,
		Results: []model.SiteResult{
			{URL: "https://example.com", Extraction: model.Extraction{Status: model.ExtractionStatusOK}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(summary, &buf))

	var decoded model.RunSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	require.Len(t, decoded.Results, 1)
	assert.Equal(t, "https://example.com", decoded.Results[0].URL)
}

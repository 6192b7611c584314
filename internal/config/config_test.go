package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Len(t, cfg.Seeds, 6)
	assert.Equal(t, "https://lenovo.com", cfg.Seeds[0])
	assert.Equal(t, "https://www.americanexpress.com", cfg.Seeds[5])
	assert.Len(t, cfg.Discover.Keywords, 9)
	assert.Contains(t, cfg.Discover.Keywords, "about")
	assert.Contains(t, cfg.Discover.Keywords, "Vehicles")
	assert.Equal(t, 10, cfg.Scrape.TimeoutSecs)
	assert.Equal(t, 512, cfg.Scrape.MaxBodyKB)
	assert.Equal(t, 1000, cfg.Scrape.PageCharLimit)
	assert.Len(t, cfg.Anthropic.Models, 3)
	assert.Equal(t, 1024, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 5, cfg.Pipeline.SiteDelaySecs)
	assert.Equal(t, "extracted_company_details.csv", cfg.Pipeline.Output)
	assert.Equal(t, "csv", cfg.Pipeline.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
seeds:
  - https://example.com
scrape:
  timeout_secs: 30
pipeline:
  site_delay_secs: 1
  output: out.csv
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com"}, cfg.Seeds)
	assert.Equal(t, 30, cfg.Scrape.TimeoutSecs)
	assert.Equal(t, 1, cfg.Pipeline.SiteDelaySecs)
	assert.Equal(t, "out.csv", cfg.Pipeline.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, 1000, cfg.Scrape.PageCharLimit)
	assert.Len(t, cfg.Discover.Keywords, 9)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
log:
  level: debug
pipeline:
  output: file.csv
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("SITEFACTS_LOG_LEVEL", "warn")
	t.Setenv("SITEFACTS_PIPELINE_OUTPUT", "env.csv")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "env.csv", cfg.Pipeline.Output)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("SITEFACTS_ANTHROPIC_KEY", "sk-ant-test")
	t.Setenv("SITEFACTS_SCRAPE_TIMEOUT_SECS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-test", cfg.Anthropic.Key)
	assert.Equal(t, 3, cfg.Scrape.TimeoutSecs)
}

func TestValidateDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidateBadValues(t *testing.T) {
	cfg := &Config{}
	cfg.Pipeline.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeds must not be empty")
	assert.Contains(t, err.Error(), "scrape.timeout_secs must be > 0")
	assert.Contains(t, err.Error(), "pipeline.format must be csv or json")
	assert.Contains(t, err.Error(), "anthropic.models must not be empty")
}

func TestValidateNegativeDelay(t *testing.T) {
	cfg := &Config{
		Seeds: []string{"https://example.com"},
		Scrape: ScrapeConfig{
			TimeoutSecs:   10,
			PageCharLimit: 1000,
		},
		Anthropic: AnthropicConfig{Models: []string{"m"}},
		Pipeline:  PipelineConfig{SiteDelaySecs: -1, Format: "csv"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline.site_delay_secs must be >= 0")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

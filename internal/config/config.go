package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Seeds     []string        `yaml:"seeds" mapstructure:"seeds"`
	Discover  DiscoverConfig  `yaml:"discover" mapstructure:"discover"`
	Scrape    ScrapeConfig    `yaml:"scrape" mapstructure:"scrape"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DiscoverConfig configures homepage link discovery.
type DiscoverConfig struct {
	Keywords []string `yaml:"keywords" mapstructure:"keywords"`
}

// ScrapeConfig configures page fetching and text cleanup.
type ScrapeConfig struct {
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxBodyKB     int    `yaml:"max_body_kb" mapstructure:"max_body_kb"`
	PageCharLimit int    `yaml:"page_char_limit" mapstructure:"page_char_limit"`
	UserAgent     string `yaml:"user_agent" mapstructure:"user_agent"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string   `yaml:"key" mapstructure:"key"`
	Models    []string `yaml:"models" mapstructure:"models"`
	MaxTokens int      `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// PipelineConfig configures the site-by-site run loop and its output.
type PipelineConfig struct {
	SiteDelaySecs int    `yaml:"site_delay_secs" mapstructure:"site_delay_secs"`
	Output        string `yaml:"output" mapstructure:"output"`
	Format        string `yaml:"format" mapstructure:"format"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SITEFACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("seeds", []string{
		"https://lenovo.com",
		"https://www.gsk.com",
		"https://www.tcs.com",
		"https://www.ford.com",
		"https://www.siemens-energy.com",
		"https://www.americanexpress.com",
	})
	v.SetDefault("discover.keywords", []string{
		"home", "about", "contact", "services", "products",
		"Contact Us", "About Lenovo", "Investors", "Vehicles",
	})
	v.SetDefault("scrape.timeout_secs", 10)
	v.SetDefault("scrape.max_body_kb", 512)
	v.SetDefault("scrape.page_char_limit", 1000)
	v.SetDefault("scrape.user_agent", "Mozilla/5.0 (compatible; SitefactsBot/1.0)")
	v.SetDefault("anthropic.models", []string{
		"claude-haiku-4-5-20251001",
		"claude-sonnet-4-5-20250929",
		"claude-opus-4-6",
	})
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("pipeline.site_delay_secs", 5)
	v.SetDefault("pipeline.output", "extracted_company_details.csv")
	v.SetDefault("pipeline.format", "csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the configuration can drive a full run.
func (c *Config) Validate() error {
	var problems []string
	if len(c.Seeds) == 0 {
		problems = append(problems, "seeds must not be empty")
	}
	if c.Scrape.TimeoutSecs <= 0 {
		problems = append(problems, "scrape.timeout_secs must be > 0")
	}
	if c.Scrape.PageCharLimit <= 0 {
		problems = append(problems, "scrape.page_char_limit must be > 0")
	}
	if c.Pipeline.SiteDelaySecs < 0 {
		problems = append(problems, "pipeline.site_delay_secs must be >= 0")
	}
	if c.Pipeline.Format != "csv" && c.Pipeline.Format != "json" {
		problems = append(problems, "pipeline.format must be csv or json")
	}
	if len(c.Anthropic.Models) == 0 {
		problems = append(problems, "anthropic.models must not be empty")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

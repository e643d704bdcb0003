package config

import (
	"crypto-sentiment-analyzer/pkg/config"
)

// Models holds model boundary configuration.
type Models struct {
	// Backend selects the model implementation: "onnx" runs the local
	// transformer pipelines, "lexicon" uses the VADER fallback.
	Backend        string `mapstructure:"backend"`
	Dir            string `mapstructure:"dir"`
	SentimentModel string `mapstructure:"sentiment_model"`
	NERModel       string `mapstructure:"ner_model"`
	MaxTokens      int    `mapstructure:"max_tokens"`
}

// Impact holds impact scoring configuration for both encodings.
type Impact struct {
	Mode                  string  `mapstructure:"mode"`
	SentimentWeight       float64 `mapstructure:"sentiment_weight"`
	EntityWeight          float64 `mapstructure:"entity_weight"`
	KeywordWeight         float64 `mapstructure:"keyword_weight"`
	HighThreshold         float64 `mapstructure:"high_threshold"`
	MediumThreshold       float64 `mapstructure:"medium_threshold"`
	PointsHighThreshold   int     `mapstructure:"points_high_threshold"`
	PointsMediumThreshold int     `mapstructure:"points_medium_threshold"`
}

// Analyzer holds analysis pipeline configuration.
type Analyzer struct {
	MaxTextLength      int    `mapstructure:"max_text_length"`
	MaxBatchSize       int    `mapstructure:"max_batch_size"`
	MaxKeywords        int    `mapstructure:"max_keywords"`
	Impact             Impact `mapstructure:"impact"`
	CacheTTL           string `mapstructure:"cache_ttl"`
	RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
}

// Feeds holds the RSS feed watcher configuration. The watcher is disabled
// when no URLs are configured.
type Feeds struct {
	URLs     []string `mapstructure:"urls"`
	Schedule string   `mapstructure:"schedule"`
	MaxItems int      `mapstructure:"max_items"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	Telegram config.Telegram `mapstructure:"telegram"`
	Models   Models          `mapstructure:"models"`
	Analyzer Analyzer        `mapstructure:"analyzer"`
	Feeds    Feeds           `mapstructure:"feeds"`
}

// Load loads the analyzer configuration from the given path and applies
// defaults for unset pipeline settings.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}

	if cfg.Models.Backend == "" {
		cfg.Models.Backend = "onnx"
	}
	if cfg.Models.MaxTokens <= 0 {
		cfg.Models.MaxTokens = 512
	}
	if cfg.Analyzer.MaxTextLength <= 0 {
		cfg.Analyzer.MaxTextLength = 10000
	}
	if cfg.Analyzer.MaxBatchSize <= 0 {
		cfg.Analyzer.MaxBatchSize = 100
	}
	if cfg.Analyzer.MaxKeywords <= 0 {
		cfg.Analyzer.MaxKeywords = 5
	}
	if cfg.Analyzer.Impact.Mode == "" {
		cfg.Analyzer.Impact.Mode = "weighted"
	}
	if cfg.Analyzer.Impact.SentimentWeight == 0 {
		cfg.Analyzer.Impact.SentimentWeight = 0.4
	}
	if cfg.Analyzer.Impact.EntityWeight == 0 {
		cfg.Analyzer.Impact.EntityWeight = 0.3
	}
	if cfg.Analyzer.Impact.KeywordWeight == 0 {
		cfg.Analyzer.Impact.KeywordWeight = 0.3
	}
	if cfg.Analyzer.Impact.HighThreshold == 0 {
		cfg.Analyzer.Impact.HighThreshold = 0.7
	}
	if cfg.Analyzer.Impact.MediumThreshold == 0 {
		cfg.Analyzer.Impact.MediumThreshold = 0.4
	}
	if cfg.Analyzer.Impact.PointsHighThreshold == 0 {
		cfg.Analyzer.Impact.PointsHighThreshold = 5
	}
	if cfg.Analyzer.Impact.PointsMediumThreshold == 0 {
		cfg.Analyzer.Impact.PointsMediumThreshold = 2
	}
	if cfg.Feeds.Schedule == "" {
		cfg.Feeds.Schedule = "@every 10m"
	}
	if cfg.Feeds.MaxItems <= 0 {
		cfg.Feeds.MaxItems = 20
	}

	return &cfg, nil
}

package model

import "time"

// Config is the complete runtime configuration, injected into the pipeline at
// construction time so tests can point it at mock endpoints.
type Config struct {
	Services ServicesConfig `yaml:"services" mapstructure:"services"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
}

// ServicesConfig holds the three component endpoints and their timeout
// budgets. Each stage has only its own per-call timeout; there is no overall
// pipeline deadline.
type ServicesConfig struct {
	SentimentURL string `yaml:"sentiment_url" mapstructure:"sentiment_url"`
	HateCheckURL string `yaml:"hatecheck_url" mapstructure:"hatecheck_url"`
	FactCheckURL string `yaml:"factcheck_url" mapstructure:"factcheck_url"`

	ProbeTimeout     time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
	SentimentTimeout time.Duration `yaml:"sentiment_timeout" mapstructure:"sentiment_timeout"`
	HateCheckTimeout time.Duration `yaml:"hatecheck_timeout" mapstructure:"hatecheck_timeout"`
	FactCheckTimeout time.Duration `yaml:"factcheck_timeout" mapstructure:"factcheck_timeout"`
}

// AnalysisConfig holds the request parameters forwarded to the components.
type AnalysisConfig struct {
	SentimentModel string `yaml:"sentiment_model" mapstructure:"sentiment_model"`
	BatchSize      int    `yaml:"batch_size" mapstructure:"batch_size"`
	Lang           string `yaml:"lang" mapstructure:"lang"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// LLMConfig configures the optional post-pipeline summary.
type LLMConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the defaults matching the local docker setup
// (duui-sentiment, duui-hatecheck, duui-factchecking).
func DefaultConfig() *Config {
	return &Config{
		Services: ServicesConfig{
			SentimentURL:     "http://localhost:9001",
			HateCheckURL:     "http://localhost:9002",
			FactCheckURL:     "http://localhost:9003",
			ProbeTimeout:     5 * time.Second,
			SentimentTimeout: 180 * time.Second,
			HateCheckTimeout: 60 * time.Second,
			FactCheckTimeout: 300 * time.Second,
		},
		Analysis: AnalysisConfig{
			SentimentModel: "cardiffnlp/twitter-xlm-roberta-base-sentiment",
			BatchSize:      32,
			Lang:           "en",
		},
		LLM: LLMConfig{
			Enabled:   false,
			Model:     "gpt-4o-mini",
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}

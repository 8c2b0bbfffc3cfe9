package model

// Config holds the full beliefctl configuration, loadable from YAML,
// environment variables (INDRA_*) and CLI flags
type Config struct {
	Encoder     EncoderConfig     `yaml:"encoder" mapstructure:"encoder"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// EncoderConfig configures the statement feature encoding
type EncoderConfig struct {
	Sources       []string `yaml:"sources" mapstructure:"sources"`                 // Source vocabulary, in column order
	UseType       bool     `yaml:"use_type" mapstructure:"use_type"`               // Append statement-type column
	UseNumMembers bool     `yaml:"use_num_members" mapstructure:"use_num_members"` // Accepted but contributes no column
}

// ConcurrencyConfig configures worker pools
type ConcurrencyConfig struct {
	EncodeWorkers int `yaml:"encode_workers" mapstructure:"encode_workers"`
}

// CacheConfig configures corpus caching
type CacheConfig struct {
	Enabled    bool `yaml:"enabled" mapstructure:"enabled"`
	TTLMinutes int  `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LLMConfig configures the optional report summarizer
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL           string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout           int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	StrictSource      bool    `yaml:"strict_source" mapstructure:"strict_source"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Encoder: EncoderConfig{
			Sources:       KnownSourceAPIs(),
			UseType:       false,
			UseNumMembers: false,
		},
		Concurrency: ConcurrencyConfig{
			EncodeWorkers: 4,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 60,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Timeout:           30,
			MaxTokens:         1000,
			StrictSource:      true,
			RequestsPerSecond: 1,
			Burst:             2,
		},
	}
}

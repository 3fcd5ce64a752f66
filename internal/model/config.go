package model

import "time"

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8000"
	Addr string `yaml:"addr" mapstructure:"addr"`

	// ReadTimeout / WriteTimeout bound a single request exchange
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`

	// ShutdownTimeout bounds the graceful drain on SIGINT/SIGTERM
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// RateLimit is requests per second per client host (0 disables)
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`

	// RateBurst is the per-client burst allowance
	RateBurst int `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LLMConfig configures the optional AI collaborator. An empty Provider
// disables the AI path without error; the adjudicator then runs its
// deterministic fallback unconditionally.
type LLMConfig struct {
	// Provider name: "openai", "ollama", ""
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for OpenAI (from OPENAI_API_KEY, never the config file)
	APIKey string `yaml:"-" mapstructure:"-"`

	// BaseURL for custom endpoints (e.g. Ollama)
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout for one collaborator call, in seconds. Timeouts count as
	// AI failures and trigger the fallback rule.
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// CacheConfig configures in-memory memoization of adjudications. TTL of zero
// disables the cache entirely.
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       50,
			RateBurst:       100,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			TTL: 0, // Disabled by default
		},
	}
}

package llm

import (
	"fmt"
	"strings"

	"github.com/policyme/cortex/internal/model"
)

// NewProvider creates a new AI collaborator based on configuration. An empty
// provider name disables the AI path: the caller receives (nil, nil) and is
// expected to adjudicate with its deterministic fallback.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown AI provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config. Unset limits keep
// the package defaults.
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	config := DefaultConfig()
	config.Provider = modelConfig.Provider
	config.Model = modelConfig.Model
	config.APIKey = modelConfig.APIKey
	config.BaseURL = modelConfig.BaseURL
	if modelConfig.Timeout > 0 {
		config.Timeout = modelConfig.Timeout
	}
	if modelConfig.MaxTokens > 0 {
		config.MaxTokens = modelConfig.MaxTokens
	}
	return config
}

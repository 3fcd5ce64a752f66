package llm

import (
	"testing"

	"github.com/policyme/cortex/internal/model"
)

func TestNewProvider(t *testing.T) {
	t.Run("empty disables the AI path", func(t *testing.T) {
		provider, err := NewProvider(Config{Provider: ""})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if provider != nil {
			t.Errorf("Expected nil provider, got %T", provider)
		}
	})

	t.Run("openai", func(t *testing.T) {
		provider, err := NewProvider(Config{Provider: "OpenAI", APIKey: "test-key"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if provider.Name() != "openai" {
			t.Errorf("Expected openai, got %s", provider.Name())
		}
	})

	t.Run("openai without key", func(t *testing.T) {
		if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
			t.Error("Expected error without API key")
		}
	})

	t.Run("ollama", func(t *testing.T) {
		provider, err := NewProvider(Config{Provider: "ollama"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if provider.Name() != "ollama" {
			t.Errorf("Expected ollama, got %s", provider.Name())
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewProvider(Config{Provider: "skynet"}); err == nil {
			t.Error("Expected error for unknown provider")
		}
	})
}

func TestConfigFromModel(t *testing.T) {
	cfg := ConfigFromModel(model.LLMConfig{
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		APIKey:    "test-key",
		BaseURL:   "http://localhost:9999",
		Timeout:   15,
		MaxTokens: 500,
	})

	if cfg.Provider != "openai" || cfg.Model != "gpt-4o-mini" || cfg.APIKey != "test-key" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Timeout != 15 || cfg.MaxTokens != 500 {
		t.Errorf("Unexpected limits: %+v", cfg)
	}
}

func TestConfigFromModel_UnsetLimitsKeepDefaults(t *testing.T) {
	cfg := ConfigFromModel(model.LLMConfig{Provider: "ollama"})
	defaults := DefaultConfig()

	if cfg.Timeout != defaults.Timeout {
		t.Errorf("Expected default timeout %d, got %d", defaults.Timeout, cfg.Timeout)
	}
	if cfg.MaxTokens != defaults.MaxTokens {
		t.Errorf("Expected default max tokens %d, got %d", defaults.MaxTokens, cfg.MaxTokens)
	}
}

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/policyme/cortex/internal/model"
)

func TestOpenAIProvider_Complete_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header Bearer test-key, got %s", r.Header.Get("Authorization"))
		}

		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: `{"validity": "valid", "recommendation": "auto_approve"}`,
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{
				TotalTokens: 100,
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	config := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-4o-mini",
		Timeout: 5,
	}
	provider, err := NewOpenAIProvider(config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Complete(context.Background(), CompletionRequest{
		Prompt: "Analyze this claim",
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if !strings.Contains(resp.Text, `"validity"`) {
		t.Errorf("Unexpected completion text: %s", resp.Text)
	}
	if resp.TokensUsed != 100 {
		t.Errorf("Expected 100 tokens, got %d", resp.TokensUsed)
	}
}

func TestOpenAIProvider_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "Internal Server Error", "type": "server_error"}}`))
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Complete(context.Background(), CompletionRequest{Prompt: "Analyze"})
	if err == nil {
		t.Fatal("Expected error from failing API")
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Fatal("Expected error without API key")
	}
}

func TestBuildPrompt(t *testing.T) {
	incident := model.IncidentReport{
		Location:       "789 Elm Drive, Austin",
		DateTime:       "2024-01-06T22:00:00Z",
		Description:    "Vehicle reported stolen from the driveway sometime during the night.",
		Injuries:       false,
		PropertyDamage: false,
		ClaimedAmount:  32000,
	}
	assessment := model.FraudAssessment{
		Score:      30,
		RiskLevel:  model.RiskMedium,
		Indicators: []string{"High-risk incident type", "Weekend incident"},
		Confidence: 0.75,
	}

	prompt := BuildPrompt(incident, assessment)

	for _, want := range []string{
		"789 Elm Drive, Austin",
		"2024-01-06T22:00:00Z",
		"Vehicle reported stolen",
		"$32000",
		"30/100",
		"Medium risk",
		"High-risk incident type, Weekend incident",
		`"estimated_payout"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

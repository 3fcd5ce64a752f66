package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaProvider_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if req.Stream {
			t.Error("Expected stream=false")
		}
		if req.Prompt == "" {
			t.Error("Expected a prompt")
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:           "llama3.2",
			Response:        "```json\n{\"validity\": \"valid\"}\n```",
			Done:            true,
			PromptEvalCount: 50,
			EvalCount:       25,
		})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := provider.Complete(context.Background(), CompletionRequest{Prompt: "Analyze this claim"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if resp.Text != "```json\n{\"validity\": \"valid\"}\n```" {
		t.Errorf("Unexpected text: %q", resp.Text)
	}
	if resp.TokensUsed != 75 {
		t.Errorf("Expected 75 tokens, got %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	provider, err := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	_, err = provider.Complete(context.Background(), CompletionRequest{Prompt: "Analyze"})
	if err == nil {
		t.Fatal("Expected error from failing API")
	}
}

func TestOllamaProvider_IsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	provider, _ := NewOllamaProvider(Config{BaseURL: server.URL, Timeout: 5})
	if !provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be available")
	}

	server.Close()
	if provider.IsAvailable(context.Background()) {
		t.Error("Expected provider to be unavailable after server close")
	}
}

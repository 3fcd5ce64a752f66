package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/policyme/cortex/internal/model"
)

// Provider defines the interface for AI collaborators consulted during claim
// adjudication.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt and returns the raw completion text
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for one completion call.
type CompletionRequest struct {
	// Prompt is the user-role message
	Prompt string

	// System is the system-role instruction (if empty, use default)
	System string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// CompletionResponse contains the collaborator's raw output.
type CompletionResponse struct {
	// Text is the completion text, whitespace-trimmed
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds AI collaborator configuration.
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// DefaultSystemPrompt frames the collaborator as a claims adjuster.
const DefaultSystemPrompt = "You are an insurance claims adjuster AI. You respond with strictly formatted JSON and nothing else."

// BuildPrompt constructs the adjudication prompt embedding every incident
// field and the fraud assessment. The collaborator is asked for a strict
// JSON object so the response survives machine parsing.
func BuildPrompt(incident model.IncidentReport, assessment model.FraudAssessment) string {
	return fmt.Sprintf(`You are an insurance claims adjuster AI. Analyze this claim:

Incident Details:
- Location: %s
- Date/Time: %s
- Description: %s
- Injuries Reported: %t
- Property Damage: %t
- Claimed Amount: $%v

Fraud Risk Score: %v/100 (%s risk)
Fraud Indicators: %s

Provide your analysis in this exact JSON format:
{
    "validity": "valid" or "questionable" or "invalid",
    "recommendation": "auto_approve" or "manual_review" or "reject",
    "estimated_payout": numeric value,
    "red_flags": ["flag1", "flag2"],
    "reasoning": "brief explanation"
}

Be concise and objective.`,
		incident.Location,
		incident.DateTime,
		incident.Description,
		incident.Injuries,
		incident.PropertyDamage,
		incident.ClaimedAmount,
		assessment.Score,
		assessment.RiskLevel,
		strings.Join(assessment.Indicators, ", "),
	)
}

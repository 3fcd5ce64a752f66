// Package adjudicate turns an incident and its fraud assessment into a
// validity/recommendation/payout judgment. It consults an optional AI
// collaborator and falls back to a deterministic threshold rule whenever the
// collaborator is absent or fails; it never returns an error to the caller.
package adjudicate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/policyme/cortex/internal/cache"
	"github.com/policyme/cortex/internal/llm"
	"github.com/policyme/cortex/internal/model"
)

// Fallback thresholds.
const (
	reviewThreshold = 40 // above this, validity needs review
	payoutThreshold = 60 // above this, the payout factor tightens
)

// Payout factors applied to the claimed amount by the fallback rule.
var (
	payoutFactorNormal  = decimal.NewFromFloat(0.85)
	payoutFactorReduced = decimal.NewFromFloat(0.6)
)

const fallbackOnlyReasoning = "Automated analysis based on rule-based system. Configure an AI provider for advanced insights."

// Adjudicator produces AdjudicationResults. The AI collaborator is an
// injected capability; a nil provider means the deterministic fallback runs
// unconditionally.
type Adjudicator struct {
	provider llm.Provider
	logger   *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

// New creates an adjudicator around the given collaborator (may be nil).
func New(provider llm.Provider, logger *slog.Logger) *Adjudicator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adjudicator{
		provider: provider,
		logger:   logger,
	}
}

// WithCache enables memoization of AI adjudications: an identical incident
// and assessment seen within the TTL reuses the previous judgment instead of
// re-consulting the collaborator.
func (a *Adjudicator) WithCache(c cache.Cache, ttl time.Duration) *Adjudicator {
	a.cache = c
	a.cacheTTL = ttl
	return a
}

// AIConfigured reports whether an AI collaborator is wired in.
func (a *Adjudicator) AIConfigured() bool {
	return a.provider != nil
}

// callOutcome is the explicit result of a single collaborator attempt. The
// adjudicator branches on it rather than on a caught fault.
type callOutcome struct {
	text string
	err  error
}

// Adjudicate judges one incident. Total: every path yields a complete
// result, and collaborator failures are absorbed into the fallback rule with
// the cause recorded in the reasoning text.
func (a *Adjudicator) Adjudicate(ctx context.Context, incident model.IncidentReport, assessment model.FraudAssessment) model.AdjudicationResult {
	if a.provider == nil {
		return fallback(incident, assessment, fallbackOnlyReasoning)
	}

	key, cacheable := a.cacheKey(incident, assessment)
	if cacheable {
		if cached, ok := a.cache.Get(key); ok {
			var result model.AdjudicationResult
			if err := json.Unmarshal(cached, &result); err == nil {
				return result
			}
			_ = a.cache.Delete(key)
		}
	}

	outcome := a.call(ctx, incident, assessment)
	if outcome.err != nil {
		a.logger.Warn("AI adjudication failed, using fallback",
			"provider", a.provider.Name(),
			"error", outcome.err)
		return fallback(incident, assessment, "AI analysis fallback due to error: "+outcome.err.Error())
	}

	result, err := parseAdjudication(outcome.text, incident, assessment)
	if err != nil {
		a.logger.Warn("AI response unparseable, using fallback",
			"provider", a.provider.Name(),
			"error", err)
		return fallback(incident, assessment, "AI analysis fallback due to error: "+err.Error())
	}

	if cacheable {
		if encoded, err := json.Marshal(result); err == nil {
			_ = a.cache.Set(key, encoded, a.cacheTTL)
		}
	}

	return result
}

// call makes exactly one attempt against the collaborator. No retries.
func (a *Adjudicator) call(ctx context.Context, incident model.IncidentReport, assessment model.FraudAssessment) callOutcome {
	resp, err := a.provider.Complete(ctx, llm.CompletionRequest{
		Prompt: llm.BuildPrompt(incident, assessment),
	})
	if err != nil {
		return callOutcome{err: err}
	}
	return callOutcome{text: resp.Text}
}

func (a *Adjudicator) cacheKey(incident model.IncidentReport, assessment model.FraudAssessment) (string, bool) {
	if a.cache == nil || a.cacheTTL <= 0 {
		return "", false
	}

	payload, err := json.Marshal(struct {
		Incident   model.IncidentReport  `json:"incident"`
		Assessment model.FraudAssessment `json:"assessment"`
	}{incident, assessment})
	if err != nil {
		return "", false
	}
	return cache.Key(payload), true
}

// fallback is the deterministic threshold rule used when no collaborator is
// configured and when the collaborator fails.
func fallback(incident model.IncidentReport, assessment model.FraudAssessment, reasoning string) model.AdjudicationResult {
	validity := model.ValidityValid
	recommendation := model.RecommendAutoApprove
	if assessment.Score > reviewThreshold {
		validity = model.ValidityNeedsReview
		recommendation = model.RecommendManualReview
	}

	factor := payoutFactorNormal
	if assessment.Score > payoutThreshold {
		factor = payoutFactorReduced
	}
	payout, _ := decimal.NewFromFloat(incident.ClaimedAmount).Mul(factor).Round(2).Float64()

	return model.AdjudicationResult{
		Validity:        validity,
		Recommendation:  recommendation,
		EstimatedPayout: payout,
		RedFlags:        assessment.Indicators,
		Reasoning:       reasoning,
	}
}

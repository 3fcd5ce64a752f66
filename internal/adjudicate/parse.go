package adjudicate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/policyme/cortex/internal/model"
)

const defaultReasoning = "AI analysis completed"

// aiAdjudication is the lenient carrier for the collaborator's JSON output.
// Pointer fields distinguish absent from zero so defaults apply per field.
type aiAdjudication struct {
	Validity        *string  `json:"validity"`
	Recommendation  *string  `json:"recommendation"`
	EstimatedPayout *float64 `json:"estimated_payout"`
	RedFlags        []string `json:"red_flags"`
	Reasoning       *string  `json:"reasoning"`
}

// parseAdjudication decodes the collaborator's response. Strict first: the
// whole cleaned body must decode as one JSON object. Lenient second: if the
// strict decode trips over a mistyped field, each field is decoded
// individually and only the bad ones fall back to their documented defaults.
// Only a body that is not a JSON object at all is an error.
func parseAdjudication(raw string, incident model.IncidentReport, assessment model.FraudAssessment) (model.AdjudicationResult, error) {
	cleaned := stripFences(raw)

	var parsed aiAdjudication
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		var fields map[string]json.RawMessage
		if mapErr := json.Unmarshal([]byte(cleaned), &fields); mapErr != nil {
			return model.AdjudicationResult{}, fmt.Errorf("parse AI response: %w", err)
		}
		parsed = decodeFields(fields)
	}

	result := model.AdjudicationResult{
		Validity:        model.ValidityNeedsReview,
		Recommendation:  model.RecommendManualReview,
		EstimatedPayout: incident.ClaimedAmount * 0.8,
		RedFlags:        assessment.Indicators,
		Reasoning:       defaultReasoning,
	}

	if parsed.Validity != nil {
		result.Validity = model.Validity(*parsed.Validity)
	}
	if parsed.Recommendation != nil {
		result.Recommendation = model.Recommendation(*parsed.Recommendation)
	}
	if parsed.EstimatedPayout != nil {
		result.EstimatedPayout = *parsed.EstimatedPayout
	}
	if parsed.RedFlags != nil {
		result.RedFlags = parsed.RedFlags
	}
	if parsed.Reasoning != nil {
		result.Reasoning = *parsed.Reasoning
	}

	return result, nil
}

// decodeFields retries each field in isolation, dropping the ones that fail.
func decodeFields(fields map[string]json.RawMessage) aiAdjudication {
	var parsed aiAdjudication

	if raw, ok := fields["validity"]; ok {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			parsed.Validity = &v
		}
	}
	if raw, ok := fields["recommendation"]; ok {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			parsed.Recommendation = &v
		}
	}
	if raw, ok := fields["estimated_payout"]; ok {
		var v float64
		if json.Unmarshal(raw, &v) == nil {
			parsed.EstimatedPayout = &v
		} else {
			// Some models quote numbers
			var s string
			if json.Unmarshal(raw, &s) == nil {
				if _, err := fmt.Sscanf(strings.TrimSpace(s), "%f", &v); err == nil {
					parsed.EstimatedPayout = &v
				}
			}
		}
	}
	if raw, ok := fields["red_flags"]; ok {
		var v []string
		if json.Unmarshal(raw, &v) == nil {
			parsed.RedFlags = v
		}
	}
	if raw, ok := fields["reasoning"]; ok {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			parsed.Reasoning = &v
		}
	}

	return parsed
}

// stripFences removes optional markdown code-fence wrapping. Accepts
// ```json ... ```, ``` ... ```, or a raw JSON body.
func stripFences(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}

	return strings.TrimSpace(s)
}

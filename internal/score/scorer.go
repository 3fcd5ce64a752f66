package score

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/policyme/cortex/internal/model"
)

// Tier boundaries and per-tier confidences.
const (
	mediumThreshold = 30
	highThreshold   = 60

	confidenceLow    = 0.85
	confidenceMedium = 0.75
	confidenceHigh   = 0.90
)

// highRiskKeywords flag incident types with elevated fraud rates.
var highRiskKeywords = []string{"stolen", "total loss", "fire", "flood"}

// Scorer computes the rule-based fraud assessment for an incident.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Assess evaluates every fraud rule against the incident and returns the
// combined assessment. It is a total function: malformed input degrades to
// skipped rules, never to an error.
func (s *Scorer) Assess(incident model.IncidentReport) model.FraudAssessment {
	var (
		total      float64
		indicators []string
	)

	add := func(points float64, indicator string, triggered bool) {
		if !triggered {
			return
		}
		total += points
		indicators = append(indicators, indicator)
	}

	// 1. High claimed amount relative to description
	add(s.checkClaimedAmount(incident))

	// 2. Vague or suspicious description (two mutually exclusive branches)
	add(s.checkDescription(incident))

	// 3. Weekend timing; skipped silently when the timestamp does not parse
	add(s.checkTiming(incident))

	// 4. Both injuries and property damage
	add(s.checkDamageTypes(incident))

	// 5. Location anomalies
	add(s.checkLocation(incident))

	total = math.Min(total, 100)

	level, confidence := riskLevel(total)

	return model.FraudAssessment{
		Score:      round2(total),
		RiskLevel:  level,
		Indicators: indicators,
		Confidence: confidence,
	}
}

// checkClaimedAmount flags unusually large claims (rule 1, +25).
func (s *Scorer) checkClaimedAmount(incident model.IncidentReport) (float64, string, bool) {
	return 25, "High claim amount", incident.ClaimedAmount > 50000
}

// checkDescription flags thin descriptions, or failing that, high-risk
// incident vocabulary (rule 2, +15 / +20). The branches are mutually
// exclusive: a short description only ever triggers the length branch.
func (s *Scorer) checkDescription(incident model.IncidentReport) (float64, string, bool) {
	// Lengths are in characters, not bytes; multibyte text counts the
	// same as ASCII.
	if utf8.RuneCountInString(incident.Description) < 50 {
		return 15, "Insufficient details", true
	}

	lower := strings.ToLower(incident.Description)
	for _, keyword := range highRiskKeywords {
		if strings.Contains(lower, keyword) {
			return 20, "High-risk incident type", true
		}
	}

	return 0, "", false
}

// checkTiming flags weekend incidents (rule 3, +10). Unparseable timestamps
// skip the rule without surfacing an error.
func (s *Scorer) checkTiming(incident model.IncidentReport) (float64, string, bool) {
	occurred, ok := parseIncidentTime(incident.DateTime)
	if !ok {
		return 0, "", false
	}

	weekday := occurred.Weekday()
	return 10, "Weekend incident", weekday == time.Saturday || weekday == time.Sunday
}

// checkDamageTypes flags claims reporting both injuries and property damage
// (rule 4, +15).
func (s *Scorer) checkDamageTypes(incident model.IncidentReport) (float64, string, bool) {
	return 15, "Multiple damage types", incident.Injuries && incident.PropertyDamage
}

// checkLocation flags missing or suspiciously short locations (rule 5, +10).
func (s *Scorer) checkLocation(incident model.IncidentReport) (float64, string, bool) {
	return 10, "Vague location", utf8.RuneCountInString(incident.Location) < 5
}

// incidentTimeLayouts are the ISO-8601 shapes accepted for DateTime. A
// trailing 'Z' is covered by RFC3339; the offset-less forms match what
// claimants actually send.
var incidentTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseIncidentTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range incidentTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// riskLevel maps a raw score to its tier and fixed confidence.
func riskLevel(score float64) (model.RiskLevel, float64) {
	switch {
	case score < mediumThreshold:
		return model.RiskLow, confidenceLow
	case score < highThreshold:
		return model.RiskMedium, confidenceMedium
	default:
		return model.RiskHigh, confidenceHigh
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

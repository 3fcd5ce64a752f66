package model

// RiskLevel classifies the fraud score into a tier.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// FraudAssessment is the scorer's output for one incident. It is derived
// entirely from the IncidentReport; there is no hidden state.
type FraudAssessment struct {
	Score      float64   `json:"score"`      // 0-100 inclusive
	RiskLevel  RiskLevel `json:"risk_level"` // tier for Score
	Indicators []string  `json:"indicators"` // triggered rules, in evaluation order
	Confidence float64   `json:"confidence"` // fixed per tier
}

// Validity is the adjudicator's judgment of whether a claim holds up.
type Validity string

const (
	ValidityValid        Validity = "valid"
	ValidityQuestionable Validity = "questionable"
	ValidityInvalid      Validity = "invalid"
	ValidityNeedsReview  Validity = "needs_review"
)

// Recommendation is the adjudicator's suggested handling for a claim.
type Recommendation string

const (
	RecommendAutoApprove  Recommendation = "auto_approve"
	RecommendManualReview Recommendation = "manual_review"
	RecommendReject       Recommendation = "reject"
)

// AdjudicationResult is the validity/recommendation/payout judgment for one
// incident, produced either by the AI collaborator or the fallback rule.
type AdjudicationResult struct {
	Validity        Validity       `json:"validity"`
	Recommendation  Recommendation `json:"recommendation"`
	EstimatedPayout float64        `json:"estimated_payout"`
	RedFlags        []string       `json:"red_flags"`
	Reasoning       string         `json:"reasoning"`
}

// ClaimStatus is the final disposition derived from the fraud score and the
// adjudication recommendation.
type ClaimStatus string

const (
	StatusApproved   ClaimStatus = "approved"
	StatusFlagged    ClaimStatus = "flagged"
	StatusProcessing ClaimStatus = "processing"
)

// ClaimAnalysis is the response body of POST /api/claims/analyze. Nothing in
// it persists beyond the request lifecycle.
type ClaimAnalysis struct {
	ClaimID    string             `json:"claim_id"`
	FraudScore FraudAssessment    `json:"fraud_score"`
	AIAnalysis AdjudicationResult `json:"ai_analysis"`
	Status     ClaimStatus        `json:"status"`
	CreatedAt  string             `json:"created_at"`
}

// RiskDistribution buckets claim counts by risk tier.
type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// DashboardStats is the fixed-shape aggregate payload for the dashboard. It
// is not backed by any stored state.
type DashboardStats struct {
	ActiveClaims     int              `json:"active_claims"`
	FraudDetected    int              `json:"fraud_detected"`
	ProcessingTime   string           `json:"processing_time"`
	ApprovalRate     float64          `json:"approval_rate"`
	TotalPayout      float64          `json:"total_payout"`
	RiskDistribution RiskDistribution `json:"risk_distribution"`
}

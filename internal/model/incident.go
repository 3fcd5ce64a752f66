package model

// IncidentReport describes a single insurance incident as submitted by the
// claimant. It is immutable once received; every downstream component takes
// it by value.
type IncidentReport struct {
	Location       string  `json:"location"`
	DateTime       string  `json:"dateTime"` // ISO-8601 text, may carry a trailing 'Z'
	Description    string  `json:"description"`
	Injuries       bool    `json:"injuries"`
	PropertyDamage bool    `json:"propertyDamage"`
	ClaimedAmount  float64 `json:"claimedAmount"`
}

// AnalyzeRequest is the body of POST /api/claims/analyze.
type AnalyzeRequest struct {
	IncidentData IncidentReport `json:"incidentData"`
	PolicyID     string         `json:"policyId,omitempty"`
}

// DefaultPolicyID is assumed when the request omits a policy.
const DefaultPolicyID = "POL-001"

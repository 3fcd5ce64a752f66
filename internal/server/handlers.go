package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/policyme/cortex/internal/model"
)

// Thresholds for status derivation.
const (
	approveBelow = 30 // auto_approve only turns into "approved" under this score
	flagAbove    = 80 // any claim over this score is flagged regardless of recommendation
)

type rootResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	AIEnabled bool   `json:"ai_enabled"`
}

type healthResponse struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	AIConfigured bool   `json:"ai_configured"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message:   "PolicyMe Cortex API",
		Version:   serviceVersion,
		Status:    "operational",
		AIEnabled: s.adjudicator.AIConfigured(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		AIConfigured: s.adjudicator.AIConfigured(),
	})
}

// handleAnalyze composes the scorer and the adjudicator into one claim
// analysis. Nothing here survives the request.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.IncidentData.ClaimedAmount < 0 {
		writeError(w, http.StatusBadRequest, "claimedAmount must be non-negative")
		return
	}
	if req.PolicyID == "" {
		req.PolicyID = model.DefaultPolicyID
	}

	assessment := s.scorer.Assess(req.IncidentData)
	adjudication := s.adjudicator.Adjudicate(r.Context(), req.IncidentData, assessment)

	status := deriveStatus(assessment.Score, adjudication.Recommendation)
	now := time.Now().UTC()

	s.metrics.ClaimAnalyzed(string(status), string(assessment.RiskLevel))
	s.logger.Info("claim analyzed",
		"policy_id", req.PolicyID,
		"fraud_score", assessment.Score,
		"risk_level", assessment.RiskLevel,
		"recommendation", adjudication.Recommendation,
		"status", status)

	writeJSON(w, http.StatusOK, model.ClaimAnalysis{
		ClaimID:    newClaimID(now),
		FraudScore: assessment,
		AIAnalysis: adjudication,
		Status:     status,
		CreatedAt:  now.Format(time.RFC3339),
	})
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	// Fixed-shape mock payload; there is no stored state to aggregate.
	writeJSON(w, http.StatusOK, model.DashboardStats{
		ActiveClaims:   247,
		FraudDetected:  12,
		ProcessingTime: "2.3s",
		ApprovalRate:   78.5,
		TotalPayout:    1250000.00,
		RiskDistribution: model.RiskDistribution{
			Low:    156,
			Medium: 73,
			High:   18,
		},
	})
}

// deriveStatus combines the fraud score and the adjudication recommendation
// into a final disposition. Reject and high scores dominate approval.
func deriveStatus(fraudScore float64, recommendation model.Recommendation) model.ClaimStatus {
	switch {
	case recommendation == model.RecommendAutoApprove && fraudScore < approveBelow:
		return model.StatusApproved
	case recommendation == model.RecommendReject || fraudScore > flagAbove:
		return model.StatusFlagged
	default:
		return model.StatusProcessing
	}
}

// newClaimID stamps a claim with the UTC second plus a random suffix. The
// suffix keeps concurrent same-second requests from colliding.
func newClaimID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return "CLM-" + now.Format("20060102150405") + "-" + suffix
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

package domain

import "context"

// Result source tags. Every response produced by a service with a local
// fallback carries one of these so the caller can disclose degraded quality.
const (
	SourceAI            = "ai"
	SourceLocalFallback = "local_fallback"
)

// ExtractionResult is the outcome of keyword extraction. Keywords are
// lowercase; Source tells whether the generative provider or the local
// taxonomy produced them.
type ExtractionResult struct {
	Keywords []string `json:"keywords"`
	Source   string   `json:"source"`
}

// AnalysisResult is the ATS compatibility verdict for a resume against a
// job. The camelCase JSON tags double as the output contract requested from
// the generative provider.
type AnalysisResult struct {
	ATSScore        int      `json:"atsScore"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Strengths       []string `json:"strengths"`
	Suggestions     []string `json:"suggestions"`
}

// Chat roles accepted in caller-supplied history
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatTurn is one prior exchange in a conversation. History is owned by the
// caller and reconstructed per request; the server keeps no session state.
type ChatTurn struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

// ChatReply is the assistant's answer to a single message
type ChatReply struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// TextGenerator is the boundary to the external generative-language
// provider. Both operations may fail for credential, network or
// content-policy reasons; callers treat every failure identically.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ChatReply(ctx context.Context, history []ChatTurn, message string) (string, error)
}

// AIUsecase defines the AI-assisted analysis operations
type AIUsecase interface {
	ExtractKeywords(ctx context.Context, jobDescription, role string) (*ExtractionResult, error)
	AnalyzeResume(ctx context.Context, userID string, resumeID, jobID int64) (*AnalysisResult, error)
	Chat(ctx context.Context, message string, history []ChatTurn) (*ChatReply, error)
}

// DashboardStats is the aggregate view served on the dashboard
type DashboardStats struct {
	JobsApplied     int64    `json:"jobs_applied"`
	Analyzed        int64    `json:"analyzed"`
	AverageATSScore *float64 `json:"average_ats_score,omitempty"`
	Resumes         int64    `json:"resumes"`
}

// DashboardUsecase defines dashboard aggregation logic
type DashboardUsecase interface {
	GetStats(ctx context.Context, userID string) (*DashboardStats, error)
}

package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied   = "Applied"
	ApplicationStatusReviewed  = "Reviewed"
	ApplicationStatusInterview = "Interview"
	ApplicationStatusRejected  = "Rejected"
	ApplicationStatusHired     = "Hired"
)

// Application represents a candidate's application to a job. At most one
// application exists per (user, job) pair. The analysis fields are written
// by the ATS analyzer; AnalyzedAt is set on the first analysis and never
// cleared afterwards.
type Application struct {
	ID              int64      `json:"id"`
	UserID          string     `json:"user_id"`
	JobID           int64      `json:"job_id"`
	ResumeID        int64      `json:"resume_id"`
	Status          string     `json:"status"` // Applied → Reviewed → Interview → Rejected / Hired
	ATSScore        *int       `json:"ats_score,omitempty"`
	MatchedKeywords []string   `json:"matched_keywords,omitempty"`
	MissingKeywords []string   `json:"missing_keywords,omitempty"`
	Strengths       []string   `json:"strengths,omitempty"`
	Suggestions     []string   `json:"suggestions,omitempty"`
	AnalyzedAt      *time.Time `json:"analyzed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Joined data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	JobCompany  *string `json:"job_company,omitempty"`
	JobLocation *string `json:"job_location,omitempty"`
	ResumeTitle *string `json:"resume_title,omitempty"`
}

// ApplicationStats aggregates a user's application figures for the dashboard
type ApplicationStats struct {
	JobsApplied     int64    `json:"jobs_applied"`
	Analyzed        int64    `json:"analyzed"`
	AverageATSScore *float64 `json:"average_ats_score,omitempty"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUserAndJob(ctx context.Context, userID string, jobID int64) (*Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	CheckExists(ctx context.Context, userID string, jobID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateAnalysis(ctx context.Context, id int64, result AnalysisResult, analyzedAt time.Time) error
	Delete(ctx context.Context, id int64) error
	StatsByUser(ctx context.Context, userID string) (*ApplicationStats, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, userID string, jobID, resumeID int64) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)
	WithdrawApplication(ctx context.Context, userID string, applicationID int64) error
	UpdateApplicationStatus(ctx context.Context, applicationID int64, status string) error
}

package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Resume represents a stored resume document owned by a user.
// Content holds the structured resume payload (contact info, summary,
// skills, education, projects) as raw JSON.
type Resume struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title" validate:"required,min=1,max=100"`
	Template  string          `json:"template" validate:"required"`
	Content   json.RawMessage `json:"content"`
	Keywords  []string        `json:"keywords"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ResumeFilter carries search and pagination options for resume listings
type ResumeFilter struct {
	Keyword string
	Page    int
	Limit   int
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id int64) (*Resume, error)
	FetchByUser(ctx context.Context, userID string, filter ResumeFilter) ([]Resume, int64, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id int64) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, userID string, resume *Resume) error
	GetResume(ctx context.Context, userID string, id int64) (*Resume, error)
	ListResumes(ctx context.Context, userID string, filter ResumeFilter) (*PaginatedResult[Resume], error)
	UpdateResume(ctx context.Context, userID string, resume *Resume) error
	DeleteResume(ctx context.Context, userID string, id int64) error
}

package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Experience level constants
const (
	ExperienceJunior = "Junior"
	ExperienceMid    = "Mid"
	ExperienceSenior = "Senior"
)

// Job type constants
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeFreelance  = "Freelance"
	JobTypeInternship = "Internship"
)

type Job struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	ExperienceLevel string    `json:"experience_level"` // Junior | Mid | Senior
	Type            string    `json:"type"`
	SalaryMin       float64   `json:"salary_min"`
	SalaryMax       float64   `json:"salary_max"`
	SalaryCurrency  string    `json:"salary_currency"`
	Description     string    `json:"description"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobFilter carries search, filter, sort and pagination options for job listings
type JobFilter struct {
	Keyword         string
	ExperienceLevel string
	Type            string
	MinSalary       *float64
	Sort            string // newest (default) | oldest | a-z
	Page            int
	Limit           int
}

// PaginatedResult wraps a page of data with pagination metadata
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Search(ctx context.Context, filter JobFilter) ([]Job, int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) (*PaginatedResult[Job], error)
}

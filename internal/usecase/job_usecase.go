package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// CreateJob validates and stores a new job posting
func (uc *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	if job.Title == "" || job.Company == "" || job.Description == "" {
		return apperror.BadRequest("Please provide title, company and description")
	}

	switch job.ExperienceLevel {
	case domain.ExperienceJunior, domain.ExperienceMid, domain.ExperienceSenior:
	default:
		return apperror.BadRequest("Experience level must be Junior, Mid or Senior")
	}

	if job.Type == "" {
		job.Type = domain.JobTypeFullTime
	}
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = "USD"
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}
	if len(job.Skills) == 0 {
		return apperror.BadRequest("Please provide at least one required skill")
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJobDetails returns a single job posting
func (uc *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// ListJobs searches jobs with filters and returns a paginated result
func (uc *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) (*domain.PaginatedResult[domain.Job], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	switch filter.Sort {
	case "", "newest", "oldest", "a-z":
	default:
		return nil, apperror.BadRequest("Sort must be newest, oldest or a-z")
	}

	jobs, total, err := uc.jobRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &domain.PaginatedResult[domain.Job]{
		Data:       jobs,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.Limit,
		TotalPages: totalPages,
	}, nil
}

package usecase

import (
	"context"
	"encoding/json"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	validate   *validator.Validate
}

// NewResumeUsecase creates a new resume usecase
func NewResumeUsecase(resumeRepo domain.ResumeRepository, validate *validator.Validate) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo, validate: validate}
}

// CreateResume stores a new resume for the user
func (uc *resumeUsecase) CreateResume(ctx context.Context, userID string, resume *domain.Resume) error {
	resume.UserID = userID
	if resume.Template == "" {
		resume.Template = "modern"
	}
	if len(resume.Content) == 0 {
		resume.Content = json.RawMessage("{}")
	}
	if resume.Keywords == nil {
		resume.Keywords = []string{}
	}

	if err := uc.validate.Struct(resume); err != nil {
		return apperror.BadRequest(validation.FormatValidationErrors(err))
	}

	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetResume returns a resume, enforcing ownership
func (uc *resumeUsecase) GetResume(ctx context.Context, userID string, id int64) (*domain.Resume, error) {
	resume, err := uc.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Resume not found")
	}
	if resume.UserID != userID {
		return nil, apperror.Unauthorized("Unauthorized to access this resume")
	}
	return resume, nil
}

// ListResumes returns the user's resumes with pagination
func (uc *resumeUsecase) ListResumes(ctx context.Context, userID string, filter domain.ResumeFilter) (*domain.PaginatedResult[domain.Resume], error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	resumes, total, err := uc.resumeRepo.FetchByUser(ctx, userID, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &domain.PaginatedResult[domain.Resume]{
		Data:       resumes,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateResume overwrites an existing resume, enforcing ownership
func (uc *resumeUsecase) UpdateResume(ctx context.Context, userID string, resume *domain.Resume) error {
	existing, err := uc.resumeRepo.GetByID(ctx, resume.ID)
	if err != nil {
		return apperror.NotFound("Resume not found")
	}
	if existing.UserID != userID {
		return apperror.Unauthorized("Unauthorized to update this resume")
	}

	// Owner comes from the stored record, never from the request
	resume.UserID = existing.UserID
	if resume.Template == "" {
		resume.Template = existing.Template
	}
	if len(resume.Content) == 0 {
		resume.Content = existing.Content
	}
	if resume.Keywords == nil {
		resume.Keywords = existing.Keywords
	}

	if err := uc.validate.Struct(resume); err != nil {
		return apperror.BadRequest(validation.FormatValidationErrors(err))
	}

	if err := uc.resumeRepo.Update(ctx, resume); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteResume removes a resume, enforcing ownership
func (uc *resumeUsecase) DeleteResume(ctx context.Context, userID string, id int64) error {
	existing, err := uc.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Resume not found")
	}
	if existing.UserID != userID {
		return apperror.Unauthorized("Unauthorized to delete this resume")
	}

	if err := uc.resumeRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

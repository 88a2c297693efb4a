package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type applicationUsecase struct {
	appRepo    domain.ApplicationRepository
	jobRepo    domain.JobRepository
	resumeRepo domain.ResumeRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	resumeRepo domain.ResumeRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		resumeRepo: resumeRepo,
	}
}

// ApplyToJob submits an application using one of the caller's resumes.
// At most one application exists per (user, job) pair.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID, resumeID int64) (*domain.Application, error) {
	if resumeID == 0 {
		return nil, apperror.BadRequest("Please provide a resume ID")
	}

	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	resume, err := uc.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, apperror.NotFound("Resume not found")
	}
	if resume.UserID != userID {
		return nil, apperror.Unauthorized("Unauthorized to use this resume")
	}

	exists, err := uc.appRepo.CheckExists(ctx, userID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	app := &domain.Application{
		UserID:   userID,
		JobID:    jobID,
		ResumeID: resumeID,
		Status:   domain.ApplicationStatusApplied,
	}

	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// GetMyApplications returns all applications for the current user
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	apps, err := uc.appRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// WithdrawApplication removes an application, enforcing ownership
func (uc *applicationUsecase) WithdrawApplication(ctx context.Context, userID string, applicationID int64) error {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.UserID != userID {
		return apperror.Unauthorized("User not authorized")
	}

	if err := uc.appRepo.Delete(ctx, applicationID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// UpdateApplicationStatus moves an application through the review pipeline.
// Callers gate this to admins.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, applicationID int64, status string) error {
	switch status {
	case domain.ApplicationStatusReviewed,
		domain.ApplicationStatusInterview,
		domain.ApplicationStatusRejected,
		domain.ApplicationStatusHired:
	default:
		return apperror.BadRequest("Invalid status. Must be: Reviewed, Interview, Rejected or Hired")
	}

	if _, err := uc.appRepo.GetByID(ctx, applicationID); err != nil {
		return apperror.NotFound("Application not found")
	}

	if err := uc.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type dashboardUsecase struct {
	appRepo    domain.ApplicationRepository
	resumeRepo domain.ResumeRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(appRepo domain.ApplicationRepository, resumeRepo domain.ResumeRepository) domain.DashboardUsecase {
	return &dashboardUsecase{appRepo: appRepo, resumeRepo: resumeRepo}
}

// GetStats aggregates the user's application and resume figures
func (uc *dashboardUsecase) GetStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	appStats, err := uc.appRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resumes, err := uc.resumeRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.DashboardStats{
		JobsApplied:     appStats.JobsApplied,
		Analyzed:        appStats.Analyzed,
		AverageATSScore: appStats.AverageATSScore,
		Resumes:         resumes,
	}, nil
}

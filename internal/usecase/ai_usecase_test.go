package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) FetchByUser(ctx context.Context, userID string, filter domain.ResumeFilter) ([]domain.Resume, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Resume), args.Get(1).(int64), args.Error(2)
}
func (m *MockResumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockResumeRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserAndJob(ctx context.Context, userID string, jobID int64) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, userID string, jobID int64) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) UpdateAnalysis(ctx context.Context, id int64, result domain.AnalysisResult, analyzedAt time.Time) error {
	return m.Called(ctx, id, result, analyzedAt).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockApplicationRepo) StatsByUser(ctx context.Context, userID string) (*domain.ApplicationStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}

// MockGenerator stands in for the generative provider
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
func (m *MockGenerator) ChatReply(ctx context.Context, history []domain.ChatTurn, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestExtractKeywords(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject empty input", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		_, err := uc.ExtractKeywords(ctx, "", "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Please provide job description or role")
	})

	t.Run("Should lowercase provider keywords and tag source", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return("```json\n[\"React\", \"TypeScript\", \"AWS\"]\n```", nil)

		uc := usecase.NewAIUsecase(gen, nil, nil, nil, nil)
		result, err := uc.ExtractKeywords(ctx, "We need a frontend engineer", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"react", "typescript", "aws"}, result.Keywords)
		assert.Equal(t, domain.SourceAI, result.Source)
	})

	t.Run("Should fall back to local matcher when provider fails", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return("", errors.New("quota exceeded"))

		uc := usecase.NewAIUsecase(gen, nil, nil, nil, nil)
		result, err := uc.ExtractKeywords(ctx, "Looking for React, Node.js, and MongoDB experience. Python a plus. Docker and AWS too.", "")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, result.Source)
		assert.Contains(t, result.Keywords, "react")
		assert.Contains(t, result.Keywords, "node.js")
		assert.Contains(t, result.Keywords, "mongodb")
	})

	t.Run("Should fall back when provider returns non-array JSON", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return(`{"keywords": ["react"]}`, nil)

		uc := usecase.NewAIUsecase(gen, nil, nil, nil, nil)
		result, err := uc.ExtractKeywords(ctx, "React developer wanted", "")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, result.Source)
	})

	t.Run("Should enrich sparse fallback results with frontend defaults", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		result, err := uc.ExtractKeywords(ctx, "", "frontend developer")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, result.Source)
		assert.Contains(t, result.Keywords, "react")
		assert.Contains(t, result.Keywords, "css")
		assert.Contains(t, result.Keywords, "responsive design")
		// enrichment never duplicates an already matched term
		seen := map[string]int{}
		for _, k := range result.Keywords {
			seen[k]++
			assert.Equal(t, 1, seen[k], "duplicate keyword %q", k)
		}
	})

	t.Run("Should use nil generator as a provider failure", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		result, err := uc.ExtractKeywords(ctx, "We use PostgreSQL, Redis, Kubernetes, Terraform plus Go", "")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, result.Source)
	})
}

func TestAnalyzeResumePreconditions(t *testing.T) {
	ctx := context.Background()

	resume := &domain.Resume{ID: 7, UserID: "user1", Content: []byte(`{"summary":"engineer"}`)}
	job := &domain.Job{ID: 3, Title: "Backend Engineer", Skills: []string{"go", "postgresql"}}

	t.Run("Should reject missing IDs", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		_, err := uc.AnalyzeResume(ctx, "user1", 0, 3)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Please provide resumeId and jobId")
	})

	t.Run("Should return 404 for unknown resume", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewAIUsecase(nil, resumeRepo, nil, nil, nil)
		_, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Resume not found")
	})

	t.Run("Should reject analysis of another user's resume", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(resume, nil)

		uc := usecase.NewAIUsecase(nil, resumeRepo, nil, nil, nil)
		_, err := uc.AnalyzeResume(ctx, "intruder", 7, 3)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Unauthorized to access this resume")
	})

	t.Run("Should require an existing application", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(resume, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByUserAndJob", mock.Anything, "user1", int64(3)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewAIUsecase(nil, resumeRepo, jobRepo, appRepo, nil)
		_, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Please apply to the job first")
		appRepo.AssertNotCalled(t, "UpdateAnalysis", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should throttle re-analysis within the hour", func(t *testing.T) {
		recent := time.Now().Add(-10 * time.Minute)
		app := &domain.Application{ID: 11, UserID: "user1", JobID: 3, AnalyzedAt: &recent}

		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(resume, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByUserAndJob", mock.Anything, "user1", int64(3)).Return(app, nil)

		gen := new(MockGenerator)
		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		_, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		assert.Equal(t, http.StatusTooManyRequests, appErrCode(t, err))
		gen.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "UpdateAnalysis", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should allow re-analysis after the window", func(t *testing.T) {
		stale := time.Now().Add(-2 * time.Hour)
		app := &domain.Application{ID: 11, UserID: "user1", JobID: 3, AnalyzedAt: &stale}

		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(resume, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByUserAndJob", mock.Anything, "user1", int64(3)).Return(app, nil)
		appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).Return(nil)

		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return(`{"atsScore": 75, "matchedKeywords": ["go"], "missingKeywords": [], "strengths": [], "suggestions": []}`, nil)

		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		result, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		require.NoError(t, err)
		assert.Equal(t, 75, result.ATSScore)
		appRepo.AssertExpectations(t)
	})
}

func TestAnalyzeResumeCoercion(t *testing.T) {
	ctx := context.Background()

	resume := &domain.Resume{ID: 7, UserID: "user1", Content: []byte(`{"skills":["go"]}`)}
	job := &domain.Job{ID: 3, Title: "Backend Engineer", Skills: []string{"go"}}
	app := &domain.Application{ID: 11, UserID: "user1", JobID: 3}

	newDeps := func() (*MockResumeRepo, *MockJobRepo, *MockApplicationRepo) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(resume, nil)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, int64(3)).Return(job, nil)
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByUserAndJob", mock.Anything, "user1", int64(3)).Return(app, nil)
		return resumeRepo, jobRepo, appRepo
	}

	t.Run("Should parse a fenced provider response", func(t *testing.T) {
		resumeRepo, jobRepo, appRepo := newDeps()
		var persisted domain.AnalysisResult
		var persistedAt time.Time
		appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				persisted = args.Get(2).(domain.AnalysisResult)
				persistedAt = args.Get(3).(time.Time)
			}).Return(nil)

		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return("```json\n{\"atsScore\": 87.4, \"matchedKeywords\": [\"go\"], \"missingKeywords\": [\"kubernetes\"], \"strengths\": [\"solid backend experience\"], \"suggestions\": [\"add metrics work\"]}\n```", nil)

		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		result, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		require.NoError(t, err)

		assert.Equal(t, 87, result.ATSScore)
		assert.Equal(t, []string{"go"}, result.MatchedKeywords)
		assert.Equal(t, []string{"kubernetes"}, result.MissingKeywords)
		assert.Equal(t, *result, persisted)
		assert.WithinDuration(t, time.Now(), persistedAt, 5*time.Second)
	})

	t.Run("Should persist the sentinel verdict for garbage output", func(t *testing.T) {
		resumeRepo, jobRepo, appRepo := newDeps()
		var persisted domain.AnalysisResult
		appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				persisted = args.Get(2).(domain.AnalysisResult)
			}).Return(nil)

		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return("I am unable to comply with that request.", nil)

		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		result, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		require.NoError(t, err)

		assert.Equal(t, 0, result.ATSScore)
		assert.Empty(t, result.MatchedKeywords)
		assert.Equal(t, []string{"Error parsing AI response"}, result.Strengths)
		assert.Equal(t, []string{"Please try again later"}, result.Suggestions)
		assert.Equal(t, *result, persisted)
	})

	t.Run("Should persist the sentinel verdict when the provider errors", func(t *testing.T) {
		resumeRepo, jobRepo, appRepo := newDeps()
		appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).Return(nil)

		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		result, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ATSScore)
		assert.Equal(t, []string{"Error parsing AI response"}, result.Strengths)
	})

	t.Run("Should default out-of-range and non-numeric scores to zero", func(t *testing.T) {
		cases := []struct {
			name string
			raw  string
		}{
			{"above range", `{"atsScore": 150}`},
			{"below range", `{"atsScore": -5}`},
			{"string score", `{"atsScore": "high"}`},
			{"missing score", `{"matchedKeywords": ["go"]}`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				resumeRepo, jobRepo, appRepo := newDeps()
				appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).Return(nil)

				gen := new(MockGenerator)
				gen.On("GenerateText", mock.Anything, mock.Anything).Return(tc.raw, nil)

				uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
				result, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
				require.NoError(t, err)
				assert.Equal(t, 0, result.ATSScore)
				assert.NotNil(t, result.MatchedKeywords)
				assert.NotNil(t, result.Suggestions)
			})
		}
	})

	t.Run("Should drop non-string array entries", func(t *testing.T) {
		resumeRepo, jobRepo, appRepo := newDeps()
		appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).Return(nil)

		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).
			Return(`{"atsScore": 60, "matchedKeywords": ["go", 42, null, "sql"]}`, nil)

		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		result, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "sql"}, result.MatchedKeywords)
	})

	t.Run("Should fail the operation when persistence fails", func(t *testing.T) {
		resumeRepo, jobRepo, appRepo := newDeps()
		appRepo.On("UpdateAnalysis", mock.Anything, int64(11), mock.Anything, mock.Anything).
			Return(errors.New("connection reset"))

		gen := new(MockGenerator)
		gen.On("GenerateText", mock.Anything, mock.Anything).Return(`{"atsScore": 50}`, nil)

		uc := usecase.NewAIUsecase(gen, resumeRepo, jobRepo, appRepo, nil)
		_, err := uc.AnalyzeResume(ctx, "user1", 7, 3)
		assert.Equal(t, http.StatusInternalServerError, appErrCode(t, err))
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an empty message", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		_, err := uc.Chat(ctx, "", nil)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		assert.Contains(t, err.Error(), "Message is required")
	})

	t.Run("Should return the provider reply when available", func(t *testing.T) {
		history := []domain.ChatTurn{{Role: domain.ChatRoleUser, Text: "hi"}}
		gen := new(MockGenerator)
		gen.On("ChatReply", mock.Anything, history, "How do I prepare?").
			Return("Practice common questions out loud.", nil)

		uc := usecase.NewAIUsecase(gen, nil, nil, nil, nil)
		reply, err := uc.Chat(ctx, "How do I prepare?", history)
		require.NoError(t, err)
		assert.Equal(t, "Practice common questions out loud.", reply.Reply)
		assert.Equal(t, domain.SourceAI, reply.Source)
	})

	t.Run("Should pick the highest-priority canned reply", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		// mentions both resume and salary; resume wins
		reply, err := uc.Chat(ctx, "Should my resume mention salary expectations?", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, reply.Source)
		assert.Contains(t, reply.Reply, "quantifiable achievements")
	})

	t.Run("Should match triggers case-insensitively", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		reply, err := uc.Chat(ctx, "Any INTERVIEW advice?", nil)
		require.NoError(t, err)
		assert.Contains(t, reply.Reply, "STAR method")
	})

	t.Run("Should fall back to the default reply", func(t *testing.T) {
		uc := usecase.NewAIUsecase(nil, nil, nil, nil, nil)
		reply, err := uc.Chat(ctx, "What's the weather like?", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, reply.Source)
		assert.Contains(t, reply.Reply, "Keywords")
	})

	t.Run("Should degrade to canned replies on provider failure", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("ChatReply", mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("model overloaded"))

		uc := usecase.NewAIUsecase(gen, nil, nil, nil, nil)
		reply, err := uc.Chat(ctx, "negotiation tips please", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceLocalFallback, reply.Source)
		assert.Contains(t, reply.Reply, "industry standards")
	})
}

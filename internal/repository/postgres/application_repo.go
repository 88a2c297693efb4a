package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `
	a.id, a.user_id, a.job_id, a.resume_id, a.status,
	a.ats_score, a.matched_keywords, a.missing_keywords, a.strengths, a.suggestions,
	a.analyzed_at, a.created_at, a.updated_at`

func scanApplication(row interface{ Scan(...any) error }, app *domain.Application) error {
	return row.Scan(
		&app.ID, &app.UserID, &app.JobID, &app.ResumeID, &app.Status,
		&app.ATSScore, pq.Array(&app.MatchedKeywords), pq.Array(&app.MissingKeywords),
		pq.Array(&app.Strengths), pq.Array(&app.Suggestions),
		&app.AnalyzedAt, &app.CreatedAt, &app.UpdatedAt,
	)
}

// Create inserts a new application. The unique (user_id, job_id) index backs
// the one-application-per-job invariant.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, job_id, resume_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	return r.db.QueryRow(ctx, query,
		app.UserID, app.JobID, app.ResumeID, app.Status,
		app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByUserAndJob(ctx context.Context, userID string, jobID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.user_id = $1 AND a.job_id = $2`

	var app domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, userID, jobID), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByUserID lists a user's applications with joined job and resume titles
func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `,
			j.title AS job_title, j.company AS job_company, j.location AS job_location,
			res.title AS resume_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN resumes res ON a.resume_id = res.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.JobID, &app.ResumeID, &app.Status,
			&app.ATSScore, pq.Array(&app.MatchedKeywords), pq.Array(&app.MissingKeywords),
			pq.Array(&app.Strengths), pq.Array(&app.Suggestions),
			&app.AnalyzedAt, &app.CreatedAt, &app.UpdatedAt,
			&app.JobTitle, &app.JobCompany, &app.JobLocation, &app.ResumeTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) CheckExists(ctx context.Context, userID string, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, jobID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateAnalysis writes the analyzer verdict onto an existing application.
// The write is unconditional: when two analyses race, the later one wins.
func (r *applicationRepo) UpdateAnalysis(ctx context.Context, id int64, result domain.AnalysisResult, analyzedAt time.Time) error {
	query := `
		UPDATE applications
		SET ats_score = $2, matched_keywords = $3, missing_keywords = $4,
			strengths = $5, suggestions = $6, analyzed_at = $7, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		id, result.ATSScore,
		pq.Array(result.MatchedKeywords), pq.Array(result.MissingKeywords),
		pq.Array(result.Strengths), pq.Array(result.Suggestions),
		analyzedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StatsByUser aggregates application counts and the average score of
// analyzed applications
func (r *applicationRepo) StatsByUser(ctx context.Context, userID string) (*domain.ApplicationStats, error) {
	query := `
		SELECT COUNT(*),
			COUNT(analyzed_at),
			AVG(ats_score) FILTER (WHERE analyzed_at IS NOT NULL)
		FROM applications
		WHERE user_id = $1`

	var stats domain.ApplicationStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.JobsApplied, &stats.Analyzed, &stats.AverageATSScore,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

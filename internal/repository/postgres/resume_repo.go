package postgres

import (
	"context"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (user_id, title, template, content, keywords, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		resume.UserID, resume.Title, resume.Template, resume.Content,
		pq.Array(resume.Keywords), resume.CreatedAt, resume.UpdatedAt,
	).Scan(&resume.ID)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT id, user_id, title, template, content, keywords, created_at, updated_at FROM resumes WHERE id = $1`

	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.Template, &resume.Content,
		pq.Array(&resume.Keywords), &resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// FetchByUser lists a user's resumes, newest updates first, with optional
// title search
func (r *resumeRepo) FetchByUser(ctx context.Context, userID string, filter domain.ResumeFilter) ([]domain.Resume, int64, error) {
	where := "WHERE user_id = $1"
	args := []any{userID}
	argPos := 2

	if filter.Keyword != "" {
		where += fmt.Sprintf(" AND title ILIKE $%d", argPos)
		args = append(args, "%"+filter.Keyword+"%")
		argPos++
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM resumes %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`
		SELECT id, user_id, title, template, content, keywords, created_at, updated_at
		FROM resumes %s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`,
		where, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.Title, &resume.Template, &resume.Content,
			pq.Array(&resume.Keywords), &resume.CreatedAt, &resume.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, total, rows.Err()
}

func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `
		UPDATE resumes SET title = $2, template = $3, content = $4, keywords = $5, updated_at = $6
		WHERE id = $1`

	resume.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		resume.ID, resume.Title, resume.Template, resume.Content,
		pq.Array(resume.Keywords), resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

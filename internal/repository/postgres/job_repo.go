package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, company, location, experience_level, type, salary_min, salary_max, salary_currency, description, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.ExperienceLevel, job.Type,
		job.SalaryMin, job.SalaryMax, job.SalaryCurrency, job.Description,
		pq.Array(job.Skills), job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, title, company, location, experience_level, type, salary_min, salary_max, salary_currency, description, skills, created_at, updated_at
		FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.ExperienceLevel, &job.Type,
		&job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency, &job.Description,
		pq.Array(&job.Skills), &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Search filters, sorts and paginates job postings. Keyword matches title,
// company or any skill entry, case-insensitively.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.Job, int64, error) {
	conditions := []string{}
	args := []any{}
	argPos := 1

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		conditions = append(conditions, fmt.Sprintf(
			`(title ILIKE $%d OR company ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(skills) s WHERE s ILIKE $%d))`,
			argPos, argPos, argPos))
		args = append(args, pattern)
		argPos++
	}
	if filter.ExperienceLevel != "" {
		conditions = append(conditions, fmt.Sprintf("experience_level = $%d", argPos))
		args = append(args, filter.ExperienceLevel)
		argPos++
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, filter.Type)
		argPos++
	}
	if filter.MinSalary != nil {
		conditions = append(conditions, fmt.Sprintf("salary_min >= $%d", argPos))
		args = append(args, *filter.MinSalary)
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var orderBy string
	switch filter.Sort {
	case "oldest":
		orderBy = "created_at ASC"
	case "a-z":
		orderBy = "title ASC"
	default:
		orderBy = "created_at DESC"
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`
		SELECT id, title, company, location, experience_level, type, salary_min, salary_max, salary_currency, description, skills, created_at, updated_at
		FROM jobs %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.ExperienceLevel, &job.Type,
			&job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency, &job.Description,
			pq.Array(&job.Skills), &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	return jobs, total, rows.Err()
}

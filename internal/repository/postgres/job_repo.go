package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"recruitpro-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, department, employment_type, location, description, required_skills, weighted_skills, experience_level, interview_config, created_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.JobCriteria) error {
	weighted, err := json.Marshal(job.WeightedSkills)
	if err != nil {
		return err
	}
	interview, err := marshalNullable(job.InterviewConfig)
	if err != nil {
		return err
	}

	query := `INSERT INTO jobs (id, title, department, employment_type, location, description, required_skills, weighted_skills, experience_level, interview_config, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.Exec(ctx, query,
		job.ID, job.Title, job.Department, job.Type, job.Location, job.Description,
		pq.Array(job.RequiredSkills), weighted, job.ExperienceLevel, interview, job.CreatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.JobCriteria, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.JobCriteria, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobCriteria
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobCriteria) error {
	weighted, err := json.Marshal(job.WeightedSkills)
	if err != nil {
		return err
	}
	interview, err := marshalNullable(job.InterviewConfig)
	if err != nil {
		return err
	}

	query := `UPDATE jobs SET
		title = $2,
		department = $3,
		employment_type = $4,
		location = $5,
		description = $6,
		required_skills = $7,
		weighted_skills = $8,
		experience_level = $9,
		interview_config = $10
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Department, job.Type, job.Location, job.Description,
		pq.Array(job.RequiredSkills), weighted, job.ExperienceLevel, interview,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) UpdateInterviewConfig(ctx context.Context, id string, cfg *domain.InterviewConfig) error {
	interview, err := marshalNullable(cfg)
	if err != nil {
		return err
	}
	result, err := r.db.Exec(ctx, `UPDATE jobs SET interview_config = $2 WHERE id = $1`, id, interview)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.JobCriteria, error) {
	var (
		job       domain.JobCriteria
		skills    []string
		weighted  []byte
		interview []byte
	)
	err := row.Scan(
		&job.ID, &job.Title, &job.Department, &job.Type, &job.Location, &job.Description,
		pq.Array(&skills), &weighted, &job.ExperienceLevel, &interview, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.RequiredSkills = skills
	if len(weighted) > 0 {
		if err := json.Unmarshal(weighted, &job.WeightedSkills); err != nil {
			return nil, err
		}
	}
	if len(interview) > 0 {
		var cfg domain.InterviewConfig
		if err := json.Unmarshal(interview, &cfg); err != nil {
			return nil, err
		}
		job.InterviewConfig = &cfg
	}
	return &job, nil
}

func marshalNullable(v any) ([]byte, error) {
	switch t := v.(type) {
	case *domain.InterviewConfig:
		if t == nil {
			return nil, nil
		}
	case *domain.AIAnalysisResult:
		if t == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

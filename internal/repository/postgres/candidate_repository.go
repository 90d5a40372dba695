package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"recruitpro-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, name, email, resume_text, file_name, file_data, file_type, upload_date, job_id,
	status, selection_status, stage, analysis, notes, interview_status, interview_answers, source`

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	analysis, err := marshalNullable(c.Analysis)
	if err != nil {
		return err
	}
	notes, err := json.Marshal(c.Notes)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(c.InterviewAnswers)
	if err != nil {
		return err
	}

	query := `INSERT INTO candidates (id, name, email, resume_text, file_name, file_data, file_type, upload_date, job_id,
	              status, selection_status, stage, analysis, notes, interview_status, interview_answers, source)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = r.db.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.ResumeText, c.FileName, c.FileData, c.FileType, c.UploadDate, c.JobID,
		c.Status, c.SelectionStatus, c.Stage, analysis, notes, c.InterviewStatus, answers, c.Source,
	)
	return err
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepository) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var (
		conds []string
		args  []any
	)
	addCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.JobID != "" {
		addCond("job_id", filter.JobID)
	}
	if filter.Status != "" {
		addCond("status", filter.Status)
	}
	if filter.SelectionStatus != "" {
		addCond("selection_status", filter.SelectionStatus)
	}
	if filter.Stage != "" {
		addCond("stage", filter.Stage)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY upload_date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, rows.Err()
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id string, status domain.AnalysisStatus) error {
	return r.exec(ctx, `UPDATE candidates SET status = $2 WHERE id = $1`, id, status)
}

func (r *candidateRepository) UpdateAnalysis(ctx context.Context, id string, status domain.AnalysisStatus, analysis *domain.AIAnalysisResult, selection domain.SelectionStatus, email, jobID string) error {
	payload, err := marshalNullable(analysis)
	if err != nil {
		return err
	}
	query := `UPDATE candidates SET status = $2, analysis = $3, selection_status = $4, email = $5, job_id = $6 WHERE id = $1`
	return r.exec(ctx, query, id, status, payload, selection, email, jobID)
}

func (r *candidateRepository) UpdateSelection(ctx context.Context, id string, selection domain.SelectionStatus) error {
	return r.exec(ctx, `UPDATE candidates SET selection_status = $2 WHERE id = $1`, id, selection)
}

func (r *candidateRepository) UpdateStage(ctx context.Context, id string, stage domain.PipelineStage) error {
	return r.exec(ctx, `UPDATE candidates SET stage = $2 WHERE id = $1`, id, stage)
}

func (r *candidateRepository) UpdateJobID(ctx context.Context, id string, jobID string) error {
	return r.exec(ctx, `UPDATE candidates SET job_id = $2 WHERE id = $1`, id, jobID)
}

func (r *candidateRepository) UpdateNotes(ctx context.Context, id string, notes []domain.Note) error {
	payload, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	return r.exec(ctx, `UPDATE candidates SET notes = $2 WHERE id = $1`, id, payload)
}

func (r *candidateRepository) UpdateInterview(ctx context.Context, id string, status domain.InterviewStatus, answers map[string]string) error {
	payload, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return r.exec(ctx, `UPDATE candidates SET interview_status = $2, interview_answers = $3 WHERE id = $1`, id, status, payload)
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	return r.exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
}

func (r *candidateRepository) exec(ctx context.Context, query string, args ...any) error {
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCandidate(row rowScanner) (*domain.Candidate, error) {
	var (
		c        domain.Candidate
		analysis []byte
		notes    []byte
		answers  []byte
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.ResumeText, &c.FileName, &c.FileData, &c.FileType, &c.UploadDate, &c.JobID,
		&c.Status, &c.SelectionStatus, &c.Stage, &analysis, &notes, &c.InterviewStatus, &answers, &c.Source,
	)
	if err != nil {
		return nil, err
	}
	if len(analysis) > 0 {
		var a domain.AIAnalysisResult
		if err := json.Unmarshal(analysis, &a); err != nil {
			return nil, err
		}
		c.Analysis = &a
	}
	if len(notes) > 0 {
		if err := json.Unmarshal(notes, &c.Notes); err != nil {
			return nil, err
		}
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &c.InterviewAnswers); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

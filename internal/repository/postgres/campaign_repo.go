package postgres

import (
	"context"

	"recruitpro-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type campaignRepo struct {
	db *pgxpool.Pool
}

func NewCampaignLogRepository(db *pgxpool.Pool) domain.CampaignLogRepository {
	return &campaignRepo{db: db}
}

func (r *campaignRepo) Append(ctx context.Context, entry *domain.CampaignLog) error {
	query := `INSERT INTO campaign_logs (id, date, type, recipient_count, job_id, job_title, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		entry.ID, entry.Date, entry.Type, entry.RecipientCount, entry.JobID, entry.JobTitle, entry.Status,
	)
	return err
}

func (r *campaignRepo) List(ctx context.Context, limit int) ([]domain.CampaignLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, date, type, recipient_count, job_id, job_title, status
              FROM campaign_logs ORDER BY seq DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CampaignLog
	for rows.Next() {
		var e domain.CampaignLog
		if err := rows.Scan(&e.ID, &e.Date, &e.Type, &e.RecipientCount, &e.JobID, &e.JobTitle, &e.Status); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

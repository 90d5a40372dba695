package postgres

import (
	"context"

	"recruitpro-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type activityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) domain.ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Append(ctx context.Context, entry *domain.ActivityLog) error {
	query := `INSERT INTO activity_logs (id, type, description, timestamp, actor) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, entry.ID, entry.Type, entry.Description, entry.Timestamp, entry.User)
	return err
}

// List returns entries newest-first by insertion order, not timestamp.
func (r *activityRepo) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, type, description, timestamp, actor FROM activity_logs ORDER BY seq DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityLog
	for rows.Next() {
		var e domain.ActivityLog
		if err := rows.Scan(&e.ID, &e.Type, &e.Description, &e.Timestamp, &e.User); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

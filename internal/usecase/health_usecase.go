package usecase

import (
	"context"
	"time"

	"recruitpro-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}

	if u.db != nil {
		if err := u.db.Ping(ctx); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}
	}

	// Redis is optional; rate limiting degrades to in-memory without it
	if redis.IsAvailable() {
		status["redis"] = "ok"
	} else {
		status["redis"] = "unavailable"
	}

	return status
}

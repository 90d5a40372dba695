package usecase

import (
	"context"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/logger"

	"github.com/google/uuid"
)

// logActivity appends an audit entry. Audit failures never fail the
// operation that produced them; they are logged and dropped.
func logActivity(ctx context.Context, repo domain.ActivityRepository, activityType domain.ActivityType, description string) {
	if repo == nil {
		return
	}
	actor := "System"
	if name, ok := ctx.Value(domain.KeyUserName).(string); ok && name != "" {
		actor = name
	}
	entry := &domain.ActivityLog{
		ID:          uuid.NewString(),
		Type:        activityType,
		Description: description,
		Timestamp:   time.Now(),
		User:        actor,
	}
	if err := repo.Append(ctx, entry); err != nil {
		logger.Log.Warn("failed to record activity", "type", activityType, "error", err)
	}
}

type activityUsecase struct {
	activityRepo domain.ActivityRepository
}

// ActivityUsecase exposes the audit trail to the dashboard feed.
type ActivityUsecase interface {
	ListActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

func NewActivityUsecase(activityRepo domain.ActivityRepository) ActivityUsecase {
	return &activityUsecase{activityRepo: activityRepo}
}

func (u *activityUsecase) ListActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	return u.activityRepo.List(ctx, limit)
}

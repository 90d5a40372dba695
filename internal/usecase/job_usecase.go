package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	activityRepo domain.ActivityRepository
	analyzer     domain.Analyzer
}

func NewJobUsecase(jobRepo domain.JobRepository, activityRepo domain.ActivityRepository, analyzer domain.Analyzer) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		activityRepo: activityRepo,
		analyzer:     analyzer,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.JobCriteria) error {
	if strings.TrimSpace(job.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if err := validateWeightedSkills(job.WeightedSkills); err != nil {
		return err
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return err
	}

	u.logActivity(ctx, domain.ActivityJobCreated, fmt.Sprintf("Created job profile: %s", job.Title))
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.JobCriteria, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobCriteria, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.JobCriteria) error {
	if strings.TrimSpace(job.Title) == "" {
		return apperror.BadRequest("Title is required")
	}
	if err := validateWeightedSkills(job.WeightedSkills); err != nil {
		return err
	}
	return u.jobRepo.Update(ctx, job)
}

// DeleteJob removes the job only. Candidates keep their job reference:
// the dashboard renders a dangling id as an unknown profile rather than
// reassigning anyone to the general pool.
func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	return u.jobRepo.Delete(ctx, id)
}

func (u *jobUsecase) GenerateDescription(ctx context.Context, title string, keywords []string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", apperror.BadRequest("Title is required")
	}
	return u.analyzer.GenerateJobDescription(ctx, title, keywords), nil
}

func (u *jobUsecase) GenerateWeightedSkills(ctx context.Context, title string) ([]domain.WeightedSkill, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	return u.analyzer.GenerateWeightedSkills(ctx, title), nil
}

func (u *jobUsecase) GenerateFocusAreas(ctx context.Context, id string) ([]string, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.analyzer.GenerateFocusAreas(ctx, job.Title, job.Description), nil
}

func (u *jobUsecase) GenerateQuestions(ctx context.Context, id string) ([]domain.InterviewQuestion, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.analyzer.GenerateQuestions(ctx, job.Title, job.Description), nil
}

func (u *jobUsecase) GenerateQuestionsByFocus(ctx context.Context, id, focusArea string) ([]domain.InterviewQuestion, error) {
	if strings.TrimSpace(focusArea) == "" {
		return nil, apperror.BadRequest("Focus area is required")
	}
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.analyzer.GenerateQuestionsByFocus(ctx, job.Title, focusArea), nil
}

// validateWeightedSkills rejects out-of-range weights and duplicate
// skill names. Duplicates are matched case-insensitively.
func validateWeightedSkills(skills []domain.WeightedSkill) error {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s.Skill) == "" {
			return apperror.BadRequest("Skill name cannot be empty")
		}
		if s.Weight < 1 || s.Weight > 10 {
			return apperror.BadRequest(fmt.Sprintf("Weight for %q must be between 1 and 10", s.Skill))
		}
		key := strings.ToLower(strings.TrimSpace(s.Skill))
		if _, dup := seen[key]; dup {
			return apperror.BadRequest(fmt.Sprintf("Duplicate skill: %s", s.Skill))
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (u *jobUsecase) logActivity(ctx context.Context, activityType domain.ActivityType, description string) {
	logActivity(ctx, u.activityRepo, activityType, description)
}

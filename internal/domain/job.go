package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// WeightedSkill biases AI scoring. Weight expresses importance (1-10),
// not candidate proficiency.
type WeightedSkill struct {
	Skill  string  `json:"skill"`
	Weight float64 `json:"weight" validate:"min=1,max=10"`
}

type QuestionType string

const (
	QuestionTechnical  QuestionType = "technical"
	QuestionBehavioral QuestionType = "behavioral"
	QuestionGeneral    QuestionType = "general"
)

// InterviewQuestion is owned by a job's InterviewConfig and copied by
// value into any session that uses it; later edits to the job never
// alter an in-flight session.
type InterviewQuestion struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Type      QuestionType `json:"type"`
	FocusArea string       `json:"focus_area,omitempty"`
}

type InterviewConfig struct {
	Questions       []InterviewQuestion `json:"questions"`
	DurationMinutes int                 `json:"duration_minutes"`
}

// JobCriteria is a hiring requisition.
type JobCriteria struct {
	ID              string           `json:"id"`
	Title           string           `json:"title" validate:"required"`
	Department      *string          `json:"department,omitempty"`
	Type            *string          `json:"type,omitempty"` // employment type
	Location        *string          `json:"location,omitempty"`
	Description     string           `json:"description" validate:"required"`
	RequiredSkills  []string         `json:"required_skills"`
	WeightedSkills  []WeightedSkill  `json:"weighted_skills" validate:"dive"`
	ExperienceLevel string           `json:"experience_level"`
	CreatedAt       time.Time        `json:"created_at"`
	InterviewConfig *InterviewConfig `json:"interview_config,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobCriteria) error
	GetByID(ctx context.Context, id string) (*JobCriteria, error)
	Fetch(ctx context.Context) ([]JobCriteria, error)
	Update(ctx context.Context, job *JobCriteria) error
	UpdateInterviewConfig(ctx context.Context, id string, cfg *InterviewConfig) error
	// Delete removes the job only. Candidates referencing it keep their
	// now-dangling job id on purpose.
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *JobCriteria) error
	GetJobDetails(ctx context.Context, id string) (*JobCriteria, error)
	ListJobs(ctx context.Context) ([]JobCriteria, error)
	UpdateJob(ctx context.Context, job *JobCriteria) error
	DeleteJob(ctx context.Context, id string) error
	// AI-assisted authoring helpers; all degrade gracefully when the
	// backing model is unavailable.
	GenerateDescription(ctx context.Context, title string, keywords []string) (string, error)
	GenerateWeightedSkills(ctx context.Context, title string) ([]WeightedSkill, error)
	GenerateFocusAreas(ctx context.Context, id string) ([]string, error)
	GenerateQuestions(ctx context.Context, id string) ([]InterviewQuestion, error)
	GenerateQuestionsByFocus(ctx context.Context, id, focusArea string) ([]InterviewQuestion, error)
}

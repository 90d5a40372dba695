package domain

import (
	"context"
	"time"
)

// AnalysisStatus tracks whether AI scoring has run for a candidate.
type AnalysisStatus string

const (
	AnalysisPending   AnalysisStatus = "PENDING"
	AnalysisAnalyzing AnalysisStatus = "ANALYZING"
	AnalysisCompleted AnalysisStatus = "COMPLETED"
	AnalysisFailed    AnalysisStatus = "FAILED"
)

// SelectionStatus is the recruiter triage verdict. It is independent of
// AnalysisStatus and PipelineStage: a FAILED candidate can still be
// EXCEPTIONAL, and a REJECTED one can sit in any kanban column.
type SelectionStatus string

const (
	SelectionPending     SelectionStatus = "PENDING"
	SelectionShortlisted SelectionStatus = "SHORTLISTED"
	SelectionExceptional SelectionStatus = "EXCEPTIONAL"
	SelectionRejected    SelectionStatus = "REJECTED"
)

// PipelineStage is the kanban column. Transitions form a free graph:
// recruiters drag cards backward to correct mistakes, so no ordering is
// enforced.
type PipelineStage string

const (
	StageApplied   PipelineStage = "Applied"
	StageScreening PipelineStage = "Screening"
	StageInterview PipelineStage = "Interview"
	StageOffer     PipelineStage = "Offer"
	StageRejected  PipelineStage = "Rejected"
)

type InterviewStatus string

const (
	InterviewNotInvited InterviewStatus = "NOT_INVITED"
	InterviewInvited    InterviewStatus = "INVITED"
	InterviewInProgress InterviewStatus = "IN_PROGRESS"
	InterviewCompleted  InterviewStatus = "COMPLETED"
)

// CandidateSource records how the candidate entered the system.
type CandidateSource string

const (
	SourceUpload     CandidateSource = "UPLOAD"
	SourcePublicLink CandidateSource = "PUBLIC_LINK"
	SourceSourcing   CandidateSource = "SOURCING"
)

// GeneralPool is the sentinel job id for candidates not assigned to a
// specific requisition. Such candidates stay visible and analyzable
// against an ad hoc job selection.
const GeneralPool = "general"

// Note is a recruiter-authored annotation on a candidate. Deletion is by
// id, not position, so the list stays stable under concurrent appends.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

type Candidate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ResumeText string    `json:"resume_text"`
	FileName   string    `json:"file_name"`
	FileData   *string   `json:"file_data,omitempty"` // base64, retained only for small originals
	FileType   *string   `json:"file_type,omitempty"`
	UploadDate time.Time `json:"upload_date"`
	JobID      string    `json:"job_id"` // GeneralPool when unassigned

	Status          AnalysisStatus  `json:"status"`
	SelectionStatus SelectionStatus `json:"selection_status"`
	Stage           PipelineStage   `json:"stage"`

	Analysis *AIAnalysisResult `json:"analysis,omitempty"`
	Notes    []Note            `json:"notes,omitempty"`

	InterviewStatus  InterviewStatus   `json:"interview_status"`
	InterviewAnswers map[string]string `json:"interview_answers,omitempty"`

	Source CandidateSource `json:"source"`
}

// CandidateFilter narrows List results. Zero values mean "any".
type CandidateFilter struct {
	JobID           string
	Status          AnalysisStatus
	SelectionStatus SelectionStatus
	Stage           PipelineStage
}

// CandidateRepository persists candidates. Mutations are scoped to
// independent field groups (status vs selection vs stage vs notes vs
// interview) so concurrent updates to different groups merge instead of
// clobbering the whole record.
type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	UpdateStatus(ctx context.Context, id string, status AnalysisStatus) error
	// UpdateAnalysis records a completed run atomically: status, result,
	// the selection reset, adopted email and the pool the candidate was
	// analyzed against.
	UpdateAnalysis(ctx context.Context, id string, status AnalysisStatus, analysis *AIAnalysisResult, selection SelectionStatus, email, jobID string) error
	UpdateSelection(ctx context.Context, id string, selection SelectionStatus) error
	UpdateStage(ctx context.Context, id string, stage PipelineStage) error
	UpdateJobID(ctx context.Context, id string, jobID string) error
	UpdateNotes(ctx context.Context, id string, notes []Note) error
	UpdateInterview(ctx context.Context, id string, status InterviewStatus, answers map[string]string) error
	Delete(ctx context.Context, id string) error
}

// PipelineUsecase is the central orchestrator of a candidate's lifecycle:
// analysis runs, triage, stage moves, notes and comparison.
type PipelineUsecase interface {
	RunAnalysis(ctx context.Context, candidateID, jobID string) (*Candidate, error)
	AnalyzePending(ctx context.Context, jobID string) (int, error)
	SetSelectionStatus(ctx context.Context, candidateID string, status SelectionStatus) error
	SetStage(ctx context.Context, candidateID string, stage PipelineStage) error
	MoveToJob(ctx context.Context, candidateID, jobID string) error
	AddNote(ctx context.Context, candidateID, text string) (*Note, error)
	DeleteNote(ctx context.Context, candidateID, noteID string) error
	Compare(ctx context.Context, candidateIDs []string, jobID string) (string, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
}

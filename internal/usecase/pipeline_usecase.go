package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type pipelineUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	activityRepo  domain.ActivityRepository
	analyzer      domain.Analyzer
	workers       int

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewPipelineUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository, activityRepo domain.ActivityRepository, analyzer domain.Analyzer, workers int) domain.PipelineUsecase {
	if workers <= 0 {
		workers = 3
	}
	return &pipelineUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		activityRepo:  activityRepo,
		analyzer:      analyzer,
		workers:       workers,
		inFlight:      make(map[string]struct{}),
	}
}

// RunAnalysis scores one candidate against a job pool. The candidate is
// moved to that pool as part of the run. A candidate already being
// analyzed (in this process or persisted as ANALYZING) is rejected with
// a conflict.
func (u *pipelineUsecase) RunAnalysis(ctx context.Context, candidateID, jobID string) (*domain.Candidate, error) {
	if !u.acquire(candidateID) {
		return nil, apperror.Conflict("Analysis already in progress for this candidate")
	}
	defer u.release(candidateID)

	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.Status == domain.AnalysisAnalyzing {
		return nil, apperror.Conflict("Analysis already in progress for this candidate")
	}

	if jobID == "" {
		jobID = candidate.JobID
	}
	jobContext, err := u.buildJobContext(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := u.candidateRepo.UpdateStatus(ctx, candidateID, domain.AnalysisAnalyzing); err != nil {
		return nil, err
	}

	analysis, analyzeErr := u.analyzer.AnalyzeResume(ctx, candidate.ResumeText, jobContext)
	if analyzeErr != nil {
		logger.Log.Warn("analysis failed", "candidate_id", candidateID, "error", analyzeErr)
		if err := u.candidateRepo.UpdateStatus(ctx, candidateID, domain.AnalysisFailed); err != nil {
			return nil, err
		}
		candidate.Status = domain.AnalysisFailed
		return candidate, nil
	}

	// A fresh verdict invalidates the previous triage decision.
	email := candidate.Email
	if analysis.ContactDetails != nil && strings.Contains(analysis.ContactDetails.Email, "@") {
		email = analysis.ContactDetails.Email
	}
	if err := u.candidateRepo.UpdateAnalysis(ctx, candidateID, domain.AnalysisCompleted, analysis, domain.SelectionPending, email, jobID); err != nil {
		return nil, err
	}

	logActivity(ctx, u.activityRepo, domain.ActivityCandidateAnalyzed,
		fmt.Sprintf("Analyzed candidate: %s (score %.0f)", candidate.Name, analysis.Score))

	candidate.Status = domain.AnalysisCompleted
	candidate.SelectionStatus = domain.SelectionPending
	candidate.Analysis = analysis
	candidate.Email = email
	candidate.JobID = jobID
	return candidate, nil
}

// AnalyzePending runs analysis for every PENDING candidate in the pool,
// bounded to the configured worker count. Individual failures are
// recorded on the candidate and do not stop the batch.
func (u *pipelineUsecase) AnalyzePending(ctx context.Context, jobID string) (int, error) {
	pending, err := u.candidateRepo.List(ctx, domain.CandidateFilter{
		JobID:  jobID,
		Status: domain.AnalysisPending,
	})
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var (
		mu        sync.Mutex
		completed int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for _, c := range pending {
		candidateID := c.ID
		g.Go(func() error {
			result, err := u.RunAnalysis(gctx, candidateID, jobID)
			if err != nil {
				// Conflicts mean another request owns this candidate.
				var appErr *apperror.AppError
				if errors.As(err, &appErr) && appErr.Code == 409 {
					return nil
				}
				return err
			}
			if result.Status == domain.AnalysisCompleted {
				mu.Lock()
				completed++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return completed, err
	}
	return completed, nil
}

func (u *pipelineUsecase) SetSelectionStatus(ctx context.Context, candidateID string, status domain.SelectionStatus) error {
	switch status {
	case domain.SelectionPending, domain.SelectionShortlisted, domain.SelectionExceptional, domain.SelectionRejected:
	default:
		return apperror.BadRequest("Invalid selection status")
	}
	return u.candidateRepo.UpdateSelection(ctx, candidateID, status)
}

func (u *pipelineUsecase) SetStage(ctx context.Context, candidateID string, stage domain.PipelineStage) error {
	switch stage {
	case domain.StageApplied, domain.StageScreening, domain.StageInterview, domain.StageOffer, domain.StageRejected:
	default:
		return apperror.BadRequest("Invalid pipeline stage")
	}
	return u.candidateRepo.UpdateStage(ctx, candidateID, stage)
}

func (u *pipelineUsecase) MoveToJob(ctx context.Context, candidateID, jobID string) error {
	if jobID == "" {
		return apperror.BadRequest("Job id is required")
	}
	if jobID != domain.GeneralPool {
		if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
			return err
		}
	}
	return u.candidateRepo.UpdateJobID(ctx, candidateID, jobID)
}

func (u *pipelineUsecase) AddNote(ctx context.Context, candidateID, text string) (*domain.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.BadRequest("Note text cannot be empty")
	}
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	author := "System"
	if name, ok := ctx.Value(domain.KeyUserName).(string); ok && name != "" {
		author = name
	}
	note := domain.Note{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: time.Now(),
		Author:    author,
	}
	notes := append(candidate.Notes, note)
	if err := u.candidateRepo.UpdateNotes(ctx, candidateID, notes); err != nil {
		return nil, err
	}
	return &note, nil
}

func (u *pipelineUsecase) DeleteNote(ctx context.Context, candidateID, noteID string) error {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return err
	}
	kept := make([]domain.Note, 0, len(candidate.Notes))
	for _, n := range candidate.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(candidate.Notes) {
		return apperror.NotFound("Note not found")
	}
	return u.candidateRepo.UpdateNotes(ctx, candidateID, kept)
}

// Compare produces a markdown verdict over 2-3 fully analyzed
// candidates. Read-only: nothing about the candidates changes.
func (u *pipelineUsecase) Compare(ctx context.Context, candidateIDs []string, jobID string) (string, error) {
	if len(candidateIDs) < 2 || len(candidateIDs) > 3 {
		return "", apperror.BadRequest("Select 2 to 3 candidates to compare")
	}

	candidates := make([]domain.Candidate, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		c, err := u.candidateRepo.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if c.Status != domain.AnalysisCompleted || c.Analysis == nil {
			return "", apperror.BadRequest(fmt.Sprintf("Candidate %s has no completed analysis", c.Name))
		}
		candidates = append(candidates, *c)
	}

	jobTitle := "General Pool"
	if jobID != "" && jobID != domain.GeneralPool {
		job, err := u.jobRepo.GetByID(ctx, jobID)
		if err != nil {
			return "", err
		}
		jobTitle = job.Title
	}
	return u.analyzer.CompareCandidates(ctx, candidates, jobTitle), nil
}

func (u *pipelineUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return u.candidateRepo.GetByID(ctx, id)
}

func (u *pipelineUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	return u.candidateRepo.List(ctx, filter)
}

func (u *pipelineUsecase) DeleteCandidate(ctx context.Context, id string) error {
	return u.candidateRepo.Delete(ctx, id)
}

// buildJobContext renders the scoring context. Weighted skills carry
// their importance so the model biases matching accordingly.
func (u *pipelineUsecase) buildJobContext(ctx context.Context, jobID string) (string, error) {
	if jobID == "" || jobID == domain.GeneralPool {
		return "General talent pool screening. Assess overall professional quality, experience and communication.", nil
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", job.Title)
	if job.ExperienceLevel != "" {
		fmt.Fprintf(&sb, "Experience Level: %s\n", job.ExperienceLevel)
	}
	fmt.Fprintf(&sb, "Description: %s\n", job.Description)
	if len(job.RequiredSkills) > 0 {
		fmt.Fprintf(&sb, "Required Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	}
	if len(job.WeightedSkills) > 0 {
		rendered := make([]string, 0, len(job.WeightedSkills))
		for _, s := range job.WeightedSkills {
			rendered = append(rendered, fmt.Sprintf("%s (Importance: %.0f/10)", s.Skill, s.Weight))
		}
		fmt.Fprintf(&sb, "Key Skills with Importance: %s\n", strings.Join(rendered, ", "))
	}
	return sb.String(), nil
}

func (u *pipelineUsecase) acquire(candidateID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[candidateID]; busy {
		return false
	}
	u.inFlight[candidateID] = struct{}{}
	return true
}

func (u *pipelineUsecase) release(candidateID string) {
	u.mu.Lock()
	delete(u.inFlight, candidateID)
	u.mu.Unlock()
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/email"
	"recruitpro-backend/pkg/logger"

	"github.com/google/uuid"
)

// topRecipientScore is the strict cutoff for bulk outreach: only
// candidates scored above it receive an auto-blast.
const topRecipientScore = 70.0

type campaignUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	campaignRepo  domain.CampaignLogRepository
	activityRepo  domain.ActivityRepository
	analyzer      domain.Analyzer
	sender        email.Sender
	frontendURL   string
}

func NewCampaignUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository, campaignRepo domain.CampaignLogRepository, activityRepo domain.ActivityRepository, analyzer domain.Analyzer, sender email.Sender, frontendURL string) domain.CampaignUsecase {
	return &campaignUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		campaignRepo:  campaignRepo,
		activityRepo:  activityRepo,
		analyzer:      analyzer,
		sender:        sender,
		frontendURL:   frontendURL,
	}
}

func (u *campaignUsecase) EligibleRecipients(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	return u.candidateRepo.List(ctx, domain.CandidateFilter{
		JobID:  jobID,
		Status: domain.AnalysisCompleted,
	})
}

func (u *campaignUsecase) TopRecipients(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	eligible, err := u.EligibleRecipients(ctx, jobID)
	if err != nil {
		return nil, err
	}
	top := make([]domain.Candidate, 0, len(eligible))
	for _, c := range eligible {
		if c.Analysis != nil && c.Analysis.Score > topRecipientScore {
			top = append(top, c)
		}
	}
	return top, nil
}

// AutoBlast emails every top recipient of a job. Sends are best-effort:
// a failed delivery is logged and skipped, and the campaign log records
// the realized recipient count.
func (u *campaignUsecase) AutoBlast(ctx context.Context, jobID string, emailType domain.EmailType) (*domain.BlastResult, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	recipients, err := u.TopRecipients(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperror.BadRequest("No candidates scored above 70 for this job")
	}

	sent := 0
	for _, c := range recipients {
		content := u.analyzer.GenerateEmail(ctx, emailType, job.Title, c.Name)
		if err := u.sender.Send(c.Email, content.Subject, content.Body); err != nil {
			logger.Log.Warn("blast delivery failed", "candidate_id", c.ID, "error", err)
			continue
		}
		sent++
	}

	entry := u.appendLog(ctx, domain.CampaignBulkEmail, domain.CampaignSent, sent, job.ID, job.Title)
	logActivity(ctx, u.activityRepo, domain.ActivityCampaignLaunched,
		fmt.Sprintf("Launched bulk campaign for %s (%d recipient(s))", job.Title, sent))

	return &domain.BlastResult{Recipients: recipients, Sent: sent, Log: entry}, nil
}

func (u *campaignUsecase) SendIndividual(ctx context.Context, candidateID string, emailType domain.EmailType) (*domain.CampaignLog, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate.Status != domain.AnalysisCompleted {
		return nil, apperror.BadRequest("Candidate has no completed analysis")
	}

	jobTitle := "General Pool"
	if candidate.JobID != domain.GeneralPool {
		if job, err := u.jobRepo.GetByID(ctx, candidate.JobID); err == nil {
			jobTitle = job.Title
		}
	}

	content := u.analyzer.GenerateEmail(ctx, emailType, jobTitle, candidate.Name)
	if err := u.sender.Send(candidate.Email, content.Subject, content.Body); err != nil {
		return nil, apperror.Internal(err)
	}

	entry := u.appendLog(ctx, domain.CampaignIndividualEmail, domain.CampaignSent, 1, candidate.JobID, jobTitle)
	return entry, nil
}

func (u *campaignUsecase) SendInterviewInvite(ctx context.Context, candidateID string) (*domain.CampaignLog, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	jobTitle := "General Pool"
	if candidate.JobID != domain.GeneralPool {
		if job, err := u.jobRepo.GetByID(ctx, candidate.JobID); err == nil {
			jobTitle = job.Title
		}
	}

	content := u.analyzer.GenerateEmail(ctx, domain.EmailInvite, jobTitle, candidate.Name)
	if err := u.sender.Send(candidate.Email, content.Subject, content.Body); err != nil {
		logger.Log.Warn("invite delivery failed", "candidate_id", candidate.ID, "error", err)
	}

	if err := u.candidateRepo.UpdateInterview(ctx, candidateID, domain.InterviewInvited, candidate.InterviewAnswers); err != nil {
		return nil, err
	}

	entry := u.appendLog(ctx, domain.CampaignInterviewInvite, domain.CampaignSent, 1, candidate.JobID, jobTitle)
	return entry, nil
}

// ActivatePublicLink binds a question set to the job and returns the
// shareable interview URL. The job id is the link identity; anyone with
// the URL can apply.
func (u *campaignUsecase) ActivatePublicLink(ctx context.Context, jobID string, questions []domain.InterviewQuestion, durationMinutes int) (string, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}
	if len(questions) == 0 {
		return "", apperror.BadRequest("At least one interview question is required")
	}
	if durationMinutes <= 0 {
		durationMinutes = 15
	}

	copied := make([]domain.InterviewQuestion, len(questions))
	copy(copied, questions)
	for i := range copied {
		if copied[i].ID == "" {
			copied[i].ID = uuid.NewString()
		}
		if copied[i].Type == "" {
			copied[i].Type = domain.QuestionGeneral
		}
	}

	cfg := &domain.InterviewConfig{Questions: copied, DurationMinutes: durationMinutes}
	if err := u.jobRepo.UpdateInterviewConfig(ctx, jobID, cfg); err != nil {
		return "", err
	}

	u.appendLog(ctx, domain.CampaignPublicLink, domain.CampaignActive, 0, job.ID, job.Title)
	logActivity(ctx, u.activityRepo, domain.ActivityCampaignLaunched,
		fmt.Sprintf("Activated public interview link for %s", job.Title))

	return fmt.Sprintf("%s/#/interview/public/%s", u.frontendURL, job.ID), nil
}

func (u *campaignUsecase) ListCampaignLogs(ctx context.Context, limit int) ([]domain.CampaignLog, error) {
	return u.campaignRepo.List(ctx, limit)
}

func (u *campaignUsecase) appendLog(ctx context.Context, campaignType domain.CampaignType, status domain.CampaignStatus, recipients int, jobID, jobTitle string) *domain.CampaignLog {
	entry := &domain.CampaignLog{
		ID:             uuid.NewString(),
		Date:           time.Now(),
		Type:           campaignType,
		RecipientCount: recipients,
		JobID:          jobID,
		JobTitle:       jobTitle,
		Status:         status,
	}
	if err := u.campaignRepo.Append(ctx, entry); err != nil {
		logger.Log.Warn("failed to record campaign log", "type", campaignType, "error", err)
	}
	return entry
}

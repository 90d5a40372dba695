package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"

	"github.com/google/uuid"
)

// interviewUsecase drives linear question-by-question sessions. Sessions
// live only in memory; the durable outcome is the answers written onto
// a candidate when the last question is answered.
type interviewUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	activityRepo  domain.ActivityRepository

	mu       sync.Mutex
	sessions map[string]*domain.InterviewSession
}

func NewInterviewUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository, activityRepo domain.ActivityRepository) domain.InterviewUsecase {
	return &interviewUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		activityRepo:  activityRepo,
		sessions:      make(map[string]*domain.InterviewSession),
	}
}

func defaultSessionQuestions() []domain.InterviewQuestion {
	return []domain.InterviewQuestion{
		{ID: "1", Text: "Tell us about yourself.", Type: domain.QuestionGeneral},
		{ID: "2", Text: "Why do you want this job?", Type: domain.QuestionGeneral},
	}
}

// StartAttached opens a session for a known candidate. The intake steps
// are skipped: identity is already on record, so the session begins at
// the interview stage.
func (u *interviewUsecase) StartAttached(ctx context.Context, candidateID string) (*domain.InterviewSession, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	questions := defaultSessionQuestions()
	if candidate.JobID != domain.GeneralPool {
		if job, err := u.jobRepo.GetByID(ctx, candidate.JobID); err == nil && job.InterviewConfig != nil && len(job.InterviewConfig.Questions) > 0 {
			questions = copyQuestions(job.InterviewConfig.Questions)
		}
	}

	if err := u.candidateRepo.UpdateInterview(ctx, candidateID, domain.InterviewInProgress, candidate.InterviewAnswers); err != nil {
		return nil, err
	}

	session := &domain.InterviewSession{
		ID:          uuid.NewString(),
		JobID:       candidate.JobID,
		CandidateID: candidate.ID,
		Stage:       domain.SessionInterview,
		Name:        candidate.Name,
		Email:       candidate.Email,
		Questions:   questions,
		Answers:     make(map[string]string),
		StartedAt:   time.Now(),
	}
	u.put(session)
	return session, nil
}

// StartPublic opens an anonymous session against a job's public link.
func (u *interviewUsecase) StartPublic(ctx context.Context, jobID string) (*domain.InterviewSession, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	questions := defaultSessionQuestions()
	if job.InterviewConfig != nil && len(job.InterviewConfig.Questions) > 0 {
		questions = copyQuestions(job.InterviewConfig.Questions)
	}

	session := &domain.InterviewSession{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		Public:    true,
		Stage:     domain.SessionForm,
		Questions: questions,
		Answers:   make(map[string]string),
		StartedAt: time.Now(),
	}
	u.put(session)
	return session, nil
}

func (u *interviewUsecase) SubmitIntake(ctx context.Context, sessionID, name, email string) (*domain.InterviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != domain.SessionForm {
		return nil, apperror.BadRequest("Session is past the intake form")
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return nil, apperror.BadRequest("Name and email are required")
	}

	session.Name = strings.TrimSpace(name)
	session.Email = strings.TrimSpace(email)
	session.Stage = domain.SessionBriefing
	return snapshot(session), nil
}

func (u *interviewUsecase) AdvanceBriefing(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != domain.SessionBriefing {
		return nil, apperror.BadRequest("Session is not at the briefing stage")
	}
	session.Stage = domain.SessionConsent
	return snapshot(session), nil
}

// Back is valid only from briefing to form; every other move through
// the flow is forward-only.
func (u *interviewUsecase) Back(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != domain.SessionBriefing {
		return nil, apperror.BadRequest("Can only go back from the briefing stage")
	}
	session.Stage = domain.SessionForm
	return snapshot(session), nil
}

func (u *interviewUsecase) GiveConsent(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != domain.SessionConsent {
		return nil, apperror.BadRequest("Session is not at the consent stage")
	}
	session.Stage = domain.SessionInterview
	return snapshot(session), nil
}

func (u *interviewUsecase) SubmitAnswer(ctx context.Context, sessionID, answer string) (*domain.InterviewSession, error) {
	u.mu.Lock()
	session, err := u.getLocked(sessionID)
	if err != nil {
		u.mu.Unlock()
		return nil, err
	}
	if session.Stage != domain.SessionInterview {
		u.mu.Unlock()
		return nil, apperror.BadRequest("Session is not at the interview stage")
	}
	if session.Finished {
		u.mu.Unlock()
		return nil, apperror.BadRequest("Interview is already finished")
	}
	if strings.TrimSpace(answer) == "" {
		u.mu.Unlock()
		return nil, apperror.BadRequest("Answer cannot be empty")
	}

	question := session.Questions[session.Index]
	session.Answers[question.ID] = answer
	session.Index++
	finished := session.Index >= len(session.Questions)
	session.Finished = finished
	result := snapshot(session)
	u.mu.Unlock()

	if finished {
		if err := u.finish(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (u *interviewUsecase) GetSession(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, err := u.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return snapshot(session), nil
}

// Transcript derives ordered question/answer rows up to the current
// position. It is regenerable at any time and never stored.
func (u *interviewUsecase) Transcript(ctx context.Context, sessionID string) ([]domain.TranscriptRow, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	session, err := u.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	rows := make([]domain.TranscriptRow, 0, len(session.Questions))
	for _, q := range session.Questions {
		answer, ok := session.Answers[q.ID]
		if !ok {
			continue
		}
		rows = append(rows, domain.TranscriptRow{Question: q.Text, Answer: answer})
	}
	return rows, nil
}

// finish persists the session outcome. Public sessions synthesize a new
// candidate from the intake identity; attached sessions write the
// answers onto the existing record.
func (u *interviewUsecase) finish(ctx context.Context, session *domain.InterviewSession) error {
	if session.Public {
		candidate := &domain.Candidate{
			ID:              uuid.NewString(),
			Name:            session.Name,
			Email:           session.Email,
			ResumeText:      "Application via Public Link.",
			FileName:        "Interview Application",
			UploadDate:      time.Now(),
			JobID:           session.JobID,
			Status:          domain.AnalysisPending,
			SelectionStatus: domain.SelectionPending,
			Stage:           domain.StageApplied,
			InterviewStatus: domain.InterviewCompleted,
			InterviewAnswers: session.Answers,
			Source:          domain.SourcePublicLink,
		}
		if err := u.candidateRepo.Create(ctx, candidate); err != nil {
			return err
		}
		logActivity(ctx, u.activityRepo, domain.ActivityInterviewCompleted,
			fmt.Sprintf("Public interview completed by %s", session.Name))
		return nil
	}

	if err := u.candidateRepo.UpdateInterview(ctx, session.CandidateID, domain.InterviewCompleted, session.Answers); err != nil {
		return err
	}
	logActivity(ctx, u.activityRepo, domain.ActivityInterviewCompleted,
		fmt.Sprintf("Interview completed by %s", session.Name))
	return nil
}

func (u *interviewUsecase) put(session *domain.InterviewSession) {
	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()
}

func (u *interviewUsecase) getLocked(sessionID string) (*domain.InterviewSession, error) {
	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, apperror.NotFound("Interview session not found")
	}
	return session, nil
}

func snapshot(session *domain.InterviewSession) *domain.InterviewSession {
	copied := *session
	copied.Questions = copyQuestions(session.Questions)
	answers := make(map[string]string, len(session.Answers))
	for k, v := range session.Answers {
		answers[k] = v
	}
	copied.Answers = answers
	return &copied
}

func copyQuestions(questions []domain.InterviewQuestion) []domain.InterviewQuestion {
	copied := make([]domain.InterviewQuestion, len(questions))
	copy(copied, questions)
	return copied
}

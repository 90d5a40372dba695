package domain

import (
	"context"
	"time"
)

// SessionStage is the intake position of an interview session. The flow
// is strictly linear: form -> briefing -> consent -> interview. Attached
// sessions (known candidate) start directly at the interview stage.
type SessionStage string

const (
	SessionForm      SessionStage = "form"
	SessionBriefing  SessionStage = "briefing"
	SessionConsent   SessionStage = "consent"
	SessionInterview SessionStage = "interview"
)

// InterviewSession is a single linear question-by-question intake. It is
// ephemeral: only its outcome (answers on a candidate) is persisted.
type InterviewSession struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id,omitempty"` // empty for public sessions
	Public      bool              `json:"public"`
	Stage       SessionStage      `json:"stage"`
	Name        string            `json:"name,omitempty"`  // public intake
	Email       string            `json:"email,omitempty"` // public intake
	Questions   []InterviewQuestion `json:"questions"`
	Answers     map[string]string `json:"answers"`
	Index       int               `json:"index"`
	Finished    bool              `json:"finished"`
	StartedAt   time.Time         `json:"started_at"`
}

// TranscriptRow is one derived question/answer pair; the transcript is
// regenerable at any time and never stored.
type TranscriptRow struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type InterviewUsecase interface {
	StartAttached(ctx context.Context, candidateID string) (*InterviewSession, error)
	StartPublic(ctx context.Context, jobID string) (*InterviewSession, error)
	SubmitIntake(ctx context.Context, sessionID, name, email string) (*InterviewSession, error)
	AdvanceBriefing(ctx context.Context, sessionID string) (*InterviewSession, error)
	Back(ctx context.Context, sessionID string) (*InterviewSession, error)
	GiveConsent(ctx context.Context, sessionID string) (*InterviewSession, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*InterviewSession, error)
	GetSession(ctx context.Context, sessionID string) (*InterviewSession, error)
	Transcript(ctx context.Context, sessionID string) ([]TranscriptRow, error)
}

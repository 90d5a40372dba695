package domain

import "context"

// BlastResult summarizes an auto-blast send.
type BlastResult struct {
	Recipients []Candidate  `json:"recipients"`
	Sent       int          `json:"sent"`
	Log        *CampaignLog `json:"log"`
}

// CampaignUsecase orchestrates outreach: bulk blasts for high-scoring
// candidates, individual emails, interview invites and public interview
// links bound to a job's question set.
type CampaignUsecase interface {
	// EligibleRecipients are a job's candidates with completed analysis;
	// TopRecipients additionally require a score strictly above 70.
	EligibleRecipients(ctx context.Context, jobID string) ([]Candidate, error)
	TopRecipients(ctx context.Context, jobID string) ([]Candidate, error)
	AutoBlast(ctx context.Context, jobID string, emailType EmailType) (*BlastResult, error)
	SendIndividual(ctx context.Context, candidateID string, emailType EmailType) (*CampaignLog, error)
	SendInterviewInvite(ctx context.Context, candidateID string) (*CampaignLog, error)
	// ActivatePublicLink persists the question set onto the job and
	// returns the shareable link. The link identity is the job id itself;
	// there is no per-invitee token.
	ActivatePublicLink(ctx context.Context, jobID string, questions []InterviewQuestion, durationMinutes int) (string, error)
	ListCampaignLogs(ctx context.Context, limit int) ([]CampaignLog, error)
}

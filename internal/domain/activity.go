package domain

import (
	"context"
	"time"
)

type ActivityType string

const (
	ActivityJobCreated         ActivityType = "JOB_CREATED"
	ActivityCampaignLaunched   ActivityType = "CAMPAIGN_LAUNCHED"
	ActivityInterviewCompleted ActivityType = "INTERVIEW_COMPLETED"
	ActivityResumeUploaded     ActivityType = "RESUME_UPLOADED"
	ActivityCandidateAnalyzed  ActivityType = "CANDIDATE_ANALYZED"
	ActivitySourcingScan       ActivityType = "SOURCING_SCAN"
)

// ActivityLog is an immutable audit fact. Entries are append-only and
// listed in reverse append order; the Timestamp field is informational.
type ActivityLog struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	User        string       `json:"user"`
}

type CampaignType string

const (
	CampaignBulkEmail       CampaignType = "Bulk Email"
	CampaignIndividualEmail CampaignType = "Individual Email"
	CampaignInterviewInvite CampaignType = "Interview Invite"
	CampaignPublicLink      CampaignType = "Public Link"
)

type CampaignStatus string

const (
	CampaignSent   CampaignStatus = "Sent"
	CampaignActive CampaignStatus = "Active"
)

// CampaignLog records one outreach action. Append-only.
type CampaignLog struct {
	ID             string         `json:"id"`
	Date           time.Time      `json:"date"`
	Type           CampaignType   `json:"type"`
	RecipientCount int            `json:"recipient_count"`
	JobID          string         `json:"job_id"`
	JobTitle       string         `json:"job_title"`
	Status         CampaignStatus `json:"status"`
}

// ActivityRepository is append-only by construction: no update or
// delete methods exist.
type ActivityRepository interface {
	Append(ctx context.Context, entry *ActivityLog) error
	List(ctx context.Context, limit int) ([]ActivityLog, error)
}

type CampaignLogRepository interface {
	Append(ctx context.Context, entry *CampaignLog) error
	List(ctx context.Context, limit int) ([]CampaignLog, error)
}

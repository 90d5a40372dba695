package domain

import (
	"context"
	"time"
)

// SourcingProfile is a simulated external-network discovery result.
// Profiles come from a fixed mock table, not a live scraper.
type SourcingProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Headline     string    `json:"headline"`
	Location     string    `json:"location"`
	Platform     string    `json:"platform"` // LinkedIn, GitHub, Twitter, Portfolio
	Skills       []string  `json:"skills"`
	IsOpenToWork bool      `json:"is_open_to_work"`
	ProfileURL   string    `json:"profile_url"`
	LastUpdated  time.Time `json:"last_updated"`
}

type SourcingUsecase interface {
	Scan(ctx context.Context, query string) ([]SourcingProfile, error)
	Import(ctx context.Context, profileID, jobID string) (*Candidate, error)
}

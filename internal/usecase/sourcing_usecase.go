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

// mockProfiles simulates external-network discovery. There is no live
// scraper; scans filter this fixed table.
var mockProfiles = []domain.SourcingProfile{
	{
		ID: "sp-1", Name: "Elena Vasquez", Headline: "Senior Backend Engineer | Go, Kubernetes",
		Location: "Madrid, Spain", Platform: "LinkedIn",
		Skills: []string{"Go", "Kubernetes", "PostgreSQL", "gRPC"}, IsOpenToWork: true,
		ProfileURL: "https://linkedin.com/in/elena-vasquez-dev",
	},
	{
		ID: "sp-2", Name: "Marcus Chen", Headline: "Full Stack Developer | React + Node",
		Location: "Singapore", Platform: "GitHub",
		Skills: []string{"React", "TypeScript", "Node.js", "GraphQL"}, IsOpenToWork: false,
		ProfileURL: "https://github.com/marcuschen",
	},
	{
		ID: "sp-3", Name: "Aisha Okafor", Headline: "Data Engineer | Spark, Airflow, dbt",
		Location: "Lagos, Nigeria", Platform: "LinkedIn",
		Skills: []string{"Python", "Spark", "Airflow", "SQL"}, IsOpenToWork: true,
		ProfileURL: "https://linkedin.com/in/aisha-okafor",
	},
	{
		ID: "sp-4", Name: "Tomas Lindgren", Headline: "DevOps / SRE | AWS, Terraform",
		Location: "Stockholm, Sweden", Platform: "Portfolio",
		Skills: []string{"AWS", "Terraform", "Docker", "Go"}, IsOpenToWork: true,
		ProfileURL: "https://tomaslindgren.dev",
	},
	{
		ID: "sp-5", Name: "Priya Raman", Headline: "Machine Learning Engineer | NLP",
		Location: "Bangalore, India", Platform: "Twitter",
		Skills: []string{"Python", "PyTorch", "NLP", "MLOps"}, IsOpenToWork: false,
		ProfileURL: "https://twitter.com/priyaraman_ml",
	},
	{
		ID: "sp-6", Name: "Jakub Nowak", Headline: "Frontend Engineer | React, Design Systems",
		Location: "Warsaw, Poland", Platform: "GitHub",
		Skills: []string{"React", "TypeScript", "CSS", "Storybook"}, IsOpenToWork: true,
		ProfileURL: "https://github.com/jakubnowak",
	},
}

type sourcingUsecase struct {
	candidateRepo domain.CandidateRepository
	activityRepo  domain.ActivityRepository
}

func NewSourcingUsecase(candidateRepo domain.CandidateRepository, activityRepo domain.ActivityRepository) domain.SourcingUsecase {
	return &sourcingUsecase{
		candidateRepo: candidateRepo,
		activityRepo:  activityRepo,
	}
}

// Scan filters the mock table by name, headline, location or skill.
// An empty query returns every profile.
func (u *sourcingUsecase) Scan(ctx context.Context, query string) ([]domain.SourcingProfile, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	matched := make([]domain.SourcingProfile, 0, len(mockProfiles))
	for _, p := range mockProfiles {
		if needle == "" || profileMatches(p, needle) {
			p.LastUpdated = time.Now()
			matched = append(matched, p)
		}
	}

	logActivity(ctx, u.activityRepo, domain.ActivitySourcingScan,
		fmt.Sprintf("Sourcing scan for %q returned %d profile(s)", query, len(matched)))
	return matched, nil
}

func (u *sourcingUsecase) Import(ctx context.Context, profileID, jobID string) (*domain.Candidate, error) {
	var profile *domain.SourcingProfile
	for i := range mockProfiles {
		if mockProfiles[i].ID == profileID {
			profile = &mockProfiles[i]
			break
		}
	}
	if profile == nil {
		return nil, apperror.NotFound("Sourcing profile not found")
	}
	if jobID == "" {
		jobID = domain.GeneralPool
	}

	candidate := &domain.Candidate{
		ID:    uuid.NewString(),
		Name:  profile.Name,
		Email: placeholderEmail,
		ResumeText: fmt.Sprintf("%s\nLocation: %s\nSkills: %s\nProfile: %s",
			profile.Headline, profile.Location, strings.Join(profile.Skills, ", "), profile.ProfileURL),
		FileName:        fmt.Sprintf("Sourced from %s", profile.Platform),
		UploadDate:      time.Now(),
		JobID:           jobID,
		Status:          domain.AnalysisPending,
		SelectionStatus: domain.SelectionPending,
		Stage:           domain.StageApplied,
		InterviewStatus: domain.InterviewNotInvited,
		Source:          domain.SourceSourcing,
	}
	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}

	logActivity(ctx, u.activityRepo, domain.ActivityResumeUploaded,
		fmt.Sprintf("Imported profile: %s", profile.Name))
	return candidate, nil
}

func profileMatches(p domain.SourcingProfile, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Headline), needle) ||
		strings.Contains(strings.ToLower(p.Location), needle) ||
		strings.Contains(strings.ToLower(p.Platform), needle) {
		return true
	}
	for _, s := range p.Skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

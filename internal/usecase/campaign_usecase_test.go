package usecase_test

import (
	"context"
	"errors"
	"testing"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func analyzedCandidate(id string, score float64) domain.Candidate {
	return domain.Candidate{
		ID:       id,
		Name:     "Candidate " + id,
		Email:    id + "@example.com",
		JobID:    "job-1",
		Status:   domain.AnalysisCompleted,
		Analysis: &domain.AIAnalysisResult{Score: score},
	}
}

func newCampaignUC(candidateRepo *MockCandidateRepo, jobRepo *MockJobRepo, campaignRepo *MockCampaignRepo, activityRepo *MockActivityRepo, analyzer *MockAnalyzer, sender *MockSender) domain.CampaignUsecase {
	return usecase.NewCampaignUsecase(candidateRepo, jobRepo, campaignRepo, activityRepo, analyzer, sender, "https://app.recruitpro.example")
}

func TestTopRecipients_StrictCutoff(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	uc := newCampaignUC(candidateRepo, new(MockJobRepo), new(MockCampaignRepo), new(MockActivityRepo), new(MockAnalyzer), new(MockSender))

	completed := []domain.Candidate{
		analyzedCandidate("a", 90),
		analyzedCandidate("b", 70), // exactly 70 is excluded
		analyzedCandidate("c", 70.5),
	}
	candidateRepo.On("List", mock.Anything, domain.CandidateFilter{JobID: "job-1", Status: domain.AnalysisCompleted}).
		Return(completed, nil)

	top, err := uc.TopRecipients(context.Background(), "job-1")
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].ID)
	assert.Equal(t, "c", top[1].ID)
}

func TestAutoBlast_BestEffortDelivery(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	campaignRepo := new(MockCampaignRepo)
	activityRepo := new(MockActivityRepo)
	analyzer := new(MockAnalyzer)
	sender := new(MockSender)
	uc := newCampaignUC(candidateRepo, jobRepo, campaignRepo, activityRepo, analyzer, sender)

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(backendJob(), nil)
	candidateRepo.On("List", mock.Anything, mock.Anything).
		Return([]domain.Candidate{analyzedCandidate("a", 90), analyzedCandidate("b", 80)}, nil)
	analyzer.On("GenerateEmail", mock.Anything, domain.EmailInvite, "Backend Engineer", mock.Anything).
		Return(domain.EmailContent{Subject: "Next steps", Body: "Hello"})

	sender.On("Send", "a@example.com", "Next steps", "Hello").Return(nil)
	sender.On("Send", "b@example.com", "Next steps", "Hello").Return(errors.New("bounce"))

	campaignRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.CampaignLog")).Return(nil).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*domain.CampaignLog)
			assert.Equal(t, domain.CampaignBulkEmail, entry.Type)
			assert.Equal(t, domain.CampaignSent, entry.Status)
			assert.Equal(t, 1, entry.RecipientCount, "log records realized sends")
		})
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	result, err := uc.AutoBlast(context.Background(), "job-1", domain.EmailInvite)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Len(t, result.Recipients, 2)
}

func TestAutoBlast_NoTopCandidates(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	uc := newCampaignUC(candidateRepo, jobRepo, new(MockCampaignRepo), new(MockActivityRepo), new(MockAnalyzer), new(MockSender))

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(backendJob(), nil)
	candidateRepo.On("List", mock.Anything, mock.Anything).
		Return([]domain.Candidate{analyzedCandidate("a", 60)}, nil)

	_, err := uc.AutoBlast(context.Background(), "job-1", domain.EmailInvite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "above 70")
}

func TestSendIndividual_RequiresCompletedAnalysis(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	uc := newCampaignUC(candidateRepo, new(MockJobRepo), new(MockCampaignRepo), new(MockActivityRepo), new(MockAnalyzer), new(MockSender))

	unanalyzed := analyzedCandidate("a", 0)
	unanalyzed.Status = domain.AnalysisPending
	candidateRepo.On("GetByID", mock.Anything, "a").Return(&unanalyzed, nil)

	_, err := uc.SendIndividual(context.Background(), "a", domain.EmailReject)
	require.Error(t, err)
}

func TestSendInterviewInvite_MarksInvited(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	campaignRepo := new(MockCampaignRepo)
	analyzer := new(MockAnalyzer)
	sender := new(MockSender)
	uc := newCampaignUC(candidateRepo, jobRepo, campaignRepo, new(MockActivityRepo), analyzer, sender)

	c := analyzedCandidate("a", 85)
	candidateRepo.On("GetByID", mock.Anything, "a").Return(&c, nil)
	jobRepo.On("GetByID", mock.Anything, "job-1").Return(backendJob(), nil)
	analyzer.On("GenerateEmail", mock.Anything, domain.EmailInvite, "Backend Engineer", c.Name).
		Return(domain.EmailContent{Subject: "Interview", Body: "Join us"})
	sender.On("Send", c.Email, "Interview", "Join us").Return(nil)
	candidateRepo.On("UpdateInterview", mock.Anything, "a", domain.InterviewInvited, mock.Anything).Return(nil)
	campaignRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.CampaignLog")).Return(nil)

	entry, err := uc.SendInterviewInvite(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignInterviewInvite, entry.Type)
	assert.Equal(t, 1, entry.RecipientCount)
	candidateRepo.AssertCalled(t, "UpdateInterview", mock.Anything, "a", domain.InterviewInvited, mock.Anything)
}

func TestActivatePublicLink(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	campaignRepo := new(MockCampaignRepo)
	activityRepo := new(MockActivityRepo)
	uc := newCampaignUC(candidateRepo, jobRepo, campaignRepo, activityRepo, new(MockAnalyzer), new(MockSender))

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(backendJob(), nil)
	jobRepo.On("UpdateInterviewConfig", mock.Anything, "job-1", mock.AnythingOfType("*domain.InterviewConfig")).
		Return(nil).Run(func(args mock.Arguments) {
		cfg := args.Get(2).(*domain.InterviewConfig)
		require.Len(t, cfg.Questions, 1)
		assert.NotEmpty(t, cfg.Questions[0].ID, "questions without ids get generated ones")
		assert.Equal(t, 20, cfg.DurationMinutes)
	})
	campaignRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.CampaignLog")).Return(nil).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*domain.CampaignLog)
			assert.Equal(t, domain.CampaignPublicLink, entry.Type)
			assert.Equal(t, domain.CampaignActive, entry.Status)
			assert.Equal(t, 0, entry.RecipientCount)
		})
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	url, err := uc.ActivatePublicLink(context.Background(), "job-1",
		[]domain.InterviewQuestion{{Text: "Describe your Go experience."}}, 20)
	require.NoError(t, err)
	assert.Equal(t, "https://app.recruitpro.example/#/interview/public/job-1", url)
}

func TestActivatePublicLink_RequiresQuestions(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := newCampaignUC(new(MockCandidateRepo), jobRepo, new(MockCampaignRepo), new(MockActivityRepo), new(MockAnalyzer), new(MockSender))

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(backendJob(), nil)
	_, err := uc.ActivatePublicLink(context.Background(), "job-1", nil, 15)
	require.Error(t, err)
}

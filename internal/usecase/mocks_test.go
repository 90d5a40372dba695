package usecase_test

import (
	"context"

	"recruitpro-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) List(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateStatus(ctx context.Context, id string, status domain.AnalysisStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockCandidateRepo) UpdateAnalysis(ctx context.Context, id string, status domain.AnalysisStatus, analysis *domain.AIAnalysisResult, selection domain.SelectionStatus, email, jobID string) error {
	return m.Called(ctx, id, status, analysis, selection, email, jobID).Error(0)
}

func (m *MockCandidateRepo) UpdateSelection(ctx context.Context, id string, selection domain.SelectionStatus) error {
	return m.Called(ctx, id, selection).Error(0)
}

func (m *MockCandidateRepo) UpdateStage(ctx context.Context, id string, stage domain.PipelineStage) error {
	return m.Called(ctx, id, stage).Error(0)
}

func (m *MockCandidateRepo) UpdateJobID(ctx context.Context, id string, jobID string) error {
	return m.Called(ctx, id, jobID).Error(0)
}

func (m *MockCandidateRepo) UpdateNotes(ctx context.Context, id string, notes []domain.Note) error {
	return m.Called(ctx, id, notes).Error(0)
}

func (m *MockCandidateRepo) UpdateInterview(ctx context.Context, id string, status domain.InterviewStatus, answers map[string]string) error {
	return m.Called(ctx, id, status, answers).Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobCriteria) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.JobCriteria, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobCriteria), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.JobCriteria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobCriteria), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobCriteria) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) UpdateInterviewConfig(ctx context.Context, id string, cfg *domain.InterviewConfig) error {
	return m.Called(ctx, id, cfg).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Append(ctx context.Context, entry *domain.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockActivityRepo) List(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

type MockCampaignRepo struct {
	mock.Mock
}

func (m *MockCampaignRepo) Append(ctx context.Context, entry *domain.CampaignLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockCampaignRepo) List(ctx context.Context, limit int) ([]domain.CampaignLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CampaignLog), args.Error(1)
}

// MockAnalyzer stands in for the AI adapter.
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) AnalyzeResume(ctx context.Context, resumeText, jobContext string) (*domain.AIAnalysisResult, error) {
	args := m.Called(ctx, resumeText, jobContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AIAnalysisResult), args.Error(1)
}

func (m *MockAnalyzer) GenerateJobDescription(ctx context.Context, title string, keywords []string) string {
	return m.Called(ctx, title, keywords).String(0)
}

func (m *MockAnalyzer) GenerateWeightedSkills(ctx context.Context, title string) []domain.WeightedSkill {
	return m.Called(ctx, title).Get(0).([]domain.WeightedSkill)
}

func (m *MockAnalyzer) GenerateFocusAreas(ctx context.Context, title, description string) []string {
	return m.Called(ctx, title, description).Get(0).([]string)
}

func (m *MockAnalyzer) GenerateQuestions(ctx context.Context, title, description string) []domain.InterviewQuestion {
	return m.Called(ctx, title, description).Get(0).([]domain.InterviewQuestion)
}

func (m *MockAnalyzer) GenerateQuestionsByFocus(ctx context.Context, title, focusArea string) []domain.InterviewQuestion {
	return m.Called(ctx, title, focusArea).Get(0).([]domain.InterviewQuestion)
}

func (m *MockAnalyzer) GenerateEmail(ctx context.Context, emailType domain.EmailType, jobTitle, candidateName string) domain.EmailContent {
	return m.Called(ctx, emailType, jobTitle, candidateName).Get(0).(domain.EmailContent)
}

func (m *MockAnalyzer) CompareCandidates(ctx context.Context, candidates []domain.Candidate, jobTitle string) string {
	return m.Called(ctx, candidates, jobTitle).String(0)
}

// MockSender captures outreach deliveries.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

func (m *MockSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

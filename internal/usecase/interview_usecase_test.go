package usecase_test

import (
	"context"
	"testing"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jobWithQuestions() *domain.JobCriteria {
	job := backendJob()
	job.InterviewConfig = &domain.InterviewConfig{
		DurationMinutes: 15,
		Questions: []domain.InterviewQuestion{
			{ID: "q1", Text: "Explain goroutines.", Type: domain.QuestionTechnical},
			{ID: "q2", Text: "Describe a conflict you resolved.", Type: domain.QuestionBehavioral},
		},
	}
	return job
}

func TestPublicInterview_FullFlow(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	activityRepo := new(MockActivityRepo)
	uc := usecase.NewInterviewUsecase(candidateRepo, jobRepo, activityRepo)

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(jobWithQuestions(), nil)

	session, err := uc.StartPublic(context.Background(), "job-1")
	require.NoError(t, err)
	assert.True(t, session.Public)
	assert.Equal(t, domain.SessionForm, session.Stage)
	require.Len(t, session.Questions, 2)

	// Answers are rejected before the interview stage.
	_, err = uc.SubmitAnswer(context.Background(), session.ID, "early answer")
	require.Error(t, err)

	session, err = uc.SubmitIntake(context.Background(), session.ID, "Jane Doe", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionBriefing, session.Stage)

	session, err = uc.AdvanceBriefing(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionConsent, session.Stage)

	session, err = uc.GiveConsent(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionInterview, session.Stage)

	session, err = uc.SubmitAnswer(context.Background(), session.ID, "Goroutines are lightweight threads.")
	require.NoError(t, err)
	assert.False(t, session.Finished)
	assert.Equal(t, 1, session.Index)

	// The last answer finishes the session and synthesizes a candidate.
	var synthesized *domain.Candidate
	candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).
		Run(func(args mock.Arguments) { synthesized = args.Get(1).(*domain.Candidate) })
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	session, err = uc.SubmitAnswer(context.Background(), session.ID, "I talked it through.")
	require.NoError(t, err)
	assert.True(t, session.Finished)

	require.NotNil(t, synthesized)
	assert.Equal(t, "Jane Doe", synthesized.Name)
	assert.Equal(t, domain.SourcePublicLink, synthesized.Source)
	assert.Equal(t, "Interview Application", synthesized.FileName)
	assert.Equal(t, "Application via Public Link.", synthesized.ResumeText)
	assert.Equal(t, domain.AnalysisPending, synthesized.Status)
	assert.Equal(t, domain.StageApplied, synthesized.Stage)
	assert.Equal(t, domain.InterviewCompleted, synthesized.InterviewStatus)
	assert.Len(t, synthesized.InterviewAnswers, 2)
}

func TestPublicInterview_BackOnlyFromBriefing(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewInterviewUsecase(new(MockCandidateRepo), jobRepo, nil)

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(jobWithQuestions(), nil)

	session, err := uc.StartPublic(context.Background(), "job-1")
	require.NoError(t, err)

	// form -> back is invalid
	_, err = uc.Back(context.Background(), session.ID)
	require.Error(t, err)

	session, err = uc.SubmitIntake(context.Background(), session.ID, "Jane", "jane@example.com")
	require.NoError(t, err)

	// briefing -> form is the one legal backward move
	session, err = uc.Back(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionForm, session.Stage)
}

func TestPublicInterview_IntakeValidation(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewInterviewUsecase(new(MockCandidateRepo), jobRepo, nil)

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(jobWithQuestions(), nil)

	session, err := uc.StartPublic(context.Background(), "job-1")
	require.NoError(t, err)

	_, err = uc.SubmitIntake(context.Background(), session.ID, "", "jane@example.com")
	require.Error(t, err)
	_, err = uc.SubmitIntake(context.Background(), session.ID, "Jane", " ")
	require.Error(t, err)
}

func TestAttachedInterview_SkipsIntake(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	activityRepo := new(MockActivityRepo)
	uc := usecase.NewInterviewUsecase(candidateRepo, jobRepo, activityRepo)

	existing := pendingCandidate("c-1", "job-1")
	candidateRepo.On("GetByID", mock.Anything, "c-1").Return(existing, nil)
	jobRepo.On("GetByID", mock.Anything, "job-1").Return(jobWithQuestions(), nil)
	candidateRepo.On("UpdateInterview", mock.Anything, "c-1", domain.InterviewInProgress, mock.Anything).Return(nil)

	session, err := uc.StartAttached(context.Background(), "c-1")
	require.NoError(t, err)
	assert.False(t, session.Public)
	assert.Equal(t, domain.SessionInterview, session.Stage, "known candidates start at the interview")
	assert.Equal(t, "c-1", session.CandidateID)

	candidateRepo.On("UpdateInterview", mock.Anything, "c-1", domain.InterviewCompleted, mock.Anything).Return(nil)
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	_, err = uc.SubmitAnswer(context.Background(), session.ID, "answer one")
	require.NoError(t, err)
	session, err = uc.SubmitAnswer(context.Background(), session.ID, "answer two")
	require.NoError(t, err)
	assert.True(t, session.Finished)
	candidateRepo.AssertCalled(t, "UpdateInterview", mock.Anything, "c-1", domain.InterviewCompleted, mock.Anything)
}

func TestInterview_DefaultQuestionsWhenNoConfig(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewInterviewUsecase(new(MockCandidateRepo), jobRepo, nil)

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(backendJob(), nil)

	session, err := uc.StartPublic(context.Background(), "job-1")
	require.NoError(t, err)
	require.Len(t, session.Questions, 2)
	assert.Equal(t, "Tell us about yourself.", session.Questions[0].Text)
}

func TestInterview_Transcript(t *testing.T) {
	jobRepo := new(MockJobRepo)
	uc := usecase.NewInterviewUsecase(new(MockCandidateRepo), jobRepo, nil)

	jobRepo.On("GetByID", mock.Anything, "job-1").Return(jobWithQuestions(), nil)

	session, err := uc.StartPublic(context.Background(), "job-1")
	require.NoError(t, err)
	_, err = uc.SubmitIntake(context.Background(), session.ID, "Jane", "jane@example.com")
	require.NoError(t, err)
	_, err = uc.AdvanceBriefing(context.Background(), session.ID)
	require.NoError(t, err)
	_, err = uc.GiveConsent(context.Background(), session.ID)
	require.NoError(t, err)
	_, err = uc.SubmitAnswer(context.Background(), session.ID, "Lightweight threads.")
	require.NoError(t, err)

	rows, err := uc.Transcript(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1, "transcript covers answered questions only")
	assert.Equal(t, "Explain goroutines.", rows[0].Question)
	assert.Equal(t, "Lightweight threads.", rows[0].Answer)
}

func TestInterview_EmptyAnswerRejected(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	uc := usecase.NewInterviewUsecase(candidateRepo, jobRepo, nil)

	candidateRepo.On("GetByID", mock.Anything, "c-1").Return(pendingCandidate("c-1", "job-1"), nil)
	jobRepo.On("GetByID", mock.Anything, "job-1").Return(jobWithQuestions(), nil)
	candidateRepo.On("UpdateInterview", mock.Anything, "c-1", domain.InterviewInProgress, mock.Anything).Return(nil)

	session, err := uc.StartAttached(context.Background(), "c-1")
	require.NoError(t, err)

	_, err = uc.SubmitAnswer(context.Background(), session.ID, "   ")
	require.Error(t, err)
}

func TestInterview_UnknownSession(t *testing.T) {
	uc := usecase.NewInterviewUsecase(new(MockCandidateRepo), new(MockJobRepo), nil)
	_, err := uc.GetSession(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

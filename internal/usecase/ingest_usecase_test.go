package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpload_CreatesPendingCandidates(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	activityRepo := new(MockActivityRepo)
	uc := usecase.NewIngestUsecase(candidateRepo, activityRepo, 400)

	candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)
	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	files := []domain.UploadedFile{
		{Name: "jane_doe_cv.txt", ContentType: "text/plain", Data: []byte("Go engineer")},
		{Name: "bob.txt", ContentType: "text/plain", Data: []byte("Python dev")},
	}
	created, err := uc.Upload(context.Background(), "job-1", files)
	require.NoError(t, err)
	require.Len(t, created, 2)

	first := created[0]
	assert.Equal(t, "jane_doe_cv", first.Name, "name derives from file stem")
	assert.Equal(t, "candidate@example.com", first.Email)
	assert.Equal(t, "Go engineer", first.ResumeText)
	assert.Equal(t, domain.AnalysisPending, first.Status)
	assert.Equal(t, domain.StageApplied, first.Stage)
	assert.Equal(t, domain.SourceUpload, first.Source)
	assert.Equal(t, "job-1", first.JobID)

	// One audit entry per batch, not per file.
	activityRepo.AssertNumberOfCalls(t, "Append", 1)
}

func TestUpload_DefaultsToGeneralPool(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	uc := usecase.NewIngestUsecase(candidateRepo, nil, 400)

	candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

	created, err := uc.Upload(context.Background(), "", []domain.UploadedFile{
		{Name: "cv.txt", ContentType: "text/plain", Data: []byte("text")},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GeneralPool, created[0].JobID)
}

func TestUpload_RetentionCutoff(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	uc := usecase.NewIngestUsecase(candidateRepo, nil, 400)

	candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

	small := domain.UploadedFile{Name: "small.txt", ContentType: "text/plain", Data: []byte("tiny")}
	big := domain.UploadedFile{
		Name:        "big.txt",
		ContentType: "text/plain",
		Data:        bytes.Repeat([]byte("x"), 401*1024),
	}
	created, err := uc.Upload(context.Background(), "job-1", []domain.UploadedFile{small, big})
	require.NoError(t, err)

	assert.NotNil(t, created[0].FileData, "small originals are retained")
	assert.Nil(t, created[1].FileData, "oversized originals are dropped")
	assert.Equal(t, "big", created[1].Name)
	assert.NotEmpty(t, created[1].ResumeText, "text survives even when the binary is dropped")
}

func TestUpload_UnreadableFileDoesNotAbortBatch(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	uc := usecase.NewIngestUsecase(candidateRepo, nil, 400)

	candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

	files := []domain.UploadedFile{
		{Name: "broken.pdf", ContentType: "application/pdf", Data: []byte("not a pdf")},
		{Name: "good.txt", ContentType: "text/plain", Data: []byte("fine")},
	}
	created, err := uc.Upload(context.Background(), "job-1", files)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Contains(t, created[0].ResumeText, "[Error extracting text from file:")
	assert.Equal(t, "fine", created[1].ResumeText)
}

func TestUpload_EmptyBatchRejected(t *testing.T) {
	uc := usecase.NewIngestUsecase(new(MockCandidateRepo), nil, 400)
	_, err := uc.Upload(context.Background(), "job-1", nil)
	require.Error(t, err)
}

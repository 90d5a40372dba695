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

func TestSourcingScan(t *testing.T) {
	activityRepo := new(MockActivityRepo)
	uc := usecase.NewSourcingUsecase(new(MockCandidateRepo), activityRepo)

	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	t.Run("empty query returns all profiles", func(t *testing.T) {
		profiles, err := uc.Scan(context.Background(), "")
		require.NoError(t, err)
		assert.NotEmpty(t, profiles)
	})

	t.Run("filters by skill", func(t *testing.T) {
		profiles, err := uc.Scan(context.Background(), "terraform")
		require.NoError(t, err)
		require.NotEmpty(t, profiles)
		for _, p := range profiles {
			assert.Contains(t, p.Skills, "Terraform")
		}
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		profiles, err := uc.Scan(context.Background(), "cobol mainframe wizard")
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}

func TestSourcingImport(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	activityRepo := new(MockActivityRepo)
	uc := usecase.NewSourcingUsecase(candidateRepo, activityRepo)

	activityRepo.On("Append", mock.Anything, mock.AnythingOfType("*domain.ActivityLog")).Return(nil)

	t.Run("synthesizes a candidate from the profile", func(t *testing.T) {
		var created *domain.Candidate
		candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).
			Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Candidate) }).Once()

		candidate, err := uc.Import(context.Background(), "sp-1", "job-1")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "Elena Vasquez", candidate.Name)
		assert.Equal(t, domain.SourceSourcing, candidate.Source)
		assert.Equal(t, "job-1", candidate.JobID)
		assert.Equal(t, domain.AnalysisPending, candidate.Status)
		assert.Contains(t, candidate.ResumeText, "Kubernetes")
	})

	t.Run("defaults to the general pool", func(t *testing.T) {
		candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Once()
		candidate, err := uc.Import(context.Background(), "sp-2", "")
		require.NoError(t, err)
		assert.Equal(t, domain.GeneralPool, candidate.JobID)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := uc.Import(context.Background(), "sp-999", "job-1")
		require.Error(t, err)
	})
}

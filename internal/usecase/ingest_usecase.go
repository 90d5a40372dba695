package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/extract"

	"github.com/google/uuid"
)

// placeholderEmail marks candidates whose real address is unknown until
// analysis extracts contact details.
const placeholderEmail = "candidate@example.com"

type ingestUsecase struct {
	candidateRepo     domain.CandidateRepository
	activityRepo      domain.ActivityRepository
	maxRetainedFileKB int
}

func NewIngestUsecase(candidateRepo domain.CandidateRepository, activityRepo domain.ActivityRepository, maxRetainedFileKB int) domain.IngestUsecase {
	if maxRetainedFileKB <= 0 {
		maxRetainedFileKB = 400
	}
	return &ingestUsecase{
		candidateRepo:     candidateRepo,
		activityRepo:      activityRepo,
		maxRetainedFileKB: maxRetainedFileKB,
	}
}

// Upload creates one PENDING candidate per file. Extraction never
// aborts the batch: unreadable files produce a candidate whose resume
// text carries the error marker, visible to the recruiter.
func (u *ingestUsecase) Upload(ctx context.Context, jobID string, files []domain.UploadedFile) ([]domain.Candidate, error) {
	if len(files) == 0 {
		return nil, apperror.BadRequest("No files provided")
	}
	if jobID == "" {
		jobID = domain.GeneralPool
	}

	created := make([]domain.Candidate, 0, len(files))
	for _, file := range files {
		c := domain.Candidate{
			ID:              uuid.NewString(),
			Name:            nameFromFilename(file.Name),
			Email:           placeholderEmail,
			ResumeText:      extract.Text(file.Name, file.ContentType, file.Data),
			FileName:        file.Name,
			UploadDate:      time.Now(),
			JobID:           jobID,
			Status:          domain.AnalysisPending,
			SelectionStatus: domain.SelectionPending,
			Stage:           domain.StageApplied,
			InterviewStatus: domain.InterviewNotInvited,
			Source:          domain.SourceUpload,
		}

		// The original binary is kept only for small files so single
		// resumes stay downloadable without bloating the table.
		if len(file.Data) <= u.maxRetainedFileKB*1024 {
			encoded := base64.StdEncoding.EncodeToString(file.Data)
			contentType := file.ContentType
			c.FileData = &encoded
			c.FileType = &contentType
		}

		if err := u.candidateRepo.Create(ctx, &c); err != nil {
			return nil, err
		}
		created = append(created, c)
	}

	logActivity(ctx, u.activityRepo, domain.ActivityResumeUploaded,
		fmt.Sprintf("Uploaded %d resume(s)", len(created)))
	return created, nil
}

// nameFromFilename derives a display name from the file stem, so
// "jane_doe_cv.pdf" shows up as "jane_doe_cv" until analysis finds the
// real name.
func nameFromFilename(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

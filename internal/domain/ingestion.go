package domain

import "context"

// UploadedFile is one resume file received from the upload boundary.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// IngestUsecase turns uploaded files into PENDING candidates. A failed
// extraction never aborts the batch; the offending candidate carries an
// error marker in its resume text instead.
type IngestUsecase interface {
	Upload(ctx context.Context, jobID string, files []UploadedFile) ([]Candidate, error)
}

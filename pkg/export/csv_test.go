package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"recruitpro-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleData() ([]domain.Candidate, []domain.JobCriteria) {
	uploaded := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	jobs := []domain.JobCriteria{
		{ID: "job-1", Title: "Backend Engineer"},
	}
	candidates := []domain.Candidate{
		{
			ID: "c-1", Name: "Jane Doe", Email: "jane@example.com",
			FileName: "jane.pdf", JobID: "job-1", UploadDate: uploaded,
			Status: domain.AnalysisCompleted, SelectionStatus: domain.SelectionShortlisted,
			ResumeText: "Go, Postgres, Kubernetes",
			Analysis: &domain.AIAnalysisResult{
				Score:   85,
				Summary: "Strong fit, with \"quoted\" remark",
				ContactDetails: &domain.ContactDetails{
					Email: "jane.doe@corp.example", Phone: "555-1234", Location: "Berlin",
				},
				Pros:             []string{"Go depth", "ownership"},
				Cons:             []string{"no Rust"},
				ExperienceRating: "Senior",
				SkillsAnalysis: []domain.SkillMatch{
					{Skill: "Go", Present: true},
					{Skill: "Rust", Present: false},
					{Skill: "Postgres", Present: true},
				},
				RecommendedAction: domain.ActionInterview,
			},
		},
		{
			ID: "c-2", Name: "Bob Roe", Email: "bob@example.com",
			FileName: "bob.docx", JobID: domain.GeneralPool, UploadDate: uploaded,
			Status: domain.AnalysisPending, ResumeText: strings.Repeat("x", 4000),
		},
	}
	return candidates, jobs
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRawUploadsCSV(t *testing.T) {
	candidates, jobs := sampleData()

	data, err := RawUploadsCSV(candidates, jobs)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 3)
	assert.Equal(t, rawHeaders, rows[0])
	assert.Equal(t, "Backend Engineer", rows[1][4])
	assert.Equal(t, "General Pool", rows[2][4])
	assert.Equal(t, "2026-03-14", rows[1][5])
	assert.Len(t, rows[2][7], maxRawTextLen)
}

func TestAnalysisReportCSV_SkipsUnanalyzed(t *testing.T) {
	candidates, jobs := sampleData()

	data, err := AnalysisReportCSV(candidates, jobs)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, analysisHeaders, rows[0])

	row := rows[1]
	assert.Equal(t, "8.5", row[0])
	assert.Equal(t, "Jane Doe", row[1])
	assert.Equal(t, "jane.doe@corp.example", row[3], "analysis contact email wins over record email")
	assert.Equal(t, "Berlin", row[5])
	assert.Equal(t, "Go depth; ownership", row[9])
	assert.Equal(t, "Go, Postgres", row[11], "only present skills are listed")
	assert.Equal(t, "Interview", row[12])
}

func TestAnalysisReportCSV_QuotedFieldsSurviveRoundTrip(t *testing.T) {
	candidates, jobs := sampleData()

	data, err := AnalysisReportCSV(candidates, jobs)
	require.NoError(t, err)

	rows := parseCSV(t, data)
	assert.Equal(t, `Strong fit, with "quoted" remark`, rows[1][8])
}

func TestExportFilenames(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "resume_uploads_raw_2026-03-14.csv", RawFilename(now))
	assert.Equal(t, "analysis_report_2026-03-14.csv", ReportFilename(now))
	assert.Equal(t, "analysis_report_2026-03-14.xlsx", WorkbookFilename(now))
}

func TestAnalysisWorkbook(t *testing.T) {
	candidates, jobs := sampleData()

	data, err := AnalysisWorkbook(candidates, jobs)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ranked Candidates")
	require.NoError(t, err)
	require.Len(t, rows, 2, "unanalyzed candidates are excluded")
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "85", rows[1][2])

	detail, err := f.GetRows("Detailed Analysis")
	require.NoError(t, err)
	require.Len(t, detail, 5, "four sections per analyzed candidate")
	assert.Equal(t, "Summary", detail[1][1])
}

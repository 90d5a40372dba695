package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"recruitpro-backend/internal/domain"
)

const maxRawTextLen = 3000

var rawHeaders = []string{
	"ID", "Name", "Email", "Filename", "Job Profile", "Upload Date", "Status", "Raw Extracted Text",
}

var analysisHeaders = []string{
	"Rank Score", "Candidate Name", "Job Profile", "Email", "Phone", "Location",
	"Selection Status", "Experience Rating", "AI Summary", "Strengths", "Weaknesses",
	"Matched Skills", "Recommended Action",
}

// RawUploadsCSV renders every candidate as one row of upload metadata
// plus the extracted text, truncated to keep spreadsheet tools usable.
func RawUploadsCSV(candidates []domain.Candidate, jobs []domain.JobCriteria) ([]byte, error) {
	titles := jobTitles(jobs)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rawHeaders); err != nil {
		return nil, err
	}
	for _, c := range candidates {
		row := []string{
			c.ID,
			c.Name,
			c.Email,
			c.FileName,
			jobProfile(c.JobID, titles),
			c.UploadDate.Format("2006-01-02"),
			string(c.Status),
			truncateText(c.ResumeText, maxRawTextLen),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// AnalysisReportCSV renders only analyzed candidates, one row per
// analysis. Rank Score is the 0-100 AI score on a 0-10 scale.
func AnalysisReportCSV(candidates []domain.Candidate, jobs []domain.JobCriteria) ([]byte, error) {
	titles := jobTitles(jobs)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(analysisHeaders); err != nil {
		return nil, err
	}
	for _, c := range candidates {
		if c.Analysis == nil {
			continue
		}
		if err := w.Write(analysisRow(c, titles)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func analysisRow(c domain.Candidate, titles map[string]string) []string {
	a := c.Analysis

	email, phone, location := c.Email, "", ""
	if a.ContactDetails != nil {
		if a.ContactDetails.Email != "" {
			email = a.ContactDetails.Email
		}
		phone = a.ContactDetails.Phone
		location = a.ContactDetails.Location
	}

	rating := a.ExperienceRating
	if rating == "" {
		rating = "N/A"
	}
	selection := string(c.SelectionStatus)
	if selection == "" {
		selection = string(domain.SelectionPending)
	}

	return []string{
		fmt.Sprintf("%.1f", a.Score/10),
		c.Name,
		jobProfileOrGeneral(c.JobID, titles),
		email,
		phone,
		location,
		selection,
		rating,
		a.Summary,
		strings.Join(a.Pros, "; "),
		strings.Join(a.Cons, "; "),
		matchedSkills(a.SkillsAnalysis),
		string(a.RecommendedAction),
	}
}

// RawFilename and ReportFilename follow the dated download naming used
// by the dashboard export buttons.
func RawFilename(now time.Time) string {
	return fmt.Sprintf("resume_uploads_raw_%s.csv", now.Format("2006-01-02"))
}

func ReportFilename(now time.Time) string {
	return fmt.Sprintf("analysis_report_%s.csv", now.Format("2006-01-02"))
}

func jobTitles(jobs []domain.JobCriteria) map[string]string {
	titles := make(map[string]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}
	return titles
}

func jobProfile(jobID string, titles map[string]string) string {
	if jobID == domain.GeneralPool {
		return "General Pool"
	}
	if title, ok := titles[jobID]; ok {
		return title
	}
	return "Unknown"
}

func jobProfileOrGeneral(jobID string, titles map[string]string) string {
	if title, ok := titles[jobID]; ok {
		return title
	}
	return "General"
}

func matchedSkills(skills []domain.SkillMatch) string {
	var present []string
	for _, s := range skills {
		if s.Present {
			present = append(present, s.Skill)
		}
	}
	return strings.Join(present, ", ")
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

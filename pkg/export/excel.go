package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"recruitpro-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// AnalysisWorkbook renders analyzed candidates as a styled two-sheet
// workbook: a ranked overview and a per-candidate detail sheet.
func AnalysisWorkbook(candidates []domain.Candidate, jobs []domain.JobCriteria) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	analyzed := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Analysis != nil {
			analyzed = append(analyzed, c)
		}
	}
	sort.SliceStable(analyzed, func(i, j int) bool {
		return analyzed[i].Analysis.Score > analyzed[j].Analysis.Score
	})

	rankedSheet := "Ranked Candidates"
	detailSheet := "Detailed Analysis"
	f.SetSheetName("Sheet1", rankedSheet)
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, err
	}

	titles := jobTitles(jobs)
	if err := writeRankedSheet(f, rankedSheet, analyzed, titles); err != nil {
		return nil, fmt.Errorf("failed to build ranked sheet: %w", err)
	}
	if err := writeDetailSheet(f, detailSheet, analyzed); err != nil {
		return nil, fmt.Errorf("failed to build detail sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WorkbookFilename(now time.Time) string {
	return fmt.Sprintf("analysis_report_%s.xlsx", now.Format("2006-01-02"))
}

func writeRankedSheet(f *excelize.File, sheet string, analyzed []domain.Candidate, titles map[string]string) error {
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "C", "C", 10)
	f.SetColWidth(sheet, "D", "D", 22)
	f.SetColWidth(sheet, "E", "E", 28)
	f.SetColWidth(sheet, "F", "F", 16)
	f.SetColWidth(sheet, "G", "G", 16)
	f.SetColWidth(sheet, "H", "H", 18)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	strongStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C6EFCE"}, Pattern: 1},
	})
	midStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFEB9C"}, Pattern: 1},
	})
	weakStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})

	headers := []string{"Rank", "Candidate", "Score", "Job Profile", "Email", "Selection", "Experience", "Recommended Action"}
	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, c := range analyzed {
		row := i + 2
		a := c.Analysis

		email := c.Email
		if a.ContactDetails != nil && a.ContactDetails.Email != "" {
			email = a.ContactDetails.Email
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), a.Score)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), jobProfileOrGeneral(c.JobID, titles))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), email)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(c.SelectionStatus))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), a.ExperienceRating)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), string(a.RecommendedAction))

		style := weakStyle
		switch {
		case a.Score > 70:
			style = strongStyle
		case a.Score >= 50:
			style = midStyle
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("H%d", row), style)
	}

	if len(analyzed) > 0 {
		f.AutoFilter(sheet, fmt.Sprintf("A1:H%d", len(analyzed)+1), []excelize.AutoFilterOptions{})
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeDetailSheet(f *excelize.File, sheet string, analyzed []domain.Candidate) error {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "C", 70)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	wrapStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	headers := []string{"Candidate", "Section", "Content"}
	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 2
	writeSection := func(name, section, content string) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), section)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), content)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), wrapStyle)
		row++
	}

	for _, c := range analyzed {
		a := c.Analysis
		writeSection(c.Name, "Summary", a.Summary)
		writeSection(c.Name, "Strengths", strings.Join(a.Pros, "; "))
		writeSection(c.Name, "Weaknesses", strings.Join(a.Cons, "; "))
		writeSection(c.Name, "Matched Skills", matchedSkills(a.SkillsAnalysis))
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

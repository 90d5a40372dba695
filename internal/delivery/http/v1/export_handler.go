package v1

import (
	"fmt"
	"net/http"
	"time"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/export"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	pipelineUC domain.PipelineUsecase
	jobUC      domain.JobUsecase
}

func NewExportHandler(protected *gin.RouterGroup, pipelineUC domain.PipelineUsecase, jobUC domain.JobUsecase) {
	handler := &ExportHandler{pipelineUC: pipelineUC, jobUC: jobUC}

	exports := protected.Group("/exports")
	{
		exports.GET("/uploads.csv", handler.RawUploads)
		exports.GET("/analysis.csv", handler.AnalysisReport)
		exports.GET("/analysis.xlsx", handler.AnalysisWorkbook)
	}
}

func (h *ExportHandler) load(c *gin.Context) ([]domain.Candidate, []domain.JobCriteria, bool) {
	filter := domain.CandidateFilter{JobID: c.Query("job_id")}

	candidates, err := h.pipelineUC.ListCandidates(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return nil, nil, false
	}
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return nil, nil, false
	}
	return candidates, jobs, true
}

func serveFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// RawUploads godoc
// @Summary      Export raw uploads as CSV
// @Description  Every candidate with truncated resume text, regardless of analysis state
// @Tags         exports
// @Produce      text/csv
// @Param        job_id  query  string  false  "Job pool filter"
// @Success      200  {file}  file
// @Router       /exports/uploads.csv [get]
// @Security     BearerAuth
func (h *ExportHandler) RawUploads(c *gin.Context) {
	candidates, jobs, ok := h.load(c)
	if !ok {
		return
	}

	data, err := export.RawUploadsCSV(candidates, jobs)
	if err != nil {
		c.Error(err)
		return
	}
	serveFile(c, export.RawFilename(time.Now()), "text/csv", data)
}

// AnalysisReport godoc
// @Summary      Export the analysis report as CSV
// @Description  Analyzed candidates only
// @Tags         exports
// @Produce      text/csv
// @Param        job_id  query  string  false  "Job pool filter"
// @Success      200  {file}  file
// @Router       /exports/analysis.csv [get]
// @Security     BearerAuth
func (h *ExportHandler) AnalysisReport(c *gin.Context) {
	candidates, jobs, ok := h.load(c)
	if !ok {
		return
	}

	data, err := export.AnalysisReportCSV(candidates, jobs)
	if err != nil {
		c.Error(err)
		return
	}
	serveFile(c, export.ReportFilename(time.Now()), "text/csv", data)
}

// AnalysisWorkbook godoc
// @Summary      Export the analysis report as a styled workbook
// @Description  Ranked and detailed sheets, analyzed candidates only
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        job_id  query  string  false  "Job pool filter"
// @Success      200  {file}  file
// @Router       /exports/analysis.xlsx [get]
// @Security     BearerAuth
func (h *ExportHandler) AnalysisWorkbook(c *gin.Context) {
	candidates, jobs, ok := h.load(c)
	if !ok {
		return
	}

	data, err := export.AnalysisWorkbook(candidates, jobs)
	if err != nil {
		c.Error(err)
		return
	}
	serveFile(c, export.WorkbookFilename(time.Now()), xlsxContentType, data)
}

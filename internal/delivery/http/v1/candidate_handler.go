package v1

import (
	"net/http"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	pipelineUC domain.PipelineUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, pipelineUC domain.PipelineUsecase) {
	handler := &CandidateHandler{pipelineUC: pipelineUC}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.DELETE("/:id", handler.Delete)

		candidates.POST("/:id/analyze", handler.Analyze)
		candidates.POST("/analyze-pending", handler.AnalyzePending)
		candidates.POST("/compare", handler.Compare)

		candidates.PATCH("/:id/selection", handler.SetSelection)
		candidates.PATCH("/:id/stage", handler.SetStage)
		candidates.PATCH("/:id/job", handler.MoveToJob)

		candidates.POST("/:id/notes", handler.AddNote)
		candidates.DELETE("/:id/notes/:noteId", handler.DeleteNote)
	}
}

// List godoc
// @Summary      List candidates
// @Description  List candidates, optionally filtered by pool, analysis status, selection or stage
// @Tags         candidates
// @Produce      json
// @Param        job_id            query     string  false  "Job pool filter"
// @Param        status            query     string  false  "Analysis status filter"
// @Param        selection_status  query     string  false  "Selection filter"
// @Param        stage             query     string  false  "Pipeline stage filter"
// @Success      200  {object}  response.Response
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	filter := domain.CandidateFilter{
		JobID:           c.Query("job_id"),
		Status:          domain.AnalysisStatus(c.Query("status")),
		SelectionStatus: domain.SelectionStatus(c.Query("selection_status")),
		Stage:           domain.PipelineStage(c.Query("stage")),
	}

	candidates, err := h.pipelineUC.ListCandidates(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

// Get godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.pipelineUC.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.pipelineUC.DeleteCandidate(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

type AnalyzeRequest struct {
	JobID string `json:"job_id"` // defaults to the candidate's own pool
}

// Analyze godoc
// @Summary      Run AI analysis for a candidate
// @Description  Scores the candidate against a job profile. A run already in progress yields 409.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string          true   "Candidate ID"
// @Param        payload  body      AnalyzeRequest  false  "Target job"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /candidates/{id}/analyze [post]
// @Security     BearerAuth
func (h *CandidateHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	// Body is optional; ignore EOF on empty payloads
	_ = c.ShouldBindJSON(&req)

	candidate, err := h.pipelineUC.RunAnalysis(c.Request.Context(), c.Param("id"), req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Analysis finished", candidate)
}

type AnalyzePendingRequest struct {
	JobID string `json:"job_id"`
}

// AnalyzePending godoc
// @Summary      Analyze all pending candidates in a pool
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        payload  body      AnalyzePendingRequest  false  "Target pool"
// @Success      200  {object}  response.Response
// @Router       /candidates/analyze-pending [post]
// @Security     BearerAuth
func (h *CandidateHandler) AnalyzePending(c *gin.Context) {
	var req AnalyzePendingRequest
	_ = c.ShouldBindJSON(&req)

	analyzed, err := h.pipelineUC.AnalyzePending(c.Request.Context(), req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pending analysis finished", gin.H{"analyzed": analyzed})
}

type CompareRequest struct {
	CandidateIDs []string `json:"candidate_ids" binding:"required"`
	JobID        string   `json:"job_id"`
}

// Compare godoc
// @Summary      Compare 2-3 analyzed candidates
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        payload  body      CompareRequest  true  "Candidates and job context"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates/compare [post]
// @Security     BearerAuth
func (h *CandidateHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	comparison, err := h.pipelineUC.Compare(c.Request.Context(), req.CandidateIDs, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Comparison generated", gin.H{"comparison": comparison})
}

type SelectionRequest struct {
	SelectionStatus domain.SelectionStatus `json:"selection_status" binding:"required"`
}

// SetSelection godoc
// @Summary      Set the triage verdict for a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Candidate ID"
// @Param        payload  body      SelectionRequest  true  "Selection status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/selection [patch]
// @Security     BearerAuth
func (h *CandidateHandler) SetSelection(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	if err := h.pipelineUC.SetSelectionStatus(c.Request.Context(), c.Param("id"), req.SelectionStatus); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Selection updated", nil)
}

type StageRequest struct {
	Stage domain.PipelineStage `json:"stage" binding:"required"`
}

// SetStage godoc
// @Summary      Move a candidate to another pipeline stage
// @Description  Transitions are unrestricted; recruiters drag cards backward to correct mistakes.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string        true  "Candidate ID"
// @Param        payload  body      StageRequest  true  "Pipeline stage"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/stage [patch]
// @Security     BearerAuth
func (h *CandidateHandler) SetStage(c *gin.Context) {
	var req StageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	if err := h.pipelineUC.SetStage(c.Request.Context(), c.Param("id"), req.Stage); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Stage updated", nil)
}

type MoveToJobRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

// MoveToJob godoc
// @Summary      Move a candidate to another job pool
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Candidate ID"
// @Param        payload  body      MoveToJobRequest  true  "Target pool"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/job [patch]
// @Security     BearerAuth
func (h *CandidateHandler) MoveToJob(c *gin.Context) {
	var req MoveToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	if err := h.pipelineUC.MoveToJob(c.Request.Context(), c.Param("id"), req.JobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate moved", nil)
}

type NoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddNote godoc
// @Summary      Add a note to a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "Candidate ID"
// @Param        payload  body      NoteRequest  true  "Note text"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/notes [post]
// @Security     BearerAuth
func (h *CandidateHandler) AddNote(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	note, err := h.pipelineUC.AddNote(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Note added", note)
}

// DeleteNote godoc
// @Summary      Delete a candidate note
// @Tags         candidates
// @Produce      json
// @Param        id      path      string  true  "Candidate ID"
// @Param        noteId  path      string  true  "Note ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/notes/{noteId} [delete]
// @Security     BearerAuth
func (h *CandidateHandler) DeleteNote(c *gin.Context) {
	if err := h.pipelineUC.DeleteNote(c.Request.Context(), c.Param("id"), c.Param("noteId")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Note deleted", nil)
}

package v1

import (
	"net/http"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC route - briefing data for candidates opening a public
	// interview link. Deliberately returns a reduced view of the job.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/public/:id", handler.PublicBriefing)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("", handler.List)
		protectedJobs.GET("/:id", handler.GetDetails)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)

		// AI-assisted authoring helpers
		protectedJobs.POST("/generate/description", handler.GenerateDescription)
		protectedJobs.POST("/generate/skills", handler.GenerateSkills)
		protectedJobs.POST("/:id/generate/focus-areas", handler.GenerateFocusAreas)
		protectedJobs.POST("/:id/generate/questions", handler.GenerateQuestions)
		protectedJobs.POST("/:id/generate/questions-by-focus", handler.GenerateQuestionsByFocus)
	}
}

type JobRequest struct {
	Title           string                 `json:"title" binding:"required"`
	Department      string                 `json:"department"`
	Type            string                 `json:"type"`
	Location        string                 `json:"location"`
	Description     string                 `json:"description"`
	RequiredSkills  []string               `json:"required_skills"`
	WeightedSkills  []domain.WeightedSkill `json:"weighted_skills"`
	ExperienceLevel string                 `json:"experience_level"`
}

func (r *JobRequest) toDomain() *domain.JobCriteria {
	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}
	return &domain.JobCriteria{
		Title:           r.Title,
		Department:      toPtr(r.Department),
		Type:            toPtr(r.Type),
		Location:        toPtr(r.Location),
		Description:     r.Description,
		RequiredSkills:  r.RequiredSkills,
		WeightedSkills:  r.WeightedSkills,
		ExperienceLevel: r.ExperienceLevel,
	}
}

// Create godoc
// @Summary      Create a job profile
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	job := req.toDomain()
	if err := h.jobUC.CreateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List job profiles
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetDetails godoc
// @Summary      Get a job profile
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// Update godoc
// @Summary      Update a job profile
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string      true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	job := req.toDomain()
	job.ID = c.Param("id")
	if err := h.jobUC.UpdateJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job profile
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// PublicBriefing godoc
// @Summary      Public interview briefing
// @Description  Reduced job view shown to candidates opening a public interview link
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/public/{id} [get]
func (h *JobHandler) PublicBriefing(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	if job.InterviewConfig == nil || len(job.InterviewConfig.Questions) == 0 {
		c.Error(apperror.NotFound("Interview link is not active for this job"))
		return
	}

	response.Success(c, http.StatusOK, "Briefing retrieved", gin.H{
		"job_id":           job.ID,
		"title":            job.Title,
		"description":      job.Description,
		"question_count":   len(job.InterviewConfig.Questions),
		"duration_minutes": job.InterviewConfig.DurationMinutes,
	})
}

type GenerateDescriptionRequest struct {
	Title    string   `json:"title" binding:"required"`
	Keywords []string `json:"keywords"`
}

// GenerateDescription godoc
// @Summary      Generate a job description
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        payload  body      GenerateDescriptionRequest  true  "Title and keywords"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs/generate/description [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateDescription(c *gin.Context) {
	var req GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	description, err := h.jobUC.GenerateDescription(c.Request.Context(), req.Title, req.Keywords)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Description generated", gin.H{"description": description})
}

type GenerateSkillsRequest struct {
	Title string `json:"title" binding:"required"`
}

// GenerateSkills godoc
// @Summary      Generate weighted skills for a job title
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        payload  body      GenerateSkillsRequest  true  "Job title"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs/generate/skills [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateSkills(c *gin.Context) {
	var req GenerateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	skills, err := h.jobUC.GenerateWeightedSkills(c.Request.Context(), req.Title)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills generated", skills)
}

// GenerateFocusAreas godoc
// @Summary      Generate interview focus areas for a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/generate/focus-areas [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateFocusAreas(c *gin.Context) {
	areas, err := h.jobUC.GenerateFocusAreas(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Focus areas generated", areas)
}

// GenerateQuestions godoc
// @Summary      Generate interview questions for a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/generate/questions [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateQuestions(c *gin.Context) {
	questions, err := h.jobUC.GenerateQuestions(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Questions generated", questions)
}

type QuestionsByFocusRequest struct {
	FocusArea string `json:"focus_area" binding:"required"`
}

// GenerateQuestionsByFocus godoc
// @Summary      Generate interview questions for one focus area
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Job ID"
// @Param        payload  body      QuestionsByFocusRequest  true  "Focus area"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/generate/questions-by-focus [post]
// @Security     BearerAuth
func (h *JobHandler) GenerateQuestionsByFocus(c *gin.Context) {
	var req QuestionsByFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	questions, err := h.jobUC.GenerateQuestionsByFocus(c.Request.Context(), c.Param("id"), req.FocusArea)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Questions generated", questions)
}

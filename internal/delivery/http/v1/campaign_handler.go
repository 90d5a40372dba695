package v1

import (
	"net/http"
	"strconv"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignUC domain.CampaignUsecase
}

func NewCampaignHandler(protected *gin.RouterGroup, campaignUC domain.CampaignUsecase) {
	handler := &CampaignHandler{campaignUC: campaignUC}

	campaigns := protected.Group("/campaigns")
	{
		campaigns.GET("/jobs/:jobId/recipients", handler.Recipients)
		campaigns.POST("/jobs/:jobId/blast", handler.AutoBlast)
		campaigns.POST("/jobs/:jobId/public-link", handler.ActivatePublicLink)
		campaigns.POST("/candidates/:id/email", handler.SendIndividual)
		campaigns.POST("/candidates/:id/invite", handler.SendInterviewInvite)
		campaigns.GET("/logs", handler.Logs)
	}
}

// Recipients godoc
// @Summary      List campaign recipients for a job
// @Description  Candidates with completed analysis; pass top=true to keep only scores above 70
// @Tags         campaigns
// @Produce      json
// @Param        jobId  path      string  true   "Job ID"
// @Param        top    query     bool    false  "Only candidates scoring above 70"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /campaigns/jobs/{jobId}/recipients [get]
// @Security     BearerAuth
func (h *CampaignHandler) Recipients(c *gin.Context) {
	jobID := c.Param("jobId")

	var (
		recipients []domain.Candidate
		err        error
	)
	if c.Query("top") == "true" {
		recipients, err = h.campaignUC.TopRecipients(c.Request.Context(), jobID)
	} else {
		recipients, err = h.campaignUC.EligibleRecipients(c.Request.Context(), jobID)
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recipients retrieved", recipients)
}

type BlastRequest struct {
	EmailType domain.EmailType `json:"email_type" binding:"required,oneof=invite reject offer"`
}

// AutoBlast godoc
// @Summary      Send a bulk email to a job's top candidates
// @Description  Targets candidates scoring above 70. Individual delivery failures are skipped; the log records the realized count.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        jobId    path      string        true  "Job ID"
// @Param        payload  body      BlastRequest  true  "Email tone"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /campaigns/jobs/{jobId}/blast [post]
// @Security     BearerAuth
func (h *CampaignHandler) AutoBlast(c *gin.Context) {
	var req BlastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	result, err := h.campaignUC.AutoBlast(c.Request.Context(), c.Param("jobId"), req.EmailType)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Campaign sent", result)
}

// SendIndividual godoc
// @Summary      Send an individual email to a candidate
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        id       path      string        true  "Candidate ID"
// @Param        payload  body      BlastRequest  true  "Email tone"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /campaigns/candidates/{id}/email [post]
// @Security     BearerAuth
func (h *CampaignHandler) SendIndividual(c *gin.Context) {
	var req BlastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	log, err := h.campaignUC.SendIndividual(c.Request.Context(), c.Param("id"), req.EmailType)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email sent", log)
}

// SendInterviewInvite godoc
// @Summary      Invite a candidate to an AI interview
// @Tags         campaigns
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /campaigns/candidates/{id}/invite [post]
// @Security     BearerAuth
func (h *CampaignHandler) SendInterviewInvite(c *gin.Context) {
	log, err := h.campaignUC.SendInterviewInvite(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Invite sent", log)
}

type PublicLinkRequest struct {
	Questions       []domain.InterviewQuestion `json:"questions" binding:"required"`
	DurationMinutes int                        `json:"duration_minutes"`
}

// ActivatePublicLink godoc
// @Summary      Activate a public interview link for a job
// @Description  Persists the question set onto the job and returns the shareable link. The link identity is the job id itself.
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        jobId    path      string             true  "Job ID"
// @Param        payload  body      PublicLinkRequest  true  "Question set"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /campaigns/jobs/{jobId}/public-link [post]
// @Security     BearerAuth
func (h *CampaignHandler) ActivatePublicLink(c *gin.Context) {
	var req PublicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	link, err := h.campaignUC.ActivatePublicLink(c.Request.Context(), c.Param("jobId"), req.Questions, req.DurationMinutes)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Public link activated", gin.H{"link": link})
}

// Logs godoc
// @Summary      List campaign logs
// @Tags         campaigns
// @Produce      json
// @Param        limit  query     int  false  "Max entries (default 50)"
// @Success      200  {object}  response.Response
// @Router       /campaigns/logs [get]
// @Security     BearerAuth
func (h *CampaignHandler) Logs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.campaignUC.ListCampaignLogs(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Campaign logs retrieved", logs)
}

package v1

import (
	"net/http"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

// NewInterviewHandler registers the interview session routes. Session
// operations are public: candidates following a link have no account.
// Starting an interview for a known candidate stays behind auth.
func NewInterviewHandler(public *gin.RouterGroup, protected *gin.RouterGroup, interviewUC domain.InterviewUsecase, publicLimit gin.HandlerFunc) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := public.Group("/interviews", publicLimit)
	{
		interviews.POST("/public/:jobId", handler.StartPublic)
		interviews.GET("/sessions/:id", handler.GetSession)
		interviews.GET("/sessions/:id/transcript", handler.Transcript)
		interviews.POST("/sessions/:id/intake", handler.SubmitIntake)
		interviews.POST("/sessions/:id/advance", handler.AdvanceBriefing)
		interviews.POST("/sessions/:id/back", handler.Back)
		interviews.POST("/sessions/:id/consent", handler.GiveConsent)
		interviews.POST("/sessions/:id/answers", handler.SubmitAnswer)
	}

	protected.POST("/interviews/candidates/:id", handler.StartAttached)
}

// StartPublic godoc
// @Summary      Start a public interview session
// @Description  Opens a session against a job's active public link. The session starts at the intake form.
// @Tags         interviews
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/public/{jobId} [post]
func (h *InterviewHandler) StartPublic(c *gin.Context) {
	session, err := h.interviewUC.StartPublic(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Session started", session)
}

// StartAttached godoc
// @Summary      Start an interview for a known candidate
// @Description  Skips the intake form and begins at the first question
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      201  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/candidates/{id} [post]
// @Security     BearerAuth
func (h *InterviewHandler) StartAttached(c *gin.Context) {
	session, err := h.interviewUC.StartAttached(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Session started", session)
}

type IntakeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// SubmitIntake godoc
// @Summary      Submit the intake form
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Session ID"
// @Param        payload  body      IntakeRequest  true  "Applicant details"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id}/intake [post]
func (h *InterviewHandler) SubmitIntake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	session, err := h.interviewUC.SubmitIntake(c.Request.Context(), c.Param("id"), req.Name, req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Intake recorded", session)
}

// AdvanceBriefing godoc
// @Summary      Advance from briefing to consent
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id}/advance [post]
func (h *InterviewHandler) AdvanceBriefing(c *gin.Context) {
	session, err := h.interviewUC.AdvanceBriefing(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Session advanced", session)
}

// Back godoc
// @Summary      Step back from briefing to the intake form
// @Description  The only legal backward transition in the flow
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id}/back [post]
func (h *InterviewHandler) Back(c *gin.Context) {
	session, err := h.interviewUC.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Session moved back", session)
}

// GiveConsent godoc
// @Summary      Record consent and begin the interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id}/consent [post]
func (h *InterviewHandler) GiveConsent(c *gin.Context) {
	session, err := h.interviewUC.GiveConsent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview started", session)
}

type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// SubmitAnswer godoc
// @Summary      Answer the current question
// @Description  Answering the last question finishes the session and persists the outcome.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Session ID"
// @Param        payload  body      AnswerRequest  true  "Answer text"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id}/answers [post]
func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	session, err := h.interviewUC.SubmitAnswer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Answer recorded", session)
}

// GetSession godoc
// @Summary      Get an interview session
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id} [get]
func (h *InterviewHandler) GetSession(c *gin.Context) {
	session, err := h.interviewUC.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Session retrieved", session)
}

// Transcript godoc
// @Summary      Get the transcript of a session
// @Description  Question/answer pairs for answered questions only
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /interviews/sessions/{id}/transcript [get]
func (h *InterviewHandler) Transcript(c *gin.Context) {
	transcript, err := h.interviewUC.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Transcript retrieved", transcript)
}

package v1

import (
	"net/http"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type SourcingHandler struct {
	sourcingUC domain.SourcingUsecase
}

func NewSourcingHandler(protected *gin.RouterGroup, sourcingUC domain.SourcingUsecase) {
	handler := &SourcingHandler{sourcingUC: sourcingUC}

	sourcing := protected.Group("/sourcing")
	{
		sourcing.GET("/scan", handler.Scan)
		sourcing.POST("/import", handler.Import)
	}
}

// Scan godoc
// @Summary      Scan external networks for matching profiles
// @Description  Searches the simulated talent network. An empty query returns all profiles.
// @Tags         sourcing
// @Produce      json
// @Param        q    query     string  false  "Search query"
// @Success      200  {object}  response.Response
// @Router       /sourcing/scan [get]
// @Security     BearerAuth
func (h *SourcingHandler) Scan(c *gin.Context) {
	profiles, err := h.sourcingUC.Scan(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profiles retrieved", profiles)
}

type ImportRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	JobID     string `json:"job_id"` // defaults to the general pool
}

// Import godoc
// @Summary      Import a sourced profile as a candidate
// @Tags         sourcing
// @Accept       json
// @Produce      json
// @Param        payload  body      ImportRequest  true  "Profile and target pool"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sourcing/import [post]
// @Security     BearerAuth
func (h *SourcingHandler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatBindingError(err)))
		return
	}

	candidate, err := h.sourcingUC.Import(c.Request.Context(), req.ProfileID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile imported", candidate)
}

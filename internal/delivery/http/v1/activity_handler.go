package v1

import (
	"net/http"
	"strconv"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

func NewActivityHandler(protected *gin.RouterGroup, activityUC usecase.ActivityUsecase) {
	handler := &ActivityHandler{activityUC: activityUC}

	protected.GET("/activity", handler.List)
}

// List godoc
// @Summary      Dashboard activity feed
// @Description  Audit entries in reverse append order
// @Tags         activity
// @Produce      json
// @Param        limit  query     int  false  "Max entries (default 50)"
// @Success      200  {object}  response.Response
// @Router       /activity [get]
// @Security     BearerAuth
func (h *ActivityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := h.activityUC.ListActivity(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Activity retrieved", entries)
}

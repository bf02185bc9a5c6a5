package api

import (
	"net/http"

	resdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/response"
	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/handler/middleware"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard usecase.DashboardQueries
}

func NewDashboardHandler(dashboard usecase.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// @Summary Admin dashboard
// @Description Aggregated statistics; the upstream enforces the admin role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	sess := middleware.GetSession(c)
	view, err := h.dashboard.Dashboard(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}

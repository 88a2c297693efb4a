package v1

import (
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", handler.Welcome)
		dashboard.GET("/stats", handler.Stats)
	}
}

// Welcome godoc
// @Summary      Dashboard Welcome
// @Description  Greeting plus the identity of the authenticated user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /dashboard [get]
func (h *DashboardHandler) Welcome(c *gin.Context) {
	response.Success(c, http.StatusOK, "Welcome to your dashboard", gin.H{
		"user_id": c.GetString(string(domain.KeyUserID)),
		"email":   c.GetString(string(domain.KeyUserEmail)),
		"role":    c.GetString(string(domain.KeyUserRole)),
	})
}

// Stats godoc
// @Summary      Dashboard Statistics
// @Description  Aggregate counts for the authenticated user: applications, analyses, average ATS score and resumes
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	stats, err := h.dashboardUC.GetStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}

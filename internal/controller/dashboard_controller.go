package controller

import (
	"growthmindz_backend/internal/service"
	"growthmindz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary my-learning 面板
// @Tags 面板模块
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/my-learning [get]
func (c *DashboardController) GetMyLearning(ctx *gin.Context) {
	summary, err := c.Service.GetMyLearning(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

package controller

import (
	"growthmindz_backend/internal/service"
	"growthmindz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Service *service.WatchProgressService
}

func NewProgressController(svc *service.WatchProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

// @Summary 上报播放位置采样
// @Tags 观看进度模块
// @Accept json
// @Produce json
// @Param body body service.ReportReq true "采样"
// @Success 200 {object} util.Response
// @Router /api/progress/report [post]
func (c *ProgressController) Report(ctx *gin.Context) {
	var req service.ReportReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.Service.Report(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// @Summary 获取课程观看进度
// @Tags 观看进度模块
// @Produce json
// @Param courseKey path string true "课程键"
// @Success 200 {object} util.Response
// @Router /api/progress/{courseKey} [get]
func (c *ProgressController) GetCourse(ctx *gin.Context) {
	course, err := c.Service.GetCourse(ctx.Request.Context(), ctx.Param("courseKey"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary 课程观看汇总
// @Tags 观看进度模块
// @Produce json
// @Param courseKey path string true "课程键"
// @Success 200 {object} util.Response
// @Router /api/progress/{courseKey}/aggregate [get]
func (c *ProgressController) Aggregate(ctx *gin.Context) {
	agg, err := c.Service.Aggregate(ctx.Request.Context(), ctx.Param("courseKey"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, agg)
}

// @Summary 视频是否达到完成门槛
// @Tags 观看进度模块
// @Produce json
// @Param courseKey path string true "课程键"
// @Param videoId path string true "视频ID"
// @Success 200 {object} util.Response
// @Router /api/progress/{courseKey}/{videoId}/completed [get]
func (c *ProgressController) IsCompleted(ctx *gin.Context) {
	completed, err := c.Service.IsCompleted(ctx.Request.Context(), ctx.Param("courseKey"), ctx.Param("videoId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"completed": completed})
}

package controller

import (
	"growthmindz_backend/internal/service"
	"growthmindz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	Service *service.EnrollmentService
}

func NewEnrollmentController(svc *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Service: svc}
}

// @Summary 报名课程
// @Tags 课程模块
// @Produce json
// @Param courseKey path string true "课程键"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseKey}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	if err := c.Service.Enroll(ctx.Request.Context(), currentUserID(ctx), ctx.Param("courseKey")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"enrolled": true})
}

// @Summary 查询报名状态
// @Tags 课程模块
// @Produce json
// @Param courseKey path string true "课程键"
// @Success 200 {object} util.Response
// @Router /api/courses/{courseKey}/enrollment [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	enrolled, err := c.Service.IsEnrolled(ctx.Request.Context(), currentUserID(ctx), ctx.Param("courseKey"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"enrolled": enrolled})
}

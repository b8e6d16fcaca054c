package controller

import (
	"errors"
	"growthmindz_backend/internal/service"
	"growthmindz_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

func currentUserID(ctx *gin.Context) uint {
	if user := util.GetUserFromContext(ctx); user != nil {
		return user.UserID
	}
	return 0
}

func (c *QuizController) sessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrQuizUnavailable):
		util.Error(ctx, http.StatusBadGateway, err.Error())
	case errors.Is(err, util.ErrVideoNotCompleted):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAlreadySubmitted),
		errors.Is(err, util.ErrSessionNotActive),
		errors.Is(err, util.ErrSessionNotFinished):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidOption),
		errors.Is(err, util.ErrUnknownQuestion),
		errors.Is(err, util.ErrInvalidNavigation):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary 创建测验会话
// @Tags 测验模块
// @Accept json
// @Produce json
// @Param body body service.StartSessionReq true "测验信息"
// @Success 201 {object} util.Response
// @Router /api/quiz/sessions [post]
func (c *QuizController) StartSession(ctx *gin.Context) {
	var req service.StartSessionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.Service.StartSession(ctx.Request.Context(), currentUserID(ctx), req)
	if err != nil {
		c.sessionError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// @Summary 获取会话状态
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id} [get]
func (c *QuizController) GetSession(ctx *gin.Context) {
	view, err := c.Service.View(ctx.Param("id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 查看考试说明
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/instructions [post]
func (c *QuizController) Instructions(ctx *gin.Context) {
	info, err := c.Service.Instructions(ctx.Param("id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, info)
}

// @Summary 开始作答（启动倒计时）
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/begin [post]
func (c *QuizController) Begin(ctx *gin.Context) {
	view, err := c.Service.Begin(ctx.Param("id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type selectAnswerReq struct {
	QuestionID string `json:"questionId" binding:"required"`
	Option     string `json:"option" binding:"required"`
}

// @Summary 选择答案
// @Tags 测验模块
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param body body selectAnswerReq true "作答"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/answer [post]
func (c *QuizController) SelectAnswer(ctx *gin.Context) {
	var req selectAnswerReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.SelectAnswer(ctx.Param("id"), req.QuestionID, req.Option); err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 清除当前题作答
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/reset [post]
func (c *QuizController) ResetAnswer(ctx *gin.Context) {
	if err := c.Service.ResetAnswer(ctx.Param("id")); err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type navigateReq struct {
	Op    string `json:"op" binding:"required"` // goto / next / previous
	Index int    `json:"index"`
}

// @Summary 题目导航
// @Tags 测验模块
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param body body navigateReq true "导航动作"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/navigate [post]
func (c *QuizController) Navigate(ctx *gin.Context) {
	var req navigateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Navigate(ctx.Param("id"), req.Op, req.Index); err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 保存并前进
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/save [post]
func (c *QuizController) SaveAndAdvance(ctx *gin.Context) {
	if err := c.Service.SaveAndAdvance(ctx.Param("id")); err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 交卷
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	review, err := c.Service.Submit(ctx.Param("id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, review)
}

// @Summary 复盘
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id}/review [get]
func (c *QuizController) Review(ctx *gin.Context) {
	review, err := c.Service.Review(ctx.Param("id"))
	if err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, review)
}

// @Summary 丢弃会话
// @Tags 测验模块
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Router /api/quiz/sessions/{id} [delete]
func (c *QuizController) Discard(ctx *gin.Context) {
	if err := c.Service.Discard(ctx.Param("id")); err != nil {
		c.sessionError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

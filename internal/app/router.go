package app

import (
	"growthmindz_backend/docs"
	"growthmindz_backend/internal/config"
	"growthmindz_backend/internal/middleware"

	"growthmindz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 测验会话：可选认证，游客也能练习，登录用户归档成绩
	quiz := router.Group("/api/quiz")
	quiz.Use(middleware.TryAuthMiddleware(cfg))
	{
		quiz.POST("/sessions", c.quiz.StartSession)
		quiz.GET("/sessions/:id", c.quiz.GetSession)
		quiz.POST("/sessions/:id/instructions", c.quiz.Instructions)
		quiz.POST("/sessions/:id/begin", c.quiz.Begin)
		quiz.POST("/sessions/:id/answer", c.quiz.SelectAnswer)
		quiz.POST("/sessions/:id/reset", c.quiz.ResetAnswer)
		quiz.POST("/sessions/:id/navigate", c.quiz.Navigate)
		quiz.POST("/sessions/:id/save", c.quiz.SaveAndAdvance)
		quiz.POST("/sessions/:id/submit", c.quiz.Submit)
		quiz.GET("/sessions/:id/review", c.quiz.Review)
		quiz.DELETE("/sessions/:id", c.quiz.Discard)
	}

	// 3. 观看进度
	progress := router.Group("/api/progress")
	progress.Use(middleware.TryAuthMiddleware(cfg))
	{
		progress.POST("/report", c.progress.Report)
		progress.GET("/:courseKey", c.progress.GetCourse)
		progress.GET("/:courseKey/aggregate", c.progress.Aggregate)
		progress.GET("/:courseKey/:videoId/completed", c.progress.IsCompleted)
	}

	// 4. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/courses/:courseKey/enroll", c.enrollment.Enroll)
		authGroup.GET("/courses/:courseKey/enrollment", c.enrollment.GetEnrollment)
		authGroup.GET("/my-learning", c.dashboard.GetMyLearning)
	}
}

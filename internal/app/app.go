package app

import (
	"context"
	"growthmindz_backend/internal/config"
	"growthmindz_backend/internal/controller"
	"growthmindz_backend/internal/repository"
	"growthmindz_backend/internal/service"
	"growthmindz_backend/pkg/database"
	"growthmindz_backend/pkg/logger"
	"growthmindz_backend/pkg/monitoring"
	"growthmindz_backend/pkg/security"
	"growthmindz_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	kv      repository.KVStore
	attempt *repository.AttemptRepository
}

type services struct {
	questionBank *service.QuestionBankService
	grading      *service.GradingService
	progress     *service.WatchProgressService
	enrollment   *service.EnrollmentService
	quiz         *service.QuizService
	dashboard    *service.DashboardService
}

type controllers struct {
	quiz       *controller.QuizController
	progress   *controller.ProgressController
	enrollment *controller.EnrollmentController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		kv:      repository.NewRedisKVStore(rdb),
		attempt: repository.NewAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.questionBank = service.NewQuestionBankService(cfg.QuestionBank)
	s.grading = service.NewGradingService(cfg.Grading)
	s.progress = service.NewWatchProgressService(repos.kv, cfg.Quiz.CompletionThreshold)
	s.enrollment = service.NewEnrollmentService(repos.kv)
	s.quiz = service.NewQuizService(cfg.Quiz, s.questionBank, s.grading, s.progress, repos.attempt, logger.Log)
	s.dashboard = service.NewDashboardService(s.progress, repos.attempt)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		quiz:       controller.NewQuizController(s.quiz),
		progress:   controller.NewProgressController(s.progress),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	// 回收闲置会话
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			ttl := time.Duration(a.Config.Quiz.SessionTTLMinutes) * time.Minute
			if n := s.quiz.ReapIdle(ttl); n > 0 {
				logger.Log.Info("reaped idle quiz sessions", zap.Int("count", n))
			}
		}
	}()
}

// ApplyConfig 配置热更新回调，转发测验参数给运行中的服务
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	if a.services != nil && a.services.quiz != nil {
		a.services.quiz.ApplyConfig(cfg.Quiz)
	}
	logger.Log.Info("config reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("growthmindz-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

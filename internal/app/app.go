package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiznight_backend/internal/config"
	"quiznight_backend/internal/controller"
	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/service"
	"quiznight_backend/internal/store"
	"quiznight_backend/pkg/logger"
	"quiznight_backend/pkg/monitoring"
	"quiznight_backend/pkg/security"
	"quiznight_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Store   *store.Store
	Origins *security.OriginList
}

type repositories struct {
	user     *repository.UserRepository
	question *repository.QuestionRepository
	score    *repository.ScoreRepository
	answer   *repository.AnswerRepository
	upload   *repository.UploadRepository
}

type services struct {
	auth        *service.AuthService
	quiz        *service.QuizService
	upload      *service.UploadService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	auth        *controller.AuthController
	quiz        *controller.QuizController
	upload      *controller.UploadController
	leaderboard *controller.LeaderboardController
	health      *controller.HealthController
}

func (a *App) initRepositories(s *store.Store) (*repositories, error) {
	user, err := repository.NewUserRepository(s)
	if err != nil {
		return nil, err
	}
	question, err := repository.NewQuestionRepository(s)
	if err != nil {
		return nil, err
	}
	score, err := repository.NewScoreRepository(s)
	if err != nil {
		return nil, err
	}
	answer, err := repository.NewAnswerRepository(s)
	if err != nil {
		return nil, err
	}
	upload, err := repository.NewUploadRepository(s)
	if err != nil {
		return nil, err
	}

	return &repositories{
		user:     user,
		question: question,
		score:    score,
		answer:   answer,
		upload:   upload,
	}, nil
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	provider, err := service.NewStorageProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:        service.NewAuthService(repos.user, repos.score, cfg),
		quiz:        service.NewQuizService(repos.question, repos.answer, repos.score),
		upload:      service.NewUploadService(repos.upload, repos.score, provider),
		leaderboard: service.NewLeaderboardService(repos.score),
	}, nil
}

func (a *App) initControllers(s *services, repos *repositories, st *store.Store) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, a.Config),
		quiz:        controller.NewQuizController(s.quiz),
		upload:      controller.NewUploadController(s.upload),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, repos.upload),
		health:      controller.NewHealthController(st),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.Origins = security.NewOriginList(cfg.CORS.AllowedOrigins)
	router.Use(security.CORS(a.Origins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig 接收热更新后的配置，仅刷新可在运行时调整的部分
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Origins.Update(cfg.CORS.AllowedOrigins)
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	st, err := store.New(cfg.Storage.DataPath)
	if err != nil {
		logger.Log.Fatal("Failed to initialize store", zap.Error(err))
		return nil, err
	}

	app := &App{
		Config: cfg,
		Store:  st,
	}

	repos, err := app.initRepositories(st)
	if err != nil {
		logger.Log.Fatal("Failed to initialize repositories", zap.Error(err))
		return nil, err
	}

	services, err := app.initServices(repos, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		return nil, err
	}

	controllers := app.initControllers(services, repos, st)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quiznight-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type != "minio" {
		router.Static("/uploads", cfg.Storage.UploadPath)
	}

	return app, nil
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

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

package app

import (
	"quiznight_backend/internal/config"
	"quiznight_backend/internal/middleware"
	"quiznight_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	router.GET("/health", c.health.HealthCheck)
	router.POST("/login", c.auth.Login)
	router.GET("/leaderboard", c.leaderboard.GetLeaderboard)
	router.GET("/uploads.json", c.leaderboard.GetUploadIndex)

	// 需要会话的路由
	authGroup := router.Group("/")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/question", c.quiz.GetQuestions)
		authGroup.POST("/answer", c.quiz.SubmitAnswer)
		authGroup.POST("/upload", c.upload.Upload)
	}
}

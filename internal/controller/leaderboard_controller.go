package controller

import (
	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/service"
	"quiznight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
	UploadRepo         *repository.UploadRepository
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService, uploadRepo *repository.UploadRepository) *LeaderboardController {
	return &LeaderboardController{
		LeaderboardService: leaderboardService,
		UploadRepo:         uploadRepo,
	}
}

// GetLeaderboard 处理 GET /leaderboard，公开接口
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	util.Success(ctx, c.LeaderboardService.Entries())
}

// GetUploadIndex 处理 GET /uploads.json，返回题目到文件名的完整记录
func (c *LeaderboardController) GetUploadIndex(ctx *gin.Context) {
	util.Success(ctx, c.UploadRepo.All())
}

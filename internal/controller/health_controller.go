package controller

import (
	"net/http"

	"quiznight_backend/internal/store"
	"quiznight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store *store.Store
}

func NewHealthController(s *store.Store) *HealthController {
	return &HealthController{Store: s}
}

// HealthCheck 检查数据目录可访问性
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Store.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": "up",
		},
	})
}

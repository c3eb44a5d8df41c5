package controller

import (
	"errors"
	"net/http"

	"quiznight_backend/internal/config"
	"quiznight_backend/internal/service"
	"quiznight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Cfg:         cfg,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 处理 POST /login，成功后通过HttpOnly Cookie下发会话令牌
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, util.ErrInvalidCredentials.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// 跨站前端需要 SameSite=None，要求 Secure
	ctx.SetSameSite(http.SameSiteNoneMode)
	ctx.SetCookie(
		c.Cfg.Session.CookieName,
		token,
		int(c.Cfg.Session.ExpireTime.Seconds()),
		"/",
		"",
		c.Cfg.Session.CookieSecure,
		true,
	)

	util.Success(ctx, gin.H{"success": true})
}

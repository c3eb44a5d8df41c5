package middleware

import (
	"strings"

	"quiznight_backend/internal/config"
	"quiznight_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 从会话Cookie解出用户名，Bearer头作为备用令牌来源
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(cfg.Session.CookieName)

		if tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseSessionToken(tokenString, cfg.Session.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

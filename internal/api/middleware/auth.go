package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sociocap/capgen_go_server/internal/pkg/jwt"
	"github.com/sociocap/capgen_go_server/internal/pkg/response"
)

const (
	UserIDKey = "userID"

	// SessionCookieName 浏览器页面流程使用的会话 cookie
	SessionCookieName = "session"
)

// Auth JWT 认证中间件，API 客户端走 Bearer 头，页面流程走 cookie
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err != nil {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// ExtractToken 从 Authorization 头或会话 cookie 里取令牌
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

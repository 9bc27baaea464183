package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sociocap/capgen_go_server/internal/pkg/jwt"
)

const (
	LandingPath   = "/"
	DashboardPath = "/dashboard"
	GeneratePath  = "/api/v1/captions/generate"
)

// Session 外部认证方下发的会话凭证
type Session struct {
	UserID string
}

// SessionReader 会话读取能力接口，跳转策略不依赖具体认证实现
type SessionReader interface {
	GetSession(c *gin.Context) (*Session, bool)
}

// JWTSessionReader 生产实现：从 Bearer 头或会话 cookie 解析 JWT
type JWTSessionReader struct {
	secret string
}

func NewJWTSessionReader(secret string) *JWTSessionReader {
	return &JWTSessionReader{secret: secret}
}

func (r *JWTSessionReader) GetSession(c *gin.Context) (*Session, bool) {
	tokenString := ExtractToken(c)
	if tokenString == "" {
		return nil, false
	}

	claims, err := jwt.ParseToken(tokenString, r.secret)
	if err != nil {
		return nil, false
	}

	return &Session{UserID: claims.UserID}, true
}

// Gatekeeper 会话跳转策略：
//   - 已登录访问首页 → 跳转控制台
//   - 未登录访问受保护路径（控制台、生成接口）→ 跳转首页
//   - 其余请求原样放行
func Gatekeeper(reader SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		_, authenticated := reader.GetSession(c)

		if authenticated && path == LandingPath {
			c.Redirect(http.StatusFound, DashboardPath)
			c.Abort()
			return
		}

		if !authenticated && isProtectedPath(path) {
			c.Redirect(http.StatusFound, LandingPath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func isProtectedPath(path string) bool {
	return strings.HasPrefix(path, DashboardPath) || path == GeneratePath
}

package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sociocap/capgen_go_server/internal/api/middleware"
	"github.com/sociocap/capgen_go_server/internal/model/dto"
	"github.com/sociocap/capgen_go_server/internal/pkg/response"
	"github.com/sociocap/capgen_go_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cookieTTL   int
}

func NewAuthHandler(authService *service.AuthService, cookieTTLHours int) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieTTL:   cookieTTLHours * 3600,
	}
}

// Register 邮箱注册
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.BadRequest(c, err.Error())
			return
		}
		log.Printf("Failed to register user: %v", err)
		response.ServerError(c, "")
		return
	}

	h.setSessionCookie(c, resp.Token)
	response.Success(c, resp)
}

// Login 邮箱登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		log.Printf("Failed to login user: %v", err)
		response.ServerError(c, "")
		return
	}

	h.setSessionCookie(c, resp.Token)
	response.Success(c, resp)
}

// Logout 退出登录，清除会话 cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, gin.H{"message": "logged out"})
}

// GithubAuth 跳转 GitHub 授权页
// GET /api/v1/auth/github
func (h *AuthHandler) GithubAuth(c *gin.Context) {
	url, err := h.authService.GetGithubAuthURL(c.Request.Context(), c.Query("redirect_uri"))
	if err != nil {
		log.Printf("Failed to build github auth url: %v", err)
		response.ServerError(c, "")
		return
	}

	c.Redirect(http.StatusFound, url)
}

// GithubCallback GitHub OAuth 回调。
// 每次登录都会刷新用户邮箱，首次登录建用户和默认订阅。
// GET /api/v1/auth/github/callback
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")

	resp, redirectURI, err := h.authService.GithubCallback(c.Request.Context(), state, code)
	if err != nil {
		log.Printf("Github callback failed: %v", err)
		// 授权失败回首页，不向客户端透出提供方错误
		c.Redirect(http.StatusFound, middleware.LandingPath)
		return
	}

	h.setSessionCookie(c, resp.Token)
	if redirectURI == "" {
		redirectURI = middleware.DashboardPath
	}
	c.Redirect(http.StatusFound, redirectURI)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, h.cookieTTL, "/", "", false, true)
}

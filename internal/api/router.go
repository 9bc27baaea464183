package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sociocap/capgen_go_server/config"
	"github.com/sociocap/capgen_go_server/internal/api/handler"
	"github.com/sociocap/capgen_go_server/internal/api/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	captionHandler *handler.CaptionHandler
	historyHandler *handler.HistoryHandler
	healthHandler  *handler.HealthHandler
	sessionReader  middleware.SessionReader
	cfg            *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	captionHandler *handler.CaptionHandler,
	historyHandler *handler.HistoryHandler,
	healthHandler *handler.HealthHandler,
	sessionReader middleware.SessionReader,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:    authHandler,
		captionHandler: captionHandler,
		historyHandler: historyHandler,
		healthHandler:  healthHandler,
		sessionReader:  sessionReader,
		cfg:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	// 会话跳转策略作用于整棵路由树
	engine.Use(middleware.Gatekeeper(r.sessionReader))

	// 页面
	engine.GET("/", r.landingPage)
	engine.GET("/dashboard", r.dashboardPage)

	api := engine.Group("/api/v1")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authHandler.Logout)
			auth.GET("/github", r.authHandler.GithubAuth)
			auth.GET("/github/callback", r.authHandler.GithubCallback)
		}

		// 公开接口 - 自检
		api.GET("/health/db", r.healthHandler.CheckDB)

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			authenticated.POST("/captions/generate", r.captionHandler.Generate)
			authenticated.GET("/history", r.historyHandler.List)
			authenticated.POST("/history", r.historyHandler.Save)
			authenticated.GET("/subscription", r.historyHandler.GetSubscription)
		}
	}

	return engine
}

func (r *Router) landingPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(
		`<html><body><h1>CapGen</h1><p>Sign in to generate social media captions.</p></body></html>`))
}

func (r *Router) dashboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(
		`<html><body><h1>Dashboard</h1><p>Generate captions and browse your history.</p></body></html>`))
}

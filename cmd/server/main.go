package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sociocap/capgen_go_server/config"
	"github.com/sociocap/capgen_go_server/internal/api"
	"github.com/sociocap/capgen_go_server/internal/api/handler"
	"github.com/sociocap/capgen_go_server/internal/api/middleware"
	"github.com/sociocap/capgen_go_server/internal/database"
	"github.com/sociocap/capgen_go_server/internal/pkg/genai"
	"github.com/sociocap/capgen_go_server/internal/pkg/oauth"
	"github.com/sociocap/capgen_go_server/internal/repository"
	"github.com/sociocap/capgen_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 初始化 Gemini 客户端（进程级单例）
	generator, err := genai.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	log.Printf("Gemini client ready (model=%s)", generator.Model())

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// 初始化 Service
	stateStore := oauth.NewStateStore(rdb)
	authService := service.NewAuthService(userRepo, stateStore, cfg)
	captionService := service.NewCaptionService(generator)
	historyService := service.NewHistoryService(contentRepo, subscriptionRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService, cfg.JWT.ExpireHours)
	captionHandler := handler.NewCaptionHandler(captionService)
	historyHandler := handler.NewHistoryHandler(historyService)
	healthHandler := handler.NewHealthHandler(db)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		captionHandler,
		historyHandler,
		healthHandler,
		middleware.NewJWTSessionReader(cfg.JWT.Secret),
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

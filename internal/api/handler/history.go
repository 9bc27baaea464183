package handler

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sociocap/capgen_go_server/internal/api/middleware"
	"github.com/sociocap/capgen_go_server/internal/model/dto"
	"github.com/sociocap/capgen_go_server/internal/pkg/response"
	"github.com/sociocap/capgen_go_server/internal/service"
)

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// List 历史记录，按创建时间倒序
// GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	items, err := h.historyService.GetUserHistory(userID)
	if err != nil {
		log.Printf("Failed to load history for user %s: %v", userID, err)
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"history": items})
}

// Save 保存一次生成结果
// POST /api/v1/history
func (h *HistoryHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	content, err := h.historyService.SaveGeneratedContent(userID, req.Prompt, req.Platform, req.Captions)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) || errors.Is(err, service.ErrEmptyPrompt) {
			response.BadRequest(c, err.Error())
			return
		}
		log.Printf("Failed to save content for user %s: %v", userID, err)
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"content": content})
}

// GetSubscription 当前用户的订阅
// GET /api/v1/subscription
func (h *HistoryHandler) GetSubscription(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	sub, err := h.historyService.GetUserSubscription(userID)
	if err != nil {
		log.Printf("Failed to load subscription for user %s: %v", userID, err)
		response.ServerError(c, "")
		return
	}
	if sub == nil {
		response.NotFound(c, "subscription not found")
		return
	}

	response.Success(c, gin.H{"subscription": sub})
}

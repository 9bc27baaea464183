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

type CaptionHandler struct {
	captionService *service.CaptionService
}

func NewCaptionHandler(captionService *service.CaptionService) *CaptionHandler {
	return &CaptionHandler{
		captionService: captionService,
	}
}

// Generate 生成文案
// POST /api/v1/captions/generate
// 只负责生成，不落库；保存由客户端调用 POST /api/v1/history 触发
func (h *CaptionHandler) Generate(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		response.Unauthorized(c, "")
		return
	}

	var req dto.GenerateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Server Error: %v", err)
		response.ServerError(c, "")
		return
	}

	captions, err := h.captionService.Generate(c.Request.Context(), req.Prompt, req.Platform)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			response.BadRequest(c, response.MsgNoPrompt)
			return
		}
		response.Error(c, http.StatusInternalServerError, response.MsgGenerationFailed)
		return
	}

	response.Success(c, dto.GenerateCaptionResponse{Captions: captions})
}

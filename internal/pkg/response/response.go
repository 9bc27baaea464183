package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 客户端可见的固定错误文案，外部服务的原始错误不直接下发
const (
	MsgNoPrompt         = "No prompt provided"
	MsgGenerationFailed = "Failed to generate captions. Please try again."
	MsgServerError      = "Failed to process request. Please try again."
	MsgAuthRequired     = "Authentication required"
)

// ErrorBody 错误响应结构 {"error": "..."}
type ErrorBody struct {
	Error string `json:"error"`
}

// Success 成功响应，原样下发数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// BadRequest 客户端参数错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 未认证
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = MsgAuthRequired
	}
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 资源不存在
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ServerError 服务端错误，统一兜底文案
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = MsgServerError
	}
	Error(c, http.StatusInternalServerError, message)
}

package dto

// SaveContentRequest 客户端在生成成功后主动保存结果
type SaveContentRequest struct {
	Prompt   string   `json:"prompt" binding:"required"`
	Platform string   `json:"platform" binding:"required"`
	Captions []string `json:"captions" binding:"required"`
}

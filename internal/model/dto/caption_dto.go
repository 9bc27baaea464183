package dto

// GenerateCaptionRequest 生成请求
type GenerateCaptionRequest struct {
	Prompt   string `json:"prompt"`
	Platform string `json:"platform"` // instagram / twitter
}

// GenerateCaptionResponse 生成结果，最多 5 条
type GenerateCaptionResponse struct {
	Captions []string `json:"captions"`
}

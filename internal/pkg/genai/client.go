package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client Gemini 文本生成客户端，进程级单例，启动时构造一次
type Client struct {
	client *genai.Client
	model  string
}

// NewClient 创建 Gemini 客户端
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-pro"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// GenerateText 发起一次同步生成调用并返回完整文本。
// 不做重试、不做超时控制，随请求 context 结束。
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}

	return result.Text(), nil
}

// Model 返回配置的模型名
func (c *Client) Model() string {
	return c.model
}

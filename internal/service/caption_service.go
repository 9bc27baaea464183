package service

import (
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrEmptyPrompt      = errors.New("no prompt provided")
	ErrGenerationFailed = errors.New("caption generation failed")
)

// MaxCaptions 单次生成最多返回的文案条数
const MaxCaptions = 5

// 平台指令，拼在用户内容前作为完整提示词
const (
	instagramInstruction = "You are a social media expert. Generate 5 different engaging Instagram captions for the following content. Each caption should:\n" +
		"1. Be under 2200 characters\n" +
		"2. Include relevant and trending hashtags\n" +
		"3. Be attention-grabbing and engaging\n" +
		"4. Use appropriate emojis\n" +
		"5. Be unique from the other captions\n" +
		"Format the response as 5 separate captions with a line break between each."

	twitterInstruction = "You are a social media expert. Generate 5 different engaging Twitter captions for the following content. Each caption should:\n" +
		"1. Be under 280 characters\n" +
		"2. Include 2-3 relevant hashtags\n" +
		"3. Be concise but engaging\n" +
		"4. Use emojis sparingly\n" +
		"5. Be unique from the other captions\n" +
		"Format the response as 5 separate captions with a line break between each."
)

// TextGenerator 外部生成模型的最小能力接口
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type CaptionService struct {
	generator TextGenerator
}

func NewCaptionService(generator TextGenerator) *CaptionService {
	return &CaptionService{generator: generator}
}

// Generate 为指定平台生成最多 5 条文案。
// 单次同步调用，不重试、不持久化；模型失败细节只落日志，不返回给调用方。
func (s *CaptionService) Generate(ctx context.Context, prompt, platform string) ([]string, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	text, err := s.generator.GenerateText(ctx, buildPrompt(prompt, platform))
	if err != nil {
		log.Printf("Gemini API error: %v", err)
		return nil, ErrGenerationFailed
	}

	if text == "" {
		log.Printf("Gemini API returned no captions")
		return nil, ErrGenerationFailed
	}

	return splitCaptions(text), nil
}

func buildPrompt(prompt, platform string) string {
	instruction := twitterInstruction
	if platform == "instagram" {
		instruction = instagramInstruction
	}
	return instruction + "\n\nContent to create captions for: " + prompt
}

// splitCaptions 按空行切分模型输出，去掉空白块，最多保留 5 条
func splitCaptions(text string) []string {
	captions := make([]string, 0, MaxCaptions)
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		captions = append(captions, block)
		if len(captions) == MaxCaptions {
			break
		}
	}
	return captions
}

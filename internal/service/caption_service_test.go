package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator 测试用的模型替身
type fakeGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func TestCaptionService_Generate_FiveBlocks(t *testing.T) {
	gen := &fakeGenerator{
		response: "Cozy vibes ☕ #coffee\n\nMorning ritual done right\n\nWhere ideas brew #cafe\n\nSip happens ☕\n\nFind your corner #cozy",
	}
	svc := NewCaptionService(gen)

	captions, err := svc.Generate(context.Background(), "A cozy coffee shop scene", "twitter")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Cozy vibes ☕ #coffee",
		"Morning ritual done right",
		"Where ideas brew #cafe",
		"Sip happens ☕",
		"Find your corner #cozy",
	}, captions)
	assert.Equal(t, 1, gen.calls)
}

func TestCaptionService_Generate_EmptyPrompt(t *testing.T) {
	gen := &fakeGenerator{response: "should never be used"}
	svc := NewCaptionService(gen)

	_, err := svc.Generate(context.Background(), "", "instagram")
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	// 空提示词不触发模型调用
	assert.Equal(t, 0, gen.calls)
}

func TestCaptionService_Generate_GeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exhausted")}
	svc := NewCaptionService(gen)

	_, err := svc.Generate(context.Background(), "sunset", "twitter")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestCaptionService_Generate_EmptyModelText(t *testing.T) {
	gen := &fakeGenerator{response: ""}
	svc := NewCaptionService(gen)

	_, err := svc.Generate(context.Background(), "sunset", "twitter")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestCaptionService_Generate_CapsAtFive(t *testing.T) {
	blocks := []string{"one", "two", "three", "four", "five", "six", "seven"}
	gen := &fakeGenerator{response: strings.Join(blocks, "\n\n")}
	svc := NewCaptionService(gen)

	captions, err := svc.Generate(context.Background(), "anything", "instagram")
	require.NoError(t, err)
	assert.Len(t, captions, 5)
	assert.Equal(t, blocks[:5], captions)
}

func TestCaptionService_Generate_DropsBlankBlocks(t *testing.T) {
	gen := &fakeGenerator{response: "  first  \n\n   \n\n\t\n\nsecond\n\n"}
	svc := NewCaptionService(gen)

	captions, err := svc.Generate(context.Background(), "anything", "twitter")
	require.NoError(t, err)

	// 空白块被丢弃，保留的条目已去掉首尾空白
	assert.Equal(t, []string{"first", "second"}, captions)
	for _, c := range captions {
		assert.NotEmpty(t, c)
	}
}

func TestCaptionService_Generate_PlatformInstruction(t *testing.T) {
	t.Run("instagram", func(t *testing.T) {
		gen := &fakeGenerator{response: "caption"}
		svc := NewCaptionService(gen)

		_, err := svc.Generate(context.Background(), "beach day", "instagram")
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Instagram captions")
		assert.Contains(t, gen.lastPrompt, "under 2200 characters")
		assert.Contains(t, gen.lastPrompt, "Content to create captions for: beach day")
	})

	t.Run("twitter", func(t *testing.T) {
		gen := &fakeGenerator{response: "caption"}
		svc := NewCaptionService(gen)

		_, err := svc.Generate(context.Background(), "beach day", "twitter")
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Twitter captions")
		assert.Contains(t, gen.lastPrompt, "under 280 characters")
	})

	t.Run("unknown platform falls back to twitter rules", func(t *testing.T) {
		gen := &fakeGenerator{response: "caption"}
		svc := NewCaptionService(gen)

		_, err := svc.Generate(context.Background(), "beach day", "tiktok")
		require.NoError(t, err)
		assert.Contains(t, gen.lastPrompt, "Twitter captions")
	})
}

package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sociocap/capgen_go_server/internal/model"
)

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		ID:    uuid.NewString(),
		Email: fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUserID 设置用户主键
func WithUserID(id string) func(*model.User) {
	return func(u *model.User) {
		u.ID = id
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// TestSubscription 创建测试订阅
func TestSubscription(t *testing.T, db *gorm.DB, userID string, opts ...func(*model.Subscription)) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		ID:           uuid.NewString(),
		UserID:       userID,
		Status:       model.SubscriptionStatusActive,
		Plan:         model.SubscriptionPlanUnlimited,
		CreditsLimit: model.DefaultCreditsLimit,
	}

	for _, opt := range opts {
		opt(sub)
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}

// WithStatus 设置订阅状态
func WithStatus(status string) func(*model.Subscription) {
	return func(s *model.Subscription) {
		s.Status = status
	}
}

// TestContent 创建测试生成记录
func TestContent(t *testing.T, db *gorm.DB, userID string, opts ...func(*model.GeneratedContent)) *model.GeneratedContent {
	t.Helper()

	content := &model.GeneratedContent{
		ID:       uuid.NewString(),
		UserID:   userID,
		Prompt:   fmt.Sprintf("Test prompt %d", time.Now().UnixNano()%10000),
		Platform: model.PlatformTwitter,
		Captions: model.StringArray{"caption one", "caption two"},
	}

	for _, opt := range opts {
		opt(content)
	}

	if err := db.Create(content).Error; err != nil {
		t.Fatalf("Failed to create test content: %v", err)
	}

	return content
}

// WithPlatform 设置平台
func WithPlatform(platform string) func(*model.GeneratedContent) {
	return func(c *model.GeneratedContent) {
		c.Platform = platform
	}
}

// WithPrompt 设置提示词
func WithPrompt(prompt string) func(*model.GeneratedContent) {
	return func(c *model.GeneratedContent) {
		c.Prompt = prompt
	}
}

// WithCreatedAt 设置创建时间
func WithCreatedAt(ts time.Time) func(*model.GeneratedContent) {
	return func(c *model.GeneratedContent) {
		c.CreatedAt = ts
	}
}

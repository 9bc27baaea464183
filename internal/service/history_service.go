package service

import (
	"errors"

	"github.com/sociocap/capgen_go_server/internal/model"
	"github.com/sociocap/capgen_go_server/internal/repository"
)

var ErrInvalidPlatform = errors.New("invalid platform")

// HistoryService 生成记录与订阅的读写，除平台枚举外不做业务校验，
// 存储层错误原样向上传递
type HistoryService struct {
	contentRepo      *repository.ContentRepository
	subscriptionRepo *repository.SubscriptionRepository
}

func NewHistoryService(contentRepo *repository.ContentRepository, subscriptionRepo *repository.SubscriptionRepository) *HistoryService {
	return &HistoryService{
		contentRepo:      contentRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// SaveGeneratedContent 保存一次生成结果
func (s *HistoryService) SaveGeneratedContent(userID, prompt, platform string, captions []string) (*model.GeneratedContent, error) {
	if platform != model.PlatformInstagram && platform != model.PlatformTwitter {
		return nil, ErrInvalidPlatform
	}
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	return s.contentRepo.Create(userID, prompt, platform, captions)
}

// GetUserHistory 按创建时间倒序返回用户历史记录
func (s *HistoryService) GetUserHistory(userID string) ([]model.GeneratedContent, error) {
	return s.contentRepo.ListByUser(userID)
}

// GetUserSubscription 返回用户订阅，不存在时为 nil
func (s *HistoryService) GetUserSubscription(userID string) (*model.Subscription, error) {
	return s.subscriptionRepo.GetByUserID(userID)
}

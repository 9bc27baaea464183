package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sociocap/capgen_go_server/internal/model"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create 插入一条生成记录，记录创建后不再修改
func (r *ContentRepository) Create(userID, prompt, platform string, captions []string) (*model.GeneratedContent, error) {
	content := &model.GeneratedContent{
		ID:       uuid.NewString(),
		UserID:   userID,
		Prompt:   prompt,
		Platform: platform,
		Captions: captions,
	}
	if err := r.db.Create(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

// ListByUser 按创建时间倒序返回用户的全部生成记录
func (r *ContentRepository) ListByUser(userID string) ([]model.GeneratedContent, error) {
	var contents []model.GeneratedContent
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

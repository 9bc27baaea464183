package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sociocap/capgen_go_server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateOrUpdate 按 id upsert 用户，已存在则刷新邮箱，并为新用户补默认订阅。
// 用户和订阅写入放在同一事务里，避免中途失败留下无订阅的用户。
func (r *UserRepository) CreateOrUpdate(id, email string) (*model.User, error) {
	user := &model.User{
		ID:    id,
		Email: email,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"email":      email,
				"updated_at": time.Now(),
			}),
		}).Create(user).Error; err != nil {
			return err
		}

		// 订阅已存在时忽略插入（user_id 唯一索引兜底并发）
		sub := &model.Subscription{
			ID:           uuid.NewString(),
			UserID:       id,
			Status:       model.SubscriptionStatusActive,
			Plan:         model.SubscriptionPlanUnlimited,
			CreditsLimit: model.DefaultCreditsLimit,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(sub).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByGithubID(githubID string) (*model.User, error) {
	var user model.User
	err := r.db.Where("github_id = ?", githubID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

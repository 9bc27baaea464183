package model

import (
	"time"
)

// User 主键来自外部认证方（OAuth subject 或注册时生成的 uuid）
type User struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Email        string    `gorm:"size:100;not null;index" json:"email"`
	PasswordHash *string   `gorm:"size:255" json:"-"`
	GithubID     *string   `gorm:"column:github_id;size:50;uniqueIndex" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

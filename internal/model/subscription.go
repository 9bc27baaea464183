package model

import (
	"time"
)

const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"

	SubscriptionPlanUnlimited = "unlimited"

	// DefaultCreditsLimit 目前实际不限量，额度字段为后续配额逻辑预留
	DefaultCreditsLimit = 1000000
)

// Subscription 每个用户一条（user_id 唯一索引保证）
type Subscription struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	UserID       string    `gorm:"size:64;not null;uniqueIndex" json:"user_id"`
	Status       string    `gorm:"size:20;not null;default:active" json:"status"` // active, cancelled
	Plan         string    `gorm:"size:20;not null;default:unlimited" json:"plan"`
	CreditsUsed  int       `gorm:"not null;default:0" json:"credits_used"`
	CreditsLimit int       `gorm:"not null;default:1000000" json:"credits_limit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

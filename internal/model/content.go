package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

const (
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
)

// StringArray 用于 JSON 数组字段
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = []string{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// GeneratedContent 一次生成的结果记录，创建后不可变
type GeneratedContent struct {
	ID        string      `gorm:"primaryKey;size:64" json:"id"`
	UserID    string      `gorm:"size:64;not null;index" json:"user_id"`
	Prompt    string      `gorm:"type:text;not null" json:"prompt"`
	Platform  string      `gorm:"size:20;not null" json:"platform"` // instagram, twitter
	Captions  StringArray `gorm:"type:json;not null" json:"captions"`
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
}

func (GeneratedContent) TableName() string {
	return "generated_content"
}

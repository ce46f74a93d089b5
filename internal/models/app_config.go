package models

import "time"

// AppConfig 自由键值配置表，存提示词模板等运行期配置
type AppConfig struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 预置配置键
const (
	ConfigKeyBriefingPrompt = "briefing_prompt"
)

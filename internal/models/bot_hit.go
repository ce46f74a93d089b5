package models

import "time"

// BotHit 爬虫访问记录
type BotHit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserAgent string    `gorm:"size:512" json:"user_agent"`
	Path      string    `gorm:"size:512" json:"path"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

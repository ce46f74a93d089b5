package models

import (
	"time"
)

// Verdict 标签：AI 给文章打的重要性等级
const (
	VerdictRegular   = "Regular"
	VerdictImportant = "Important"
	VerdictBreaking  = "Breaking"
)

// Article 简报文章元数据 + AI 判定结果
// 主键是 FreshRSS 条目的短 ID，条目本身由 FreshRSS 负责，这里只存增强数据
type Article struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	BriefDate   string    `gorm:"size:10;not null;index" json:"brief_date"` // YYYY-MM-DD
	Title       string    `gorm:"not null" json:"title"`
	Link        string    `json:"link"`
	SourceName  string    `json:"source_name"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`
	Summary     string    `gorm:"type:text" json:"summary"`  // AI 摘要
	Analysis    string    `gorm:"type:text" json:"analysis"` // AI 点评 (Markdown)
	Verdict     string    `gorm:"size:32;default:'Regular';index" json:"verdict"`
	Score       int       `gorm:"default:0" json:"score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

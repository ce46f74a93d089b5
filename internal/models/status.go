package models

import "time"

// DailyStatus 每日简报处理完成标记
// 由外部增强流程写入，前端据此显示 "处理中" / "已就绪"
type DailyStatus struct {
	Date      string    `gorm:"primaryKey;size:10" json:"date"` // YYYY-MM-DD
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

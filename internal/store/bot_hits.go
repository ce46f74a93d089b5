package store

import (
	"fmt"

	"dailybrief/internal/models"

	"gorm.io/gorm"
)

// BotHitStore 爬虫访问日志
type BotHitStore struct {
	db *gorm.DB
}

func NewBotHitStore(db *gorm.DB) *BotHitStore {
	return &BotHitStore{db: db}
}

// Record 记录一次爬虫访问
func (s *BotHitStore) Record(userAgent, path string) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	hit := models.BotHit{UserAgent: userAgent, Path: path}
	if err := s.db.Create(&hit).Error; err != nil {
		return fmt.Errorf("记录爬虫访问失败: %w", err)
	}
	return nil
}

// Recent 取最近的访问记录
func (s *BotHitStore) Recent(limit int) ([]models.BotHit, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var hits []models.BotHit
	err := s.db.Order("created_at DESC").Limit(limit).Find(&hits).Error
	if err != nil {
		return nil, fmt.Errorf("查询爬虫访问记录失败: %w", err)
	}
	return hits, nil
}

package store

import (
	"fmt"

	"dailybrief/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigStore 自由键值配置（提示词模板等）
type ConfigStore struct {
	db *gorm.DB
}

func NewConfigStore(db *gorm.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// Get 读取配置值，键不存在时返回空字符串
func (s *ConfigStore) Get(key string) (string, error) {
	if s.db == nil {
		return "", ErrNotConfigured
	}
	var cfg models.AppConfig
	err := s.db.First(&cfg, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("读取配置 %s 失败: %w", key, err)
	}
	return cfg.Value, nil
}

// Set 写入配置值（提示词同步时覆盖旧值）
func (s *ConfigStore) Set(key, value string) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	cfg := models.AppConfig{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&cfg).Error
	if err != nil {
		return fmt.Errorf("写入配置 %s 失败: %w", key, err)
	}
	return nil
}

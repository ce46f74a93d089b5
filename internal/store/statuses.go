package store

import (
	"fmt"

	"dailybrief/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusStore 每日简报完成标记的持久化层
type StatusStore struct {
	db *gorm.DB
}

func NewStatusStore(db *gorm.DB) *StatusStore {
	return &StatusStore{db: db}
}

// Range 取日期区间内的完成标记（含两端）
func (s *StatusStore) Range(start, end string) ([]models.DailyStatus, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var statuses []models.DailyStatus
	query := s.db.Model(&models.DailyStatus{})
	if start != "" {
		query = query.Where("date >= ?", start)
	}
	if end != "" {
		query = query.Where("date <= ?", end)
	}
	if err := query.Order("date DESC").Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("查询每日状态失败: %w", err)
	}
	return statuses, nil
}

// Get 取单日标记，不存在时返回 nil
func (s *StatusStore) Get(date string) (*models.DailyStatus, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var status models.DailyStatus
	err := s.db.First(&status, "date = ?", date).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询 %s 状态失败: %w", date, err)
	}
	return &status, nil
}

// Upsert 写入单日完成标记
func (s *StatusStore) Upsert(date string, completed bool) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	status := models.DailyStatus{Date: date, Completed: completed}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(&status).Error
	if err != nil {
		return fmt.Errorf("保存 %s 状态失败: %w", date, err)
	}
	return nil
}

package store

import (
	"fmt"

	"dailybrief/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleStore 文章增强数据的持久化层
type ArticleStore struct {
	db *gorm.DB
}

func NewArticleStore(db *gorm.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Upsert 写入或更新一条文章判定记录（按短 ID 冲突覆盖）
func (s *ArticleStore) Upsert(article *models.Article) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(article).Error
	if err != nil {
		return fmt.Errorf("保存文章判定失败: %w", err)
	}
	return nil
}

// GetByIDs 批量取文章判定，返回以短 ID 为键的映射
func (s *ArticleStore) GetByIDs(ids []string) (map[string]models.Article, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	result := make(map[string]models.Article, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var articles []models.Article
	if err := s.db.Where("id IN ?", ids).Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("查询文章判定失败: %w", err)
	}

	for _, a := range articles {
		result[a.ID] = a
	}
	return result, nil
}

// ListByDate 按简报日期取文章
func (s *ArticleStore) ListByDate(date string) ([]models.Article, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var articles []models.Article
	err := s.db.Where("brief_date = ?", date).
		Order("score DESC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("查询 %s 的文章失败: %w", date, err)
	}
	return articles, nil
}

// Dates 返回已有简报数据的日期列表（新的在前）
func (s *ArticleStore) Dates() ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var dates []string
	err := s.db.Model(&models.Article{}).
		Distinct("brief_date").
		Order("brief_date DESC").
		Pluck("brief_date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("查询日期列表失败: %w", err)
	}
	return dates, nil
}

// Search 调用数据库内置的全文检索函数
// search_articles 是 Postgres 侧定义的存储函数，对应 Supabase RPC
func (s *ArticleStore) Search(query string) ([]models.Article, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var articles []models.Article
	err := s.db.Raw("SELECT * FROM search_articles(?)", query).Scan(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("全文检索失败: %w", err)
	}
	return articles, nil
}

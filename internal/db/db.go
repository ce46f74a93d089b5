package db

import (
	"fmt"
	"log"

	"dailybrief/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New 建立数据库连接并完成迁移。
// 连接显式构造后注入各个 store，不使用包级单例，方便测试和控制初始化顺序。
func New(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL 未配置")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = conn.AutoMigrate(
		&models.Article{},
		&models.DailyStatus{},
		&models.AppConfig{},
		&models.BotHit{},
	)
	if err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}
	log.Println("Database migration completed")

	return conn, nil
}

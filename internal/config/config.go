package config

import (
	"fmt"
	"os"
	"time"
)

// 应用固定参考时区，日期归档、"今天"判断都以它为准
const ReferenceTimezone = "Asia/Shanghai"

// Config 汇总进程启动时读取的全部环境配置。
// 缺失数据库或管理员令牌配置时，相关端点直接失败（401/500），不做静默降级。
type Config struct {
	Port    string
	SiteURL string

	// 数据库 (Supabase Postgres)
	DatabaseURL string

	// FreshRSS API
	FreshRSSAPIURL   string
	FreshRSSAPIToken string

	// 管理与缓存刷新
	AdminAccessToken string
	RevalidateSecret string

	// AI 服务
	AIBaseURL string
	AIAPIKey  string
	AIModel   string

	location *time.Location
}

// Load 从环境变量构建配置
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		SiteURL:          getEnv("SITE_URL", "http://localhost:8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		FreshRSSAPIURL:   os.Getenv("FRESHRSS_API_URL"),
		FreshRSSAPIToken: os.Getenv("FRESHRSS_API_TOKEN"),
		AdminAccessToken: os.Getenv("ADMIN_ACCESS_TOKEN"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
		AIBaseURL:        getEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIAPIKey:         os.Getenv("AI_API_KEY"),
		AIModel:          getEnv("AI_MODEL", "gpt-4o-mini"),
	}

	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		return nil, fmt.Errorf("加载时区 %s 失败: %w", ReferenceTimezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

// Location 返回应用参考时区
func (c *Config) Location() *time.Location {
	return c.location
}

// Today 返回参考时区下的今天 (YYYY-MM-DD)
func (c *Config) Today() string {
	return time.Now().In(c.location).Format("2006-01-02")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

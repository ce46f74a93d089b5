package main

import (
	"log"

	"dailybrief/internal/cache"
	"dailybrief/internal/config"
	"dailybrief/internal/db"
	"dailybrief/internal/freshrss"
	"dailybrief/internal/handlers"
	"dailybrief/internal/router"
	"dailybrief/internal/services"
	"dailybrief/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 数据库未配置时不退出：数据相关端点会统一失败关闭（500）
	var conn *gorm.DB
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL 未配置，数据相关端点将返回 500")
	} else {
		conn, err = db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("初始化数据库失败: %v", err)
		}
	}

	// 进程内缓存
	dataCache, err := cache.New(500)
	if err != nil {
		log.Fatalf("创建缓存失败: %v", err)
	}

	// 全部依赖显式构造、注入，不用包级单例
	articleStore := store.NewArticleStore(conn)
	statusStore := store.NewStatusStore(conn)
	configStore := store.NewConfigStore(conn)
	botHitStore := store.NewBotHitStore(conn)

	rssClient := freshrss.NewClient(cfg.FreshRSSAPIURL, cfg.FreshRSSAPIToken)
	llmClient := services.NewLLMClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)

	briefingService := services.NewBriefingService(rssClient, articleStore, statusStore, dataCache, cfg.Location())
	enrichmentService := services.NewEnrichmentService(briefingService, llmClient, articleStore, statusStore, configStore, cfg.Location())
	revalidator := services.NewRevalidator(dataCache, cfg.SiteURL, cfg.Location())

	// Initialize Gin
	r := gin.Default()

	router.Register(r, router.Handlers{
		Briefing:   handlers.NewBriefingHandler(briefingService, articleStore, statusStore, cfg),
		Search:     handlers.NewSearchHandler(articleStore),
		Article:    handlers.NewArticleHandler(rssClient, dataCache),
		Revalidate: handlers.NewRevalidateHandler(revalidator, cfg),
		Auth:       handlers.NewAuthHandler(cfg),
		Admin:      handlers.NewAdminHandler(enrichmentService, revalidator, botHitStore, rssClient),
		SEO:        handlers.NewSEOHandler(articleStore, cfg),
	}, cfg, botHitStore)

	log.Printf("DailyBrief server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

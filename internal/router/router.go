package router

import (
	"dailybrief/internal/config"
	"dailybrief/internal/handlers"
	"dailybrief/internal/middleware"
	"dailybrief/internal/store"

	"github.com/gin-gonic/gin"
)

// Handlers 路由需要的全部处理器，由 main 显式构造后传入
type Handlers struct {
	Briefing   *handlers.BriefingHandler
	Search     *handlers.SearchHandler
	Article    *handlers.ArticleHandler
	Revalidate *handlers.RevalidateHandler
	Auth       *handlers.AuthHandler
	Admin      *handlers.AdminHandler
	SEO        *handlers.SEOHandler
}

// Register 挂载全部路由
func Register(r *gin.Engine, h Handlers, cfg *config.Config, botHits *store.BotHitStore) {
	// 爬虫访问记录
	r.Use(middleware.BotLogger(botHits))

	// 公共接口 (Public Routes)
	api := r.Group("/api")
	{
		api.GET("/briefing", h.Briefing.GetBriefing) // 单日简报
		api.GET("/dates", h.Briefing.GetDates)       // 可用日期
		api.GET("/statuses", h.Briefing.GetStatuses) // 每日完成标记
		api.GET("/search", h.Search.Search)          // 全文检索
		api.GET("/categories", h.Article.ListCategories)

		// 缓存刷新：密钥或 Cookie 二选一，处理器内部鉴权
		api.POST("/revalidate", h.Revalidate.Revalidate)
	}

	// 管理接口
	admin := r.Group("/api")
	admin.Use(middleware.AdminRequired(cfg.AdminAccessToken))
	{
		admin.POST("/statuses", h.Briefing.UpsertStatus)
		admin.POST("/articles/:id/state", h.Article.ToggleState)
		admin.GET("/admin/check", h.Auth.Check)
		admin.POST("/admin/enrich", h.Admin.Enrich)
		admin.POST("/admin/prompt", h.Admin.SyncPrompt)
		admin.POST("/admin/warmup", h.Admin.Warmup)
		admin.GET("/admin/bot-hits", h.Admin.BotHits)
		admin.GET("/admin/unread-counts", h.Admin.UnreadCounts)
		admin.POST("/admin/feeds/preview", h.Admin.FeedPreview)
	}

	// URL 登录
	r.GET("/auth/login", h.Auth.Login)
	r.GET("/auth/logout", h.Auth.Logout)

	// SEO
	r.GET("/sitemap.xml", h.SEO.SitemapXML)
	r.GET("/robots.txt", h.SEO.RobotsTxt)
	r.GET("/feed.xml", h.SEO.RSSFeed)
}

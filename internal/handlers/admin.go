package handlers

import (
	"net/http"
	"time"

	"dailybrief/internal/freshrss"
	"dailybrief/internal/services"
	"dailybrief/internal/store"
	"dailybrief/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/mmcdole/gofeed"
)

type AdminHandler struct {
	enrichment  *services.EnrichmentService
	revalidator *services.Revalidator
	botHits     *store.BotHitStore
	rss         *freshrss.Client
	feedParser  *gofeed.Parser
}

func NewAdminHandler(enrichment *services.EnrichmentService,
	revalidator *services.Revalidator, botHits *store.BotHitStore, rss *freshrss.Client) *AdminHandler {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	return &AdminHandler{
		enrichment:  enrichment,
		revalidator: revalidator,
		botHits:     botHits,
		rss:         rss,
		feedParser:  parser,
	}
}

type enrichRequest struct {
	Date string `json:"date"`
}

// Enrich 对指定日期跑一遍 AI 增强
func (h *AdminHandler) Enrich(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求体必须是 JSON")
		return
	}
	if !services.ValidDateShape(req.Date) {
		fail(c, http.StatusBadRequest, "日期格式必须为 YYYY-MM-DD")
		return
	}

	processed, err := h.enrichment.ProcessDate(req.Date)
	if err != nil {
		upstreamFail(c, "增强 "+req.Date+" 失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "processed": processed})
}

type syncPromptRequest struct {
	Prompt string `json:"prompt"`
}

// SyncPrompt 更新判定用的提示词模板
func (h *AdminHandler) SyncPrompt(c *gin.Context) {
	var req syncPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		fail(c, http.StatusBadRequest, "缺少 prompt 字段")
		return
	}

	if err := h.enrichment.SyncPrompt(req.Prompt); err != nil {
		upstreamFail(c, "同步提示词失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": true})
}

type warmupRequest struct {
	Dates []string `json:"dates"`
}

// Warmup 批量预热一组日期的缓存，固定并发分片，同步执行完返回
func (h *AdminHandler) Warmup(c *gin.Context) {
	var req warmupRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Dates) == 0 {
		fail(c, http.StatusBadRequest, "缺少 dates 字段")
		return
	}
	for _, date := range req.Dates {
		if !services.ValidDateShape(date) {
			fail(c, http.StatusBadRequest, "日期格式必须为 YYYY-MM-DD: "+date)
			return
		}
	}

	h.revalidator.Warmup(req.Dates)
	c.JSON(http.StatusOK, gin.H{"warmed": len(req.Dates)})
}

// BotHits 最近的爬虫访问记录
func (h *AdminHandler) BotHits(c *gin.Context) {
	limit := utils.StringToIntDefault(c.Query("limit"), 100)
	hits, err := h.botHits.Recent(limit)
	if err != nil {
		upstreamFail(c, "查询爬虫访问记录失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

// UnreadCounts 各源的未读计数，后台用来确认抓取是否跟上了
func (h *AdminHandler) UnreadCounts(c *gin.Context) {
	counts, err := h.rss.UnreadCounts()
	if err != nil {
		upstreamFail(c, "查询未读计数失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"max":    counts.Max,
		"counts": counts.UnreadCounts,
	})
}

type feedPreviewRequest struct {
	URL string `json:"url"`
}

type feedPreviewItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published,omitempty"`
}

// FeedPreview 解析候选订阅源，返回元信息和前几条样本，供后台添加前确认
func (h *AdminHandler) FeedPreview(c *gin.Context) {
	var req feedPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		fail(c, http.StatusBadRequest, "缺少 url 字段")
		return
	}

	feed, err := h.feedParser.ParseURL(req.URL)
	if err != nil {
		upstreamFail(c, "解析订阅源 "+req.URL+" 失败", err)
		return
	}

	iconURL := ""
	if feed.Image != nil {
		iconURL = feed.Image.URL
	}

	items := make([]feedPreviewItem, 0, 5)
	for i, item := range feed.Items {
		if i >= 5 {
			break
		}
		preview := feedPreviewItem{Title: item.Title, Link: item.Link}
		if item.PublishedParsed != nil {
			preview.Published = item.PublishedParsed.UTC().Format(time.RFC3339)
		}
		items = append(items, preview)
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   feed.Title,
		"iconUrl": iconURL,
		"items":   items,
	})
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"dailybrief/internal/cache"
	"dailybrief/internal/freshrss"

	"github.com/gin-gonic/gin"
)

const categoriesCacheKey = "categories"

type ArticleHandler struct {
	rss   *freshrss.Client
	cache *cache.Cache
}

func NewArticleHandler(rss *freshrss.Client, c *cache.Cache) *ArticleHandler {
	return &ArticleHandler{rss: rss, cache: c}
}

// ListCategories FreshRSS 的分类和用户标签列表。
// 状态标签 (state/) 和用户标签 (label/) 形态相同，靠 ID 前缀区分，这里不合并。
func (h *ArticleHandler) ListCategories(c *gin.Context) {
	if cached := h.cache.Get(categoriesCacheKey); cached != nil {
		if tags, ok := cached.([]freshrss.Tag); ok {
			c.JSON(http.StatusOK, gin.H{"categories": tags})
			return
		}
	}

	raw, err := h.rss.TagList()
	if err != nil {
		upstreamFail(c, "拉取分类失败", err)
		return
	}

	tags := make([]freshrss.Tag, 0, len(raw))
	for _, t := range raw {
		tags = append(tags, freshrss.Tag{
			ID:    t.ID,
			Label: tagLabel(t.ID),
			Count: t.Count,
		})
	}

	h.cache.Set(categoriesCacheKey, tags, 10*time.Minute)
	c.JSON(http.StatusOK, gin.H{"categories": tags})
}

// tagLabel 取标签 ID 最后一段作为展示名
func tagLabel(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 && idx+1 < len(id) {
		return id[idx+1:]
	}
	return id
}

type toggleStateRequest struct {
	State string `json:"state"` // read / starred
	Value bool   `json:"value"`
}

// ToggleState 切换文章的已读/收藏状态，调 FreshRSS 的 edit-tag 接口
func (h *ArticleHandler) ToggleState(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "缺少文章 ID")
		return
	}

	var req toggleStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求体必须是 JSON")
		return
	}

	var tag string
	switch req.State {
	case "read":
		tag = freshrss.TagRead
	case "starred":
		tag = freshrss.TagStarred
	default:
		fail(c, http.StatusBadRequest, "state 必须是 read 或 starred")
		return
	}

	addTag, removeTag := tag, ""
	if !req.Value {
		addTag, removeTag = "", tag
	}

	if err := h.rss.EditTag(id, addTag, removeTag); err != nil {
		upstreamFail(c, "修改文章状态失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": freshrss.ToShortID(id), "state": req.State, "value": req.Value})
}

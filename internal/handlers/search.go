package handlers

import (
	"net/http"

	"dailybrief/internal/store"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	articles *store.ArticleStore
}

func NewSearchHandler(articles *store.ArticleStore) *SearchHandler {
	return &SearchHandler{articles: articles}
}

// Search 全文检索，走数据库侧的 search_articles 函数
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		fail(c, http.StatusBadRequest, "缺少 query 参数")
		return
	}

	results, err := h.articles.Search(query)
	if err != nil {
		upstreamFail(c, "检索 "+query+" 失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}

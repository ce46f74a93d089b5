package handlers

import (
	"net/http"

	"dailybrief/internal/config"
	"dailybrief/internal/services"
	"dailybrief/internal/store"

	"github.com/gin-gonic/gin"
)

type BriefingHandler struct {
	briefing *services.BriefingService
	articles *store.ArticleStore
	statuses *store.StatusStore
	cfg      *config.Config
}

func NewBriefingHandler(briefing *services.BriefingService, articles *store.ArticleStore,
	statuses *store.StatusStore, cfg *config.Config) *BriefingHandler {
	return &BriefingHandler{
		briefing: briefing,
		articles: articles,
		statuses: statuses,
		cfg:      cfg,
	}
}

// GetBriefing 单日简报，date 省略时取参考时区的今天
func (h *BriefingHandler) GetBriefing(c *gin.Context) {
	date := c.DefaultQuery("date", h.cfg.Today())
	if !services.ValidDateShape(date) {
		fail(c, http.StatusBadRequest, "日期格式必须为 YYYY-MM-DD")
		return
	}

	briefing, err := h.briefing.GetDaily(date)
	if err != nil {
		upstreamFail(c, "获取简报 "+date+" 失败", err)
		return
	}

	c.JSON(http.StatusOK, briefing)
}

// GetDates 已有简报数据的日期列表
func (h *BriefingHandler) GetDates(c *gin.Context) {
	dates, err := h.articles.Dates()
	if err != nil {
		upstreamFail(c, "查询日期列表失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetStatuses 日期区间内的每日完成标记
func (h *BriefingHandler) GetStatuses(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start != "" && !services.ValidDateShape(start) {
		fail(c, http.StatusBadRequest, "start 格式必须为 YYYY-MM-DD")
		return
	}
	if end != "" && !services.ValidDateShape(end) {
		fail(c, http.StatusBadRequest, "end 格式必须为 YYYY-MM-DD")
		return
	}

	statuses, err := h.statuses.Range(start, end)
	if err != nil {
		upstreamFail(c, "查询每日状态失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

type upsertStatusRequest struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// UpsertStatus 管理端写单日完成标记
func (h *BriefingHandler) UpsertStatus(c *gin.Context) {
	var req upsertStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求体必须是 JSON")
		return
	}
	if !services.ValidDateShape(req.Date) {
		fail(c, http.StatusBadRequest, "日期格式必须为 YYYY-MM-DD")
		return
	}

	if err := h.statuses.Upsert(req.Date, req.Completed); err != nil {
		upstreamFail(c, "保存每日状态失败", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "completed": req.Completed})
}

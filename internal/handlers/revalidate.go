package handlers

import (
	"errors"
	"net/http"

	"dailybrief/internal/config"
	"dailybrief/internal/middleware"
	"dailybrief/internal/services"

	"github.com/gin-gonic/gin"
)

type RevalidateHandler struct {
	revalidator *services.Revalidator
	cfg         *config.Config
}

func NewRevalidateHandler(revalidator *services.Revalidator, cfg *config.Config) *RevalidateHandler {
	return &RevalidateHandler{revalidator: revalidator, cfg: cfg}
}

type revalidateRequest struct {
	Date   string `json:"date"`
	Secret string `json:"secret"`
}

// Revalidate 定向缓存刷新。
// 授权二选一：预共享密钥，或管理员 Cookie。两者都不中时返回笼统的 401，
// 不提示是哪个校验失败，也不产生任何副作用。
func (h *RevalidateHandler) Revalidate(c *gin.Context) {
	var req revalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "请求体必须是 JSON")
		return
	}

	if !h.authorized(c, req.Secret) {
		fail(c, http.StatusUnauthorized, "未授权")
		return
	}

	if err := h.revalidator.Revalidate(req.Date); err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		upstreamFail(c, "刷新缓存失败", err)
		return
	}

	// 预热在后台进行，这里不等它
	c.JSON(http.StatusOK, gin.H{"revalidated": true, "date": req.Date})
}

func (h *RevalidateHandler) authorized(c *gin.Context, secret string) bool {
	if h.cfg.RevalidateSecret != "" && secret == h.cfg.RevalidateSecret {
		return true
	}
	return middleware.AdminAuthorized(c, h.cfg.AdminAccessToken)
}

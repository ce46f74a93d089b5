package handlers

import (
	"net/http"

	"dailybrief/internal/config"
	"dailybrief/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Cookie 有效期 90 天
const siteTokenMaxAge = 90 * 24 * 3600

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login URL 登录：带对的 access token 访问一次，种下会话 Cookie。
// 之后的请求都只比对 Cookie，URL 里不再出现令牌。
func (h *AuthHandler) Login(c *gin.Context) {
	if h.cfg.AdminAccessToken == "" {
		fail(c, http.StatusInternalServerError, "服务未配置")
		return
	}

	token := c.Query("token")
	if token != h.cfg.AdminAccessToken {
		fail(c, http.StatusUnauthorized, "未授权")
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SiteTokenCookie, token, siteTokenMaxAge, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout 清掉会话 Cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SiteTokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// Check 管理员登录态检查，路由上挂了 AdminRequired，走到这里就是已授权
func (h *AuthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

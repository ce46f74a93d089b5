package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 管理员会话 Cookie 名，值与服务端令牌逐字节比较
const SiteTokenCookie = "site_token"

// AdminAuthorized 判断请求是否带了有效的管理员 Cookie
func AdminAuthorized(c *gin.Context, adminToken string) bool {
	if adminToken == "" {
		return false
	}
	token, err := c.Cookie(SiteTokenCookie)
	return err == nil && token == adminToken
}

// AdminRequired 管理端点守卫。
// 令牌未配置时直接 500 关死，不做静默降级；校验失败统一返回笼统的 401。
func AdminRequired(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "服务未配置"})
			return
		}
		if !AdminAuthorized(c, adminToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未授权"})
			return
		}
		c.Next()
	}
}

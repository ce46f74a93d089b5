package middleware

import (
	"log"
	"regexp"

	"dailybrief/internal/store"

	"github.com/gin-gonic/gin"
)

var botPattern = regexp.MustCompile(`(?i)bot|crawler|spider|slurp|bingpreview|facebookexternalhit`)

// BotLogger 记录爬虫访问。写库异步进行，失败只记日志，不影响请求本身。
func BotLogger(hits *store.BotHitStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ua := c.Request.UserAgent()
		if ua != "" && botPattern.MatchString(ua) {
			path := c.Request.URL.Path
			go func() {
				if err := hits.Record(ua, path); err != nil {
					log.Printf("记录爬虫访问失败: %v", err)
				}
			}()
		}
		c.Next()
	}
}

package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"dailybrief/internal/config"
	"dailybrief/internal/store"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	articles *store.ArticleStore
	cfg      *config.Config
}

func NewSEOHandler(articles *store.ArticleStore, cfg *config.Config) *SEOHandler {
	return &SEOHandler{articles: articles, cfg: cfg}
}

// RobotsTxt 返回robots.txt内容
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	content := fmt.Sprintf(`User-agent: *
Allow: /

# 禁止爬取管理接口
Disallow: /api/admin/
Disallow: /auth/

# Sitemap位置
Sitemap: %s/sitemap.xml

Crawl-delay: 1
`, h.cfg.SiteURL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// SitemapXML 动态生成sitemap.xml：首页 + 按日归档页
func (h *SEOHandler) SitemapXML(c *gin.Context) {
	siteURL := h.cfg.SiteURL
	now := time.Now().In(h.cfg.Location()).Format("2006-01-02")

	xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`

	// 首页 - 最高优先级,每天更新
	xml += fmt.Sprintf(`  <url>
    <loc>%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
`, siteURL, now)

	// 归档页(限制一年,避免sitemap过大)
	dates, err := h.articles.Dates()
	if err != nil {
		upstreamFail(c, "生成 sitemap 失败", err)
		return
	}
	if len(dates) > 365 {
		dates = dates[:365]
	}

	for i, date := range dates {
		// 近期日期优先级更高
		priority := 0.6
		changefreq := "weekly"
		if i < 7 {
			priority = 0.8
			changefreq = "daily"
		} else if i < 30 {
			priority = 0.7
		}

		xml += fmt.Sprintf(`  <url>
    <loc>%s/date/%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, siteURL, date, date, changefreq, priority)
	}

	xml += `</urlset>`

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, xml)
}

// RSSFeed 生成最新一期简报的 RSS 2.0 feed
func (h *SEOHandler) RSSFeed(c *gin.Context) {
	siteURL := h.cfg.SiteURL
	now := time.Now()

	dates, err := h.articles.Dates()
	if err != nil || len(dates) == 0 {
		if err != nil {
			upstreamFail(c, "生成 feed 失败", err)
			return
		}
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(http.StatusOK, emptyFeed(siteURL, now))
		return
	}

	latest := dates[0]
	articles, err := h.articles.ListByDate(latest)
	if err != nil {
		upstreamFail(c, "生成 feed 失败", err)
		return
	}

	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>每日简报</title>
    <link>` + siteURL + `</link>
    <description>AI 精选的每日资讯简报</description>
    <language>zh-CN</language>
    <lastBuildDate>` + now.Format(time.RFC1123Z) + `</lastBuildDate>
    <atom:link href="` + siteURL + `/feed.xml" rel="self" type="application/rss+xml"/>
`

	for _, article := range articles {
		link := article.Link
		if link == "" {
			link = fmt.Sprintf("%s/date/%s", siteURL, latest)
		}

		rss += `    <item>
      <title>` + escapeXML(article.Title) + `</title>
      <link>` + link + `</link>
      <description><![CDATA[` + cdataEscape(article.Summary) + `]]></description>
      <category>` + escapeXML(article.Verdict) + `</category>
      <pubDate>` + article.PublishedAt.Format(time.RFC1123Z) + `</pubDate>
      <guid isPermaLink="false">` + escapeXML(article.ID) + `</guid>
    </item>
`
	}

	rss += `  </channel>
</rss>`

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

func emptyFeed(siteURL string, now time.Time) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>每日简报</title>
    <link>` + siteURL + `</link>
    <description>AI 精选的每日资讯简报</description>
    <lastBuildDate>` + now.Format(time.RFC1123Z) + `</lastBuildDate>
  </channel>
</rss>`
}

// escapeXML 转义XML特殊字符
func escapeXML(s string) string {
	// 使用html.EscapeString处理XML转义,它能正确处理中文
	return html.EscapeString(s)
}

// cdataEscape 切断正文里的 "]]>"，否则 CDATA 区块会被提前终止
func cdataEscape(s string) string {
	return strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
}

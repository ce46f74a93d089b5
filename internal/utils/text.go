package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanSummary 把订阅源摘要里的 HTML 清成纯文本：去标签、还原实体、
// 压缩空白，超过 maxRunes 时按字符截断加省略号
func CleanSummary(raw string, maxRunes int) string {
	text := strictPolicy.Sanitize(raw)
	text = html.UnescapeString(text)
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if maxRunes > 0 && len(runes) > maxRunes {
		return string(runes[:maxRunes]) + "..."
	}
	return text
}

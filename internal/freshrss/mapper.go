package freshrss

import "time"

// MapItem 把原始条目规整为内部文章记录。
// 所有可选字段缺失时取空值，映射永远不会失败：
//   - link 取第一个 alternate 的地址
//   - published 由 Unix 秒转为 ISO-8601 UTC
//   - tags 为 categories 与 annotation 标签 ID 的拼接，保序且不去重
func MapItem(item StreamItem) Article {
	link := ""
	if len(item.Alternate) > 0 {
		link = item.Alternate[0].Href
	}

	sourceName := ""
	if item.Origin != nil {
		sourceName = item.Origin.Title
	}

	summary := ""
	if item.Summary != nil {
		summary = item.Summary.Content
	}

	tags := make([]string, 0, len(item.Categories)+len(item.Annotations))
	tags = append(tags, item.Categories...)
	for _, a := range item.Annotations {
		tags = append(tags, a.ID)
	}

	return Article{
		ID:         item.ID,
		Title:      item.Title,
		Link:       link,
		SourceName: sourceName,
		Published:  time.UnixMilli(item.Published * 1000).UTC().Format(time.RFC3339),
		Summary:    summary,
		Tags:       tags,
	}
}

// MapItems 批量映射
func MapItems(items []StreamItem) []Article {
	articles := make([]Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, MapItem(item))
	}
	return articles
}

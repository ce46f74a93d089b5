package freshrss

// FreshRSS 的 Google Reader 兼容 API 返回的原始 JSON 结构。
// 字段全部按可缺省处理，映射时再补默认值（见 mapper.go）。

// StreamResponse stream/contents 响应
type StreamResponse struct {
	ID           string       `json:"id"`
	Updated      int64        `json:"updated"`
	Continuation string       `json:"continuation"`
	Items        []StreamItem `json:"items"`
}

// StreamItem 单篇条目的原始形态
type StreamItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Published   int64        `json:"published"` // Unix 秒
	Alternate   []Alternate  `json:"alternate"`
	Origin      *Origin      `json:"origin"`
	Categories  []string     `json:"categories"`
	Annotations []Annotation `json:"annotations"`
	Summary     *ItemContent `json:"summary"`
}

// Alternate 条目的外链
type Alternate struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

// Origin 条目来源订阅源
type Origin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

// Annotation 用户标注，携带标签 ID
type Annotation struct {
	ID string `json:"id"`
}

// ItemContent 条目正文/摘要
type ItemContent struct {
	Content string `json:"content"`
}

// TagListResponse tag/list 响应
type TagListResponse struct {
	Tags []RawTag `json:"tags"`
}

// RawTag 原始标签条目
type RawTag struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// UnreadCountResponse unread-count 响应
type UnreadCountResponse struct {
	Max          int           `json:"max"`
	UnreadCounts []UnreadCount `json:"unreadcounts"`
}

// UnreadCount 单个流的未读计数
type UnreadCount struct {
	ID                  string `json:"id"`
	Count               int    `json:"count"`
	NewestItemTimestamp string `json:"newestItemTimestampUsec"`
}

// Article 映射后的内部文章记录
type Article struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	SourceName string   `json:"sourceName"`
	Published  string   `json:"published"` // ISO-8601 UTC
	Summary    string   `json:"summary,omitempty"`
	Tags       []string `json:"tags"`
}

// Tag 分类或用户标签
// 两个命名空间（state/ 状态标签和 label/ 用户标签）共用同一形态，靠 ID 前缀区分
type Tag struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count,omitempty"`
}

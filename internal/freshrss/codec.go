package freshrss

import "strings"

// Google Reader 条目 ID 的固定前缀。
// 短 ID 与完整 ID 是同一实体的两种表示，必须无损互转。
const ItemIDPrefix = "tag:google.com,2005:reader/item/"

// ToShortID 去掉完整 ID 的固定前缀（大小写不敏感）。
// 输入本来就是短 ID 时原样返回，空串返回空串，从不报错。
func ToShortID(fullID string) string {
	if fullID == "" {
		return ""
	}
	if len(fullID) >= len(ItemIDPrefix) &&
		strings.EqualFold(fullID[:len(ItemIDPrefix)], ItemIDPrefix) {
		return fullID[len(ItemIDPrefix):]
	}
	return fullID
}

// ToFullID 给短 ID 补上固定前缀。
// 已带前缀的不重复加；含冒号的视为其他 URN 方案的完整 ID（如 UUID URN），原样返回。
func ToFullID(shortID string) string {
	if shortID == "" {
		return ""
	}
	if len(shortID) >= len(ItemIDPrefix) &&
		strings.EqualFold(shortID[:len(ItemIDPrefix)], ItemIDPrefix) {
		return shortID
	}
	if strings.Contains(shortID, ":") {
		return shortID
	}
	return ItemIDPrefix + shortID
}

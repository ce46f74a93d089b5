package utils

import (
	"strconv"
)

// StringToIntDefault 解析失败或非正数时返回 fallback，用于查询参数
func StringToIntDefault(s string, fallback int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return fallback
	}
	return i
}

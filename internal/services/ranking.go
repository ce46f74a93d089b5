package services

import (
	"sort"

	"dailybrief/internal/models"
)

// 加权排序的固定参数：分数权重与重要性加成表
const rankScoreWeight = 10

var importanceBonus = map[string]int{
	models.VerdictBreaking:  200,
	models.VerdictImportant: 100,
	models.VerdictRegular:   0,
}

// articleScore 取 AI 分数，缺失判定按 0 分
func articleScore(a BriefingArticle) int {
	if a.Verdict == nil {
		return 0
	}
	return a.Verdict.Score
}

// SortByScore 按 AI 分数降序，生产默认策略
func SortByScore(articles []BriefingArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articleScore(articles[i]) > articleScore(articles[j])
	})
}

// SortByWeightedScore 按 (分数 × 权重) + 重要性加成 降序。
// 上游分组已经按重要性分band，组内这个加成项不改变顺序，
// 但跨组的平铺列表仍然依赖它，保留这套排序，不要当成多余代码删掉。
func SortByWeightedScore(articles []BriefingArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return weightedScore(articles[i]) > weightedScore(articles[j])
	})
}

func weightedScore(a BriefingArticle) int {
	if a.Verdict == nil {
		return 0
	}
	// 未知标签加成按 0 处理
	return a.Verdict.Score*rankScoreWeight + importanceBonus[a.Verdict.Label]
}

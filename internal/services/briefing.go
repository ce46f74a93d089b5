package services

import (
	"fmt"
	"time"

	"dailybrief/internal/cache"
	"dailybrief/internal/freshrss"
	"dailybrief/internal/models"
	"dailybrief/internal/store"
	"dailybrief/internal/utils"
)

const (
	briefingCacheTTL = 10 * time.Minute
	streamPageSize   = 200
	streamMaxPages   = 5
)

// VerdictInfo AI 判定，随文章一起返回
type VerdictInfo struct {
	Label        string `json:"label"`
	Score        int    `json:"score"`
	Summary      string `json:"summary,omitempty"`
	AnalysisHTML string `json:"analysisHtml,omitempty"`
}

// BriefingArticle 映射后的文章加上可选的 AI 判定
type BriefingArticle struct {
	freshrss.Article
	Verdict *VerdictInfo `json:"verdict,omitempty"`
}

// BriefingGroup 按重要性分出的一组文章
type BriefingGroup struct {
	Label    string            `json:"label"`
	Articles []BriefingArticle `json:"articles"`
}

// DailyBriefing 单日简报
type DailyBriefing struct {
	Date      string          `json:"date"`
	Completed bool            `json:"completed"`
	Total     int             `json:"total"`
	Groups    []BriefingGroup `json:"groups"`
}

// BriefingService 组装每日简报：FreshRSS 拉条目，数据库补判定，分组排序后缓存
type BriefingService struct {
	rss      *freshrss.Client
	articles *store.ArticleStore
	statuses *store.StatusStore
	cache    *cache.Cache
	loc      *time.Location
}

func NewBriefingService(rss *freshrss.Client, articles *store.ArticleStore,
	statuses *store.StatusStore, c *cache.Cache, loc *time.Location) *BriefingService {
	return &BriefingService{
		rss:      rss,
		articles: articles,
		statuses: statuses,
		cache:    c,
		loc:      loc,
	}
}

// GetDaily 取单日简报，带缓存
func (s *BriefingService) GetDaily(date string) (*DailyBriefing, error) {
	if cached := s.cache.Get(cache.BriefingKey(date)); cached != nil {
		if briefing, ok := cached.(*DailyBriefing); ok {
			return briefing, nil
		}
	}

	briefing, err := s.buildDaily(date)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cache.BriefingKey(date), briefing, briefingCacheTTL)
	return briefing, nil
}

func (s *BriefingService) buildDaily(date string) (*DailyBriefing, error) {
	items, err := s.fetchDayItems(date)
	if err != nil {
		return nil, err
	}

	articles := freshrss.MapItems(items)

	// 摘要来自订阅源 HTML，统一清洗
	for i := range articles {
		articles[i].Summary = utils.CleanSummary(articles[i].Summary, 300)
	}

	shortIDs := make([]string, 0, len(articles))
	for _, a := range articles {
		shortIDs = append(shortIDs, freshrss.ToShortID(a.ID))
	}

	verdicts := map[string]models.Article{}
	if s.articles != nil {
		verdicts, err = s.articles.GetByIDs(shortIDs)
		if err != nil {
			return nil, err
		}
	}

	enriched := make([]BriefingArticle, 0, len(articles))
	for _, a := range articles {
		ba := BriefingArticle{Article: a}
		if v, ok := verdicts[freshrss.ToShortID(a.ID)]; ok {
			info := &VerdictInfo{
				Label:   v.Verdict,
				Score:   v.Score,
				Summary: v.Summary,
			}
			if v.Analysis != "" {
				info.AnalysisHTML = string(utils.RenderMarkdown(v.Analysis))
			}
			ba.Verdict = info
		}
		enriched = append(enriched, ba)
	}

	completed := false
	if s.statuses != nil {
		status, err := s.statuses.Get(date)
		if err == nil && status != nil {
			completed = status.Completed
		}
	}

	return &DailyBriefing{
		Date:      date,
		Completed: completed,
		Total:     len(enriched),
		Groups:    groupByImportance(enriched),
	}, nil
}

// fetchDayItems 按参考时区的自然日窗口分页拉取条目
func (s *BriefingService) fetchDayItems(date string) ([]freshrss.StreamItem, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("无效日期 %s: %w", date, err)
	}
	start := day.Unix()
	end := day.Add(24 * time.Hour).Unix()

	var items []freshrss.StreamItem
	continuation := ""
	for page := 0; page < streamMaxPages; page++ {
		resp, err := s.rss.StreamContents(freshrss.StreamReadingList, freshrss.StreamOptions{
			Count:        streamPageSize,
			Continuation: continuation,
			StartTime:    start,
			EndTime:      end,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, resp.Items...)
		if resp.Continuation == "" {
			break
		}
		continuation = resp.Continuation
	}
	return items, nil
}

// groupByImportance 按重要性分组，组内按分数降序。
// 分组顺序固定：Breaking、Important、Regular，空组不输出。
func groupByImportance(articles []BriefingArticle) []BriefingGroup {
	buckets := map[string][]BriefingArticle{}
	for _, a := range articles {
		label := models.VerdictRegular
		if a.Verdict != nil && a.Verdict.Label != "" {
			label = a.Verdict.Label
		}
		// 未知标签并入 Regular，避免该组在输出里丢失
		if _, known := importanceBonus[label]; !known {
			label = models.VerdictRegular
		}
		buckets[label] = append(buckets[label], a)
	}

	groups := make([]BriefingGroup, 0, 3)
	for _, label := range []string{models.VerdictBreaking, models.VerdictImportant, models.VerdictRegular} {
		group := buckets[label]
		if len(group) == 0 {
			continue
		}
		SortByScore(group)
		groups = append(groups, BriefingGroup{Label: label, Articles: group})
	}
	return groups
}

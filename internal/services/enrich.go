package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"dailybrief/internal/freshrss"
	"dailybrief/internal/models"
	"dailybrief/internal/store"
)

// 默认提示词模板，可被 app_configs 里同步的版本覆盖
const defaultPrompt = `你是资讯编辑。阅读下面的文章标题和摘要，输出 JSON：
{"verdict": "Regular|Important|Breaking", "score": 0-100, "summary": "一句话中文摘要", "analysis": "两三句点评，Markdown"}
只输出 JSON，不要其他内容。

标题: %s
摘要: %s`

// verdictPayload 模型输出的判定结构
type verdictPayload struct {
	Verdict  string `json:"verdict"`
	Score    int    `json:"score"`
	Summary  string `json:"summary"`
	Analysis string `json:"analysis"`
}

// EnrichmentService 跑一个日期的 AI 增强：逐篇判定、落库、写完成标记
type EnrichmentService struct {
	briefing *BriefingService
	llm      *LLMClient
	articles *store.ArticleStore
	statuses *store.StatusStore
	configs  *store.ConfigStore
	loc      *time.Location
}

func NewEnrichmentService(briefing *BriefingService, llm *LLMClient,
	articles *store.ArticleStore, statuses *store.StatusStore,
	configs *store.ConfigStore, loc *time.Location) *EnrichmentService {
	return &EnrichmentService{
		briefing: briefing,
		llm:      llm,
		articles: articles,
		statuses: statuses,
		configs:  configs,
		loc:      loc,
	}
}

// ProcessDate 对指定日期的全部条目生成判定并入库，返回处理成功的篇数。
// 单篇失败只记日志继续，整体失败（拉取不到条目）才返回错误。
func (s *EnrichmentService) ProcessDate(date string) (int, error) {
	items, err := s.briefing.fetchDayItems(date)
	if err != nil {
		return 0, err
	}

	prompt := s.promptTemplate()

	processed := 0
	for _, item := range items {
		article := freshrss.MapItem(item)
		verdict, err := s.judge(prompt, article)
		if err != nil {
			log.Printf("判定文章 %s 失败: %v", article.ID, err)
			continue
		}

		publishedAt, _ := time.Parse(time.RFC3339, article.Published)
		record := &models.Article{
			ID:          freshrss.ToShortID(article.ID),
			BriefDate:   date,
			Title:       article.Title,
			Link:        article.Link,
			SourceName:  article.SourceName,
			PublishedAt: publishedAt,
			Summary:     verdict.Summary,
			Analysis:    verdict.Analysis,
			Verdict:     normalizeVerdict(verdict.Verdict),
			Score:       verdict.Score,
		}
		if err := s.articles.Upsert(record); err != nil {
			log.Printf("保存文章 %s 判定失败: %v", record.ID, err)
			continue
		}
		processed++
	}

	if err := s.statuses.Upsert(date, true); err != nil {
		return processed, err
	}

	log.Printf("日期 %s 增强完成，共处理 %d/%d 篇", date, processed, len(items))
	return processed, nil
}

// SyncPrompt 覆盖提示词模板（提示词同步）
func (s *EnrichmentService) SyncPrompt(value string) error {
	return s.configs.Set(models.ConfigKeyBriefingPrompt, value)
}

func (s *EnrichmentService) promptTemplate() string {
	if s.configs != nil {
		if v, err := s.configs.Get(models.ConfigKeyBriefingPrompt); err == nil && v != "" {
			return v
		}
	}
	return defaultPrompt
}

func (s *EnrichmentService) judge(prompt string, article freshrss.Article) (*verdictPayload, error) {
	content, err := s.llm.Chat(fmt.Sprintf(prompt, article.Title, article.Summary))
	if err != nil {
		return nil, err
	}

	var payload verdictPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("解析判定 JSON 失败: %w", err)
	}
	return &payload, nil
}

// normalizeVerdict 把模型输出的标签收敛到已知集合
func normalizeVerdict(label string) string {
	switch strings.TrimSpace(label) {
	case models.VerdictBreaking:
		return models.VerdictBreaking
	case models.VerdictImportant:
		return models.VerdictImportant
	default:
		return models.VerdictRegular
	}
}

package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dailybrief/internal/cache"
	"dailybrief/internal/freshrss"
)

// 不连数据库的简报组装测试：FreshRSS 用假服务器，判定缺失按 Regular 处理
func TestGetDailyWithoutDatabase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(freshrss.StreamResponse{
			Items: []freshrss.StreamItem{
				{ID: "tag:google.com,2005:reader/item/aaaa", Title: "一", Published: 1735700000},
				{ID: "tag:google.com,2005:reader/item/bbbb", Title: "二", Published: 1735703600},
			},
		})
	}))
	defer server.Close()

	loc, _ := time.LoadLocation("Asia/Shanghai")
	c, _ := cache.New(16)
	svc := NewBriefingService(freshrss.NewClient(server.URL, "t"), nil, nil, c, loc)

	briefing, err := svc.GetDaily("2025-01-01")
	if err != nil {
		t.Fatalf("GetDaily failed: %v", err)
	}

	if briefing.Total != 2 {
		t.Errorf("Total = %d", briefing.Total)
	}
	if len(briefing.Groups) != 1 || briefing.Groups[0].Label != "Regular" {
		t.Fatalf("无判定时应只有 Regular 一组: %+v", briefing.Groups)
	}
	if briefing.Completed {
		t.Error("无状态数据时 Completed 应为 false")
	}
}

// 第二次调用走缓存，不再访问上游
func TestGetDailyCached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(freshrss.StreamResponse{})
	}))
	defer server.Close()

	loc, _ := time.LoadLocation("Asia/Shanghai")
	c, _ := cache.New(16)
	svc := NewBriefingService(freshrss.NewClient(server.URL, "t"), nil, nil, c, loc)

	if _, err := svc.GetDaily("2025-01-01"); err != nil {
		t.Fatalf("第一次 GetDaily failed: %v", err)
	}
	if _, err := svc.GetDaily("2025-01-01"); err != nil {
		t.Fatalf("第二次 GetDaily failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("上游被调用了 %d 次, want 1", calls)
	}
}

// 分页续拉：有 continuation 时继续取下一页
func TestFetchDayItemsPagination(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp := freshrss.StreamResponse{
			Items: []freshrss.StreamItem{{ID: "x", Published: 1735700000}},
		}
		if calls == 1 {
			if r.URL.Query().Get("c") != "" {
				t.Errorf("第一页不应带续页游标")
			}
			resp.Continuation = "page2"
		} else if r.URL.Query().Get("c") != "page2" {
			t.Errorf("第二页游标 = %q", r.URL.Query().Get("c"))
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	loc, _ := time.LoadLocation("Asia/Shanghai")
	c, _ := cache.New(16)
	svc := NewBriefingService(freshrss.NewClient(server.URL, "t"), nil, nil, c, loc)

	items, err := svc.fetchDayItems("2025-01-01")
	if err != nil {
		t.Fatalf("fetchDayItems failed: %v", err)
	}
	if calls != 2 || len(items) != 2 {
		t.Errorf("calls = %d, items = %d", calls, len(items))
	}
}

func TestGroupByImportance(t *testing.T) {
	articles := []BriefingArticle{
		withScore("r1", 5),
		{Article: freshrss.Article{ID: "b1"}, Verdict: &VerdictInfo{Label: "Breaking", Score: 1}},
		{Article: freshrss.Article{ID: "i1"}, Verdict: &VerdictInfo{Label: "Important", Score: 3}},
		{Article: freshrss.Article{ID: "r2"}, Verdict: &VerdictInfo{Label: "火星标签", Score: 9}},
	}

	groups := groupByImportance(articles)

	if len(groups) != 3 {
		t.Fatalf("groups = %d", len(groups))
	}
	// 分组顺序固定 Breaking → Important → Regular
	if groups[0].Label != "Breaking" || groups[1].Label != "Important" || groups[2].Label != "Regular" {
		t.Errorf("分组顺序: %s %s %s", groups[0].Label, groups[1].Label, groups[2].Label)
	}
	// 未知标签并入 Regular，组内按分数降序
	regular := groups[2].Articles
	if len(regular) != 2 || regular[0].ID != "r2" || regular[1].ID != "r1" {
		t.Errorf("Regular 组: %+v", regular)
	}
}

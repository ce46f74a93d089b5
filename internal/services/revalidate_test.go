package services

import (
	"testing"
	"time"

	"dailybrief/internal/cache"
)

// spyCache 记录删除过的键
type spyCache struct {
	deleted []string
}

func (s *spyCache) Delete(key string) {
	s.deleted = append(s.deleted, key)
}

func newTestRevalidator(spy *spyCache) *Revalidator {
	loc, _ := time.LoadLocation("Asia/Shanghai")
	r := NewRevalidator(spy, "http://127.0.0.1:0", loc)
	// 测试里不关心预热结果，推迟到测试结束之后
	r.warmDelay = time.Hour
	return r
}

func TestRevalidateInvalidDate(t *testing.T) {
	for _, date := range []string{"", "2025/01/01", "20250101", "2025-1-1", "明天"} {
		spy := &spyCache{}
		r := newTestRevalidator(spy)

		if err := r.Revalidate(date); err != ErrInvalidDate {
			t.Errorf("Revalidate(%q) err = %v, want ErrInvalidDate", date, err)
		}
		if len(spy.deleted) != 0 {
			t.Errorf("Revalidate(%q) 不应有副作用, 删了 %v", date, spy.deleted)
		}
	}
}

// 只校验形状不校验日历：2025-13-45 能通过（与上游路由行为一致）
func TestRevalidateShapeOnlyValidation(t *testing.T) {
	spy := &spyCache{}
	r := newTestRevalidator(spy)

	if err := r.Revalidate("2025-13-45"); err != nil {
		t.Fatalf("形状合法的日期不应被拒: %v", err)
	}
	if len(spy.deleted) != 2 {
		t.Errorf("deleted = %v", spy.deleted)
	}
}

func TestRevalidatePastDate(t *testing.T) {
	spy := &spyCache{}
	r := newTestRevalidator(spy)

	if err := r.Revalidate("2020-06-01"); err != nil {
		t.Fatalf("Revalidate failed: %v", err)
	}

	want := []string{cache.BriefingKey("2020-06-01"), cache.PageKey("2020-06-01")}
	if len(spy.deleted) != 2 || spy.deleted[0] != want[0] || spy.deleted[1] != want[1] {
		t.Errorf("deleted = %v, want %v（顺序也要对）", spy.deleted, want)
	}
}

// 参考时区的今天要连首页缓存一起失效
func TestRevalidateTodayIncludesHome(t *testing.T) {
	spy := &spyCache{}
	r := newTestRevalidator(spy)

	loc, _ := time.LoadLocation("Asia/Shanghai")
	today := time.Now().In(loc).Format("2006-01-02")

	if err := r.Revalidate(today); err != nil {
		t.Fatalf("Revalidate failed: %v", err)
	}

	if len(spy.deleted) != 3 {
		t.Fatalf("deleted = %v, 今天应失效 3 个键", spy.deleted)
	}
	if spy.deleted[2] != cache.HomeKey {
		t.Errorf("第三个删除的应是首页键, got %s", spy.deleted[2])
	}
}

func TestValidDateShape(t *testing.T) {
	valid := []string{"2025-01-01", "1999-12-31", "2025-13-45"}
	for _, d := range valid {
		if !ValidDateShape(d) {
			t.Errorf("ValidDateShape(%q) = false", d)
		}
	}
	invalid := []string{"", "2025-1-01", "2025-01-1", "abcd-ef-gh", "2025-01-011"}
	for _, d := range invalid {
		if ValidDateShape(d) {
			t.Errorf("ValidDateShape(%q) = true", d)
		}
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dailybrief/internal/config"
	"dailybrief/internal/services"

	"github.com/gin-gonic/gin"
)

type spyCache struct {
	deleted []string
}

func (s *spyCache) Delete(key string) {
	s.deleted = append(s.deleted, key)
}

func newRevalidateRouter(t *testing.T) (*gin.Engine, *spyCache) {
	t.Helper()
	t.Setenv("ADMIN_ACCESS_TOKEN", "admin-token")
	t.Setenv("REVALIDATE_SECRET", "reval-secret")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	spy := &spyCache{}
	revalidator := services.NewRevalidator(spy, "http://127.0.0.1:0", cfg.Location())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/revalidate", NewRevalidateHandler(revalidator, cfg).Revalidate)
	return r, spy
}

func postRevalidate(r *gin.Engine, body string, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/revalidate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "site_token", Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

// 密钥和 Cookie 都不对：401，且不产生任何缓存失效副作用
func TestRevalidateUnauthorized(t *testing.T) {
	r, spy := newRevalidateRouter(t)

	w := postRevalidate(r, `{"date":"2025-06-01","secret":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if len(spy.deleted) != 0 {
		t.Errorf("未授权请求不应有副作用: %v", spy.deleted)
	}
	// 错误信息保持笼统，不暴露是哪个校验失败
	if strings.Contains(w.Body.String(), "secret") || strings.Contains(w.Body.String(), "cookie") {
		t.Errorf("错误信息泄露了校验细节: %s", w.Body.String())
	}
}

func TestRevalidateWithSecret(t *testing.T) {
	r, spy := newRevalidateRouter(t)

	w := postRevalidate(r, `{"date":"2020-06-01","secret":"reval-secret"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(spy.deleted) != 2 {
		t.Errorf("deleted = %v", spy.deleted)
	}
}

func TestRevalidateWithCookie(t *testing.T) {
	r, spy := newRevalidateRouter(t)

	w := postRevalidate(r, `{"date":"2020-06-01"}`, "admin-token")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(spy.deleted) != 2 {
		t.Errorf("deleted = %v", spy.deleted)
	}
}

func TestRevalidateBadDate(t *testing.T) {
	r, spy := newRevalidateRouter(t)

	w := postRevalidate(r, `{"date":"2025/06/01","secret":"reval-secret"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(spy.deleted) != 0 {
		t.Errorf("无效日期不应有副作用: %v", spy.deleted)
	}
}

// 今天（Asia/Shanghai）要额外失效首页缓存
func TestRevalidateTodayIncludesHome(t *testing.T) {
	r, spy := newRevalidateRouter(t)

	loc, _ := time.LoadLocation("Asia/Shanghai")
	today := time.Now().In(loc).Format("2006-01-02")

	w := postRevalidate(r, `{"date":"`+today+`","secret":"reval-secret"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(spy.deleted) != 3 {
		t.Errorf("今天应失效 3 个键: %v", spy.deleted)
	}
}

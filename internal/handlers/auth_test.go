package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailybrief/internal/config"

	"github.com/gin-gonic/gin"
)

func testConfig(t *testing.T, adminToken string) *config.Config {
	t.Helper()
	t.Setenv("ADMIN_ACCESS_TOKEN", adminToken)
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	return cfg
}

func newAuthRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(cfg)
	r.GET("/auth/login", h.Login)
	r.GET("/auth/logout", h.Logout)
	return r
}

func TestLoginSetsCookie(t *testing.T) {
	r := newAuthRouter(testConfig(t, "secret-token"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/login?token=secret-token", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	setCookie := w.Header().Get("Set-Cookie")
	for _, want := range []string{"site_token=secret-token", "Max-Age=7776000", "HttpOnly", "Secure", "SameSite=Strict"} {
		if !strings.Contains(setCookie, want) {
			t.Errorf("Set-Cookie 缺少 %q: %s", want, setCookie)
		}
	}
}

func TestLoginWrongToken(t *testing.T) {
	r := newAuthRouter(testConfig(t, "secret-token"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/login?token=guess", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w.Header().Get("Set-Cookie") != "" {
		t.Error("校验失败不应下发 Cookie")
	}
}

// 令牌未配置时登录端点关死
func TestLoginFailsClosedWhenUnconfigured(t *testing.T) {
	r := newAuthRouter(testConfig(t, ""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/login?token=", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthRouter(testConfig(t, "secret-token"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/logout", nil)
	r.ServeHTTP(w, req)

	setCookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(setCookie, "site_token=") || !strings.Contains(setCookie, "Max-Age=0") {
		t.Errorf("Set-Cookie = %s", setCookie)
	}
}

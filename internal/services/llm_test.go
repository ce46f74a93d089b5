package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat(t *testing.T) {
	// 模拟 API 服务器
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected Bearer test-token, got %s", r.Header.Get("Authorization"))
		}

		var resp ChatResponse
		resp.Choices = make([]struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		}, 1)
		resp.Choices[0].Message.Content = "```json\n{\"verdict\": \"Important\", \"score\": 80}\n```"
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewLLMClient(server.URL, "test-token", "test-model")

	content, err := client.Chat("测试提示词")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	// 代码块围栏应被去掉
	expected := `{"verdict": "Important", "score": 80}`
	if content != expected {
		t.Errorf("Expected %s, got %s", expected, content)
	}
}

func TestChatNoAPIKey(t *testing.T) {
	client := NewLLMClient("http://127.0.0.1:0", "", "test-model")
	if _, err := client.Chat("x"); err == nil {
		t.Fatal("未配置 API Key 应直接报错")
	}
}

func TestChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewLLMClient(server.URL, "test-token", "test-model")
	if _, err := client.Chat("x"); err == nil {
		t.Fatal("期望上游错误")
	}
}

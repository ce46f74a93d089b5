package freshrss

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// 阅读列表与状态标签的流 ID
const (
	StreamReadingList = "user/-/state/com.google/reading-list"
	TagRead           = "user/-/state/com.google/read"
	TagStarred        = "user/-/state/com.google/starred"
)

// Client FreshRSS Google Reader 兼容 API 客户端。
// 显式构造后注入使用方，认证走自定义的 GoogleLogin 授权头。
type Client struct {
	baseURL   string
	authToken string
	http      *http.Client
}

// NewClient 创建客户端实例
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		authToken: authToken,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 2,
			},
		},
	}
}

// StreamOptions stream/contents 的查询参数
type StreamOptions struct {
	Count        int    // n，单页条数
	Continuation string // c，续页游标
	StartTime    int64  // ot，Unix 秒，只取该时间之后的条目
	EndTime      int64  // nt，Unix 秒，只取该时间之前的条目
	ExcludeTag   string // xt，排除带该标签的条目
}

// StreamContents 拉取一个流的条目。请求只尝试一次，不做重试。
func (c *Client) StreamContents(streamID string, opts StreamOptions) (*StreamResponse, error) {
	params := url.Values{}
	params.Set("output", "json")
	if opts.Count > 0 {
		params.Set("n", strconv.Itoa(opts.Count))
	}
	if opts.Continuation != "" {
		params.Set("c", opts.Continuation)
	}
	if opts.StartTime > 0 {
		params.Set("ot", strconv.FormatInt(opts.StartTime, 10))
	}
	if opts.EndTime > 0 {
		params.Set("nt", strconv.FormatInt(opts.EndTime, 10))
	}
	if opts.ExcludeTag != "" {
		params.Set("xt", opts.ExcludeTag)
	}

	endpoint := c.baseURL + "/reader/api/0/stream/contents/" + url.PathEscape(streamID) + "?" + params.Encode()

	var resp StreamResponse
	if err := c.getJSON(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("拉取流 %s 失败: %w", streamID, err)
	}
	return &resp, nil
}

// TagList 拉取全部分类和用户标签
func (c *Client) TagList() ([]RawTag, error) {
	endpoint := c.baseURL + "/reader/api/0/tag/list?output=json"

	var resp TagListResponse
	if err := c.getJSON(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("拉取标签列表失败: %w", err)
	}
	return resp.Tags, nil
}

// UnreadCounts 拉取各流的未读计数
func (c *Client) UnreadCounts() (*UnreadCountResponse, error) {
	endpoint := c.baseURL + "/reader/api/0/unread-count?output=json"

	var resp UnreadCountResponse
	if err := c.getJSON(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("拉取未读计数失败: %w", err)
	}
	return &resp, nil
}

// EditTag 给条目加/去一个状态标签（已读、收藏）。
// itemID 接受短 ID 或完整 ID，内部统一转完整 ID 再提交。
func (c *Client) EditTag(itemID, addTag, removeTag string) error {
	writeToken, err := c.writeToken()
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("i", ToFullID(itemID))
	if addTag != "" {
		form.Set("a", addTag)
	}
	if removeTag != "" {
		form.Set("r", removeTag)
	}
	form.Set("T", writeToken)

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/reader/api/0/edit-tag", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("提交标签修改失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("标签修改被拒绝: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}

// writeToken 获取写操作令牌，edit-tag 等修改接口要求携带
func (c *Client) writeToken() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/reader/api/0/token", nil)
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("获取写令牌失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("获取写令牌被拒绝: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", fmt.Errorf("读取写令牌失败: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) getJSON(endpoint string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("上游返回 %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	// 限制响应体大小，防止超大响应
	limited := io.LimitReader(resp.Body, 16*1024*1024)
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("解析响应失败: %w", err)
	}
	return nil
}

// authorize 设置 GoogleLogin 授权头（FreshRSS 的自定义方案）
func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "GoogleLogin auth="+c.authToken)
}

package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Item 包装缓存数据和过期时间
type Item struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache 进程内 LRU 缓存（带 TTL），显式构造后注入使用方
type Cache struct {
	lruCache *lru.Cache[string, Item]
}

// New 创建指定容量的缓存
func New(size int) (*Cache, error) {
	l, err := lru.New[string, Item](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lruCache: l}, nil
}

// Set 设置缓存，TTL 为过期时间
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, Item{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get 获取缓存，若不存在或已过期则返回 nil
func (c *Cache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	// 检查过期
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// Delete 删除指定缓存
func (c *Cache) Delete(key string) {
	c.lruCache.Remove(key)
}

// 缓存键约定：数据缓存与页面缓存分开失效

func BriefingKey(date string) string {
	return "briefing:" + date
}

// PageKey 渲染页缓存键。当前进程内只做失效，写入留给前端渲染层接入时使用
func PageKey(date string) string {
	return "page:" + date
}

// HomeKey 首页缓存键，约定同 PageKey
const HomeKey = "page:home"

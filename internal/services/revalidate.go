package services

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"sync"
	"time"

	"dailybrief/internal/cache"
)

// 日期只校验形状，不校验日历合法性，和上游路由的匹配规则保持一致
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrInvalidDate 日期格式校验失败
var ErrInvalidDate = errors.New("日期格式必须为 YYYY-MM-DD")

// ValidDateShape 判断日期是否符合 YYYY-MM-DD 形状
func ValidDateShape(date string) bool {
	return dateShape.MatchString(date)
}

// Invalidator 缓存失效接口，测试时用 spy 替换
type Invalidator interface {
	Delete(key string)
}

// Revalidator 定向缓存刷新：先同步失效，再后台预热。
// 预热是整个系统里唯一有意分离出去的后台任务，失败只记日志，从不影响响应。
type Revalidator struct {
	cache     Invalidator
	siteURL   string
	loc       *time.Location
	warmDelay time.Duration
	http      *http.Client
}

func NewRevalidator(c Invalidator, siteURL string, loc *time.Location) *Revalidator {
	return &Revalidator{
		cache:     c,
		siteURL:   siteURL,
		loc:       loc,
		warmDelay: 2 * time.Second,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Revalidate 按顺序失效指定日期的数据缓存和页面缓存；
// 日期是参考时区的今天时连首页缓存一起失效；最后发起不等待的预热。
func (r *Revalidator) Revalidate(date string) error {
	if !ValidDateShape(date) {
		return ErrInvalidDate
	}

	r.cache.Delete(cache.BriefingKey(date))
	r.cache.Delete(cache.PageKey(date))

	includeHome := date == time.Now().In(r.loc).Format("2006-01-02")
	if includeHome {
		r.cache.Delete(cache.HomeKey)
	}

	go r.prewarm(date, includeHome)
	return nil
}

// prewarm 后台预热，先等失效落地再拉取
func (r *Revalidator) prewarm(date string, includeHome bool) {
	time.Sleep(r.warmDelay)

	targets := []string{r.siteURL + "/api/briefing?date=" + date}
	if includeHome {
		targets = append(targets, r.siteURL+"/api/briefing")
	}

	for _, target := range targets {
		if err := r.fetch(target); err != nil {
			log.Printf("预热 %s 失败: %v", target, err)
			continue
		}
		log.Printf("预热完成: %s", target)
	}
}

func (r *Revalidator) fetch(target string) error {
	resp, err := r.http.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("状态码 %d", resp.StatusCode)
	}
	return nil
}

// 批量预热的并发上限，固定分片，不做重试
const warmupChunkSize = 5

// Warmup 批量预热一组日期，每次并发 warmupChunkSize 个，单个失败只记日志
func (r *Revalidator) Warmup(dates []string) {
	for start := 0; start < len(dates); start += warmupChunkSize {
		end := start + warmupChunkSize
		if end > len(dates) {
			end = len(dates)
		}

		var wg sync.WaitGroup
		for _, date := range dates[start:end] {
			wg.Add(1)
			go func(d string) {
				defer wg.Done()
				target := r.siteURL + "/api/briefing?date=" + d
				if err := r.fetch(target); err != nil {
					log.Printf("预热 %s 失败: %v", target, err)
				}
			}(date)
		}
		wg.Wait()
	}
}

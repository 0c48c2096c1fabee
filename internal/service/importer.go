package service

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"

	"github.com/user/podreview/internal/model"
)

// Importer 播客页面导入
// 抓取播客主页，从 OpenGraph 元信息和页面里的音频链接拼出播客记录，
// 再走 PodcastService 的唯一性写路径入库
type Importer struct {
	podcasts *PodcastService
	client   *http.Client
	sf       singleflight.Group
}

// NewImporter 创建导入服务
func NewImporter(podcasts *PodcastService) *Importer {
	return &Importer{
		podcasts: podcasts,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Import 抓取并导入一个播客页面
// 同一 URL 的并发导入用 singleflight 合并成一次抓取
func (i *Importer) Import(url string) (*model.Podcast, error) {
	if url == "" {
		return nil, &ValidationError{Fields: []string{"url"}}
	}

	v, err, _ := i.sf.Do(url, func() (interface{}, error) {
		return i.fetch(url)
	})
	if err != nil {
		return nil, err
	}
	input := v.(*PodcastInput)

	podcast, err := i.podcasts.Create(input)
	if err != nil {
		return nil, err
	}

	log.Printf("[导入] 成功导入播客: %s (%s)", podcast.Name, url)
	return podcast, nil
}

// fetch 抓取页面并解析出播客信息
func (i *Importer) fetch(url string) (*PodcastInput, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头，模拟浏览器
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("请求返回状态码: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("解析 HTML 失败: %w", err)
	}

	return parsePodcastPage(doc, url), nil
}

// parsePodcastPage 解析播客主页
func parsePodcastPage(doc *goquery.Document, url string) *PodcastInput {
	input := &PodcastInput{
		Link: url,
	}

	// 标题：优先 og:title，退回 <title>
	if name, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		input.Name = strings.TrimSpace(name)
	}
	if input.Name == "" {
		input.Name = strings.TrimSpace(doc.Find("title").Text())
	}

	// 简介
	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		input.Description = strings.TrimSpace(desc)
	}
	if input.Description == "" {
		if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			input.Description = strings.TrimSpace(desc)
		}
	}

	// 封面
	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		input.ImageURL = strings.TrimSpace(img)
	}

	// 出品方
	if site, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
		input.Producer = strings.TrimSpace(site)
	}

	// 标签
	if keywords, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, tag := range strings.Split(keywords, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				input.Tags = append(input.Tags, t)
			}
		}
	}

	// 剧集：页面里指向音频文件的链接
	doc.Find(`a[href$=".mp3"], a[href$=".m4a"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		input.Episodes = append(input.Episodes, model.EpisodeInfo{
			Name: strings.TrimSpace(s.Text()),
			Link: href,
		})
	})

	return input
}

package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/user/podreview/internal/model"
	"github.com/user/podreview/internal/repository"
)

// PodcastService 播客写路径
// 和评论共用同一套"查重 + 唯一索引兜底"的写法，区别只在：
// 播客没有所有者概念，任何登录用户都可以改任何播客
type PodcastService struct {
	podcasts *repository.PodcastRepository
}

// NewPodcastService 创建播客服务
func NewPodcastService(podcasts *repository.PodcastRepository) *PodcastService {
	return &PodcastService{podcasts: podcasts}
}

// PodcastInput 创建播客的入参
type PodcastInput struct {
	Name        string            `json:"name"`
	Link        string            `json:"link"`
	Release     *time.Time        `json:"release"`
	Producer    string            `json:"producer"`
	Cast        model.CastList    `json:"cast"`
	Length      int               `json:"length"`
	Description string            `json:"description"`
	Episodes    model.EpisodeList `json:"episodes"`
	Tags        model.StringList  `json:"tags"`
	ImageURL    string            `json:"imageURL"`
}

// PodcastPatch 更新播客的入参，nil 字段保持原值
type PodcastPatch struct {
	Name        *string            `json:"name"`
	Link        *string            `json:"link"`
	Release     *time.Time         `json:"release"`
	Producer    *string            `json:"producer"`
	Cast        *model.CastList    `json:"cast"`
	Length      *int               `json:"length"`
	Description *string            `json:"description"`
	Episodes    *model.EpisodeList `json:"episodes"`
	Tags        *model.StringList  `json:"tags"`
	ImageURL    *string            `json:"imageURL"`
}

// Create 创建播客，名称全局唯一
func (s *PodcastService) Create(input *PodcastInput) (*model.Podcast, error) {
	if input.Name == "" {
		return nil, &ValidationError{Fields: []string{"name"}}
	}

	count, err := s.podcasts.CountByName(input.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("查重失败: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	podcast := &model.Podcast{
		Name:        input.Name,
		Link:        input.Link,
		Release:     input.Release,
		Producer:    input.Producer,
		Cast:        input.Cast,
		Length:      input.Length,
		Description: input.Description,
		Episodes:    input.Episodes,
		Tags:        input.Tags,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.podcasts.Create(podcast); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return podcast, nil
}

// Update 更新播客，查重时排除自身
func (s *PodcastService) Update(id int, patch *PodcastPatch) (*model.Podcast, error) {
	podcast, err := s.podcasts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if podcast == nil {
		return nil, ErrNotFound
	}

	if patch.Name != nil && *patch.Name != podcast.Name {
		count, err := s.podcasts.CountByName(*patch.Name, id)
		if err != nil {
			return nil, fmt.Errorf("查重失败: %w", err)
		}
		if count > 0 {
			return nil, ErrDuplicate
		}
		podcast.Name = *patch.Name
	}
	if patch.Link != nil {
		podcast.Link = *patch.Link
	}
	if patch.Release != nil {
		podcast.Release = patch.Release
	}
	if patch.Producer != nil {
		podcast.Producer = *patch.Producer
	}
	if patch.Cast != nil {
		podcast.Cast = *patch.Cast
	}
	if patch.Length != nil {
		podcast.Length = *patch.Length
	}
	if patch.Description != nil {
		podcast.Description = *patch.Description
	}
	if patch.Episodes != nil {
		podcast.Episodes = *patch.Episodes
	}
	if patch.Tags != nil {
		podcast.Tags = *patch.Tags
	}
	if patch.ImageURL != nil {
		podcast.ImageURL = *patch.ImageURL
	}
	podcast.UpdatedAt = time.Now()

	if err := s.podcasts.Save(podcast); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return podcast, nil
}

// Delete 删除播客，删不存在的记录报 ErrNotFound
func (s *PodcastService) Delete(id int) error {
	affected, err := s.podcasts.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

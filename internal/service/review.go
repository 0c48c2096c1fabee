package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/user/podreview/internal/model"
	"github.com/user/podreview/internal/repository"
)

// ReviewService 评论写路径
// 创建走"先查重、唯一索引兜底"两段式；更新和删除先做所有者校验，
// 校验不通过不落任何写
type ReviewService struct {
	reviews *repository.ReviewRepository
}

// NewReviewService 创建评论服务
func NewReviewService(reviews *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// ReviewInput 创建评论的入参
type ReviewInput struct {
	Name     string `json:"name"`
	Podcast  int    `json:"podcast"`
	Episode  *int   `json:"episode"`
	Rating   *int   `json:"rating"`
	Review   string `json:"review"`
	Spoilers *bool  `json:"spoilers"`
}

// ReviewPatch 更新评论的入参，nil 字段保持原值
// reviewer 和 podcast 不可改：所有者由服务端写死，换目标请删掉重写
type ReviewPatch struct {
	Name     *string `json:"name"`
	Episode  *int    `json:"episode"`
	Rating   *int    `json:"rating"`
	Review   *string `json:"review"`
	Spoilers *bool   `json:"spoilers"`
}

// Create 创建评论
// reviewer 快照一律取自登录态，不信任请求体里的同名字段。
// 先按 (reviewer, podcast, episode) 查重给出友好提示；
// 并发穿过查重时由联合唯一索引兜底，统一报 ErrDuplicate
func (s *ReviewService) Create(input *ReviewInput, callerID int, callerName string) (*model.Review, error) {
	var missing []string
	if input.Podcast == 0 {
		missing = append(missing, "podcast")
	}
	if input.Review == "" {
		missing = append(missing, "review")
	}
	if input.Rating == nil {
		missing = append(missing, "rating")
	}
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Spoilers == nil {
		missing = append(missing, "spoilers")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	review := &model.Review{
		Name:      input.Name,
		PodcastID: input.Podcast,
		Episode:   input.Episode,
		Rating:    *input.Rating,
		Body:      input.Review,
		Spoilers:  *input.Spoilers,
		Reviewer: model.Reviewer{
			ID:   callerID,
			Name: callerName,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	count, err := s.reviews.CountByOwnerTarget(callerID, input.Podcast, model.EpisodeKey(input.Episode))
	if err != nil {
		return nil, fmt.Errorf("查重失败: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	if err := s.reviews.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return review, nil
}

// Update 更新评论，仅限所有者
func (s *ReviewService) Update(id, callerID int, patch *ReviewPatch) (*model.Review, error) {
	review, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	if review.Reviewer.ID != callerID {
		return nil, ErrNotOwner
	}

	if patch.Name != nil {
		review.Name = *patch.Name
	}
	if patch.Episode != nil {
		review.Episode = patch.Episode
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.Review != nil {
		review.Body = *patch.Review
	}
	if patch.Spoilers != nil {
		review.Spoilers = *patch.Spoilers
	}
	review.UpdatedAt = time.Now()

	// 改集号等于换了唯一键，可能撞上同用户已有的另一条评论
	if err := s.reviews.Save(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return review, nil
}

// Delete 删除评论，仅限所有者
func (s *ReviewService) Delete(id, callerID int) error {
	review, err := s.reviews.FindByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrNotFound
	}
	if review.Reviewer.ID != callerID {
		return ErrNotOwner
	}

	if _, err := s.reviews.Delete(id); err != nil {
		return err
	}
	return nil
}

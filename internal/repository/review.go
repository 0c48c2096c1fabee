package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/user/podreview/internal/model"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByReviewer 获取某个用户写的全部评论
func (r *ReviewRepository) ListByReviewer(reviewerID int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Where("reviewer_id = ?", reviewerID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

// ListByPodcast 获取某个播客下的全部评论
func (r *ReviewRepository) ListByPodcast(podcastID int) ([]*model.Review, error) {
	var reviews []*model.Review
	err := r.db.Where("podcast_id = ?", podcastID).Order("id ASC").Find(&reviews).Error
	return reviews, err
}

// FindByID 根据 ID 查找评论
func (r *ReviewRepository) FindByID(id int) (*model.Review, error) {
	var review model.Review
	err := r.db.First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// CountByOwnerTarget 统计某用户对某播客/某集已有的评论数
func (r *ReviewRepository) CountByOwnerTarget(reviewerID, podcastID int, episodeKey string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Review{}).
		Where("reviewer_id = ? AND podcast_id = ? AND episode_key = ?", reviewerID, podcastID, episodeKey).
		Count(&count).Error
	return count, err
}

// Create 创建评论
func (r *ReviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

// Save 保存整条评论记录
func (r *ReviewRepository) Save(review *model.Review) error {
	return r.db.Save(review).Error
}

// Delete 删除评论，返回删除的行数
func (r *ReviewRepository) Delete(id int) (int64, error) {
	res := r.db.Delete(&model.Review{}, id)
	return res.RowsAffected, res.Error
}

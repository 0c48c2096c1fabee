package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/user/podreview/internal/model"
)

type PodcastRepository struct {
	db *gorm.DB
}

func NewPodcastRepository(db *gorm.DB) *PodcastRepository {
	return &PodcastRepository{db: db}
}

// ListAll 获取全部播客
func (r *PodcastRepository) ListAll() ([]*model.Podcast, error) {
	var podcasts []*model.Podcast
	err := r.db.Order("id ASC").Find(&podcasts).Error
	return podcasts, err
}

// FindByID 根据 ID 查找播客
func (r *PodcastRepository) FindByID(id int) (*model.Podcast, error) {
	var podcast model.Podcast
	err := r.db.First(&podcast, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &podcast, nil
}

// CountByName 统计同名播客数，excludeID 用于更新时排除自身
func (r *PodcastRepository) CountByName(name string, excludeID int) (int64, error) {
	var count int64
	q := r.db.Model(&model.Podcast{}).Where("name = ?", name)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

// Create 创建播客
func (r *PodcastRepository) Create(podcast *model.Podcast) error {
	return r.db.Create(podcast).Error
}

// Save 保存整条播客记录
func (r *PodcastRepository) Save(podcast *model.Podcast) error {
	return r.db.Save(podcast).Error
}

// Delete 删除播客，返回删除的行数
func (r *PodcastRepository) Delete(id int) (int64, error) {
	res := r.db.Delete(&model.Podcast{}, id)
	return res.RowsAffected, res.Error
}

// Count 获取播客总数
func (r *PodcastRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Podcast{}).Count(&count).Error
	return count, err
}

package model

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Reviewer 评论者快照（冗余存储 name，用户改名后旧评论保留旧名字）
type Reviewer struct {
	ID   int    `json:"id" db:"reviewer_id" gorm:"uniqueIndex:idx_review_owner_target"`
	Name string `json:"name" db:"reviewer_name"`
}

// Review 播客评论
// 同一用户对同一播客的同一集只能有一条评论，
// 由 (reviewer_id, podcast_id, episode_key) 联合唯一索引保证
type Review struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	PodcastID int       `json:"podcast" db:"podcast_id" gorm:"uniqueIndex:idx_review_owner_target"`
	Episode   *int      `json:"episode,omitempty" db:"episode"`
	Rating    int       `json:"rating" db:"rating"`
	Body      string    `json:"review" db:"body"`
	Spoilers  bool      `json:"spoilers" db:"spoilers"`
	Reviewer  Reviewer  `json:"reviewer" gorm:"embedded;embeddedPrefix:reviewer_"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// episode 为空（整个播客的评论）时取 "-"，否则是集号。
	// 唯一索引不能直接用可空的 episode 列：SQL 里 NULL 互不相等，
	// 整播客的重复评论会绕过约束
	EpisodeKey string `json:"-" db:"episode_key" gorm:"uniqueIndex:idx_review_owner_target"`
}

// EpisodeKey 计算集号在联合唯一索引里的取值
func EpisodeKey(episode *int) string {
	if episode == nil {
		return "-"
	}
	return strconv.Itoa(*episode)
}

// BeforeSave 入库前同步 episode_key，保证和 episode 一致
func (r *Review) BeforeSave(tx *gorm.DB) error {
	r.EpisodeKey = EpisodeKey(r.Episode)
	return nil
}

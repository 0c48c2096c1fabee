package model

import (
	"time"
)

// Podcast 播客模型
// 名称全局唯一：服务层先查重给出友好提示，唯一索引兜底
type Podcast struct {
	ID          int         `json:"id" db:"id"`
	Name        string      `json:"name" db:"name" gorm:"uniqueIndex"`
	Link        string      `json:"link" db:"link"`
	Release     *time.Time  `json:"release" db:"release"`
	Producer    string      `json:"producer" db:"producer"`
	Cast        CastList    `json:"cast" db:"cast" gorm:"type:text"`
	Length      int         `json:"length" db:"length"`
	Description string      `json:"description" db:"description"`
	Episodes    EpisodeList `json:"episodes" db:"episodes" gorm:"type:text"`
	Tags        StringList  `json:"tags" db:"tags" gorm:"type:text"`
	ImageURL    string      `json:"imageURL" db:"image_url"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

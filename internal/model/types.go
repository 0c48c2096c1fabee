package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The list-valued columns (tags, interests, cast, episodes, bookmarks) are
// stored as JSON text so the same models work on Postgres and on the sqlite
// databases the tests run against.

// StringList 字符串列表 JSON 列
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// IDList 记录 ID 列表 JSON 列
type IDList []int

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	return json.Marshal(l)
}

func (l *IDList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// CastMember 播客主持/嘉宾
type CastMember struct {
	Actor     string `json:"actor"`
	Character string `json:"character"`
}

// CastList 阵容 JSON 列
type CastList []CastMember

func (l CastList) Value() (driver.Value, error) {
	if l == nil {
		l = CastList{}
	}
	return json.Marshal(l)
}

func (l *CastList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// EpisodeInfo 单集信息
type EpisodeInfo struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// EpisodeList 剧集列表 JSON 列
type EpisodeList []EpisodeInfo

func (l EpisodeList) Value() (driver.Value, error) {
	if l == nil {
		l = EpisodeList{}
	}
	return json.Marshal(l)
}

func (l *EpisodeList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("不支持的列类型 %T", src)
	}
}

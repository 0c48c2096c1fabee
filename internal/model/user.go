package model

import (
	"time"
)

// 第三方登录来源，走这些来源注册的账号不做本地密码校验
var OAuthProviders = []string{"github", "twitter", "facebook", "google"}

// IsOAuthProvider 判断是否第三方登录来源
func IsOAuthProvider(provider string) bool {
	for _, p := range OAuthProviders {
		if p == provider {
			return true
		}
	}
	return false
}

// User 用户模型
type User struct {
	ID           int        `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Provider     string     `json:"provider" db:"provider"`
	Role         string     `json:"role" db:"role"`
	Interests    StringList `json:"interests" db:"interests" gorm:"type:text"`
	Bookmarks    IDList     `json:"bookmarks" db:"bookmarks" gorm:"type:text"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

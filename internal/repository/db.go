package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/user/podreview/internal/model"
)

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// TranslateError 让唯一索引冲突统一报 gorm.ErrDuplicatedKey，
	// 服务层据此识别重复记录
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 ORM 失败: %w", err)
	}

	return db, nil
}

// Migrate 建表和索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Podcast{},
		&model.Review{},
	)
}

// Repositories 仓库集合
type Repositories struct {
	DB      *gorm.DB
	User    *UserRepository
	Podcast *PodcastRepository
	Review  *ReviewRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:      db,
		User:    NewUserRepository(db),
		Podcast: NewPodcastRepository(db),
		Review:  NewReviewRepository(db),
	}
}

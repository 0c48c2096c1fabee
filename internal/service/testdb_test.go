package service

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/user/podreview/internal/repository"
)

// newTestRepos 为每个测试建一个独立的内存数据库
// cache=shared 让连接池里的连接看到同一个库，
// MaxOpenConns(1) 避免 sqlite 并发写锁
func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := repository.Migrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	return repository.NewRepositories(db)
}

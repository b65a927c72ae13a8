package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"community-server/internal/db"
	"community-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing,
// sets the global db.DB, and performs auto-migration of every model.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:community_test_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}

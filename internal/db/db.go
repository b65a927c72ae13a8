package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"community-server/internal/config"
	"community-server/internal/logger"
	"community-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 按配置打开数据库、配置连接池并同步表结构。
func InitDB() *gorm.DB {
	var err error
	cfg := config.Get()
	var dialector gorm.Dialector

	switch cfg.Database.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Name,
		)
		if cfg.Database.SSL {
			dsn += "&tls=true"
		}
		dialector = mysql.Open(dsn)
	case "postgres":
		sslMode := "disable"
		if cfg.Database.SSL {
			sslMode = "require"
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
			sslMode,
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		fallthrough
	default:
		// 自动创建数据库目录
		dbDir := filepath.Dir(cfg.Database.Filename)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.L().Fatalf("❌ 无法创建数据库目录 '%s': %v", dbDir, err)
		}

		// 启用外键、WAL 模式和繁忙等待
		dsn := cfg.Database.Filename + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		dialector = sqlite.Open(dsn)
	}

	gormLogLevel := gormlogger.Warn
	if cfg.Server.Mode == "release" {
		gormLogLevel = gormlogger.Error
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		logger.L().Fatal("❌ 数据库连接失败: ", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		logger.L().Fatal("❌ 无法获取 sql.DB: ", err)
	}

	// 配置连接池
	if cfg.Database.Type == "mysql" || cfg.Database.Type == "postgres" {
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetMaxIdleConns(10)
	} else {
		// SQLite 单连接写，计数器更新天然串行
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := DB.AutoMigrate(model.All()...); err != nil {
		logger.L().Fatal("❌ 数据库迁移失败: ", err)
	}

	logger.L().Infof("✅ 数据库(%s)连接成功，表结构已同步", cfg.Database.Type)
	return DB
}

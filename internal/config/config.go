package config

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"community-server/internal/logger"

	"github.com/spf13/viper"
)

// 用于管理应用配置

const insecureDefaultSessionSecret = "community_session_secret"

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Upload   UploadConfig   `mapstructure:"upload"`
	S3       S3Config       `mapstructure:"s3"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type SessionConfig struct {
	TTLMinutes int    `mapstructure:"ttl_minutes"`
	CookieName string `mapstructure:"cookie_name"`
	Secret     string `mapstructure:"secret"` // 会话 Cookie 签名密钥
	Secure     bool   `mapstructure:"secure"`
	SweepCron  string `mapstructure:"sweep_cron"` // 为空表示不启用过期会话清理任务
}

type UploadConfig struct {
	Driver          string `mapstructure:"driver"` // local, s3
	Path            string `mapstructure:"path"`
	URLPrefix       string `mapstructure:"url_prefix"`
	AvatarPath      string `mapstructure:"avatar_path"`
	AvatarURLPrefix string `mapstructure:"avatar_url_prefix"`
	MaxSizeMB       int    `mapstructure:"max_size_mb"`
}

type S3Config struct {
	Bucket        string `mapstructure:"bucket"`
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type AdminConfig struct {
	Token string `mapstructure:"token"` // 为空时管理接口整体关闭
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text, json
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceSessionSecretSafety()
	logger.Configure(Get().Log.Level, Get().Log.Format)
	logger.L().Info("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/community.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "community_db")
	v.SetDefault("database.ssl", false)
	v.SetDefault("session.ttl_minutes", 60)
	v.SetDefault("session.cookie_name", "session_id")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.sweep_cron", "@every 10m")
	v.SetDefault("upload.driver", "local")
	v.SetDefault("upload.path", "uploads/posts")
	v.SetDefault("upload.url_prefix", "/post-images/")
	v.SetDefault("upload.avatar_path", "uploads/avatars")
	v.SetDefault("upload.avatar_url_prefix", "/avatars/")
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "community")
	v.SetDefault("admin.token", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			logger.L().Warn("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			logger.L().Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 COMMUNITY_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 COMMUNITY_SERVER_PORT
	v.SetEnvPrefix("COMMUNITY")
	v.AutomaticEnv()

	// 将 key 中的 "." 替换为 "_"，这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		logger.L().Errorf("❌ 配置解析失败: %v", err)
		return
	}

	if tempConfig.Session.TTLMinutes <= 0 {
		tempConfig.Session.TTLMinutes = 60
	}
	if tempConfig.Session.CookieName == "" {
		tempConfig.Session.CookieName = "session_id"
	}

	if tempConfig.Server.Mode == "release" {
		if tempConfig.Session.Secret == "" || tempConfig.Session.Secret == insecureDefaultSessionSecret {
			logger.L().Error("❌ [安全严重错误] 生产模式(release)下必须设置安全的会话签名密钥！")
		}
	} else if tempConfig.Session.Secret == "" {
		logger.L().Warn("⚠️ [开发模式警告] 未设置 session.secret，将使用默认不安全密钥进行开发")
		tempConfig.Session.Secret = insecureDefaultSessionSecret
	}

	appConfig.Store(&tempConfig)
}

func enforceSessionSecretSafety() {
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.Session.Secret == "" || curr.Session.Secret == insecureDefaultSessionSecret {
			logger.L().Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的会话签名密钥！\n请设置环境变量 COMMUNITY_SESSION_SECRET 或在配置文件中指定 session.secret")
		}
	}
}

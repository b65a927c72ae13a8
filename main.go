package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/db"
	"community-server/internal/di"
	"community-server/internal/logger"
	"community-server/internal/middleware"
	"community-server/internal/modules/common/httpx"
	"community-server/internal/platform/cache"
	"community-server/internal/platform/service"
	"community-server/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config-dir", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	gormDB := db.InitDB()

	if err := ensureDirectories(); err != nil {
		logger.L().Fatalf("❌ %v", err)
	}

	stores, err := storage.NewStores(context.Background())
	if err != nil {
		logger.L().Fatalf("❌ 初始化文件存储失败: %v", err)
	}

	app, err := di.InitializeApplication(gormDB, stores)
	if err != nil {
		logger.L().Fatalf("❌ 初始化应用失败: %v", err)
	}
	if err := app.Service.InitializeSettings(); err != nil {
		logger.L().Fatalf("❌ 初始化系统设置失败: %v", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.New()
	applyTrustedProxies(r, app.Service)
	r.Use(gin.Recovery())
	app.Router.Init(r)
	setupStaticFiles(r, app.Service)
	r.NoRoute(noRouteHandler)

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			logger.L().Fatalf("❌ 导出路由失败: %v", err)
		}
		fmt.Println("✅ 路由已成功导出到 routes.json")
		return
	}

	if _, err := app.SessionSweep.Start(config.Get().Session.SweepCron); err != nil {
		logger.L().Fatalf("❌ 启动会话清理任务失败: %v", err)
	}

	// 打印启动欢迎语
	printWelcomeMessage()

	srv := &http.Server{
		Addr:              ":" + config.Get().Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L().Infof("🚀 服务启动成功，运行在 :%s", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatalf("❌ 服务启动失败: %s", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.L().Info("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	app.SessionSweep.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Errorf("❌ 服务强制关闭: %v", err)
	}
	if err := cache.CloseRedisClient(); err != nil {
		logger.L().Warnf("⚠️ %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.L().Info("✅ 服务已退出")
}

// ensureDirectories 本地存储时创建帖子图片与头像目录
func ensureDirectories() error {
	cfg := config.Get().Upload
	if !strings.EqualFold(cfg.Driver, "") && !strings.EqualFold(cfg.Driver, "local") {
		return nil
	}
	for _, dir := range []string{cfg.Path, cfg.AvatarPath} {
		if err := checkSecurePath(dir); err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("无法创建目录 %s: %w", dir, err)
		}
	}
	return nil
}

// splitTrustedProxyList 按逗号、分号和空白拆分代理列表，丢弃空项。
func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// applyTrustedProxies 按 trusted_proxies 设置配置 gin 的可信代理。
// 为空时不信任任何代理，ClientIP 取 RemoteAddr；列表无效时记录警告并同样回退。
func applyTrustedProxies(r *gin.Engine, appService *service.AppService) {
	proxies := splitTrustedProxyList(appService.GetString(consts.ConfigTrustedProxies))
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		logger.L().Warnf("⚠️ 可信代理配置无效，已禁用: %v", err)
		_ = r.SetTrustedProxies(nil)
		return
	}
	logger.L().Infof("🛡️ 已信任代理: %s", strings.Join(proxies, ", "))
}

// setupStaticFiles 使用带缓存控制的静态文件服务，S3 模式下图片由对象存储直接提供
func setupStaticFiles(r *gin.Engine, appService *service.AppService) {
	cfg := config.Get().Upload
	if !strings.EqualFold(cfg.Driver, "") && !strings.EqualFold(cfg.Driver, "local") {
		return
	}
	r.Group(cfg.URLPrefix, middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(cfg.Path, false))
	r.Group(cfg.AvatarURLPrefix, middleware.StaticCacheMiddleware(appService)).
		StaticFS("", gin.Dir(cfg.AvatarPath, false))
}

func noRouteHandler(c *gin.Context) {
	httpx.AbortWithMessage(c, http.StatusNotFound, consts.MsgRouteNotFound, nil)
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  数据库   : %s\n", config.Get().Database.Type)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine, filename string) error {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, file, 0644)
}

// checkSecurePath 静态资源目录必须位于工作目录下的安全子目录，或位于工作目录之外
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	relSlash := filepath.ToSlash(rel)
	allowedDirs := []string{"uploads", "public", "assets", "static", "tmp"}
	firstComponent := strings.Split(relSlash, "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("安全配置错误: 静态资源目录 '%s' (解析为: '%s') 必须位于安全子目录中 (如 %v)", path, relSlash, allowedDirs)
}

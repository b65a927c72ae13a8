package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/model"
	settingsrepo "community-server/internal/modules/settings/repo"
	"community-server/internal/platform/service"
	"community-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：为 main 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "community-main-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("COMMUNITY_SERVER_MODE", "debug"),
		testutils.SetEnv("COMMUNITY_SESSION_SECRET", "test_secret"),
		testutils.SetEnv("COMMUNITY_UPLOAD_DRIVER", "local"),
		testutils.SetEnv("COMMUNITY_UPLOAD_PATH", filepath.Join(tmpDir, "posts")),
		testutils.SetEnv("COMMUNITY_UPLOAD_AVATAR_PATH", filepath.Join(tmpDir, "avatars")),
		testutils.SetEnv("COMMUNITY_UPLOAD_URL_PREFIX", "/post-images/"),
		testutils.SetEnv("COMMUNITY_UPLOAD_AVATAR_URL_PREFIX", "/avatars/"),
		testutils.SetEnv("COMMUNITY_REDIS_ENABLED", "false"),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

// 测试内容：验证 exportAPI 会写出有效的路由列表。
func TestExportAPI_WritesRoutesJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/ping", func(c *gin.Context) {})

	out := filepath.Join(t.TempDir(), "routes.json")
	if err := exportAPI(r, out); err != nil {
		t.Fatalf("exportAPI: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	var routes []map[string]string
	if err := json.Unmarshal(data, &routes); err != nil || len(routes) != 1 || routes[0]["path"] != "/api/v1/ping" {
		t.Fatalf("导出内容不正确: %s", string(data))
	}
}

// 测试内容：验证未知路由返回统一的 404 信封。
func TestNoRouteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(noRouteHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Message != consts.MsgRouteNotFound {
		t.Fatalf("期望 %s，实际为 %s", consts.MsgRouteNotFound, body.Message)
	}
}

// 测试内容：确保创建帖子图片与头像目录。
func TestEnsureDirectories_CreatesUploadAndAvatarDirs(t *testing.T) {
	if err := ensureDirectories(); err != nil {
		t.Fatalf("ensureDirectories: %v", err)
	}
	for _, dir := range []string{config.Get().Upload.Path, config.Get().Upload.AvatarPath} {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			t.Fatalf("期望目录 %s 已创建", dir)
		}
	}
}

// 测试内容：验证 checkSecurePath 拒绝项目根目录与非白名单子目录。
func TestCheckSecurePath(t *testing.T) {
	cwd, _ := os.Getwd()
	if err := checkSecurePath(cwd); err == nil {
		t.Fatalf("项目根目录应被拒绝")
	}
	if err := checkSecurePath("internal"); err == nil {
		t.Fatalf("非白名单目录应被拒绝")
	}
	if err := checkSecurePath("uploads/posts"); err != nil {
		t.Fatalf("uploads 子目录应被允许: %v", err)
	}
	if err := checkSecurePath(t.TempDir()); err != nil {
		t.Fatalf("工作目录之外的路径应被允许: %v", err)
	}
}

// 测试内容：验证静态文件挂载后帖子图片与头像可被访问，并带缓存标头。
func TestSetupStaticFiles_ServesUploadsAndAvatars(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if err := ensureDirectories(); err != nil {
		t.Fatalf("ensureDirectories: %v", err)
	}
	cfg := config.Get().Upload
	if err := os.WriteFile(filepath.Join(cfg.Path, "a.png"), []byte("post"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.AvatarPath, "b.png"), []byte("avatar"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	gdb := testutils.SetupDB(t)
	appService := service.NewAppService(settingsrepo.NewSettingRepository(gdb))
	r := gin.New()
	setupStaticFiles(r, appService)

	for path, want := range map[string]string{"/post-images/a.png": "post", "/avatars/b.png": "avatar"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("%s 期望 200 %q，实际为 %d %q", path, want, w.Code, w.Body.String())
		}
		if w.Header().Get("Cache-Control") == "" {
			t.Fatalf("%s 缺少 Cache-Control", path)
		}
	}
}

// 测试内容：验证欢迎信息打印函数在测试配置下可执行。
func TestPrintWelcomeMessage(t *testing.T) {
	printWelcomeMessage()
}

// 测试内容：验证 splitTrustedProxyList 能正确拆分代理列表。
func TestSplitTrustedProxyList(t *testing.T) {
	got := splitTrustedProxyList(" 1.1.1.1,2.2.2.2; 3.3.3.3 \n4.4.4.4\t")
	want := []string{"1.1.1.1", "2.2.2.2", "3.3.3.3", "4.4.4.4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("期望 %v，实际为 %v", want, got)
	}
	if got := splitTrustedProxyList("  ,; "); len(got) != 0 {
		t.Fatalf("期望空列表，实际为 %v", got)
	}
}

// 测试内容：验证 trusted_proxies 设置对信任代理的影响：空值禁用、有效列表生效、无效列表回退。
func TestApplyTrustedProxies_UsesSettingValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)

	clientIP := func(value string) string {
		if err := gdb.Save(&model.Setting{Key: consts.ConfigTrustedProxies, Value: value}).Error; err != nil {
			t.Fatalf("保存 trusted_proxies 失败: %v", err)
		}
		appService := service.NewAppService(settingsrepo.NewSettingRepository(gdb))
		appService.ClearCache()

		r := gin.New()
		applyTrustedProxies(r, appService)
		r.GET("/ip", func(c *gin.Context) {
			c.String(http.StatusOK, c.ClientIP())
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.10, 10.0.0.1")
		r.ServeHTTP(w, req)
		return strings.TrimSpace(w.Body.String())
	}

	if got := clientIP(""); got != "10.0.0.1" {
		t.Fatalf("禁用可信代理时 ClientIP 应为 RemoteAddr，实际为 %q", got)
	}
	if got := clientIP("127.0.0.1,10.0.0.0/8"); got != "203.0.113.10" {
		t.Fatalf("启用可信代理时 ClientIP 应取 X-Forwarded-For，实际为 %q", got)
	}
	if got := clientIP("not-a-cidr"); got != "10.0.0.1" {
		t.Fatalf("无效可信代理时 ClientIP 应为 RemoteAddr，实际为 %q", got)
	}
}

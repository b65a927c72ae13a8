package middleware

import (
	"context"
	"testing"

	"community-server/internal/config"
	"community-server/internal/consts"
	settingsrepo "community-server/internal/modules/settings/repo"
	"community-server/internal/platform/service"
	"community-server/internal/testutils"

	"gorm.io/gorm"
)

var testService *service.AppService

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	settingStore := settingsrepo.NewSettingRepository(gdb)
	testService = service.NewAppService(settingStore)
	testService.ClearCache()
	return gdb
}

// withConfigEnv 通过环境变量加载一份临时配置，测试结束后恢复。
func withConfigEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	var saved []testutils.SavedEnv
	for k, v := range kv {
		saved = append(saved, testutils.SetEnv(k, v))
	}
	config.InitConfig(t.TempDir())
	t.Cleanup(func() {
		testutils.RestoreEnv(saved)
		config.InitConfig(t.TempDir())
	})
}

type fakeAuthenticator struct {
	identity *service.Identity
	err      error
	calls    int
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, cookieValue string) (*service.Identity, error) {
	f.calls++
	if cookieValue == "" {
		return nil, service.NewUnauthorizedError(consts.MsgLoginRequired)
	}
	return f.identity, f.err
}

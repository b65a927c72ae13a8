package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"community-server/internal/consts"
	"community-server/internal/db"
	"community-server/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证静态资源响应带上配置的 Cache-Control。
func TestStaticCacheMiddleware_SetsCacheControl(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	if err := db.DB.Save(&model.Setting{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=60"}).Error; err != nil {
		t.Fatalf("set setting: %v", err)
	}
	testService.ClearCache()

	r := gin.New()
	r.Use(StaticCacheMiddleware(testService))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if got := w.Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Fatalf("Cache-Control = %q", got)
	}
}

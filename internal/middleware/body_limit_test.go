package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-server/internal/consts"
	"community-server/internal/db"
	"community-server/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证普通接口超过请求体上限时读取失败。
func TestBodyLimitMiddleware_LimitsNonUploadRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	// 1MB limit
	_ = db.DB.Save(&model.Setting{Key: consts.ConfigMaxRequestBodySize, Value: "1"}).Error
	testService.ClearCache()

	r := gin.New()
	handler := func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	}
	r.POST("/api/v1/posts", BodyLimitMiddleware(testService), handler)
	r.PATCH("/api/v1/users/1/avatar", BodyLimitMiddleware(testService), handler)

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/posts", bytes.NewReader(payload)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/users/1/avatar", bytes.NewReader(payload)))
	if w.Code != http.StatusOK {
		t.Fatalf("上传接口不应受普通上限限制，实际为 %d", w.Code)
	}
}

// 测试内容：验证上传接口超过 upload.max_size_mb 时直接返回 413。
func TestUploadBodyLimitMiddleware_RejectsTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	withConfigEnv(t, map[string]string{"COMMUNITY_UPLOAD_MAX_SIZE_MB": "1"})

	r := gin.New()
	r.POST("/upload", UploadBodyLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	payload := bytes.Repeat([]byte("a"), 3*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(payload))
	req.ContentLength = int64(len(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge || decodeMessage(t, w) != consts.MsgFileTooLarge {
		t.Fatalf("期望 413 FILE_TOO_LARGE，实际为 %d", w.Code)
	}
}

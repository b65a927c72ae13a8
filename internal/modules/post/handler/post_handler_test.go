package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"community-server/internal/consts"
	"community-server/internal/model"
	"community-server/internal/modules/common/httpx"
	postrepo "community-server/internal/modules/post/repo"
	postservice "community-server/internal/modules/post/service"
	settingsrepo "community-server/internal/modules/settings/repo"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
	"community-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	alice  *model.User
	bob    *model.User
}

// 请求头 X-Test-User 模拟已登录账号，省去真实会话
func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	svc := postservice.New(appService, postrepo.NewPostRepository(gdb), storage.NewLocalStore(t.TempDir(), "/post-images/"))
	h := New(svc)

	env := &testEnv{
		db:    gdb,
		alice: testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123"),
		bob:   testutils.CreateUser(t, gdb, "b@example.com", "bob", "password123"),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		switch c.GetHeader("X-Test-User") {
		case "alice":
			httpx.SetIdentity(c, &platformservice.Identity{ID: env.alice.ID, Nickname: "alice"})
		case "bob":
			httpx.SetIdentity(c, &platformservice.Identity{ID: env.bob.ID, Nickname: "bob"})
		}
	})
	r.GET("/posts", h.ListPosts)
	r.GET("/posts/:id", h.GetPost)
	r.POST("/posts", h.CreatePost)
	r.POST("/posts/images", h.UploadImage)
	r.PUT("/posts/:id", h.UpdatePost)
	r.DELETE("/posts/:id", h.DeletePost)
	r.POST("/posts/:id/likes", h.AddLike)
	r.DELETE("/posts/:id/likes", h.RemoveLike)
	r.PUT("/posts/:id/likes/toggle", h.ToggleLike)
	env.router = r
	return env
}

func (e *testEnv) do(method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) string {
	t.Helper()
	env := struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应失败: %v body=%s", err, w.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("解析 data 失败: %v", err)
		}
	}
	return env.Message
}

func path(id uint, suffix string) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + suffix
}

// 测试内容：验证列表接口返回 posts 和 nextCursor，参数越界返回 400。
func TestListPosts(t *testing.T) {
	e := setupRouter(t)
	for i := 0; i < 3; i++ {
		testutils.CreatePost(t, e.db, e.alice.ID, "post")
	}

	w := e.do(http.MethodGet, "/posts?size=2", "", "")
	var page struct {
		Posts []struct {
			PostID uint `json:"postId"`
		} `json:"posts"`
		NextCursor *uint `json:"nextCursor"`
	}
	if msg := decode(t, w, &page); w.Code != http.StatusOK || msg != consts.MsgPostRetrievalSuccess {
		t.Fatalf("期望 200，实际为 %d %s", w.Code, msg)
	}
	if len(page.Posts) != 2 || page.NextCursor == nil || *page.NextCursor != 2 {
		t.Fatalf("分页结果不正确: %s", w.Body.String())
	}

	w = e.do(http.MethodGet, "/posts?size=2&lastSeenId=2", "", "")
	page.NextCursor = nil
	decode(t, w, &page)
	if len(page.Posts) != 1 || page.NextCursor != nil {
		t.Fatalf("最后一页不正确: %s", w.Body.String())
	}

	for _, q := range []string{"size=0", "size=51", "lastSeenId=0", "size=abc"} {
		w = e.do(http.MethodGet, "/posts?"+q, "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s 期望 400，实际为 %d", q, w.Code)
		}
	}
}

// 测试内容：验证创建、详情、修改、删除的状态码与权限。
func TestPostLifecycle(t *testing.T) {
	e := setupRouter(t)

	w := e.do(http.MethodPost, "/posts", "alice", `{"title":"","content":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("空标题期望 400，实际为 %d", w.Code)
	}

	w = e.do(http.MethodPost, "/posts", "alice", `{"title":"hello","content":"world"}`)
	var created struct {
		PostID uint `json:"postId"`
	}
	if msg := decode(t, w, &created); w.Code != http.StatusCreated || msg != consts.MsgPostCreateSuccess {
		t.Fatalf("期望 201，实际为 %d %s", w.Code, msg)
	}

	w = e.do(http.MethodGet, path(created.PostID, ""), "", "")
	var detail struct {
		Content   string `json:"content"`
		ViewCount int64  `json:"viewCount"`
		IsLiked   bool   `json:"isLiked"`
	}
	if msg := decode(t, w, &detail); w.Code != http.StatusOK || msg != consts.MsgPostDetailSuccess || detail.ViewCount != 1 {
		t.Fatalf("详情不正确: %d %s", w.Code, w.Body.String())
	}

	w = e.do(http.MethodPut, path(created.PostID, ""), "bob", `{"title":"hack"}`)
	if msg := decode(t, w, nil); w.Code != http.StatusForbidden || msg != consts.MsgPermissionDenied {
		t.Fatalf("非作者修改期望 403，实际为 %d %s", w.Code, msg)
	}

	w = e.do(http.MethodPut, path(created.PostID, ""), "alice", `{"content":"updated"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("作者修改期望 200，实际为 %d", w.Code)
	}

	w = e.do(http.MethodDelete, path(created.PostID, ""), "bob", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("非作者删除期望 403，实际为 %d", w.Code)
	}
	w = e.do(http.MethodDelete, path(created.PostID, ""), "alice", "")
	if msg := decode(t, w, nil); w.Code != http.StatusOK || msg != consts.MsgPostDeleteSuccess {
		t.Fatalf("作者删除期望 200，实际为 %d", w.Code)
	}

	w = e.do(http.MethodGet, path(created.PostID, ""), "", "")
	if msg := decode(t, w, nil); w.Code != http.StatusNotFound || msg != consts.MsgPostNotFound {
		t.Fatalf("删除后期望 404，实际为 %d %s", w.Code, msg)
	}
}

// 测试内容：验证显式点赞、取消点赞和切换点赞的状态码与消息。
func TestLikeEndpoints(t *testing.T) {
	e := setupRouter(t)
	post := testutils.CreatePost(t, e.db, e.alice.ID, "hello")

	w := e.do(http.MethodPost, path(post.ID, "/likes"), "bob", "")
	var like struct {
		IsLiked   bool  `json:"isLiked"`
		LikeCount int64 `json:"likeCount"`
	}
	if msg := decode(t, w, &like); w.Code != http.StatusCreated || msg != consts.MsgLikeRegisterSuccess || like.LikeCount != 1 {
		t.Fatalf("点赞期望 201，实际为 %d %s", w.Code, w.Body.String())
	}

	w = e.do(http.MethodPost, path(post.ID, "/likes"), "bob", "")
	if msg := decode(t, w, nil); w.Code != http.StatusConflict || msg != consts.MsgPostAlreadyLike {
		t.Fatalf("重复点赞期望 409，实际为 %d %s", w.Code, msg)
	}

	w = e.do(http.MethodGet, path(post.ID, ""), "bob", "")
	var detail struct {
		IsLiked bool `json:"isLiked"`
	}
	decode(t, w, &detail)
	if !detail.IsLiked {
		t.Fatalf("点赞者查看详情时 isLiked 应为 true")
	}

	w = e.do(http.MethodDelete, path(post.ID, "/likes"), "bob", "")
	if msg := decode(t, w, &like); w.Code != http.StatusOK || msg != consts.MsgLikeDeleteSuccess || like.LikeCount != 0 {
		t.Fatalf("取消点赞期望 200，实际为 %d %s", w.Code, w.Body.String())
	}

	w = e.do(http.MethodDelete, path(post.ID, "/likes"), "bob", "")
	if msg := decode(t, w, nil); w.Code != http.StatusConflict || msg != consts.MsgPostAlreadyDeleteLike {
		t.Fatalf("重复取消期望 409，实际为 %d %s", w.Code, msg)
	}

	w = e.do(http.MethodPut, path(post.ID, "/likes/toggle"), "bob", "")
	if msg := decode(t, w, nil); w.Code != http.StatusOK || msg != consts.MsgLikeAdded {
		t.Fatalf("切换期望 LIKE_ADDED，实际为 %d %s", w.Code, msg)
	}
	w = e.do(http.MethodPut, path(post.ID, "/likes/toggle"), "bob", "")
	if msg := decode(t, w, nil); w.Code != http.StatusOK || msg != consts.MsgLikeRemoved {
		t.Fatalf("切换期望 LIKE_REMOVED，实际为 %d %s", w.Code, msg)
	}

	w = e.do(http.MethodPost, "/posts/9999/likes", "bob", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("帖子不存在期望 404，实际为 %d", w.Code)
	}
}

// 测试内容：验证计数不一致时切换点赞返回 500 DATA_INTEGRITY_ERROR。
func TestToggleLike_IntegrityError(t *testing.T) {
	e := setupRouter(t)
	post := testutils.CreatePost(t, e.db, e.alice.ID, "hello")
	e.db.Create(&model.Like{UserID: e.bob.ID, PostID: post.ID})

	w := e.do(http.MethodPut, path(post.ID, "/likes/toggle"), "bob", "")
	if msg := decode(t, w, nil); w.Code != http.StatusInternalServerError || msg != consts.MsgDataIntegrityError {
		t.Fatalf("期望 500 DATA_INTEGRITY_ERROR，实际为 %d %s", w.Code, msg)
	}
}

// 测试内容：验证图片上传成功返回地址，非图片内容被拒绝。
func TestUploadImage(t *testing.T) {
	e := setupRouter(t)

	upload := func(name string, content []byte) *httptest.ResponseRecorder {
		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		part, _ := mw.CreateFormFile("file", name)
		_, _ = part.Write(content)
		_ = mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/posts/images", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("X-Test-User", "alice")
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		return w
	}

	gif := []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")
	w := upload("a.gif", gif)
	var resp struct {
		Image string `json:"image"`
	}
	if msg := decode(t, w, &resp); w.Code != http.StatusCreated || msg != consts.MsgImageUploadSuccess || resp.Image == "" {
		t.Fatalf("期望 201，实际为 %d %s", w.Code, w.Body.String())
	}

	w = upload("a.png", []byte("not an image at all"))
	if msg := decode(t, w, nil); w.Code != http.StatusBadRequest || msg != consts.MsgInvalidFile {
		t.Fatalf("期望 400 INVALID_FILE，实际为 %d %s", w.Code, msg)
	}
}

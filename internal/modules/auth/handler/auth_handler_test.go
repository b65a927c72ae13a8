package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"community-server/internal/consts"
	"community-server/internal/middleware"
	authrepo "community-server/internal/modules/auth/repo"
	authservice "community-server/internal/modules/auth/service"
	"community-server/internal/modules/common/httpx"
	settingsrepo "community-server/internal/modules/settings/repo"
	userrepo "community-server/internal/modules/user/repo"
	userservice "community-server/internal/modules/user/service"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
	"community-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	users := userservice.New(appService, userrepo.NewUserRepository(gdb), storage.NewLocalStore(t.TempDir(), "/avatars/"))
	svc := authservice.New(appService, authrepo.NewSessionRepository(gdb), users)
	h := New(svc)

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", middleware.SessionAuth(svc), h.Me)
	return r
}

func send(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) httpx.Envelope {
	t.Helper()
	var env httpx.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应失败: %v body=%s", err, w.Body.String())
	}
	return env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("响应中没有会话 Cookie")
	return nil
}

// 测试内容：验证注册、登录、重复登录、查询身份、登出、再次登录的完整流程。
func TestAuthFlow(t *testing.T) {
	r := setupRouter(t)

	w := send(r, http.MethodPost, "/auth/signup", `{"email":"a@example.com","password":"password123","nickname":"alice"}`)
	if w.Code != http.StatusCreated || envelope(t, w).Message != consts.MsgSignupSuccess {
		t.Fatalf("期望 201 SIGNUP_SUCCESS，实际为 %d %s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"password123"}`)
	if w.Code != http.StatusOK || envelope(t, w).Message != consts.MsgLoginSuccess {
		t.Fatalf("期望 200 LOGIN_SUCCESS，实际为 %d %s", w.Code, w.Body.String())
	}
	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Fatalf("会话 Cookie 应为 HttpOnly")
	}

	w = send(r, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"password123"}`)
	if w.Code != http.StatusConflict || envelope(t, w).Message != consts.MsgAlreadyLogin {
		t.Fatalf("期望 409 ALREADY_LOGIN，实际为 %d %s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodGet, "/auth/me", "", cookie)
	if w.Code != http.StatusOK || envelope(t, w).Message != consts.MsgAuthCheckSuccess {
		t.Fatalf("期望 200 AUTH_CHECK_SUCCESS，实际为 %d %s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodPost, "/auth/logout", "", cookie)
	if w.Code != http.StatusOK || envelope(t, w).Message != consts.MsgLogoutSuccess {
		t.Fatalf("期望 200 LOGOUT_SUCCESS，实际为 %d", w.Code)
	}

	w = send(r, http.MethodGet, "/auth/me", "", cookie)
	if w.Code != http.StatusUnauthorized || envelope(t, w).Message != consts.MsgInvalidSession {
		t.Fatalf("登出后期望 401 INVALID_SESSION，实际为 %d %s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("登出后应可重新登录，实际为 %d %s", w.Code, w.Body.String())
	}
}

// 测试内容：验证请求参数校验失败返回 400 INVALID_REQUEST。
func TestSignup_Validation(t *testing.T) {
	r := setupRouter(t)

	cases := []string{
		`{"email":"not-an-email","password":"password123","nickname":"alice"}`,
		`{"email":"a@example.com","password":"short","nickname":"alice"}`,
		`{"email":"a@example.com","password":"password123","nickname":"a"}`,
		`{}`,
	}
	for _, body := range cases {
		w := send(r, http.MethodPost, "/auth/signup", body)
		if w.Code != http.StatusBadRequest || envelope(t, w).Message != consts.MsgInvalidRequest {
			t.Fatalf("body=%s 期望 400，实际为 %d", body, w.Code)
		}
	}
}

// 测试内容：验证密码错误返回 401 LOGIN_FAILED，未登录访问 me 返回 LOGIN_REQUIRED。
func TestLogin_Failed(t *testing.T) {
	r := setupRouter(t)
	send(r, http.MethodPost, "/auth/signup", `{"email":"a@example.com","password":"password123","nickname":"alice"}`)

	w := send(r, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"wrong-password"}`)
	if w.Code != http.StatusUnauthorized || envelope(t, w).Message != consts.MsgLoginFailed {
		t.Fatalf("期望 401 LOGIN_FAILED，实际为 %d %s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodGet, "/auth/me", "")
	if w.Code != http.StatusUnauthorized || envelope(t, w).Message != consts.MsgLoginRequired {
		t.Fatalf("期望 401 LOGIN_REQUIRED，实际为 %d", w.Code)
	}
}

// 测试内容：验证 Cookie 签名失败时返回 500 并回收刚创建的会话，之后可以正常登录。
func TestLogin_SignFailureRevokesSession(t *testing.T) {
	r := setupRouter(t)
	send(r, http.MethodPost, "/auth/signup", `{"email":"a@example.com","password":"password123","nickname":"alice"}`)

	original := signSessionCookie
	signSessionCookie = func(string, time.Time) (string, error) {
		return "", errors.New("sign failed")
	}
	w := send(r, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"password123"}`)
	signSessionCookie = original

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("期望 500，实际为 %d %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			t.Fatalf("签名失败时不应下发会话 Cookie")
		}
	}

	w = send(r, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"password123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("会话已回收，期望再次登录成功，实际为 %d %s", w.Code, w.Body.String())
	}
}

package testutils

import (
	"testing"
	"time"

	"community-server/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser 直接写入一个账号，密码使用最低成本 bcrypt 以加快测试。
func CreateUser(t *testing.T, gdb *gorm.DB, email, nickname, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &model.User{Email: email, Nickname: nickname, Password: string(hashed), Status: 1}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// CreatePost 直接写入一篇帖子。
func CreatePost(t *testing.T, gdb *gorm.DB, userID uint, title string) *model.Post {
	t.Helper()
	p := &model.Post{UserID: userID, Title: title, Content: title + " content"}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

// SetUserStatus 直接修改账号状态，用于构造封禁场景。
func SetUserStatus(t *testing.T, gdb *gorm.DB, userID uint, status int, suspendedAt *time.Time) {
	t.Helper()
	if err := gdb.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"status":       status,
		"suspended_at": suspendedAt,
	}).Error; err != nil {
		t.Fatalf("set user status: %v", err)
	}
}

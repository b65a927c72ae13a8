package repo

import (
	"context"
	"errors"
	"testing"

	"community-server/internal/model"
	postrepo "community-server/internal/modules/post/repo"
	"community-server/internal/testutils"

	"gorm.io/gorm"
)

func commentCount(t *testing.T, gdb *gorm.DB, postID uint) int64 {
	t.Helper()
	var post model.Post
	if err := gdb.Unscoped().First(&post, postID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	return post.CommentCount
}

// 测试内容：验证新增评论增加计数，删除评论减少计数，列表按创建顺序返回。
func TestCreateListDelete(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewCommentRepository(gdb)
	ctx := context.Background()
	a := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	post := testutils.CreatePost(t, gdb, a.ID, "hello")

	first := &model.Comment{PostID: post.ID, UserID: a.ID, Content: "first"}
	second := &model.Comment{PostID: post.ID, UserID: a.ID, Content: "second"}
	if err := store.CreateAndIncrement(ctx, first); err != nil {
		t.Fatalf("CreateAndIncrement: %v", err)
	}
	if err := store.CreateAndIncrement(ctx, second); err != nil {
		t.Fatalf("CreateAndIncrement: %v", err)
	}
	if got := commentCount(t, gdb, post.ID); got != 2 {
		t.Fatalf("期望评论数 2，实际为 %d", got)
	}

	list, err := store.ListByPost(ctx, post.ID)
	if err != nil || len(list) != 2 || list[0].Content != "first" || list[0].User.Nickname != "alice" {
		t.Fatalf("列表不正确: %+v %v", list, err)
	}

	if err := store.DeleteAndDecrement(ctx, first); err != nil {
		t.Fatalf("DeleteAndDecrement: %v", err)
	}
	if got := commentCount(t, gdb, post.ID); got != 1 {
		t.Fatalf("期望评论数 1，实际为 %d", got)
	}
	if err := store.DeleteAndDecrement(ctx, first); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("重复删除期望不存在，实际为 %v", err)
	}
}

// 测试内容：验证帖子不存在时新增评论失败且不留下评论。
func TestCreateAndIncrement_MissingPost(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewCommentRepository(gdb)
	a := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")

	err := store.CreateAndIncrement(context.Background(), &model.Comment{PostID: 42, UserID: a.ID, Content: "x"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", err)
	}
	var count int64
	gdb.Model(&model.Comment{}).Count(&count)
	if count != 0 {
		t.Fatalf("失败后不应写入评论")
	}
}

// 测试内容：验证帖子已删除后删除残留评论不报错，计数不一致时返回下溢。
func TestDeleteAndDecrement_Edges(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewCommentRepository(gdb)
	ctx := context.Background()
	a := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	post := testutils.CreatePost(t, gdb, a.ID, "hello")

	orphan := &model.Comment{PostID: post.ID, UserID: a.ID, Content: "x"}
	gdb.Create(orphan)
	if err := store.DeleteAndDecrement(ctx, orphan); !errors.Is(err, postrepo.ErrCounterUnderflow) {
		t.Fatalf("期望 ErrCounterUnderflow，实际为 %v", err)
	}

	gdb.Delete(&model.Post{}, post.ID)
	if err := store.DeleteAndDecrement(ctx, orphan); err != nil {
		t.Fatalf("帖子已删除时不应报错: %v", err)
	}
}

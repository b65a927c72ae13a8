package repo

import (
	"context"
	"errors"
	"testing"

	"community-server/internal/model"
	"community-server/internal/testutils"

	"gorm.io/gorm"
)

func ids(posts []model.Post) []uint {
	out := make([]uint, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a []uint, b ...uint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// 测试内容：验证按游标倒序分页，且作者信息被预加载。
func TestList_CursorOrder(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	author := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	for i := 0; i < 5; i++ {
		testutils.CreatePost(t, gdb, author.ID, "post")
	}

	page, err := store.List(ctx, ListPostsParams{Limit: 2})
	if err != nil || !equalIDs(ids(page), 5, 4) {
		t.Fatalf("期望 [5 4]，实际为 %v, %v", ids(page), err)
	}
	if page[0].User.Nickname != "alice" {
		t.Fatalf("期望预加载作者，实际为 %+v", page[0].User)
	}

	page, _ = store.List(ctx, ListPostsParams{LastSeenID: 4, Limit: 2})
	if !equalIDs(ids(page), 3, 2) {
		t.Fatalf("期望 [3 2]，实际为 %v", ids(page))
	}
	page, _ = store.List(ctx, ListPostsParams{LastSeenID: 2, Limit: 2})
	if !equalIDs(ids(page), 1) {
		t.Fatalf("期望 [1]，实际为 %v", ids(page))
	}
}

// 测试内容：验证每次读取详情浏览数加一，已删除帖子返回不存在。
func TestIncrementViewAndGet(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	author := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	post := testutils.CreatePost(t, gdb, author.ID, "hello")

	for i := 1; i <= 3; i++ {
		got, err := store.IncrementViewAndGet(ctx, post.ID)
		if err != nil {
			t.Fatalf("IncrementViewAndGet: %v", err)
		}
		if got.ViewCount != int64(i) {
			t.Fatalf("期望浏览数 %d，实际为 %d", i, got.ViewCount)
		}
	}

	if err := store.DeleteCascade(ctx, post.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}
	if _, err := store.IncrementViewAndGet(ctx, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望不存在，实际为 %v", err)
	}
}

// 测试内容：验证删除帖子同时软删评论、物理删除点赞。
func TestDeleteCascade(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	author := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	other := testutils.CreateUser(t, gdb, "b@example.com", "bob", "password123")
	post := testutils.CreatePost(t, gdb, author.ID, "hello")
	keep := testutils.CreatePost(t, gdb, author.ID, "keep")

	gdb.Create(&model.Comment{PostID: post.ID, UserID: other.ID, Content: "hi"})
	gdb.Create(&model.Comment{PostID: keep.ID, UserID: other.ID, Content: "stay"})
	if _, err := store.AddLike(ctx, other.ID, post.ID); err != nil {
		t.Fatalf("AddLike: %v", err)
	}

	if err := store.DeleteCascade(ctx, post.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	var comments, likes, unscopedComments int64
	gdb.Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	gdb.Unscoped().Model(&model.Comment{}).Where("post_id = ?", post.ID).Count(&unscopedComments)
	gdb.Model(&model.Like{}).Where("post_id = ?", post.ID).Count(&likes)
	if comments != 0 || likes != 0 {
		t.Fatalf("评论和点赞应被清理，实际评论 %d 点赞 %d", comments, likes)
	}
	if unscopedComments != 1 {
		t.Fatalf("评论应为软删除")
	}
	gdb.Model(&model.Comment{}).Where("post_id = ?", keep.ID).Count(&comments)
	if comments != 1 {
		t.Fatalf("其他帖子的评论不应受影响")
	}

	if err := store.DeleteCascade(ctx, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("重复删除期望不存在，实际为 %v", err)
	}
}

// 测试内容：验证显式点赞与取消点赞的冲突语义和计数。
func TestExplicitLikes(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	a := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	b := testutils.CreateUser(t, gdb, "b@example.com", "bob", "password123")
	post := testutils.CreatePost(t, gdb, a.ID, "hello")

	count, err := store.AddLike(ctx, b.ID, post.ID)
	if err != nil || count != 1 {
		t.Fatalf("期望点赞数 1，实际为 %d, %v", count, err)
	}
	if _, err := store.AddLike(ctx, b.ID, post.ID); !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("期望 ErrAlreadyLiked，实际为 %v", err)
	}
	var stored model.Post
	gdb.First(&stored, post.ID)
	if stored.LikeCount != 1 {
		t.Fatalf("重复点赞后点赞数应保持 1，实际为 %d", stored.LikeCount)
	}

	count, err = store.RemoveLike(ctx, b.ID, post.ID)
	if err != nil || count != 0 {
		t.Fatalf("期望点赞数 0，实际为 %d, %v", count, err)
	}
	if _, err := store.RemoveLike(ctx, b.ID, post.ID); !errors.Is(err, ErrNotLiked) {
		t.Fatalf("期望 ErrNotLiked，实际为 %v", err)
	}

	if _, err := store.AddLike(ctx, b.ID, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("帖子不存在期望 ErrRecordNotFound，实际为 %v", err)
	}
}

// 测试内容：验证连续两次切换点赞恢复原始点赞数。
func TestToggleLike_Symmetric(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	a := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	post := testutils.CreatePost(t, gdb, a.ID, "hello")

	liked, count, err := store.ToggleLike(ctx, a.ID, post.ID)
	if err != nil || !liked || count != 1 {
		t.Fatalf("期望已点赞且数量 1，实际为 %v %d %v", liked, count, err)
	}
	liked, count, err = store.ToggleLike(ctx, a.ID, post.ID)
	if err != nil || liked || count != 0 {
		t.Fatalf("期望取消点赞且数量 0，实际为 %v %d %v", liked, count, err)
	}
}

// 测试内容：验证计数与点赞行不一致时取消点赞返回下溢错误并整体回滚。
func TestToggleLike_UnderflowRollsBack(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	a := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	post := testutils.CreatePost(t, gdb, a.ID, "hello")

	gdb.Create(&model.Like{UserID: a.ID, PostID: post.ID})

	if _, _, err := store.ToggleLike(ctx, a.ID, post.ID); !errors.Is(err, ErrCounterUnderflow) {
		t.Fatalf("期望 ErrCounterUnderflow，实际为 %v", err)
	}
	exists, _ := store.LikeExists(ctx, a.ID, post.ID)
	if !exists {
		t.Fatalf("失败后点赞记录应被回滚保留")
	}
}

// 测试内容：验证帖子删除后点赞和评论计数更新都返回不存在，不会留下新的点赞行。
func TestDeleteCascade_BlocksLaterWrites(t *testing.T) {
	gdb := testutils.SetupDB(t)
	store := NewPostRepository(gdb)
	ctx := context.Background()
	author := testutils.CreateUser(t, gdb, "a@example.com", "alice", "password123")
	other := testutils.CreateUser(t, gdb, "b@example.com", "bob", "password123")
	post := testutils.CreatePost(t, gdb, author.ID, "hello")

	if err := store.DeleteCascade(ctx, post.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	if _, _, err := store.ToggleLike(ctx, other.ID, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", err)
	}
	if err := IncrementCommentCount(gdb, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", err)
	}
	if err := IncrementLikeCount(gdb, post.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("期望 ErrRecordNotFound，实际为 %v", err)
	}
	var likes int64
	gdb.Model(&model.Like{}).Where("post_id = ?", post.ID).Count(&likes)
	if likes != 0 {
		t.Fatalf("期望没有点赞行，实际为 %d", likes)
	}
}

package service

import (
	"context"
	"errors"
	"strings"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/metrics"
	"community-server/internal/model"
	moduledto "community-server/internal/modules/post/dto"
	"community-server/internal/modules/post/repo"
	platformservice "community-server/internal/platform/service"

	"gorm.io/gorm"
)

func (s *Service) Create(ctx context.Context, identity *platformservice.Identity, req moduledto.CreatePostRequest) (uint, error) {
	if identity == nil {
		return 0, platformservice.NewUnauthorizedError(consts.MsgLoginRequired)
	}
	post := &model.Post{
		UserID:  identity.ID,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		Image:   strings.TrimSpace(req.Image),
	}
	if post.Title == "" || strings.TrimSpace(post.Content) == "" {
		return 0, platformservice.NewValidationError(consts.MsgInvalidRequest)
	}
	if err := s.postStore.Create(ctx, post); err != nil {
		return 0, s.translateStoreError(err, "创建帖子失败")
	}
	metrics.RecordContentMutation("post", "create")
	return post.ID, nil
}

// List 游标分页，按 id 倒序。本页条数等于 size 时才返回 nextCursor。
func (s *Service) List(ctx context.Context, query moduledto.ListPostsQuery) (*moduledto.PostListResponse, error) {
	size := defaultPageSize
	if query.Size != nil {
		if *query.Size < 1 || *query.Size > maxPageSize {
			return nil, platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
		size = *query.Size
	}
	var lastSeenID uint
	if query.LastSeenID != nil {
		if *query.LastSeenID == 0 {
			return nil, platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
		lastSeenID = *query.LastSeenID
	}

	posts, err := s.postStore.List(ctx, repo.ListPostsParams{LastSeenID: lastSeenID, Limit: size})
	if err != nil {
		return nil, s.translateStoreError(err, "查询帖子列表失败")
	}

	resp := &moduledto.PostListResponse{Posts: make([]moduledto.PostSummary, 0, len(posts))}
	for i := range posts {
		resp.Posts = append(resp.Posts, s.toSummary(&posts[i]))
	}
	if len(posts) == size {
		cursor := posts[len(posts)-1].ID
		resp.NextCursor = &cursor
	}
	return resp, nil
}

// Detail 每次读取都会增加浏览数，viewer 非空时返回其是否已点赞。
func (s *Service) Detail(ctx context.Context, id uint, viewer *platformservice.Identity) (*moduledto.PostDetailResponse, error) {
	post, err := s.postStore.IncrementViewAndGet(ctx, id)
	if err != nil {
		return nil, s.translateStoreError(err, "查询帖子失败")
	}

	detail := &moduledto.PostDetailResponse{
		PostSummary: s.toSummary(post),
		Content:     post.Content,
		Image:       post.Image,
		UpdatedAt:   post.UpdatedAt,
	}
	if viewer != nil {
		liked, err := s.postStore.LikeExists(ctx, viewer.ID, id)
		if err != nil {
			return nil, s.translateStoreError(err, "查询点赞状态失败")
		}
		detail.IsLiked = liked
	}
	return detail, nil
}

func (s *Service) Update(ctx context.Context, identity *platformservice.Identity, id uint, req moduledto.UpdatePostRequest) (uint, error) {
	if err := s.ensurePostOwner(ctx, identity, id); err != nil {
		return 0, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return 0, platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
		updates["title"] = title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return 0, platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
		updates["content"] = *req.Content
	}
	if req.Image != nil {
		updates["image"] = strings.TrimSpace(*req.Image)
	}
	if len(updates) == 0 {
		return id, nil
	}

	if err := s.postStore.UpdateByID(ctx, id, updates); err != nil {
		return 0, s.translateStoreError(err, "更新帖子失败")
	}
	metrics.RecordContentMutation("post", "update")
	return id, nil
}

// Delete 删除帖子，评论与点赞在同一事务内级联清理。
func (s *Service) Delete(ctx context.Context, identity *platformservice.Identity, id uint) error {
	if err := s.ensurePostOwner(ctx, identity, id); err != nil {
		return err
	}
	if err := s.postStore.DeleteCascade(ctx, id); err != nil {
		return s.translateStoreError(err, "删除帖子失败")
	}
	metrics.RecordContentMutation("post", "delete")
	logger.With("post").WithField("post_id", id).Info("🗑️ 帖子已删除")
	return nil
}

func (s *Service) ensurePostOwner(ctx context.Context, identity *platformservice.Identity, id uint) error {
	post, err := s.postStore.FindByID(ctx, id)
	if err != nil {
		return s.translateStoreError(err, "查询帖子失败")
	}
	return platformservice.EnsureOwner(post.UserID, identity)
}

func (s *Service) toSummary(post *model.Post) moduledto.PostSummary {
	return moduledto.PostSummary{
		PostID: post.ID,
		Title:  post.Title,
		Author: moduledto.AuthorResponse{
			UserID:       post.UserID,
			Nickname:     post.User.Nickname,
			ProfileImage: s.avatarOrDefault(post.User.Avatar),
		},
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		ViewCount:    post.ViewCount,
		CreatedAt:    post.CreatedAt,
	}
}

func (s *Service) avatarOrDefault(avatar string) string {
	if avatar != "" {
		return avatar
	}
	return s.GetString(consts.ConfigDefaultAvatar)
}

// translateStoreError 把存储层错误转换为业务错误，计数下溢记为数据完整性故障。
func (s *Service) translateStoreError(err error, internalMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return platformservice.NewNotFoundError(consts.MsgPostNotFound)
	case errors.Is(err, repo.ErrAlreadyLiked):
		return platformservice.NewConflictError(consts.MsgPostAlreadyLike)
	case errors.Is(err, repo.ErrNotLiked):
		return platformservice.NewConflictError(consts.MsgPostAlreadyDeleteLike)
	case errors.Is(err, repo.ErrCounterUnderflow):
		metrics.RecordIntegrityFailure()
		return platformservice.NewIntegrityError("like_count would become negative")
	}
	logger.With("post").Errorf("❌ %s: %v", internalMessage, err)
	return platformservice.NewInternalError(internalMessage)
}
